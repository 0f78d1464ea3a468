package projects

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
	"lakeside-exchange/marketplace-backend/pkg/workflows"
)

// Requests

type CreateProjectRequest struct {
	OwnerID          string             `json:"ownerId"`
	OwnerName        string             `json:"ownerName"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Type             string             `json:"type"`
	OriginalCategory string             `json:"originalCategory"`
	TargetAmount     float64            `json:"targetAmount"`
	MinInvestment    float64            `json:"minInvestment"`
	MaxInvestment    float64            `json:"maxInvestment"`
	ExpectedReturn   ExpectedReturn     `json:"expectedReturn"`
	RevenueStructure map[string]float64 `json:"revenueStructure"`
	RiskLevel        string             `json:"riskLevel"`
	Region           string             `json:"region"`
	City             string             `json:"city"`
	InvestmentPeriod int                `json:"investmentPeriod"`
	FundingDeadline  string             `json:"fundingDeadline"`
	Documents        []Document         `json:"documents"`
}

type UpdateProjectRequest struct {
	Title            *string             `json:"title"`
	Description      *string             `json:"description"`
	Type             *string             `json:"type"`
	OriginalCategory *string             `json:"originalCategory"`
	TargetAmount     *float64            `json:"targetAmount"`
	MinInvestment    *float64            `json:"minInvestment"`
	MaxInvestment    *float64            `json:"maxInvestment"`
	ExpectedReturn   *ExpectedReturn     `json:"expectedReturn"`
	RevenueStructure *map[string]float64 `json:"revenueStructure"`
	RiskLevel        *string             `json:"riskLevel"`
	Region           *string             `json:"region"`
	City             *string             `json:"city"`
	InvestmentPeriod *int                `json:"investmentPeriod"`
	FundingDeadline  *string             `json:"fundingDeadline"`
	Documents        *[]Document         `json:"documents"`
}

// SynthesizeRequest fabricates a PENDING project for an unlisted asset
// that has no originating submission.
type SynthesizeRequest struct {
	ID               string
	OwnerID          string
	OwnerName        string
	Title            string
	Description      string
	Type             string
	OriginalCategory string
	TargetAmount     float64
	MinInvestment    float64
	MaxInvestment    float64
	ExpectedReturn   ExpectedReturn
	RevenueStructure map[string]float64
	RiskLevel        string
	Region           string
	City             string
	InvestmentPeriod int
	FundingDeadline  string
	CreatedAt        time.Time
}

// Service enforces the submission/review state machine over the
// project store. Cross-entity side effects (listing synthesis and
// removal) are coordinated one level up, in the marketplace service.
type Service struct {
	repo         Repository
	stateMachine *workflows.StateMachine
	logger       *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:         repo,
		stateMachine: workflows.NewStateMachine(),
		logger:       logger,
	}
}

func newProjectID() string {
	return fmt.Sprintf("project-submit-%s", uuid.NewString()[:8])
}

// Create allocates a new project in DRAFT.
func (s *Service) Create(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	if req.OwnerID == "" {
		return nil, apperrors.Validation("ownerId is required")
	}
	if req.Title == "" {
		return nil, apperrors.Validation("title is required")
	}

	now := time.Now()
	project := &Project{
		ID:               newProjectID(),
		OwnerID:          req.OwnerID,
		OwnerName:        req.OwnerName,
		Title:            req.Title,
		Description:      req.Description,
		Type:             req.Type,
		OriginalCategory: req.OriginalCategory,
		TargetAmount:     req.TargetAmount,
		MinInvestment:    req.MinInvestment,
		MaxInvestment:    req.MaxInvestment,
		ExpectedReturn:   req.ExpectedReturn,
		RevenueStructure: req.RevenueStructure,
		RiskLevel:        req.RiskLevel,
		Region:           req.Region,
		City:             req.City,
		InvestmentPeriod: req.InvestmentPeriod,
		FundingDeadline:  req.FundingDeadline,
		Documents:        req.Documents,
		Status:           StatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("project created",
		zap.String("project_id", project.ID),
		zap.String("owner_id", project.OwnerID))
	return project, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Update edits submission fields. Only the owner may edit, and only
// while the project is still DRAFT or PENDING.
func (s *Service) Update(ctx context.Context, id, ownerID string, req UpdateProjectRequest) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != ownerID {
		return nil, apperrors.Forbidden("user %s is not the owner of project %s", ownerID, id)
	}
	if project.Status != StatusDraft && project.Status != StatusPending {
		return nil, apperrors.InvalidState("project %s cannot be edited in status %s", id, project.Status)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Type != nil {
		project.Type = *req.Type
	}
	if req.OriginalCategory != nil {
		project.OriginalCategory = *req.OriginalCategory
	}
	if req.TargetAmount != nil {
		project.TargetAmount = *req.TargetAmount
	}
	if req.MinInvestment != nil {
		project.MinInvestment = *req.MinInvestment
	}
	if req.MaxInvestment != nil {
		project.MaxInvestment = *req.MaxInvestment
	}
	if req.ExpectedReturn != nil {
		project.ExpectedReturn = *req.ExpectedReturn
	}
	if req.RevenueStructure != nil {
		project.RevenueStructure = *req.RevenueStructure
	}
	if req.RiskLevel != nil {
		project.RiskLevel = *req.RiskLevel
	}
	if req.Region != nil {
		project.Region = *req.Region
	}
	if req.City != nil {
		project.City = *req.City
	}
	if req.InvestmentPeriod != nil {
		project.InvestmentPeriod = *req.InvestmentPeriod
	}
	if req.FundingDeadline != nil {
		project.FundingDeadline = *req.FundingDeadline
	}
	if req.Documents != nil {
		project.Documents = *req.Documents
	}

	project.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Submit moves a DRAFT project into PENDING.
func (s *Service) Submit(ctx context.Context, id string) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.Status != StatusDraft {
		return nil, apperrors.InvalidState("project %s cannot be submitted from status %s", id, project.Status)
	}

	now := time.Now()
	project.Status = StatusPending
	project.SubmittedAt = &now
	project.UpdatedAt = now
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("project submitted for review", zap.String("project_id", id))
	return project, nil
}

// Withdraw pulls a PENDING or UNDER_REVIEW project back to DRAFT and
// clears its submission timestamp.
func (s *Service) Withdraw(ctx context.Context, id string) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.stateMachine.CanTransition(string(project.Status), string(StatusDraft)) {
		return nil, apperrors.InvalidState("project %s cannot be withdrawn from status %s", id, project.Status)
	}

	project.Status = StatusDraft
	project.SubmittedAt = nil
	project.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("project withdrawn to draft", zap.String("project_id", id))
	return project, nil
}

// Review records an admin decision on a PENDING or UNDER_REVIEW
// project. It mutates the project record only; the caller is
// responsible for the listing side effect on approval.
func (s *Service) Review(ctx context.Context, id string, decision Decision, notes string) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var target Status
	switch decision {
	case DecisionApprove:
		target = StatusApproved
	case DecisionReject:
		target = StatusRejected
	default:
		return nil, apperrors.Validation("unknown review decision %q", decision)
	}

	if !s.stateMachine.CanTransition(string(project.Status), string(target)) {
		return nil, apperrors.InvalidState("project %s is not under review (status %s)", id, project.Status)
	}

	now := time.Now()
	project.Status = target
	project.ReviewedAt = &now
	project.ReviewNotes = notes
	project.UpdatedAt = now
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("project reviewed",
		zap.String("project_id", id),
		zap.String("decision", string(decision)))
	return project, nil
}

// Revoke reverses a terminal review decision back to PENDING and
// returns the prior status so the caller can undo the listing side
// effect of an approval.
func (s *Service) Revoke(ctx context.Context, id string) (*Project, Status, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	prior := project.Status
	if prior != StatusApproved && prior != StatusRejected {
		return nil, "", apperrors.InvalidState("project %s cannot be revoked from status %s", id, prior)
	}

	project.Status = StatusPending
	project.ReviewedAt = nil
	project.ReviewNotes = ""
	project.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, "", err
	}
	s.logger.Info("review decision revoked",
		zap.String("project_id", id),
		zap.String("prior_status", string(prior)))
	return project, prior, nil
}

// RevertToPending unconditionally forces a project back to PENDING,
// clearing review state. Used when the project's listing is pulled
// from the market, regardless of the project's current status.
func (s *Service) RevertToPending(ctx context.Context, id string) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Status = StatusPending
	project.ReviewedAt = nil
	project.ReviewNotes = ""
	project.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("project reverted to pending", zap.String("project_id", id))
	return project, nil
}

// Synthesize fabricates a PENDING project from listing fields so an
// unlisted asset always traces to a resubmittable project.
func (s *Service) Synthesize(ctx context.Context, req SynthesizeRequest) (*Project, error) {
	now := time.Now()
	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	project := &Project{
		ID:               req.ID,
		OwnerID:          req.OwnerID,
		OwnerName:        req.OwnerName,
		Title:            req.Title,
		Description:      req.Description,
		Type:             req.Type,
		OriginalCategory: req.OriginalCategory,
		TargetAmount:     req.TargetAmount,
		MinInvestment:    req.MinInvestment,
		MaxInvestment:    req.MaxInvestment,
		ExpectedReturn:   req.ExpectedReturn,
		RevenueStructure: req.RevenueStructure,
		RiskLevel:        req.RiskLevel,
		Region:           req.Region,
		City:             req.City,
		InvestmentPeriod: req.InvestmentPeriod,
		FundingDeadline:  req.FundingDeadline,
		Status:           StatusPending,
		SubmittedAt:      &now,
		CreatedAt:        createdAt,
		UpdatedAt:        now,
	}
	if err := s.repo.Insert(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("project synthesized from unlisted asset",
		zap.String("project_id", project.ID))
	return project, nil
}

// Delete removes a DRAFT project permanently. Owner-only.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.OwnerID != ownerID {
		return apperrors.Forbidden("user %s is not the owner of project %s", ownerID, id)
	}
	if project.Status != StatusDraft {
		return apperrors.InvalidState("project %s cannot be deleted in status %s", id, project.Status)
	}
	return s.repo.Delete(ctx, id)
}

// ListForOwner returns the owner's projects in insertion order.
func (s *Service) ListForOwner(ctx context.Context, ownerID string) ([]*Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Project, 0)
	for _, p := range all {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListReviewQueue returns submitted and already-reviewed projects, so
// the admin console can both decide and revoke.
func (s *Service) ListReviewQueue(ctx context.Context) ([]*Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Project, 0)
	for _, p := range all {
		switch p.Status {
		case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
			out = append(out, p)
		}
	}
	return out, nil
}

// ListPending returns projects awaiting a decision.
func (s *Service) ListPending(ctx context.Context) ([]*Project, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Project, 0)
	for _, p := range all {
		if p.Status == StatusPending || p.Status == StatusUnderReview {
			out = append(out, p)
		}
	}
	return out, nil
}

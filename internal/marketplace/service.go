package marketplace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/config"
	"lakeside-exchange/marketplace-backend/internal/notifications"
	"lakeside-exchange/marketplace-backend/internal/projects"
	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// Service is the cross-entity orchestrator between the project store
// and the asset listing mirror. Every multi-step lifecycle operation
// (approve with its listing synthesis, revoke with its listing
// removal, unlist with its revert-or-synthesize) runs as a single
// critical section under one mutex, so concurrent requests cannot
// interleave between the lookup and mutation steps.
type Service struct {
	mu       sync.Mutex
	projects *projects.Service
	listings assets.Repository
	events   notifications.Recorder
	market   config.MarketConfig
	logger   *zap.Logger
}

func NewService(
	projectService *projects.Service,
	listings assets.Repository,
	events notifications.Recorder,
	market config.MarketConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		projects: projectService,
		listings: listings,
		events:   events,
		market:   market,
		logger:   logger,
	}
}

// Review records an admin decision. Approval synthesizes the market
// listing for the project; the state machine guarantees a project can
// only be approved once without an intervening revoke, which makes the
// synthesis at-most-once per decision.
func (s *Service) Review(ctx context.Context, projectID string, decision projects.Decision, notes string) (*projects.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.projects.Review(ctx, projectID, decision, notes)
	if err != nil {
		return nil, err
	}

	if decision == projects.DecisionApprove {
		listing := listingFromProject(project)
		if err := s.listings.Insert(ctx, listing); err != nil {
			return nil, apperrors.Internal("approved project %s already has listing %s", projectID, listing.ID)
		}
		s.logger.Info("project approved and listed on market",
			zap.String("project_id", projectID),
			zap.String("asset_id", listing.ID))
		s.events.Record(notifications.EventAssetApproved,
			fmt.Sprintf("%q was approved and listed on the market", project.Title))
	} else {
		s.events.Record(notifications.EventAssetRejected,
			fmt.Sprintf("%q was rejected in review", project.Title))
	}
	return project, nil
}

// Revoke reverses a terminal review decision. If the project was
// APPROVED its listing is removed from the market; a missing listing
// is logged but tolerated, since it may already have been unlisted.
func (s *Service) Revoke(ctx context.Context, projectID string) (*projects.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, prior, err := s.projects.Revoke(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if prior == projects.StatusApproved {
		assetID := assets.ListingIDFor(projectID)
		if s.listings.Remove(ctx, assetID) {
			s.logger.Info("listing pulled from market on revoke",
				zap.String("asset_id", assetID))
		} else {
			s.logger.Warn("no listing found for revoked approval",
				zap.String("asset_id", assetID))
		}
	}
	s.events.Record(notifications.EventReviewRevoked,
		fmt.Sprintf("review decision for %q was revoked", project.Title))
	return project, nil
}

// Unlist pulls a listing from the market and restores its project
// side: the originating project is forced back to PENDING, or a new
// PENDING project is synthesized when none exists.
func (s *Service) Unlist(ctx context.Context, assetID string) (*assets.UnlistResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, err := s.listings.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if !s.listings.Remove(ctx, assetID) {
		// The lookup just succeeded, so a failed removal means the
		// mirror was mutated underneath us.
		s.logger.Error("listing vanished between lookup and removal",
			zap.String("asset_id", assetID))
		return nil, apperrors.Internal("failed to unlist asset %s", assetID)
	}

	projectID := listing.ProjectID
	if projectID == "" {
		projectID, _ = assets.ProjectIDFromListingID(assetID)
	}

	if projectID != "" {
		if project, err := s.projects.RevertToPending(ctx, projectID); err == nil {
			s.logger.Info("asset unlisted, project reverted to pending",
				zap.String("asset_id", assetID),
				zap.String("project_id", projectID))
			s.events.Record(notifications.EventAssetUnlisted,
				fmt.Sprintf("%q was unlisted; its project is pending review again", listing.Title))
			return &assets.UnlistResult{
				AssetID:     assetID,
				ProjectID:   project.ID,
				Synthesized: false,
				Message:     "asset unlisted, project reverted to pending review",
			}, nil
		} else if !apperrors.IsNotFound(err) {
			return nil, err
		}
		// Back-reference points at a project that no longer exists;
		// fall through and synthesize one.
	}

	project, err := s.projects.Synthesize(ctx, s.synthesisRequest(listing))
	if err != nil {
		return nil, err
	}
	s.logger.Info("asset unlisted, project synthesized",
		zap.String("asset_id", assetID),
		zap.String("project_id", project.ID))
	s.events.Record(notifications.EventAssetUnlisted,
		fmt.Sprintf("%q was unlisted; a pending project record was created for it", listing.Title))
	return &assets.UnlistResult{
		AssetID:     assetID,
		ProjectID:   project.ID,
		Synthesized: true,
		Message:     "asset unlisted, project record created",
	}, nil
}

// listingFromProject builds the market listing for a freshly approved
// project. The listing ID is derived from the project ID and the
// back-reference is always populated.
func listingFromProject(p *projects.Project) *assets.Listing {
	return &assets.Listing{
		ID:               assets.ListingIDFor(p.ID),
		ProjectID:        p.ID,
		Title:            p.Title,
		Description:      p.Description,
		Type:             p.Type,
		OriginalCategory: p.OriginalCategory,
		TargetAmount:     p.TargetAmount,
		RaisedAmount:     0,
		MinInvestment:    p.MinInvestment,
		MaxInvestment:    p.MaxInvestment,
		ExpectedReturn: assets.ExpectedReturn{
			Min:  p.ExpectedReturn.Min,
			Max:  p.ExpectedReturn.Max,
			Type: p.ExpectedReturn.Type,
		},
		RevenueStructure: p.RevenueStructure,
		RiskLevel:        p.RiskLevel,
		RiskScore:        assets.RiskScoreFor(p.RiskLevel),
		Region:           p.Region,
		City:             p.City,
		Status:           assets.StatusFunding,
		FundingDeadline:  p.FundingDeadline,
		InvestmentPeriod: p.InvestmentPeriod,
		DueDiligence: map[string]bool{
			"financial_audit":    true,
			"legal_compliance":   true,
			"operational_review": true,
			"market_analysis":    true,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: time.Now(),
	}
}

// synthesisRequest copies an orphaned listing's descriptive fields
// into a new project submission attributed to the platform admin.
func (s *Service) synthesisRequest(l *assets.Listing) projects.SynthesizeRequest {
	deadline := l.FundingDeadline
	if deadline == "" {
		deadline = time.Now().AddDate(0, 0, s.market.SyntheticDeadlineDays).Format("2006-01-02")
	}
	period := l.InvestmentPeriod
	if period == 0 {
		period = 12
	}
	return projects.SynthesizeRequest{
		ID:               fmt.Sprintf("project-from-%s", l.ID),
		OwnerID:          s.market.AdminOwnerID,
		OwnerName:        s.market.AdminOwnerName,
		Title:            l.Title,
		Description:      l.Description,
		Type:             l.Type,
		OriginalCategory: l.OriginalCategory,
		TargetAmount:     l.TargetAmount,
		MinInvestment:    l.MinInvestment,
		MaxInvestment:    l.MaxInvestment,
		ExpectedReturn: projects.ExpectedReturn{
			Min:  l.ExpectedReturn.Min,
			Max:  l.ExpectedReturn.Max,
			Type: l.ExpectedReturn.Type,
		},
		RevenueStructure: l.RevenueStructure,
		RiskLevel:        l.RiskLevel,
		Region:           l.Region,
		City:             l.City,
		InvestmentPeriod: period,
		FundingDeadline:  deadline,
		CreatedAt:        l.CreatedAt,
	}
}

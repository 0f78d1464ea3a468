package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// CreateListingRequest creates a listing directly, without an
// originating project submission. Used by the admin console.
type CreateListingRequest struct {
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
	FundingDeadline  string             `json:"fundingDeadline"`
	InvestmentPeriod int                `json:"investmentPeriod"`
}

// Service serves market listing queries and admin-side creation.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns listings passing the filter, in insertion order.
func (s *Service) List(ctx context.Context, filter Filter) ([]*Listing, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Listing, 0, len(all))
	for _, l := range all {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// Create appends an admin-created listing with no project backing. It
// enters the pipeline as PENDING; a project is synthesized for it only
// if it is later unlisted.
func (s *Service) Create(ctx context.Context, req CreateListingRequest) (*Listing, error) {
	if req.Title == "" {
		return nil, apperrors.Validation("title is required")
	}

	now := time.Now()
	listing := &Listing{
		ID:               fmt.Sprintf("asset-new-%s", uuid.NewString()[:8]),
		Title:            req.Title,
		Description:      req.Description,
		Type:             req.Type,
		OriginalCategory: req.OriginalCategory,
		TargetAmount:     req.TargetAmount,
		RaisedAmount:     0,
		MinInvestment:    req.MinInvestment,
		MaxInvestment:    req.MaxInvestment,
		ExpectedReturn:   req.ExpectedReturn,
		RevenueStructure: req.RevenueStructure,
		RiskLevel:        req.RiskLevel,
		RiskScore:        RiskScoreFor(req.RiskLevel),
		Region:           req.Region,
		City:             req.City,
		Status:           StatusPending,
		FundingDeadline:  req.FundingDeadline,
		InvestmentPeriod: req.InvestmentPeriod,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Insert(ctx, listing); err != nil {
		return nil, err
	}
	s.logger.Info("listing created by admin", zap.String("asset_id", listing.ID))
	return listing, nil
}

// AddInvestment bumps a listing's raised amount after a confirmed
// investment.
func (s *Service) AddInvestment(ctx context.Context, assetID string, amount float64) error {
	listing, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return err
	}
	listing.RaisedAmount += amount
	listing.UpdatedAt = time.Now()
	return s.repo.Save(ctx, listing)
}

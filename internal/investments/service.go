package investments

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/config"
	"lakeside-exchange/marketplace-backend/internal/notifications"
	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// CreateInvestmentRequest places an investment into a listing.
type CreateInvestmentRequest struct {
	UserID  string  `json:"userId"`
	AssetID string  `json:"assetId"`
	Amount  float64 `json:"amount"`
}

// Service owns investment records and portfolio aggregation.
type Service struct {
	repo     Repository
	listings *assets.Service
	events   notifications.Recorder
	market   config.MarketConfig
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	listings *assets.Service,
	events notifications.Recorder,
	market config.MarketConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:     repo,
		listings: listings,
		events:   events,
		market:   market,
		logger:   logger,
	}
}

// Create validates the amount against the listing's bounds, deducts
// fees, records the investment and bumps the listing's raised amount.
func (s *Service) Create(ctx context.Context, req CreateInvestmentRequest) (*Investment, error) {
	listing, err := s.listings.Get(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if req.Amount < listing.MinInvestment {
		return nil, apperrors.Validation("minimum investment is %.0f", listing.MinInvestment)
	}
	if req.Amount > listing.MaxInvestment {
		return nil, apperrors.Validation("maximum investment is %.0f", listing.MaxInvestment)
	}

	managementFee := req.Amount * s.market.ManagementFeeRate
	transactionFee := req.Amount * s.market.TransactionFeeRate

	now := time.Now()
	investment := &Investment{
		ID:             fmt.Sprintf("inv-%s", uuid.NewString()[:8]),
		UserID:         req.UserID,
		AssetID:        req.AssetID,
		Amount:         req.Amount,
		ManagementFee:  managementFee,
		TransactionFee: transactionFee,
		NetAmount:      req.Amount - managementFee - transactionFee,
		CurrentValue:   req.Amount,
		ReturnRate:     0,
		Status:         "CONFIRMED",
		PNoteNumber:    fmt.Sprintf("PN-%s", strings.ToUpper(uuid.NewString()[:8])),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Insert(ctx, investment); err != nil {
		return nil, err
	}
	if err := s.listings.AddInvestment(ctx, req.AssetID, req.Amount); err != nil {
		s.logger.Warn("failed to update raised amount",
			zap.String("asset_id", req.AssetID), zap.Error(err))
	}

	s.logger.Info("investment confirmed",
		zap.String("investment_id", investment.ID),
		zap.String("asset_id", req.AssetID),
		zap.Float64("amount", req.Amount))
	s.events.Record(notifications.EventInvestmentMade,
		fmt.Sprintf("an investor committed %.0f to %q", req.Amount, listing.Title))
	return investment, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Investment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Investment, error) {
	return s.repo.List(ctx)
}

// ListForUser returns the user's investments with their listing
// summaries embedded. UserID empty means all investments, matching the
// demo backend's behavior when no identity is supplied.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]InvestmentWithAsset, error) {
	var list []*Investment
	var err error
	if userID == "" {
		list, err = s.repo.List(ctx)
	} else {
		list, err = s.repo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]InvestmentWithAsset, 0, len(list))
	for _, inv := range list {
		entry := InvestmentWithAsset{Investment: *inv}
		if listing, err := s.listings.Get(ctx, inv.AssetID); err == nil {
			entry.Asset = summarize(listing)
		}
		out = append(out, entry)
	}
	return out, nil
}

// PortfolioStats aggregates total value, return percentage, type
// distribution and the upcoming dividend milestones for a user.
func (s *Service) PortfolioStats(ctx context.Context, userID string) (*PortfolioStats, error) {
	var list []*Investment
	var err error
	if userID == "" {
		list, err = s.repo.List(ctx)
	} else {
		list, err = s.repo.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	stats := &PortfolioStats{
		Distribution:       map[string]float64{},
		UpcomingMilestones: []Milestone{},
		UserID:             userID,
	}

	var totalInvested float64
	byType := map[string]float64{}
	var distributed float64
	for _, inv := range list {
		stats.TotalValue += inv.CurrentValue
		totalInvested += inv.Amount

		listing, err := s.listings.Get(ctx, inv.AssetID)
		if err != nil {
			continue
		}
		byType[listing.Type] += inv.CurrentValue
		distributed += inv.CurrentValue

		stats.UpcomingMilestones = append(stats.UpcomingMilestones, milestonesFor(inv, listing)...)
	}

	if totalInvested > 0 {
		stats.TotalReturn = (stats.TotalValue - totalInvested) / totalInvested * 100
	}
	for assetType, value := range byType {
		if distributed > 0 {
			stats.Distribution[assetType] = math.Round(value/distributed*100*100) / 100
		}
	}

	sort.Slice(stats.UpcomingMilestones, func(i, j int) bool {
		return stats.UpcomingMilestones[i].DueDate < stats.UpcomingMilestones[j].DueDate
	})
	if len(stats.UpcomingMilestones) > 10 {
		stats.UpcomingMilestones = stats.UpcomingMilestones[:10]
	}
	return stats, nil
}

// milestonesFor projects quarterly dividend checkpoints over the
// listing's investment period, capped at four quarters out.
func milestonesFor(inv *Investment, listing *assets.Listing) []Milestone {
	months := listing.InvestmentPeriod
	if months == 0 {
		months = 12
	}
	quarters := (months + 2) / 3
	if quarters > 4 {
		quarters = 4
	}

	now := time.Now()
	out := make([]Milestone, 0, quarters)
	for q := 1; q <= quarters; q++ {
		due := now.AddDate(0, q*3, 0)
		avgReturn := (listing.ExpectedReturn.Min + listing.ExpectedReturn.Max) / 2
		out = append(out, Milestone{
			ID:             fmt.Sprintf("milestone-%s-Q%d", inv.ID, q),
			AssetID:        inv.AssetID,
			Title:          fmt.Sprintf("Q%d dividend", q),
			Description:    listing.Title,
			DueDate:        due.Format("2006-01-02"),
			Status:         "PENDING",
			ExpectedAmount: math.Round(inv.Amount * avgReturn / 100 / float64(quarters)),
			Asset: AssetSummary{
				ID:     listing.ID,
				Title:  listing.Title,
				Type:   listing.Type,
				Status: string(listing.Status),
			},
		})
	}
	return out
}

func summarize(l *assets.Listing) *AssetSummary {
	return &AssetSummary{
		ID:                l.ID,
		Title:             l.Title,
		Type:              l.Type,
		Status:            string(l.Status),
		ExpectedReturnMin: l.ExpectedReturn.Min,
		ExpectedReturnMax: l.ExpectedReturn.Max,
	}
}

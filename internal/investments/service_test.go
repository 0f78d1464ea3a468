package investments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/config"
	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

type recorderStub struct {
	types []string
}

func (r *recorderStub) Record(eventType, description string) {
	r.types = append(r.types, eventType)
}

func newTestService(t *testing.T) (*Service, *assets.Service) {
	t.Helper()
	logger := zap.NewNop()
	listingRepo := assets.NewMemoryRepository()
	listingService := assets.NewService(listingRepo, logger)
	market := config.MarketConfig{
		ManagementFeeRate:  0.02,
		TransactionFeeRate: 0.01,
	}
	s := NewService(NewMemoryRepository(), listingService, &recorderStub{}, market, logger)

	err := listingRepo.Insert(context.Background(), &assets.Listing{
		ID:               "asset-001",
		Title:            "Concert Tour Revenue Rights",
		Type:             "CO_INVESTMENT",
		TargetAmount:     5000000,
		MinInvestment:    500000,
		MaxInvestment:    5000000,
		ExpectedReturn:   assets.ExpectedReturn{Min: 18, Max: 28},
		Status:           assets.StatusFunding,
		InvestmentPeriod: 8,
	})
	assert.NoError(t, err)
	return s, listingService
}

func TestCreateInvestment(t *testing.T) {
	s, listings := newTestService(t)
	ctx := context.Background()

	inv, err := s.Create(ctx, CreateInvestmentRequest{
		UserID:  "investor-1",
		AssetID: "asset-001",
		Amount:  1000000,
	})
	assert.NoError(t, err)
	assert.Contains(t, inv.ID, "inv-")
	assert.Equal(t, 20000.0, inv.ManagementFee)
	assert.Equal(t, 10000.0, inv.TransactionFee)
	assert.Equal(t, 970000.0, inv.NetAmount)
	assert.Equal(t, 1000000.0, inv.CurrentValue)
	assert.Equal(t, "CONFIRMED", inv.Status)
	assert.Contains(t, inv.PNoteNumber, "PN-")

	listing, err := listings.Get(ctx, "asset-001")
	assert.NoError(t, err)
	assert.Equal(t, 1000000.0, listing.RaisedAmount)
}

func TestCreateInvestmentAmountBounds(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, CreateInvestmentRequest{
		UserID: "investor-1", AssetID: "asset-001", Amount: 100000,
	})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.Create(ctx, CreateInvestmentRequest{
		UserID: "investor-1", AssetID: "asset-001", Amount: 6000000,
	})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCreateInvestmentUnknownAsset(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Create(context.Background(), CreateInvestmentRequest{
		UserID: "investor-1", AssetID: "asset-missing", Amount: 1000000,
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListForUser(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, CreateInvestmentRequest{UserID: "investor-1", AssetID: "asset-001", Amount: 1000000})
	assert.NoError(t, err)
	_, err = s.Create(ctx, CreateInvestmentRequest{UserID: "investor-2", AssetID: "asset-001", Amount: 500000})
	assert.NoError(t, err)

	mine, err := s.ListForUser(ctx, "investor-1")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.NotNil(t, mine[0].Asset)
	assert.Equal(t, "Concert Tour Revenue Rights", mine[0].Asset.Title)
	assert.Equal(t, 18.0, mine[0].Asset.ExpectedReturnMin)

	// No identity supplied returns everything.
	all, err := s.ListForUser(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPortfolioStats(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, CreateInvestmentRequest{UserID: "investor-1", AssetID: "asset-001", Amount: 1000000})
	assert.NoError(t, err)

	stats, err := s.PortfolioStats(ctx, "investor-1")
	assert.NoError(t, err)
	assert.Equal(t, 1000000.0, stats.TotalValue)
	assert.Equal(t, 0.0, stats.TotalReturn)
	assert.Equal(t, 100.0, stats.Distribution["CO_INVESTMENT"])

	// An 8-month period projects 3 quarterly checkpoints.
	assert.Len(t, stats.UpcomingMilestones, 3)
	first := stats.UpcomingMilestones[0]
	assert.Equal(t, "asset-001", first.AssetID)
	assert.Equal(t, "PENDING", first.Status)
	// 23% average return spread over 3 quarters.
	assert.InDelta(t, 76667, first.ExpectedAmount, 1)
}

func TestPortfolioStatsEmpty(t *testing.T) {
	s, _ := newTestService(t)

	stats, err := s.PortfolioStats(context.Background(), "investor-1")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, stats.TotalValue)
	assert.Empty(t, stats.Distribution)
	assert.Empty(t, stats.UpcomingMilestones)
}

func TestPortfolioStatsSurvivesUnlistedAsset(t *testing.T) {
	logger := zap.NewNop()
	listingRepo := assets.NewMemoryRepository()
	listingService := assets.NewService(listingRepo, logger)
	s := NewService(NewMemoryRepository(), listingService, &recorderStub{}, config.MarketConfig{}, logger)
	ctx := context.Background()

	assert.NoError(t, listingRepo.Insert(ctx, &assets.Listing{
		ID:            "asset-001",
		Title:         "Short Lived",
		MaxInvestment: 1000000,
	}))
	_, err := s.Create(ctx, CreateInvestmentRequest{UserID: "investor-1", AssetID: "asset-001", Amount: 500000})
	assert.NoError(t, err)
	assert.True(t, listingRepo.Remove(ctx, "asset-001"))

	stats, err := s.PortfolioStats(ctx, "investor-1")
	assert.NoError(t, err)
	assert.Equal(t, 500000.0, stats.TotalValue)
	assert.Empty(t, stats.Distribution)

	list, err := s.ListForUser(ctx, "investor-1")
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Nil(t, list[0].Asset)
}

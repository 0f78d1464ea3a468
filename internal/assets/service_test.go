package assets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

func seedListings(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	for _, l := range []*Listing{
		{ID: "fund-1", Title: "Fund LP", Type: "MIFC_FUND_LP", RiskLevel: "HIGH", Region: "Nationwide", Status: StatusFunding},
		{ID: "co-1", Title: "Concert", Type: "CO_INVESTMENT", RiskLevel: "MEDIUM", Region: "East China", Status: StatusFunding},
		{ID: "co-2", Title: "Campus Retail", Type: "CO_INVESTMENT", RiskLevel: "LOW", Region: "East China", Status: StatusFunded},
		{ID: "co-3", Title: "Pipeline Asset", Type: "CO_INVESTMENT", RiskLevel: "LOW", Region: "Southwest", Status: StatusPending},
	} {
		assert.NoError(t, repo.Insert(ctx, l))
	}
}

func TestListFiltering(t *testing.T) {
	repo := NewMemoryRepository()
	seedListings(t, repo)
	s := NewService(repo, zap.NewNop())
	ctx := context.Background()

	all, err := s.List(ctx, Filter{})
	assert.NoError(t, err)
	assert.Len(t, all, 4)

	coOnly, err := s.List(ctx, Filter{Types: []string{"CO_INVESTMENT"}})
	assert.NoError(t, err)
	assert.Len(t, coOnly, 3)

	lowRisk, err := s.List(ctx, Filter{RiskLevels: []string{"LOW"}})
	assert.NoError(t, err)
	assert.Len(t, lowRisk, 2)

	east, err := s.List(ctx, Filter{Region: "East China"})
	assert.NoError(t, err)
	assert.Len(t, east, 2)
}

func TestListedFilterAdmitsLiveStatuses(t *testing.T) {
	repo := NewMemoryRepository()
	seedListings(t, repo)
	s := NewService(repo, zap.NewNop())

	// A LISTED query means "live on the market", which includes
	// FUNDING and FUNDED but not the pipeline.
	live, err := s.List(context.Background(), Filter{Status: "LISTED"})
	assert.NoError(t, err)
	assert.Len(t, live, 3)
	for _, l := range live {
		assert.NotEqual(t, StatusPending, l.Status)
	}
}

func TestCreateListing(t *testing.T) {
	repo := NewMemoryRepository()
	s := NewService(repo, zap.NewNop())
	ctx := context.Background()

	listing, err := s.Create(ctx, CreateListingRequest{
		Title:     "Music Festival Revenue Rights",
		Type:      "CO_INVESTMENT",
		RiskLevel: "MEDIUM",
	})
	assert.NoError(t, err)
	assert.Contains(t, listing.ID, "asset-new-")
	assert.Empty(t, listing.ProjectID)
	assert.Equal(t, StatusPending, listing.Status)
	assert.Equal(t, 50, listing.RiskScore)
	assert.Equal(t, 0.0, listing.RaisedAmount)

	_, err = s.Create(ctx, CreateListingRequest{})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestAddInvestment(t *testing.T) {
	repo := NewMemoryRepository()
	seedListings(t, repo)
	s := NewService(repo, zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, s.AddInvestment(ctx, "co-1", 500000))
	assert.NoError(t, s.AddInvestment(ctx, "co-1", 250000))

	listing, err := s.Get(ctx, "co-1")
	assert.NoError(t, err)
	assert.Equal(t, 750000.0, listing.RaisedAmount)

	err = s.AddInvestment(ctx, "missing", 100)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRemoveIsIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	seedListings(t, repo)
	ctx := context.Background()

	assert.True(t, repo.Remove(ctx, "co-1"))
	assert.False(t, repo.Remove(ctx, "co-1"))

	_, err := repo.GetByID(ctx, "co-1")
	assert.True(t, apperrors.IsNotFound(err))

	remaining, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, remaining, 3)
}

func TestRepositoryClonesOnRead(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	assert.NoError(t, repo.Insert(ctx, &Listing{
		ID:               "co-1",
		Title:            "Original",
		RevenueStructure: map[string]float64{"ticket sales": 100},
	}))

	first, err := repo.GetByID(ctx, "co-1")
	assert.NoError(t, err)
	first.Title = "Mutated"
	first.RevenueStructure["ticket sales"] = 1

	second, err := repo.GetByID(ctx, "co-1")
	assert.NoError(t, err)
	assert.Equal(t, "Original", second.Title)
	assert.Equal(t, 100.0, second.RevenueStructure["ticket sales"])
}

func TestListingIDDerivation(t *testing.T) {
	assert.Equal(t, "asset-from-project-submit-001", ListingIDFor("project-submit-001"))

	projectID, ok := ProjectIDFromListingID("asset-from-project-submit-001")
	assert.True(t, ok)
	assert.Equal(t, "project-submit-001", projectID)

	_, ok = ProjectIDFromListingID("mifc-fund-lp-001")
	assert.False(t, ok)
}

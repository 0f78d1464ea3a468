package marketplace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/internal/assets"
	"lakeside-exchange/marketplace-backend/internal/config"
	"lakeside-exchange/marketplace-backend/internal/projects"
	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

// recorderStub captures emitted events for assertions.
type recorderStub struct {
	types []string
}

func (r *recorderStub) Record(eventType, description string) {
	r.types = append(r.types, eventType)
}

type fixture struct {
	bridge   *Service
	projects *projects.Service
	listings assets.Repository
	events   *recorderStub
}

func newFixture() *fixture {
	logger := zap.NewNop()
	projectService := projects.NewService(projects.NewMemoryRepository(), logger)
	listingRepo := assets.NewMemoryRepository()
	events := &recorderStub{}
	market := config.MarketConfig{
		AdminOwnerID:          "admin-001",
		AdminOwnerName:        "Lakeside Exchange Operations",
		SyntheticDeadlineDays: 90,
	}
	return &fixture{
		bridge:   NewService(projectService, listingRepo, events, market, logger),
		projects: projectService,
		listings: listingRepo,
		events:   events,
	}
}

func (f *fixture) submitProject(t *testing.T) *projects.Project {
	t.Helper()
	ctx := context.Background()
	project, err := f.projects.Create(ctx, projects.CreateProjectRequest{
		OwnerID:          "owner-1",
		OwnerName:        "Starlight Entertainment Group",
		Title:            "Stadium Tour Revenue Rights",
		Type:             "CO_INVESTMENT",
		TargetAmount:     12000000,
		MinInvestment:    500000,
		MaxInvestment:    3000000,
		RiskLevel:        "MEDIUM",
		FundingDeadline:  "2026-04-30",
		InvestmentPeriod: 10,
	})
	assert.NoError(t, err)
	_, err = f.projects.Submit(ctx, project.ID)
	assert.NoError(t, err)
	return project
}

func TestApproveCreatesListing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	project := f.submitProject(t)

	reviewed, err := f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "cleared")
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusApproved, reviewed.Status)

	listing, err := f.listings.GetByID(ctx, assets.ListingIDFor(project.ID))
	assert.NoError(t, err)
	assert.Equal(t, project.ID, listing.ProjectID)
	assert.Equal(t, project.Title, listing.Title)
	assert.Equal(t, assets.StatusFunding, listing.Status)
	assert.Equal(t, 0.0, listing.RaisedAmount)
	assert.Equal(t, 50, listing.RiskScore)

	all, err := f.listings.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Contains(t, f.events.types, "ASSET_APPROVED")
}

func TestRejectCreatesNoListing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	project := f.submitProject(t)

	reviewed, err := f.bridge.Review(ctx, project.ID, projects.DecisionReject, "missing audit")
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusRejected, reviewed.Status)

	all, err := f.listings.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)
	assert.Contains(t, f.events.types, "ASSET_REJECTED")
}

func TestApproveTwiceRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	project := f.submitProject(t)

	_, err := f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "")
	assert.NoError(t, err)

	_, err = f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "")
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))

	all, err := f.listings.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRevokeApprovalRemovesListing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	project := f.submitProject(t)

	_, err := f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "")
	assert.NoError(t, err)

	revoked, err := f.bridge.Revoke(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusPending, revoked.Status)
	assert.Nil(t, revoked.ReviewedAt)

	_, err = f.listings.GetByID(ctx, assets.ListingIDFor(project.ID))
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, f.events.types, "REVIEW_REVOKED")
}

func TestRevokeRejectionTouchesNoListing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	project := f.submitProject(t)

	_, err := f.bridge.Review(ctx, project.ID, projects.DecisionReject, "")
	assert.NoError(t, err)

	revoked, err := f.bridge.Revoke(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusPending, revoked.Status)
}

func TestUnlistRevertsProject(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	project := f.submitProject(t)

	_, err := f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "")
	assert.NoError(t, err)
	assetID := assets.ListingIDFor(project.ID)

	result, err := f.bridge.Unlist(ctx, assetID)
	assert.NoError(t, err)
	assert.False(t, result.Synthesized)
	assert.Equal(t, project.ID, result.ProjectID)

	_, err = f.listings.GetByID(ctx, assetID)
	assert.True(t, apperrors.IsNotFound(err))

	reverted, err := f.projects.Get(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusPending, reverted.Status)
	assert.Nil(t, reverted.ReviewedAt)
	assert.Contains(t, f.events.types, "ASSET_UNLISTED")
}

func TestUnlistOrphanSynthesizesProject(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Admin-seeded listing with no project behind it.
	err := f.listings.Insert(ctx, &assets.Listing{
		ID:            "mifc-fund-lp-001",
		Title:         "Flagship Fund LP Units",
		Type:          "MIFC_FUND_LP",
		TargetAmount:  400000000,
		MinInvestment: 5000000,
		RiskLevel:     "HIGH",
		Status:        assets.StatusFunding,
	})
	assert.NoError(t, err)

	result, err := f.bridge.Unlist(ctx, "mifc-fund-lp-001")
	assert.NoError(t, err)
	assert.True(t, result.Synthesized)
	assert.Equal(t, "project-from-mifc-fund-lp-001", result.ProjectID)

	project, err := f.projects.Get(ctx, result.ProjectID)
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusPending, project.Status)
	assert.Equal(t, "admin-001", project.OwnerID)
	assert.Equal(t, "Flagship Fund LP Units", project.Title)
	assert.NotNil(t, project.SubmittedAt)
	assert.NotEmpty(t, project.FundingDeadline)
	assert.Equal(t, 12, project.InvestmentPeriod)
}

func TestUnlistUnknownAsset(t *testing.T) {
	f := newFixture()

	_, err := f.bridge.Unlist(context.Background(), "asset-missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUnlistedProjectCanBeReapproved(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	project := f.submitProject(t)

	_, err := f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "")
	assert.NoError(t, err)
	_, err = f.bridge.Unlist(ctx, assets.ListingIDFor(project.ID))
	assert.NoError(t, err)

	// The reverted project goes through review again and relists.
	_, err = f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "second pass")
	assert.NoError(t, err)

	listing, err := f.listings.GetByID(ctx, assets.ListingIDFor(project.ID))
	assert.NoError(t, err)
	assert.Equal(t, project.ID, listing.ProjectID)

	all, err := f.listings.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFullLifecycleScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	project, err := f.projects.Create(ctx, projects.CreateProjectRequest{
		OwnerID:   "owner-1",
		OwnerName: "Starlight Entertainment Group",
		Title:     "Concert X",
		RiskLevel: "MEDIUM",
	})
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusDraft, project.Status)

	submitted, err := f.projects.Submit(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusPending, submitted.Status)

	approved, err := f.bridge.Review(ctx, project.ID, projects.DecisionApprove, "ok")
	assert.NoError(t, err)
	assert.Equal(t, "ok", approved.ReviewNotes)

	assetID := assets.ListingIDFor(project.ID)
	all, err := f.listings.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, assetID, all[0].ID)
	assert.Equal(t, 0.0, all[0].RaisedAmount)
	assert.Equal(t, assets.StatusFunding, all[0].Status)

	_, err = f.bridge.Unlist(ctx, assetID)
	assert.NoError(t, err)

	all, err = f.listings.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)

	final, err := f.projects.Get(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, projects.StatusPending, final.Status)
	assert.Nil(t, final.ReviewedAt)
}

// MockListingRepository is a mock implementation of the assets
// repository, used to exercise failure paths the in-memory store
// cannot produce.
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Insert(ctx context.Context, l *assets.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (*assets.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.Listing), args.Error(1)
}

func (m *MockListingRepository) Save(ctx context.Context, l *assets.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Remove(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockListingRepository) List(ctx context.Context) ([]*assets.Listing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*assets.Listing), args.Error(1)
}

func TestUnlistRemovalFailureIsInternal(t *testing.T) {
	logger := zap.NewNop()
	projectService := projects.NewService(projects.NewMemoryRepository(), logger)
	mockRepo := new(MockListingRepository)
	bridge := NewService(projectService, mockRepo, &recorderStub{}, config.MarketConfig{}, logger)

	ctx := context.Background()
	listing := &assets.Listing{ID: "asset-001", Title: "Ghost Listing"}
	mockRepo.On("GetByID", ctx, "asset-001").Return(listing, nil)
	mockRepo.On("Remove", ctx, "asset-001").Return(false)

	_, err := bridge.Unlist(ctx, "asset-001")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestApproveInsertConflictIsInternal(t *testing.T) {
	logger := zap.NewNop()
	projectService := projects.NewService(projects.NewMemoryRepository(), logger)
	mockRepo := new(MockListingRepository)
	bridge := NewService(projectService, mockRepo, &recorderStub{}, config.MarketConfig{}, logger)

	ctx := context.Background()
	project, err := projectService.Create(ctx, projects.CreateProjectRequest{
		OwnerID: "owner-1",
		Title:   "Conflicting Project",
	})
	assert.NoError(t, err)
	_, err = projectService.Submit(ctx, project.ID)
	assert.NoError(t, err)

	mockRepo.On("Insert", ctx, mock.AnythingOfType("*assets.Listing")).
		Return(apperrors.Validation("listing already exists"))

	_, err = bridge.Review(ctx, project.ID, projects.DecisionApprove, "")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	mockRepo.AssertExpectations(t)
}

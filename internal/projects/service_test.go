package projects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lakeside-exchange/marketplace-backend/pkg/apperrors"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(), zap.NewNop())
}

func createDraft(t *testing.T, s *Service, ownerID string) *Project {
	t.Helper()
	project, err := s.Create(context.Background(), CreateProjectRequest{
		OwnerID:   ownerID,
		OwnerName: "Test Owner",
		Title:     "Concert Tour Revenue Rights",
		Type:      "CO_INVESTMENT",
		RiskLevel: "MEDIUM",
	})
	assert.NoError(t, err)
	return project
}

func TestCreateProject(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	project := createDraft(t, s, "owner-1")
	assert.Equal(t, StatusDraft, project.Status)
	assert.Nil(t, project.SubmittedAt)
	assert.Contains(t, project.ID, "project-submit-")

	stored, err := s.Get(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, project.Title, stored.Title)
}

func TestCreateProjectValidation(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.Create(ctx, CreateProjectRequest{Title: "No Owner"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.Create(ctx, CreateProjectRequest{OwnerID: "owner-1"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestSubmitProject(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")

	submitted, err := s.Submit(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, submitted.Status)
	assert.NotNil(t, submitted.SubmittedAt)

	// Already submitted, cannot submit again.
	_, err = s.Submit(ctx, project.ID)
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
}

func TestSubmitUnknownProject(t *testing.T) {
	s := newTestService()

	_, err := s.Submit(context.Background(), "project-submit-missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateProject(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")

	title := "Updated Tour Revenue Rights"
	amount := 12000000.0
	updated, err := s.Update(ctx, project.ID, "owner-1", UpdateProjectRequest{
		Title:        &title,
		TargetAmount: &amount,
	})
	assert.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, amount, updated.TargetAmount)
	assert.Equal(t, "CO_INVESTMENT", updated.Type)
	assert.False(t, updated.UpdatedAt.Before(project.UpdatedAt))
}

func TestUpdateProjectOwnershipEnforced(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")

	title := "Hijacked"
	_, err := s.Update(ctx, project.ID, "owner-2", UpdateProjectRequest{Title: &title})
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	stored, err := s.Get(ctx, project.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, "Hijacked", stored.Title)
}

func TestUpdateProjectLockedAfterReview(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")

	_, err := s.Submit(ctx, project.ID)
	assert.NoError(t, err)
	_, err = s.Review(ctx, project.ID, DecisionApprove, "")
	assert.NoError(t, err)

	title := "Too Late"
	_, err = s.Update(ctx, project.ID, "owner-1", UpdateProjectRequest{Title: &title})
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
}

func TestWithdrawProject(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")

	_, err := s.Submit(ctx, project.ID)
	assert.NoError(t, err)

	withdrawn, err := s.Withdraw(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusDraft, withdrawn.Status)
	assert.Nil(t, withdrawn.SubmittedAt)

	// A draft has nothing to withdraw.
	_, err = s.Withdraw(ctx, project.ID)
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
}

func TestReviewProject(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	approved := createDraft(t, s, "owner-1")
	_, err := s.Submit(ctx, approved.ID)
	assert.NoError(t, err)
	result, err := s.Review(ctx, approved.ID, DecisionApprove, "looks solid")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, result.Status)
	assert.Equal(t, "looks solid", result.ReviewNotes)
	assert.NotNil(t, result.ReviewedAt)

	rejected := createDraft(t, s, "owner-1")
	_, err = s.Submit(ctx, rejected.ID)
	assert.NoError(t, err)
	result, err = s.Review(ctx, rejected.ID, DecisionReject, "missing audit")
	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, result.Status)
}

func TestReviewRequiresSubmission(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")

	_, err := s.Review(ctx, project.ID, DecisionApprove, "")
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
}

func TestReviewUnknownDecision(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")
	_, err := s.Submit(ctx, project.ID)
	assert.NoError(t, err)

	_, err = s.Review(ctx, project.ID, Decision("MAYBE"), "")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestRevokeProject(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")
	_, err := s.Submit(ctx, project.ID)
	assert.NoError(t, err)
	_, err = s.Review(ctx, project.ID, DecisionApprove, "ok")
	assert.NoError(t, err)

	revoked, prior, err := s.Revoke(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, prior)
	assert.Equal(t, StatusPending, revoked.Status)
	assert.Nil(t, revoked.ReviewedAt)
	assert.Empty(t, revoked.ReviewNotes)
}

func TestRevokeRequiresDecision(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")
	_, err := s.Submit(ctx, project.ID)
	assert.NoError(t, err)

	_, _, err = s.Revoke(ctx, project.ID)
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
}

func TestDeleteProject(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")

	assert.Equal(t, apperrors.KindForbidden,
		apperrors.KindOf(s.Delete(ctx, project.ID, "owner-2")))

	assert.NoError(t, s.Delete(ctx, project.ID, "owner-1"))
	_, err := s.Get(ctx, project.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteSubmittedProjectRejected(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	project := createDraft(t, s, "owner-1")
	_, err := s.Submit(ctx, project.ID)
	assert.NoError(t, err)

	err = s.Delete(ctx, project.ID, "owner-1")
	assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
}

func TestListForOwner(t *testing.T) {
	s := newTestService()
	ctx := context.Background()
	createDraft(t, s, "owner-1")
	createDraft(t, s, "owner-1")
	createDraft(t, s, "owner-2")

	mine, err := s.ListForOwner(ctx, "owner-1")
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := s.ListForOwner(ctx, "owner-3")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestListReviewQueue(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	createDraft(t, s, "owner-1") // stays DRAFT, not queued

	pending := createDraft(t, s, "owner-1")
	_, err := s.Submit(ctx, pending.ID)
	assert.NoError(t, err)

	reviewed := createDraft(t, s, "owner-1")
	_, err = s.Submit(ctx, reviewed.ID)
	assert.NoError(t, err)
	_, err = s.Review(ctx, reviewed.ID, DecisionApprove, "")
	assert.NoError(t, err)

	queue, err := s.ListReviewQueue(ctx)
	assert.NoError(t, err)
	assert.Len(t, queue, 2)

	awaiting, err := s.ListPending(ctx)
	assert.NoError(t, err)
	assert.Len(t, awaiting, 1)
	assert.Equal(t, pending.ID, awaiting[0].ID)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/mock"
	"github.com/MKhiriev/go-achieve-portal/internal/session"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// sessionWithRole builds an active session context for the given role.
func sessionWithRole(t *testing.T, role string) *session.Context {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "66f1a2b3c4d5e6f7a8b9c0d1",
		"name":   "قسم التطوير",
		"role":   role,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	ctx := session.NewContext()
	require.NoError(t, ctx.Begin(s))
	return ctx
}

// newReviewFixture wires a review service over a real activity cache seeded
// with the given records and a mocked adapter.
func newReviewFixture(t *testing.T, ctrl *gomock.Controller, role string, seed []models.Activity) (ReviewService, ActivityService, *mock.MockActivityAPI) {
	t.Helper()

	mockAPI := mock.NewMockActivityAPI(ctrl)
	activitySvc := NewActivityService(mockAPI, mock.NewMockHandoffRepository(ctrl), validators.NewSubmissionValidator(), logger.Nop())

	if seed != nil {
		mockAPI.EXPECT().GetAllActivities(gomock.Any()).Return(seed, nil)
		_, err := activitySvc.Refresh(context.Background())
		require.NoError(t, err)
	}

	reviewSvc := NewReviewService(mockAPI, sessionWithRole(t, role), activitySvc, logger.Nop())
	return reviewSvc, activitySvc, mockAPI
}

func seedActivities() []models.Activity {
	return []models.Activity{
		{ID: "a1", ActivityTitle: "first", Status: models.StatusUnderReview, SaveStatus: models.SaveStatusComplete},
		{ID: "a2", ActivityTitle: "second", Status: models.StatusUnderReview, SaveStatus: models.SaveStatusComplete},
		{ID: "a3", ActivityTitle: "third", Status: models.StatusApproved, SaveStatus: models.SaveStatusComplete},
	}
}

// ---------------------------------------------------------------------------
// Role and presence gates: no network call, no mutation
// ---------------------------------------------------------------------------

func TestReviewService_Approve_NonAdminIsRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange: no UpdateStatus expectation, so any call fails the test.
	svc, activitySvc, _ := newReviewFixture(t, ctrl, models.RoleUser, seedActivities())
	before := activitySvc.List()

	// Act
	err := svc.Approve(context.Background(), "a1")

	// Assert
	assert.ErrorIs(t, err, ErrNotAdmin)
	assert.Equal(t, before, activitySvc.List())
}

func TestReviewService_Reject_UnknownIDIsRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, _ := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())
	before := activitySvc.List()

	err := svc.Reject(context.Background(), "missing", "good enough reason")

	assert.ErrorIs(t, err, ErrActivityNotInCache)
	assert.Equal(t, before, activitySvc.List())
}

func TestReviewService_Reject_ShortReasonIsRejectedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, _ := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())
	before := activitySvc.List()

	for _, reason := range []string{"x", "ab", "abcd"} {
		err := svc.Reject(context.Background(), "a1", reason)
		assert.ErrorIs(t, err, validators.ErrShortRejectionReason, "reason %q", reason)
	}
	assert.Equal(t, before, activitySvc.List())
}

// ---------------------------------------------------------------------------
// Successful transitions patch the cache and the open detail selection
// ---------------------------------------------------------------------------

func TestReviewService_Approve_PatchesCacheAndSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, mockAPI := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())
	_, err := activitySvc.Select("a1")
	require.NoError(t, err)

	approved := models.Activity{ID: "a1", Status: models.StatusApproved}
	mockAPI.EXPECT().
		UpdateStatus(gomock.Any(), "a1", models.StatusApproved, "").
		Return(approved, nil)

	// Act
	err = svc.Approve(context.Background(), "a1")

	// Assert
	require.NoError(t, err)

	list := activitySvc.List()
	assert.Equal(t, models.StatusApproved, list[0].Status)

	selected, ok := activitySvc.Selected()
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, selected.Status)
}

func TestReviewService_Reject_EmptyReasonUsesPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, mockAPI := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())

	mockAPI.EXPECT().
		UpdateStatus(gomock.Any(), "a2", models.StatusRejected, validators.DefaultRejectionReason).
		Return(models.Activity{ID: "a2", Status: models.StatusRejected, ReasonForRejection: validators.DefaultRejectionReason}, nil)

	err := svc.Reject(context.Background(), "a2", "")

	require.NoError(t, err)
	list := activitySvc.List()
	assert.Equal(t, models.StatusRejected, list[1].Status)
	assert.Equal(t, validators.DefaultRejectionReason, list[1].ReasonForRejection)
}

func TestReviewService_Reassign_MovesBackUnderReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, mockAPI := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())

	mockAPI.EXPECT().
		UpdateStatus(gomock.Any(), "a3", models.StatusUnderReview, "").
		Return(models.Activity{ID: "a3", Status: models.StatusUnderReview}, nil)

	err := svc.Reassign(context.Background(), "a3")

	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, activitySvc.List()[2].Status)
}

func TestReviewService_Transition_BackendFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, mockAPI := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())
	before := activitySvc.List()

	mockAPI.EXPECT().
		UpdateStatus(gomock.Any(), "a1", models.StatusApproved, "").
		Return(models.Activity{}, assert.AnError)

	err := svc.Approve(context.Background(), "a1")

	assert.Error(t, err)
	assert.Equal(t, before, activitySvc.List())
}

// ---------------------------------------------------------------------------
// Delete: confirmation gate, then splice
// ---------------------------------------------------------------------------

func TestReviewService_Delete_DeclinedConfirmationSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, _ := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())
	before := activitySvc.List()

	err := svc.Delete(context.Background(), "a1", func() bool { return false })

	assert.ErrorIs(t, err, ErrConfirmationDeclined)
	assert.Equal(t, before, activitySvc.List())
}

func TestReviewService_Delete_SplicesExactlyOneRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, activitySvc, mockAPI := newReviewFixture(t, ctrl, models.RoleAdmin, seedActivities())
	mockAPI.EXPECT().DeleteActivity(gomock.Any(), "a2").Return(nil)

	err := svc.Delete(context.Background(), "a2", func() bool { return true })

	require.NoError(t, err)
	list := activitySvc.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, "a3", list[1].ID)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-achieve-portal/internal/filter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/mock"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

func newActivityFixture(t *testing.T, ctrl *gomock.Controller) (ActivityService, *mock.MockActivityAPI) {
	t.Helper()
	mockAPI := mock.NewMockActivityAPI(ctrl)
	mockHandoff := mock.NewMockHandoffRepository(ctrl)
	mockHandoff.EXPECT().ClearHandoff(gomock.Any()).Return(nil).AnyTimes()
	return NewActivityService(mockAPI, mockHandoff, validators.NewSubmissionValidator(), logger.Nop()), mockAPI
}

func TestActivityService_Refresh_ReplacesCacheWholesale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newActivityFixture(t, ctrl)
	ctx := context.Background()

	first := []models.Activity{{ID: "a1"}, {ID: "a2"}}
	second := []models.Activity{{ID: "a3"}}

	mockAPI.EXPECT().GetAllActivities(ctx).Return(first, nil)
	mockAPI.EXPECT().GetAllActivities(ctx).Return(second, nil)

	// Act
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, svc.List(), 2)

	// The second refresh wins entirely, no merging.
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, "a3", list[0].ID)
}

func TestActivityService_Refresh_FailureKeepsOldCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newActivityFixture(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().GetAllActivities(ctx).Return([]models.Activity{{ID: "a1"}}, nil)
	mockAPI.EXPECT().GetAllActivities(ctx).Return(nil, assert.AnError)

	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx)
	assert.Error(t, err)
	assert.Len(t, svc.List(), 1)
}

func TestActivityService_SelectionMirrorsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newActivityFixture(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().GetAllActivities(ctx).Return([]models.Activity{
		{ID: "a1", Status: models.StatusUnderReview},
	}, nil)
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	_, err = svc.Select("a1")
	require.NoError(t, err)

	// A refresh that changes the record updates the open selection too.
	mockAPI.EXPECT().GetAllActivities(ctx).Return([]models.Activity{
		{ID: "a1", Status: models.StatusApproved},
	}, nil)
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)

	selected, ok := svc.Selected()
	require.True(t, ok)
	assert.Equal(t, models.StatusApproved, selected.Status)

	// A refresh that drops the record drops the selection.
	mockAPI.EXPECT().GetAllActivities(ctx).Return(nil, nil)
	_, err = svc.Refresh(ctx)
	require.NoError(t, err)

	_, ok = svc.Selected()
	assert.False(t, ok)
}

func TestActivityService_Select_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newActivityFixture(t, ctrl)

	_, err := svc.Select("missing")
	assert.ErrorIs(t, err, ErrActivityNotInCache)
}

func TestActivityService_Filtered_UsesTheCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newActivityFixture(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().GetAllActivities(ctx).Return([]models.Activity{
		{ID: "a1", Status: models.StatusApproved, SaveStatus: models.SaveStatusComplete},
		{ID: "a2", Status: models.StatusApproved, SaveStatus: models.SaveStatusDraft},
	}, nil)
	_, err := svc.Refresh(ctx)
	require.NoError(t, err)

	got := svc.Filtered(filter.Criteria{Status: string(models.StatusApproved)})
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}

func TestActivityService_Submit_NewRecordUsesAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newActivityFixture(t, ctrl)
	ctx := context.Background()

	sub := models.Submission{
		Title:           "Best Teacher Award",
		DescriptionHTML: "<p>Granted for outstanding classroom results.</p>",
		MainCriteriaID:  "mc-1",
		SubCriteriaID:   "sc-1",
	}

	mockAPI.EXPECT().
		AddActivity(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.Submission) (models.Activity, error) {
			assert.Equal(t, models.SaveStatusComplete, got.SaveStatus)
			return models.Activity{ID: "new-id"}, nil
		})

	saved, err := svc.Submit(ctx, sub)

	require.NoError(t, err)
	assert.Equal(t, "new-id", saved.ID)
}

func TestActivityService_Submit_BoundIDUsesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newActivityFixture(t, ctrl)
	ctx := context.Background()

	sub := models.Submission{
		ID:              "a1",
		Title:           "Best Teacher Award",
		DescriptionHTML: "<p>Granted for outstanding classroom results.</p>",
		MainCriteriaID:  "mc-1",
		SubCriteriaID:   "sc-1",
	}

	mockAPI.EXPECT().UpdateActivity(ctx, gomock.Any()).Return(models.Activity{ID: "a1"}, nil)

	_, err := svc.Submit(ctx, sub)
	require.NoError(t, err)
}

func TestActivityService_Submit_ClearsHandoffSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mock.NewMockActivityAPI(ctrl)
	mockHandoff := mock.NewMockHandoffRepository(ctrl)
	svc := NewActivityService(mockAPI, mockHandoff, validators.NewSubmissionValidator(), logger.Nop())
	ctx := context.Background()

	sub := models.Submission{
		ID:              "a1",
		Title:           "Best Teacher Award",
		DescriptionHTML: "<p>Granted for outstanding classroom results.</p>",
		MainCriteriaID:  "mc-1",
		SubCriteriaID:   "sc-1",
	}

	mockAPI.EXPECT().UpdateActivity(ctx, gomock.Any()).Return(models.Activity{ID: "a1"}, nil)
	// The draft this submission was edited from no longer exists after the
	// update, so the stashed handoff must not survive either.
	mockHandoff.EXPECT().ClearHandoff(ctx).Return(nil)

	_, err := svc.Submit(ctx, sub)
	require.NoError(t, err)
}

func TestActivityService_Submit_FailureKeepsHandoffSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mock.NewMockActivityAPI(ctrl)
	mockHandoff := mock.NewMockHandoffRepository(ctrl)
	svc := NewActivityService(mockAPI, mockHandoff, validators.NewSubmissionValidator(), logger.Nop())
	ctx := context.Background()

	sub := models.Submission{
		ID:              "a1",
		Title:           "Best Teacher Award",
		DescriptionHTML: "<p>Granted for outstanding classroom results.</p>",
		MainCriteriaID:  "mc-1",
		SubCriteriaID:   "sc-1",
	}

	// No ClearHandoff expectation: a failed submit leaves the edit intact.
	mockAPI.EXPECT().UpdateActivity(ctx, gomock.Any()).Return(models.Activity{}, assert.AnError)

	_, err := svc.Submit(ctx, sub)
	require.Error(t, err)
}

func TestActivityService_Submit_ValidationFailureMakesNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newActivityFixture(t, ctrl)

	_, err := svc.Submit(context.Background(), models.Submission{Title: ""})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/mock"
	"github.com/MKhiriev/go-achieve-portal/internal/utils"
	"github.com/MKhiriev/go-achieve-portal/models"
)

func newFeedFixture(t *testing.T, ctrl *gomock.Controller) (NotificationFeed, *mock.MockNotificationAPI) {
	t.Helper()
	mockAPI := mock.NewMockNotificationAPI(ctrl)
	return NewNotificationService(mockAPI, utils.NewUUIDGenerator(), logger.Nop()), mockAPI
}

func seedFeed() []models.Notification {
	return []models.Notification{
		{ID: "n1", Type: models.NotifySuccess, Read: true},
		{ID: "n2", Type: models.NotifyInfo},
		{ID: "n3", Type: models.NotifyError},
	}
}

// requireUnreadInvariant asserts the derived count equals a manual scan.
func requireUnreadInvariant(t *testing.T, feed NotificationFeed) {
	t.Helper()
	manual := 0
	for _, n := range feed.Feed() {
		if !n.Read {
			manual++
		}
	}
	require.Equal(t, manual, feed.UnreadCount())
}

func TestNotificationFeed_LoadAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, mockAPI := newFeedFixture(t, ctrl)
	mockAPI.EXPECT().GetNotifications(gomock.Any()).Return(seedFeed(), nil)

	require.NoError(t, feed.Load(context.Background()))
	assert.Len(t, feed.Feed(), 3)
	assert.Equal(t, 2, feed.UnreadCount())
	requireUnreadInvariant(t, feed)
}

func TestNotificationFeed_PublishPrependsWithoutTouchingReadState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, mockAPI := newFeedFixture(t, ctrl)
	mockAPI.EXPECT().GetNotifications(gomock.Any()).Return(seedFeed(), nil)
	require.NoError(t, feed.Load(context.Background()))

	feed.Publish(models.Notification{ID: "n4", Type: models.NotifyWarning})

	list := feed.Feed()
	require.Len(t, list, 4)
	assert.Equal(t, "n4", list[0].ID, "pushed entries are prepended")
	assert.True(t, list[1].Read, "existing read state survives a push")
	requireUnreadInvariant(t, feed)
}

func TestNotificationFeed_MarkRead_OptimisticFlipSurvivesAckFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, mockAPI := newFeedFixture(t, ctrl)
	mockAPI.EXPECT().GetNotifications(gomock.Any()).Return(seedFeed(), nil)
	require.NoError(t, feed.Load(context.Background()))

	mockAPI.EXPECT().MarkNotificationRead(gomock.Any(), "n2").Return(assert.AnError)

	// Act: the ack fails, but MarkRead still succeeds and the flip stands.
	err := feed.MarkRead(context.Background(), "n2")

	require.NoError(t, err)
	assert.Equal(t, 1, feed.UnreadCount())
	requireUnreadInvariant(t, feed)
}

func TestNotificationFeed_MarkRead_AlreadyReadSendsNoAck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, mockAPI := newFeedFixture(t, ctrl)
	mockAPI.EXPECT().GetNotifications(gomock.Any()).Return(seedFeed(), nil)
	require.NoError(t, feed.Load(context.Background()))

	// n1 is already read; no MarkNotificationRead expectation is set.
	require.NoError(t, feed.MarkRead(context.Background(), "n1"))
	assert.Equal(t, 2, feed.UnreadCount())
}

func TestNotificationFeed_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, mockAPI := newFeedFixture(t, ctrl)
	mockAPI.EXPECT().GetNotifications(gomock.Any()).Return(seedFeed(), nil)
	require.NoError(t, feed.Load(context.Background()))

	mockAPI.EXPECT().MarkAllNotificationsRead(gomock.Any()).Return(nil)

	require.NoError(t, feed.MarkAllRead(context.Background()))
	assert.Equal(t, 0, feed.UnreadCount())
	requireUnreadInvariant(t, feed)
}

func TestNotificationFeed_DeleteAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, mockAPI := newFeedFixture(t, ctrl)
	mockAPI.EXPECT().GetNotifications(gomock.Any()).Return(seedFeed(), nil)
	require.NoError(t, feed.Load(context.Background()))

	mockAPI.EXPECT().DeleteNotification(gomock.Any(), "n2").Return(nil)
	require.NoError(t, feed.Delete(context.Background(), "n2"))
	assert.Len(t, feed.Feed(), 2)
	requireUnreadInvariant(t, feed)

	// A failed delete leaves the feed untouched.
	mockAPI.EXPECT().DeleteNotification(gomock.Any(), "n1").Return(assert.AnError)
	assert.Error(t, feed.Delete(context.Background(), "n1"))
	assert.Len(t, feed.Feed(), 2)

	mockAPI.EXPECT().ClearNotifications(gomock.Any()).Return(nil)
	require.NoError(t, feed.Clear(context.Background()))
	assert.Empty(t, feed.Feed())
	assert.Equal(t, 0, feed.UnreadCount())
}

func TestNotificationFeed_Filtered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, mockAPI := newFeedFixture(t, ctrl)
	mockAPI.EXPECT().GetNotifications(gomock.Any()).Return(seedFeed(), nil)
	require.NoError(t, feed.Load(context.Background()))

	assert.Len(t, feed.Filtered(FeedAll), 3)
	assert.Len(t, feed.Filtered(""), 3)
	assert.Len(t, feed.Filtered(FeedUnread), 2)

	errOnly := feed.Filtered(string(models.NotifyError))
	require.Len(t, errOnly, 1)
	assert.Equal(t, "n3", errOnly[0].ID)
}

func TestNotificationFeed_SendTest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, _ := newFeedFixture(t, ctrl)

	entry := feed.SendTest()

	require.NotEmpty(t, entry.ID)
	assert.Equal(t, models.NotifyInfo, entry.Type)

	list := feed.Feed()
	require.Len(t, list, 1)
	assert.Equal(t, entry.ID, list[0].ID)
	requireUnreadInvariant(t, feed)
}

func TestNotificationFeed_SubscribeReceivesPublishedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed, _ := newFeedFixture(t, ctrl)
	sub := feed.Subscribe()

	feed.Publish(models.Notification{ID: "n9", Type: models.NotifyInfo})

	select {
	case got := <-sub:
		assert.Equal(t, "n9", got.ID)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the published entry")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/utils"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// Feed filter buckets besides the per-type ones.
const (
	FeedAll    = "all"
	FeedUnread = "unread"
)

type notificationService struct {
	adapter adapter.NotificationAPI
	uuid    *utils.UUIDGenerator
	logger  *logger.Logger

	mu          sync.RWMutex
	feed        []models.Notification
	subscribers []chan models.Notification
}

func NewNotificationService(notificationAPI adapter.NotificationAPI, uuid *utils.UUIDGenerator, log *logger.Logger) NotificationFeed {
	return &notificationService{
		adapter: notificationAPI,
		uuid:    uuid,
		logger:  log,
	}
}

func (n *notificationService) Load(ctx context.Context) error {
	list, err := n.adapter.GetNotifications(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	n.mu.Lock()
	n.feed = list
	n.mu.Unlock()
	return nil
}

func (n *notificationService) Feed() []models.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]models.Notification, len(n.feed))
	copy(out, n.feed)
	return out
}

func (n *notificationService) Filtered(bucket string) []models.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]models.Notification, 0, len(n.feed))
	for _, entry := range n.feed {
		switch bucket {
		case "", FeedAll:
			out = append(out, entry)
		case FeedUnread:
			if !entry.Read {
				out = append(out, entry)
			}
		default:
			if string(entry.Type) == bucket {
				out = append(out, entry)
			}
		}
	}
	return out
}

// UnreadCount is always recomputed from the feed so it cannot drift from
// the entries' read flags.
func (n *notificationService) UnreadCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 0
	for _, entry := range n.feed {
		if !entry.Read {
			count++
		}
	}
	return count
}

// MarkRead flips the entry locally first. The backend acknowledgment is best
// effort: a failure is logged and the optimistic flip stands.
func (n *notificationService) MarkRead(ctx context.Context, id string) error {
	n.mu.Lock()
	flipped := false
	for i := range n.feed {
		if n.feed[i].ID == id {
			if !n.feed[i].Read {
				n.feed[i].Read = true
				flipped = true
			}
			break
		}
	}
	n.mu.Unlock()

	if !flipped {
		return nil
	}

	if err := n.adapter.MarkNotificationRead(ctx, id); err != nil {
		n.logger.Warn().Err(err).Str("func", "notificationService.MarkRead").Str("notification_id", id).Msg("read acknowledgment failed")
	}
	return nil
}

func (n *notificationService) MarkAllRead(ctx context.Context) error {
	n.mu.Lock()
	for i := range n.feed {
		n.feed[i].Read = true
	}
	n.mu.Unlock()

	if err := n.adapter.MarkAllNotificationsRead(ctx); err != nil {
		n.logger.Warn().Err(err).Str("func", "notificationService.MarkAllRead").Msg("bulk read acknowledgment failed")
	}
	return nil
}

func (n *notificationService) Delete(ctx context.Context, id string) error {
	if err := n.adapter.DeleteNotification(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	n.mu.Lock()
	for i := range n.feed {
		if n.feed[i].ID == id {
			n.feed = append(n.feed[:i], n.feed[i+1:]...)
			break
		}
	}
	n.mu.Unlock()
	return nil
}

func (n *notificationService) Clear(ctx context.Context) error {
	if err := n.adapter.ClearNotifications(ctx); err != nil {
		return mapAdapterError(err)
	}

	n.mu.Lock()
	n.feed = nil
	n.mu.Unlock()
	return nil
}

// SendTest fabricates a diagnostic entry locally and publishes it through
// the same path pushed entries take.
func (n *notificationService) SendTest() models.Notification {
	now := time.Now().UTC()
	entry := models.Notification{
		ID:        n.uuid.Generate(),
		Title:     "Test notification",
		Message:   "This is a locally generated test entry.",
		Type:      models.NotifyInfo,
		Timestamp: &now,
	}
	n.Publish(entry)
	return entry
}

func (n *notificationService) Publish(entry models.Notification) {
	n.mu.Lock()
	n.feed = append([]models.Notification{entry}, n.feed...)
	subscribers := make([]chan models.Notification, len(n.subscribers))
	copy(subscribers, n.subscribers)
	n.mu.Unlock()

	for _, sub := range subscribers {
		select {
		case sub <- entry:
		default:
			// Subscriber is not draining; the feed itself stays complete.
		}
	}
}

func (n *notificationService) Subscribe() <-chan models.Notification {
	ch := make(chan models.Notification, 16)

	n.mu.Lock()
	n.subscribers = append(n.subscribers, ch)
	n.mu.Unlock()

	return ch
}

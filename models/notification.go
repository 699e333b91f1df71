// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationType buckets a notification for icons and feed filtering.
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

// NotificationTypes lists every valid type tag, in display order.
var NotificationTypes = []NotificationType{
	NotifyInfo,
	NotifySuccess,
	NotifyWarning,
	NotifyError,
}

// Notification is one entry of the live feed. Entries move Unseen → Read
// (one-way) and are then only ever removed; no other transitions exist.
type Notification struct {
	ID      string           `json:"_id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`

	// Read is the local+acknowledged read flag. Seen mirrors the backend's
	// own delivery flag and is kept for round-tripping only.
	Read bool `json:"read"`
	Seen bool `json:"seen,omitempty"`

	// TargetRole optionally narrows delivery to one role.
	TargetRole string `json:"targetRole,omitempty"`

	// Activity optionally links the notification to an achievement record.
	Activity string `json:"activity,omitempty"`

	Timestamp *time.Time `json:"timestamp,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// When returns the best available notification time for display ordering.
func (n Notification) When() time.Time {
	switch {
	case n.Timestamp != nil:
		return *n.Timestamp
	case n.CreatedAt != nil:
		return *n.CreatedAt
	default:
		return time.Time{}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side view-model logic of the portal: the
// achievement collection cache, the status transition controller, the draft
// editing bridge, the notification feed and the administration surfaces.
// Services talk to the backend through the adapter and keep their own local
// state; the TUI renders that state and never calls the adapter directly.
package service

import (
	"context"

	"github.com/MKhiriev/go-achieve-portal/internal/filter"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// AuthService handles login, session restore and sign-out. The actual
// session state lives in the injected session context; the service owns
// persisting the token between runs.
type AuthService interface {
	// Login exchanges credentials for a session. On success the session
	// context is populated and the token saved locally.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Restore revives the previous run's session from the local store.
	// Returns ErrNoSavedSession when there is nothing usable to restore.
	Restore(ctx context.Context) (models.User, error)

	// Logout ends the session and clears the saved token. Purely local;
	// the backend holds no session state to invalidate.
	Logout(ctx context.Context) error
}

// ActivityService owns the in-memory achievement collection: one slice
// fetched per view-load that stays authoritative until the next refresh.
// Refreshes follow last-writer-wins; there is no coordination between
// overlapping requests.
type ActivityService interface {
	ActivityCache

	// Refresh reloads the collection from the backend and replaces the
	// cache wholesale.
	Refresh(ctx context.Context) ([]models.Activity, error)

	// RefreshArchived loads records that left the active review flow. The
	// archived list is returned, not cached.
	RefreshArchived(ctx context.Context) ([]models.Activity, error)

	// List returns a snapshot of the cached collection.
	List() []models.Activity

	// Filtered applies the given criteria over the cached collection.
	Filtered(c filter.Criteria) []models.Activity

	// Select marks the cached record with the given id as the open detail
	// view. Cache patches mirror into the selection automatically.
	Select(id string) (models.Activity, error)

	// Selected returns the open detail record, if any.
	Selected() (models.Activity, bool)

	// ClearSelection closes the detail view.
	ClearSelection()

	// Submit sends a completed record (new or edited) to the backend.
	Submit(ctx context.Context, sub models.Submission) (models.Activity, error)

	// Stats returns the caller's dashboard counters.
	Stats(ctx context.Context) (models.ActivityStats, error)

	// Recent returns the dashboard ticker entries.
	Recent(ctx context.Context) ([]models.RecentAchievement, error)
}

// ActivityCache is the mutation surface the review controller needs on the
// cached collection: in-place patches and splicing, both mirrored into any
// open detail selection.
type ActivityCache interface {
	// Contains reports whether a record with the given id is cached.
	Contains(id string) bool

	// ApplyStatusPatch sets the cached record's status and rejection reason
	// in place. Reports whether a record with that id was found.
	ApplyStatusPatch(id string, status models.Status, reason string) bool

	// Splice removes the record with the given id from the cache,
	// preserving the order of the rest. Reports whether it was found.
	Splice(id string) bool
}

// ReviewService is the status transition controller. Every action checks the
// admin role and the presence of the record locally before any network call;
// on success the cache is patched in place, on failure nothing changes.
type ReviewService interface {
	// Approve moves the record to the approved status.
	Approve(ctx context.Context, id string) error

	// Reassign puts the record back under review.
	Reassign(ctx context.Context, id string) error

	// Reject declines the record. An empty reason is recorded as the
	// placeholder; a non-empty reason shorter than five characters is
	// refused locally.
	Reject(ctx context.Context, id string, reason string) error

	// Delete permanently removes the record after confirm answers true.
	// On success the record is spliced out of the cache.
	Delete(ctx context.Context, id string, confirm func() bool) error
}

// DraftService is the draft editing bridge: save-as-draft, the handoff slot
// carrying a draft from the list into the creation form, and the attachment
// reconciliation bookkeeping.
type DraftService interface {
	// Drafts returns the caller's draft records.
	Drafts(ctx context.Context) ([]models.Activity, error)

	// SaveDraft stores the form content as a draft, creating or updating
	// depending on whether the submission is bound to an id. The handoff
	// slot is cleared on success.
	SaveDraft(ctx context.Context, sub models.Submission) (models.Activity, error)

	// BeginEdit stashes the draft in the handoff slot so the creation form
	// can repopulate from it after navigation.
	BeginEdit(ctx context.Context, draft models.Activity) error

	// LoadEdit pops the handoff slot into a prefilled submission. A missing
	// slot is not an error: ok is false and the caller falls back to an
	// empty form.
	LoadEdit(ctx context.Context) (sub models.Submission, ok bool, err error)

	// Cancel clears the handoff slot and abandons the edit.
	Cancel(ctx context.Context) error

	// DeleteDraft permanently removes a draft after confirm answers true.
	DeleteDraft(ctx context.Context, id string, confirm func() bool) error
}

// TaxonomyService covers the administration surfaces: the two-level criteria
// taxonomy, sectors and department accounts. All mutations are admin-gated
// locally before any network call.
type TaxonomyService interface {
	MainCriteria(ctx context.Context) ([]models.MainCriterion, error)
	AddMainCriterion(ctx context.Context, req models.AddMainCriterionRequest) (models.MainCriterion, error)
	UpdateMainCriterion(ctx context.Context, req models.UpdateMainCriterionRequest) (models.MainCriterion, error)

	// DeleteMainCriterion refuses locally, before any network call, when a
	// cached sub criterion still references the main criterion.
	DeleteMainCriterion(ctx context.Context, id string, confirm func() bool) error

	SubCriteria(ctx context.Context) ([]models.SubCriterion, error)
	AddSubCriterion(ctx context.Context, req models.AddSubCriterionRequest) (models.SubCriterion, error)
	UpdateSubCriterion(ctx context.Context, id, name string) (models.SubCriterion, error)
	DeleteSubCriterion(ctx context.Context, id string, confirm func() bool) error

	Sectors(ctx context.Context) ([]models.Sector, error)
	AddSector(ctx context.Context, name string) (models.Sector, error)
	UpdateSector(ctx context.Context, id, name string) (models.Sector, error)
	DeleteSector(ctx context.Context, id string, confirm func() bool) error

	Users(ctx context.Context) ([]models.User, error)
	AddDepartment(ctx context.Context, dept models.User) (models.User, error)

	// ToggleAccountStatus flips an account between active and inactive.
	ToggleAccountStatus(ctx context.Context, id, status string) (models.User, error)

	UpdateUser(ctx context.Context, id string, data models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string, confirm func() bool) error

	UserStats(ctx context.Context) (models.UserStats, error)
}

// NotificationFeed is the process-wide notification feed: one shared list
// observed by every screen. Entries move Unseen → Read (one-way) and are
// then only ever removed.
type NotificationFeed interface {
	// Load fetches the initial feed from the backend.
	Load(ctx context.Context) error

	// Feed returns a snapshot of the current feed, newest first.
	Feed() []models.Notification

	// Filtered returns the feed narrowed to "all", "unread" or one of the
	// type tags.
	Filtered(bucket string) []models.Notification

	// UnreadCount is derived from the feed on every call, never stored.
	UnreadCount() int

	// MarkRead flips the entry locally first, then acknowledges to the
	// backend. A failed acknowledgment is only logged; the local flip
	// stands.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead flips every entry and acknowledges in bulk.
	MarkAllRead(ctx context.Context) error

	// Delete removes one entry from the feed and the backend.
	Delete(ctx context.Context, id string) error

	// Clear empties the feed and the backend.
	Clear(ctx context.Context) error

	// SendTest inserts a synthetic diagnostic entry locally.
	SendTest() models.Notification

	// Publish prepends a pushed entry to the feed and wakes subscribers.
	// Existing entries keep their read state untouched.
	Publish(n models.Notification)

	// Subscribe returns a channel that receives every subsequently
	// published entry. Slow subscribers may miss entries; the feed itself
	// stays complete.
	Subscribe() <-chan models.Notification
}

// ReportService asks the backend to render PDF/DOCX reports over a cleaned
// filter set and lists previously generated files.
type ReportService interface {
	// Generate validates the period locally (start must not be after end)
	// and requests a rendered report.
	Generate(ctx context.Context, f models.ReportFilter) (models.ReportResponse, error)

	// Reports lists previously generated report files.
	Reports(ctx context.Context) ([]models.ReportFile, error)

	// Download fetches one generated report by filename.
	Download(ctx context.Context, filename string) ([]byte, error)
}

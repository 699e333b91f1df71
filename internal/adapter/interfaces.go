// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the achievements-portal backend.
//
// The primary abstraction is [PortalAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPPortalAdapter]) and a websocket push reader
// ([NewPushClient]) for the live notification feed.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-achieve-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// TokenSource supplies the bearer token attached to authenticated requests.
// The session context implements it; an error means no session is active and
// the request goes out without an Authorization header.
type TokenSource interface {
	Token() (string, error)
}

// AuthAPI is the unauthenticated entry point of the backend.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and the signed-in user
	// record. Returns [ErrUnauthorized] on bad credentials and
	// [ErrForbidden] when the account is inactive.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
}

// ActivityAPI covers the achievement-record endpoints.
type ActivityAPI interface {
	// AddActivity creates a record from a multipart submission (scalar
	// fields plus staged file uploads). Used for both completed records and
	// first-save drafts; the submission's SaveStatus tells them apart.
	AddActivity(ctx context.Context, sub models.Submission) (models.Activity, error)

	// UpdateActivity rewrites an existing record from a multipart
	// submission, including the kept/removed attachment reconciliation
	// lists.
	UpdateActivity(ctx context.Context, sub models.Submission) (models.Activity, error)

	// UpdateDraft is UpdateActivity against the draft-scoped endpoint; the
	// backend keeps the record out of review queues.
	UpdateDraft(ctx context.Context, sub models.Submission) (models.Activity, error)

	// GetAllActivities returns every record visible to the caller.
	GetAllActivities(ctx context.Context) ([]models.Activity, error)

	// GetActivity fetches one record by id.
	GetActivity(ctx context.Context, id string) (models.Activity, error)

	// GetDrafts returns the caller's draft records.
	GetDrafts(ctx context.Context) ([]models.Activity, error)

	// GetDraft fetches one draft by id.
	GetDraft(ctx context.Context, id string) (models.Activity, error)

	// GetArchived returns records that left the active review flow.
	GetArchived(ctx context.Context) ([]models.Activity, error)

	// DeleteActivity permanently removes a record.
	DeleteActivity(ctx context.Context, id string) error

	// DeleteDraft permanently removes a draft.
	DeleteDraft(ctx context.Context, id string) error

	// UpdateStatus moves a record to the given review status. The rejection
	// reason travels along and is ignored by the backend for non-rejection
	// transitions. Returns the updated record.
	UpdateStatus(ctx context.Context, id string, status models.Status, reason string) (models.Activity, error)

	// GetActivityStats returns the caller's dashboard counters.
	GetActivityStats(ctx context.Context) (models.ActivityStats, error)

	// GetRecentAchievements returns the dashboard ticker lines.
	GetRecentAchievements(ctx context.Context) ([]models.RecentAchievement, error)
}

// AdminAPI covers the user and sector administration endpoints. The backend
// enforces the admin role on every one of them; the client additionally
// gates calls locally.
type AdminAPI interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)

	// AddDepartment creates a department account.
	AddDepartment(ctx context.Context, dept models.User) (models.User, error)

	// UpdateAccountStatus toggles an account between active and inactive.
	UpdateAccountStatus(ctx context.Context, id, status string) (models.User, error)

	UpdateUser(ctx context.Context, id string, data models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error

	// GetUserStats returns the administration dashboard counters.
	GetUserStats(ctx context.Context) (models.UserStats, error)

	AddSector(ctx context.Context, name string) (models.Sector, error)
	GetAllSectors(ctx context.Context) ([]models.Sector, error)
	UpdateSector(ctx context.Context, id, name string) (models.Sector, error)
	DeleteSector(ctx context.Context, id string) error
}

// CriteriaAPI covers the two-level taxonomy endpoints.
type CriteriaAPI interface {
	GetMainCriteria(ctx context.Context) ([]models.MainCriterion, error)
	AddMainCriterion(ctx context.Context, req models.AddMainCriterionRequest) (models.MainCriterion, error)
	UpdateMainCriterion(ctx context.Context, req models.UpdateMainCriterionRequest) (models.MainCriterion, error)
	DeleteMainCriterion(ctx context.Context, id string) error

	GetSubCriteria(ctx context.Context) ([]models.SubCriterion, error)
	AddSubCriterion(ctx context.Context, req models.AddSubCriterionRequest) (models.SubCriterion, error)
	UpdateSubCriterion(ctx context.Context, id, name string) (models.SubCriterion, error)
	DeleteSubCriterion(ctx context.Context, id string) error
}

// ReportAPI covers server-rendered report generation and retrieval.
type ReportAPI interface {
	// GenerateReport asks the backend to render a report over the cleaned
	// filter set. Empty filter fields must already be omitted by the caller.
	GenerateReport(ctx context.Context, filter models.ReportFilter) (models.ReportResponse, error)

	// GetReports lists previously generated report files.
	GetReports(ctx context.Context) ([]models.ReportFile, error)

	// FetchReport downloads one generated report by filename.
	FetchReport(ctx context.Context, filename string) ([]byte, error)
}

// NotificationAPI covers the persisted side of the notification feed. Live
// delivery happens over the websocket push client.
type NotificationAPI interface {
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
	ClearNotifications(ctx context.Context) error
}

// PortalAdapter is the full backend surface the client services depend on.
type PortalAdapter interface {
	AuthAPI
	ActivityAPI
	AdminAPI
	CriteriaAPI
	ReportAPI
	NotificationAPI
}

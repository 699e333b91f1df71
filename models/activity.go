// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Status is the review state of a submitted achievement. The labels are the
// portal's canonical domain-language tags and travel on the wire as-is.
type Status string

const (
	// StatusUnderReview marks a record waiting for an administrator decision.
	StatusUnderReview Status = "قيد المراجعة"

	// StatusApproved marks a record accepted by an administrator.
	StatusApproved Status = "معتمد"

	// StatusRejected marks a record declined by an administrator. A rejected
	// record carries a ReasonForRejection.
	StatusRejected Status = "مرفوض"
)

// SaveStatus is the persistence state of a record, orthogonal to [Status]:
// drafts live only in the owner's drafts view and never enter review queues.
type SaveStatus string

const (
	// SaveStatusDraft marks an unfinished record visible only to its owner.
	SaveStatusDraft SaveStatus = "مسودة"

	// SaveStatusComplete marks a record submitted for the review flow.
	SaveStatusComplete SaveStatus = "مكتمل"
)

// Activity represents one achievement record as the backend serves it.
type Activity struct {
	// ID is the backend-assigned identifier; empty until first save.
	ID string `json:"_id,omitempty"`

	// User is the owning account, as id or expanded {_id, fullname}.
	User Ref[UserInfo] `json:"user"`

	// ActivityTitle is the headline of the achievement. Required, at most
	// 150 characters.
	ActivityTitle string `json:"activityTitle"`

	// ActivityDescription is the body text. The creation form produces rich
	// HTML; list views strip tags before matching or display.
	ActivityDescription string `json:"activityDescription"`

	// MainCriteria and SubCriteria classify the record against the two-level
	// taxonomy. Either may arrive as a bare id or an expanded {_id, name}.
	MainCriteria Ref[CriterionInfo] `json:"MainCriteria"`
	SubCriteria  Ref[CriterionInfo] `json:"SubCriteria"`

	// Department is the organizational unit the record is attributed to.
	Department Ref[DepartmentInfo] `json:"department,omitempty"`

	// Status is the review state. Drafts still carry a nominal status
	// (normally under-review) but are excluded from review views.
	Status Status `json:"status"`

	// SaveStatus separates drafts from completed submissions.
	SaveStatus SaveStatus `json:"SaveStatus"`

	// Attachments holds server-relative file paths, at most
	// MaxAttachments entries.
	Attachments []string `json:"Attachments"`

	// ReasonForRejection is set only when Status is StatusRejected.
	ReasonForRejection string `json:"reasonForRejection,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Attachment policy enforced client-side before any upload.
const (
	// MaxAttachments is the per-record attachment cap.
	MaxAttachments = 2

	// MaxAttachmentSize is the per-file size cap in bytes (8 MB).
	MaxAttachmentSize = 8 << 20
)

// IsDraft reports whether the record is a draft. Draft records must never
// surface in pending/approved/rejected views regardless of Status.
func (a Activity) IsDraft() bool {
	return a.SaveStatus == SaveStatusDraft
}

// OwnerName returns the submitter's display name, or "" when the backend
// sent only an id.
func (a Activity) OwnerName() string {
	if u, ok := a.User.Get(); ok {
		return u.Fullname
	}
	return ""
}

// UserInfo is the expanded form of an activity's owner reference.
type UserInfo struct {
	ID       string `json:"_id"`
	Fullname string `json:"fullname"`
}

func (u UserInfo) RefID() string { return u.ID }

// CriterionInfo is the expanded form of a criteria reference.
type CriterionInfo struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (c CriterionInfo) RefID() string { return c.ID }

// DepartmentInfo is the expanded form of a department reference. Department
// accounts use fullname as their display label.
type DepartmentInfo struct {
	ID       string `json:"_id"`
	Fullname string `json:"fullname"`
	Name     string `json:"name"`
}

func (d DepartmentInfo) RefID() string { return d.ID }

// Label returns the department's display name, whichever field the backend
// populated.
func (d DepartmentInfo) Label() string {
	if d.Fullname != "" {
		return d.Fullname
	}
	return d.Name
}

// ActivityStats is the per-user dashboard counters block.
type ActivityStats struct {
	TotalActivities    int `json:"totalActivities"`
	PendingActivities  int `json:"pendingActivities"`
	ApprovedActivities int `json:"approvedActivities"`
	RejectedActivities int `json:"rejectedActivities"`
	DraftActivities    int `json:"draftActivities"`
}

// RecentAchievement is one line of the dashboard recent-activity ticker.
type RecentAchievement struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

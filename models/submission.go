// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StagedFile is a local file picked in the creation form but not yet
// uploaded. Size is captured at staging time so the attachment policy can be
// enforced without re-reading the file.
type StagedFile struct {
	// Name is the filename part sent in the multipart form.
	Name string

	// Path is the local filesystem path the content is read from on submit.
	Path string

	// Size is the staged file's length in bytes.
	Size int64
}

// Submission is everything the creation form sends to the backend in one
// multipart request: scalar fields, newly staged files, and the
// reconciliation lists for attachments that already live on the server.
type Submission struct {
	// ID binds the submission to an existing record in edit mode; empty for
	// a brand-new record.
	ID string

	Title           string
	DescriptionHTML string
	MainCriteriaID  string
	SubCriteriaID   string

	// SaveStatus tags the submission as a draft or a completed record.
	SaveStatus SaveStatus

	// Staged holds newly added local files.
	Staged []StagedFile

	// KeptAttachments are existing server paths the user did not remove.
	// RemovedAttachments are existing server paths marked for removal. The
	// two lists are disjoint; the backend computes the final set from them
	// plus the staged uploads.
	KeptAttachments    []string
	RemovedAttachments []string
}

// AttachmentCount is the effective number of attachments the record would
// have after submit, checked against MaxAttachments.
func (s Submission) AttachmentCount() int {
	return len(s.Staged) + len(s.KeptAttachments)
}

// DraftHandoff is the short-lived value passed from the drafts list to the
// creation form across navigation. Save/Load/Clear semantics live in the
// local store; the form falls back to an empty state when the slot is gone.
type DraftHandoff struct {
	Activity Activity  `json:"activity"`
	SavedAt  time.Time `json:"saved_at"`
}

// ReportFilter narrows a report generation request. Empty fields are omitted
// from the outgoing body entirely.
type ReportFilter struct {
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	MainCriteria string `json:"MainCriteria,omitempty"`
	SubCriteria  string `json:"SubCriteria,omitempty"`
	User         string `json:"user,omitempty"`
	Status       string `json:"status,omitempty"`
}

// IsEmpty reports whether no filter field is set, which makes the report
// cover every activity.
func (f ReportFilter) IsEmpty() bool {
	return f == ReportFilter{}
}

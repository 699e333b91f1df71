// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Backend response envelopes. Every portal endpoint wraps its payload in a
// {success, ...} object; a success=false body on an HTTP 200 is still an
// error and its message must be surfaced.

// ActivityListResponse wraps list endpoints. Depending on the endpoint the
// backend uses either the "activities" or the "data" key; exactly one is
// populated.
type ActivityListResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
	Data       []Activity `json:"data,omitempty"`
}

// List returns whichever payload key the backend filled.
func (r ActivityListResponse) List() []Activity {
	if r.Activities != nil {
		return r.Activities
	}
	return r.Data
}

// ActivityResponse wraps single-record endpoints.
type ActivityResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}

// AckResponse wraps endpoints that return only an acknowledgment.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// StatsResponse wraps the per-user activity counters endpoint.
type StatsResponse struct {
	Success bool          `json:"success"`
	Data    ActivityStats `json:"data"`
}

// RecentResponse wraps the dashboard recent-achievements ticker endpoint.
type RecentResponse struct {
	Success    bool                `json:"success"`
	Activities []RecentAchievement `json:"activities"`
}

// SectorListResponse wraps the sector listing endpoint.
type SectorListResponse struct {
	Success bool     `json:"success"`
	Data    []Sector `json:"data"`
}

// ReportResponse describes a server-rendered PDF/DOCX report.
type ReportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	File     string `json:"file,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// ReportFile is one previously generated report on the server.
type ReportFile struct {
	Filename  string `json:"filename"`
	URL       string `json:"url,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ReportListResponse wraps the generated-reports listing endpoint.
type ReportListResponse struct {
	Success  bool         `json:"success"`
	PDFFiles []ReportFile `json:"pdfFiles"`
}

// NotificationListResponse wraps the notifications fetch-all endpoint.
type NotificationListResponse struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications,omitempty"`
	Data          []Notification `json:"data,omitempty"`
}

// List returns whichever payload key the backend filled.
func (r NotificationListResponse) List() []Notification {
	if r.Notifications != nil {
		return r.Notifications
	}
	return r.Data
}

// NotificationResponse wraps single-notification endpoints.
type NotificationResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

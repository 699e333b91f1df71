// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-achieve-portal/internal/config"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/utils"
	"github.com/MKhiriev/go-achieve-portal/models"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs the HTTP/REST implementation of
// [PortalAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. Bearer tokens are pulled from
// tokens on every authenticated request, so a login or sign-out elsewhere is
// picked up immediately.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPPortalAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (PortalAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpPortalAdapter{client: client, tokens: tokens, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── auth ─────────────────────────────────────────────────────────────────────

func (h *httpPortalAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: no token in login response", ErrBackendRejected)
	}
	return lr, nil
}

// ── activities ───────────────────────────────────────────────────────────────

func (h *httpPortalAdapter) AddActivity(ctx context.Context, sub models.Submission) (models.Activity, error) {
	return h.submitMultipart(ctx, resty.MethodPost, "/activity/add", sub)
}

func (h *httpPortalAdapter) UpdateActivity(ctx context.Context, sub models.Submission) (models.Activity, error) {
	return h.submitMultipart(ctx, resty.MethodPut, "/activity/update/"+sub.ID, sub)
}

func (h *httpPortalAdapter) UpdateDraft(ctx context.Context, sub models.Submission) (models.Activity, error) {
	return h.submitMultipart(ctx, resty.MethodPut, "/activity/update-draft/"+sub.ID, sub)
}

func (h *httpPortalAdapter) GetAllActivities(ctx context.Context) ([]models.Activity, error) {
	return h.getActivityList(ctx, "/activity/all")
}

func (h *httpPortalAdapter) GetDrafts(ctx context.Context) ([]models.Activity, error) {
	return h.getActivityList(ctx, "/activity/draft")
}

func (h *httpPortalAdapter) GetArchived(ctx context.Context) ([]models.Activity, error) {
	return h.getActivityList(ctx, "/activity/archived")
}

func (h *httpPortalAdapter) GetActivity(ctx context.Context, id string) (models.Activity, error) {
	return h.getActivityRecord(ctx, "/activity/"+id)
}

func (h *httpPortalAdapter) GetDraft(ctx context.Context, id string) (models.Activity, error) {
	return h.getActivityRecord(ctx, "/activity/draft/"+id)
}

func (h *httpPortalAdapter) DeleteActivity(ctx context.Context, id string) error {
	return h.deleteAcked(ctx, "/activity/delete/"+id)
}

func (h *httpPortalAdapter) DeleteDraft(ctx context.Context, id string) error {
	return h.deleteAcked(ctx, "/activity/delete-draft/"+id)
}

func (h *httpPortalAdapter) UpdateStatus(ctx context.Context, id string, status models.Status, reason string) (models.Activity, error) {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["reasonForRejection"] = reason
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/activity/update-status/" + id)
	if err != nil {
		return models.Activity{}, fmt.Errorf("update status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activity{}, err
	}

	return decodeActivityResponse(resp.Body())
}

func (h *httpPortalAdapter) GetActivityStats(ctx context.Context) (models.ActivityStats, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ActivityStats{}, err
	}

	resp, err := req.Get("/activity/user-stats")
	if err != nil {
		return models.ActivityStats{}, fmt.Errorf("user stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivityStats{}, err
	}

	var sr models.StatsResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.ActivityStats{}, fmt.Errorf("decode stats response: %w", err)
	}
	if !sr.Success {
		return models.ActivityStats{}, fmt.Errorf("%w: user stats", ErrBackendRejected)
	}
	return sr.Data, nil
}

func (h *httpPortalAdapter) GetRecentAchievements(ctx context.Context) ([]models.RecentAchievement, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/activity/recent-achievements")
	if err != nil {
		return nil, fmt.Errorf("recent achievements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rr models.RecentResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return nil, fmt.Errorf("decode recent achievements response: %w", err)
	}
	if !rr.Success {
		return nil, fmt.Errorf("%w: recent achievements", ErrBackendRejected)
	}
	return rr.Activities, nil
}

// ── users & sectors ──────────────────────────────────────────────────────────

func (h *httpPortalAdapter) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.getJSON(ctx, "/users/all-users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpPortalAdapter) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, "/users/user/"+id, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpPortalAdapter) AddDepartment(ctx context.Context, dept models.User) (models.User, error) {
	var created models.User
	if err := h.sendJSON(ctx, resty.MethodPost, "/users/adddepartment", dept, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (h *httpPortalAdapter) UpdateAccountStatus(ctx context.Context, id, status string) (models.User, error) {
	var updated models.User
	body := map[string]string{"status": status}
	if err := h.sendJSON(ctx, resty.MethodPut, "/users/update-status/"+id, body, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (h *httpPortalAdapter) UpdateUser(ctx context.Context, id string, data models.User) (models.User, error) {
	var updated models.User
	if err := h.sendJSON(ctx, resty.MethodPut, "/users/update-user/"+id, data, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (h *httpPortalAdapter) DeleteUser(ctx context.Context, id string) error {
	return h.sendJSON(ctx, resty.MethodDelete, "/users/delete-user/"+id, nil, nil)
}

func (h *httpPortalAdapter) GetUserStats(ctx context.Context) (models.UserStats, error) {
	var stats models.UserStats
	if err := h.getJSON(ctx, "/users/stats", &stats); err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

func (h *httpPortalAdapter) AddSector(ctx context.Context, name string) (models.Sector, error) {
	var created models.Sector
	body := map[string]string{"sector": name}
	if err := h.sendJSON(ctx, resty.MethodPost, "/users/addsector", body, &created); err != nil {
		return models.Sector{}, err
	}
	return created, nil
}

func (h *httpPortalAdapter) GetAllSectors(ctx context.Context) ([]models.Sector, error) {
	var sectors []models.Sector
	if err := h.getJSON(ctx, "/users/all-sectors", &sectors); err != nil {
		return nil, err
	}
	return sectors, nil
}

func (h *httpPortalAdapter) UpdateSector(ctx context.Context, id, name string) (models.Sector, error) {
	var updated models.Sector
	body := map[string]string{"sector": name}
	if err := h.sendJSON(ctx, resty.MethodPut, "/users/update-sector/"+id, body, &updated); err != nil {
		return models.Sector{}, err
	}
	return updated, nil
}

func (h *httpPortalAdapter) DeleteSector(ctx context.Context, id string) error {
	return h.sendJSON(ctx, resty.MethodDelete, "/users/delete-sector/"+id, nil, nil)
}

// ── criteria ─────────────────────────────────────────────────────────────────

func (h *httpPortalAdapter) GetMainCriteria(ctx context.Context) ([]models.MainCriterion, error) {
	var list []models.MainCriterion
	if err := h.getJSON(ctx, "/criteria/all-main", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (h *httpPortalAdapter) AddMainCriterion(ctx context.Context, req models.AddMainCriterionRequest) (models.MainCriterion, error) {
	var created models.MainCriterion
	if err := h.sendJSON(ctx, resty.MethodPost, "/criteria/add-main", req, &created); err != nil {
		return models.MainCriterion{}, err
	}
	return created, nil
}

func (h *httpPortalAdapter) UpdateMainCriterion(ctx context.Context, req models.UpdateMainCriterionRequest) (models.MainCriterion, error) {
	var updated models.MainCriterion
	if err := h.sendJSON(ctx, resty.MethodPut, "/criteria/update-main/"+req.ID, req, &updated); err != nil {
		return models.MainCriterion{}, err
	}
	return updated, nil
}

func (h *httpPortalAdapter) DeleteMainCriterion(ctx context.Context, id string) error {
	return h.sendJSON(ctx, resty.MethodDelete, "/criteria/delete-main/"+id, nil, nil)
}

func (h *httpPortalAdapter) GetSubCriteria(ctx context.Context) ([]models.SubCriterion, error) {
	var list []models.SubCriterion
	if err := h.getJSON(ctx, "/criteria/all-sub", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (h *httpPortalAdapter) AddSubCriterion(ctx context.Context, req models.AddSubCriterionRequest) (models.SubCriterion, error) {
	var created models.SubCriterion
	if err := h.sendJSON(ctx, resty.MethodPost, "/criteria/add-sub", req, &created); err != nil {
		return models.SubCriterion{}, err
	}
	return created, nil
}

func (h *httpPortalAdapter) UpdateSubCriterion(ctx context.Context, id, name string) (models.SubCriterion, error) {
	var updated models.SubCriterion
	body := map[string]string{"name": name}
	if err := h.sendJSON(ctx, resty.MethodPut, "/criteria/update-sub/"+id, body, &updated); err != nil {
		return models.SubCriterion{}, err
	}
	return updated, nil
}

func (h *httpPortalAdapter) DeleteSubCriterion(ctx context.Context, id string) error {
	return h.sendJSON(ctx, resty.MethodDelete, "/criteria/delete-sub/"+id, nil, nil)
}

// ── reports ──────────────────────────────────────────────────────────────────

func (h *httpPortalAdapter) GenerateReport(ctx context.Context, filter models.ReportFilter) (models.ReportResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ReportResponse{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(filter).
		Post("/activity/generate-pdf")
	if err != nil {
		return models.ReportResponse{}, fmt.Errorf("generate report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReportResponse{}, err
	}

	var rr models.ReportResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return models.ReportResponse{}, fmt.Errorf("decode report response: %w", err)
	}
	if !rr.Success {
		msg := rr.Message
		if msg == "" {
			msg = "report generation failed"
		}
		return models.ReportResponse{}, fmt.Errorf("%w: %s", ErrBackendRejected, msg)
	}
	return rr, nil
}

func (h *httpPortalAdapter) GetReports(ctx context.Context) ([]models.ReportFile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/activity/all-pdfs")
	if err != nil {
		return nil, fmt.Errorf("list reports request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ReportListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode report list response: %w", err)
	}
	if !lr.Success {
		return nil, fmt.Errorf("%w: list reports", ErrBackendRejected)
	}
	return lr.PDFFiles, nil
}

func (h *httpPortalAdapter) FetchReport(ctx context.Context, filename string) ([]byte, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/activity/pdf/" + url.PathEscape(filename))
	if err != nil {
		return nil, fmt.Errorf("fetch report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// ── notifications ────────────────────────────────────────────────────────────

func (h *httpPortalAdapter) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/notifications/all")
	if err != nil {
		return nil, fmt.Errorf("get notifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var nr models.NotificationListResponse
	if err = json.Unmarshal(resp.Body(), &nr); err != nil {
		return nil, fmt.Errorf("decode notifications response: %w", err)
	}
	if !nr.Success {
		return nil, fmt.Errorf("%w: get notifications", ErrBackendRejected)
	}
	return nr.List(), nil
}

func (h *httpPortalAdapter) MarkNotificationRead(ctx context.Context, id string) error {
	return h.sendAcked(ctx, resty.MethodPut, "/notifications/mark-read/"+id)
}

func (h *httpPortalAdapter) MarkAllNotificationsRead(ctx context.Context) error {
	return h.sendAcked(ctx, resty.MethodPut, "/notifications/mark-all-read")
}

func (h *httpPortalAdapter) DeleteNotification(ctx context.Context, id string) error {
	return h.sendAcked(ctx, resty.MethodDelete, "/notifications/delete/"+id)
}

func (h *httpPortalAdapter) ClearNotifications(ctx context.Context) error {
	return h.sendAcked(ctx, resty.MethodDelete, "/notifications/clear")
}

// ── shared plumbing ──────────────────────────────────────────────────────────

func (h *httpPortalAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("resolve session token: %w", err)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

func (h *httpPortalAdapter) getActivityList(ctx context.Context, path string) ([]models.Activity, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("activity list request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ActivityListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode activity list %s: %w", path, err)
	}
	if !lr.Success {
		msg := lr.Message
		if msg == "" {
			msg = path
		}
		return nil, fmt.Errorf("%w: %s", ErrBackendRejected, msg)
	}
	return lr.List(), nil
}

func (h *httpPortalAdapter) getActivityRecord(ctx context.Context, path string) (models.Activity, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	resp, err := req.Get(path)
	if err != nil {
		return models.Activity{}, fmt.Errorf("activity request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activity{}, err
	}

	return decodeActivityResponse(resp.Body())
}

func (h *httpPortalAdapter) deleteAcked(ctx context.Context, path string) error {
	return h.sendAcked(ctx, resty.MethodDelete, path)
}

// sendAcked sends a bodyless request to an endpoint that answers with a bare
// {success, message} acknowledgment.
func (h *httpPortalAdapter) sendAcked(ctx context.Context, method, path string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var ack models.AckResponse
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return fmt.Errorf("decode ack %s: %w", path, err)
	}
	if !ack.Success {
		msg := ack.Message
		if msg == "" {
			msg = path
		}
		return fmt.Errorf("%w: %s", ErrBackendRejected, msg)
	}
	return nil
}

// getJSON fetches an endpoint that returns its payload without a success
// envelope (the users and criteria groups answer with raw objects/arrays).
func (h *httpPortalAdapter) getJSON(ctx context.Context, path string, out any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// sendJSON sends body to an envelope-less endpoint and decodes the reply
// into out when out is non-nil.
func (h *httpPortalAdapter) sendJSON(ctx context.Context, method, path string, body, out any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	req.SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out != nil {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}

// submitMultipart packages a submission as the creation/update endpoints
// expect it: scalar form fields, one "attachments" file part per staged
// file, and JSON-encoded kept/removed path lists.
func (h *httpPortalAdapter) submitMultipart(ctx context.Context, method, path string, sub models.Submission) (models.Activity, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	// Every creation/update carries the nominal review-flow status; drafts
	// are separated by SaveStatus, not by status.
	req.SetMultipartFormData(map[string]string{
		"activityTitle":       sub.Title,
		"activityDescription": sub.DescriptionHTML,
		"MainCriteria":        sub.MainCriteriaID,
		"SubCriteria":         sub.SubCriteriaID,
		"SaveStatus":          string(sub.SaveStatus),
		"status":              string(models.StatusUnderReview),
	})

	kept, err := json.Marshal(sub.KeptAttachments)
	if err != nil {
		return models.Activity{}, fmt.Errorf("encode kept attachments: %w", err)
	}
	removed, err := json.Marshal(sub.RemovedAttachments)
	if err != nil {
		return models.Activity{}, fmt.Errorf("encode removed attachments: %w", err)
	}
	req.SetMultipartFormData(map[string]string{
		"existingAttachments": string(kept),
		"removedAttachments":  string(removed),
	})

	for _, staged := range sub.Staged {
		file, err := os.Open(staged.Path)
		if err != nil {
			return models.Activity{}, fmt.Errorf("open attachment %s: %w", staged.Path, err)
		}
		defer file.Close()
		req.SetFileReader("attachments", staged.Name, file)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.Activity{}, fmt.Errorf("submit %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activity{}, err
	}

	return decodeActivityResponse(resp.Body())
}

func decodeActivityResponse(body []byte) (models.Activity, error) {
	var ar models.ActivityResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return models.Activity{}, fmt.Errorf("decode activity response: %w", err)
	}
	if !ar.Success {
		msg := ar.Message
		if msg == "" {
			msg = "activity request failed"
		}
		return models.Activity{}, fmt.Errorf("%w: %s", ErrBackendRejected, msg)
	}
	if ar.Activity == nil {
		return models.Activity{}, fmt.Errorf("%w: no activity in response", ErrBackendRejected)
	}
	return *ar.Activity, nil
}

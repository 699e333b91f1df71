// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-achieve-portal/internal/config"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/models"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token() (string, error) { return s.token, s.err }

func newTestAdapter(t *testing.T, serverURL string) *httpPortalAdapter {
	t.Helper()
	a, err := NewHTTPPortalAdapter(
		config.ClientAdapter{HTTPAddress: serverURL},
		staticTokens{token: "test-token"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a.(*httpPortalAdapter)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "dept1", creds.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			Token: "issued-token",
			User:  &models.User{ID: "u1", Username: "dept1", Role: models.RoleAdmin},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "dept1", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "issued-token", got.Token)
	require.NotNil(t, got.User)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "dept1", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_InactiveAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("account inactive"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "dept1", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.LoginResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "dept1", Password: "pw"})

	assert.ErrorIs(t, err, ErrBackendRejected)
}

// ── activity lists ───────────────────────────────────────────────────────────

func TestGetAllActivities_ActivitiesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity/all", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.ActivityListResponse{
			Success:    true,
			Activities: []models.Activity{{ID: "a1"}, {ID: "a2"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetAllActivities(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
}

func TestGetDrafts_DataKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity/draft", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.ActivityListResponse{
			Success: true,
			Data:    []models.Activity{{ID: "d1", SaveStatus: models.SaveStatusDraft}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetDrafts(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsDraft())
}

func TestGetAllActivities_EnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ActivityListResponse{
			Success: false,
			Message: "database offline",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetAllActivities(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendRejected)
	assert.Contains(t, err.Error(), "database offline")
}

func TestGetAllActivities_NoSession(t *testing.T) {
	a, err := NewHTTPPortalAdapter(
		config.ClientAdapter{HTTPAddress: "http://localhost:1"},
		staticTokens{err: assert.AnError},
		logger.Nop(),
	)
	require.NoError(t, err)

	_, err = a.GetAllActivities(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

// ── status transitions ───────────────────────────────────────────────────────

func TestUpdateStatus_RejectCarriesReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/activity/update-status/a1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, string(models.StatusRejected), body["status"])
		assert.Equal(t, "incomplete evidence", body["reasonForRejection"])

		_ = json.NewEncoder(w).Encode(models.ActivityResponse{
			Success: true,
			Activity: &models.Activity{
				ID:                 "a1",
				Status:             models.StatusRejected,
				ReasonForRejection: "incomplete evidence",
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateStatus(context.Background(), "a1", models.StatusRejected, "incomplete evidence")

	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.Equal(t, "incomplete evidence", got.ReasonForRejection)
}

func TestUpdateStatus_ApproveOmitsReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasReason := body["reasonForRejection"]
		assert.False(t, hasReason)

		_ = json.NewEncoder(w).Encode(models.ActivityResponse{
			Success:  true,
			Activity: &models.Activity{ID: "a1", Status: models.StatusApproved},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateStatus(context.Background(), "a1", models.StatusApproved, "")

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestUpdateStatus_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UpdateStatus(context.Background(), "a1", models.StatusApproved, "")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── deletes ──────────────────────────────────────────────────────────────────

func TestDeleteActivity_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/activity/delete/a1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.AckResponse{Success: true, Message: "deleted"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteActivity(context.Background(), "a1")

	assert.NoError(t, err)
}

func TestDeleteDraft_EnvelopeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.AckResponse{Success: false, Message: "draft locked"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteDraft(context.Background(), "d1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendRejected)
	assert.Contains(t, err.Error(), "draft locked")
}

// ── multipart submissions ────────────────────────────────────────────────────

func TestAddActivity_MultipartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/activity/add", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(16<<20))
		assert.Equal(t, "Research paper", r.FormValue("activityTitle"))
		assert.Equal(t, "<p>details</p>", r.FormValue("activityDescription"))
		assert.Equal(t, "mc1", r.FormValue("MainCriteria"))
		assert.Equal(t, "sc1", r.FormValue("SubCriteria"))
		assert.Equal(t, string(models.SaveStatusComplete), r.FormValue("SaveStatus"))
		assert.Equal(t, string(models.StatusUnderReview), r.FormValue("status"))
		assert.JSONEq(t, `["uploads/old.pdf"]`, r.FormValue("existingAttachments"))
		assert.JSONEq(t, `["uploads/gone.pdf"]`, r.FormValue("removedAttachments"))

		_ = json.NewEncoder(w).Encode(models.ActivityResponse{
			Success:  true,
			Activity: &models.Activity{ID: "new1", ActivityTitle: "Research paper"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.AddActivity(context.Background(), models.Submission{
		Title:              "Research paper",
		DescriptionHTML:    "<p>details</p>",
		MainCriteriaID:     "mc1",
		SubCriteriaID:      "sc1",
		SaveStatus:         models.SaveStatusComplete,
		KeptAttachments:    []string{"uploads/old.pdf"},
		RemovedAttachments: []string{"uploads/gone.pdf"},
	})

	require.NoError(t, err)
	assert.Equal(t, "new1", got.ID)
}

func TestUpdateDraft_UsesDraftEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/activity/update-draft/d1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.ActivityResponse{
			Success:  true,
			Activity: &models.Activity{ID: "d1", SaveStatus: models.SaveStatusDraft},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateDraft(context.Background(), models.Submission{
		ID:         "d1",
		Title:      "wip",
		SaveStatus: models.SaveStatusDraft,
	})

	require.NoError(t, err)
	assert.True(t, got.IsDraft())
}

func TestAddActivity_MissingStagedFile(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	_, err := a.AddActivity(context.Background(), models.Submission{
		Title:  "x",
		Staged: []models.StagedFile{{Name: "gone.pdf", Path: "/definitely/not/here.pdf"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open attachment")
}

// ── users & sectors (raw payloads, no envelope) ─────────────────────────────

func TestGetAllUsers_RawArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/all-users", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.User{
			{ID: "u1", Username: "dept1"},
			{ID: "u2", Username: "dept2"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetAllUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "dept2", got[1].Username)
}

func TestUpdateAccountStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/update-status/u1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.AccountInactive, body["status"])

		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Status: models.AccountInactive})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UpdateAccountStatus(context.Background(), "u1", models.AccountInactive)

	require.NoError(t, err)
	assert.Equal(t, models.AccountInactive, got.Status)
}

func TestAddSector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/addsector", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "قطاع البحوث", body["sector"])

		_ = json.NewEncoder(w).Encode(models.Sector{ID: "s1", Sector: "قطاع البحوث"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.AddSector(context.Background(), "قطاع البحوث")

	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
}

// ── criteria ─────────────────────────────────────────────────────────────────

func TestGetMainCriteria(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/criteria/all-main", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.MainCriterion{
			{ID: "mc1", Name: "التدريب", Level: models.LevelAll},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetMainCriteria(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.LevelAll, got[0].Level)
}

func TestUpdateMainCriterion_SendsExplicitNulls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/criteria/update-main/mc1", r.URL.Path)

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "null", string(raw["sector"]))
		assert.Equal(t, "null", string(raw["departmentUser"]))

		_ = json.NewEncoder(w).Encode(models.MainCriterion{ID: "mc1", Level: models.LevelAll})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UpdateMainCriterion(context.Background(), models.UpdateMainCriterionRequest{
		ID:    "mc1",
		Name:  "التدريب",
		Level: models.LevelAll,
	})

	assert.NoError(t, err)
}

// ── reports ──────────────────────────────────────────────────────────────────

func TestGenerateReport_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activity/generate-pdf", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		// Empty filter fields must be omitted entirely.
		_, hasUser := raw["user"]
		assert.False(t, hasUser)
		assert.Equal(t, "2026-01-01", raw["startDate"])

		_ = json.NewEncoder(w).Encode(models.ReportResponse{
			Success:  true,
			File:     "/files/report-42.pdf",
			Filename: "report-42.pdf",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GenerateReport(context.Background(), models.ReportFilter{StartDate: "2026-01-01"})

	require.NoError(t, err)
	assert.Equal(t, "report-42.pdf", got.Filename)
}

func TestGenerateReport_BackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.ReportResponse{Success: false, Message: "no matching records"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GenerateReport(context.Background(), models.ReportFilter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching records")
}

// ── notifications ────────────────────────────────────────────────────────────

func TestGetNotifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/all", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.NotificationListResponse{
			Success:       true,
			Notifications: []models.Notification{{ID: "n1", Type: models.NotifyInfo}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetNotifications(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.NotifyInfo, got[0].Type)
}

func TestMarkNotificationRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notifications/mark-read/n1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.AckResponse{Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.MarkNotificationRead(context.Background(), "n1"))
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewHTTPPortalAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPPortalAdapter(config.ClientAdapter{HTTPAddress: "   "}, staticTokens{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain host", "localhost:3000", "http://localhost:3000", false},
		{"full url", "http://localhost:3000/", "http://localhost:3000", false},
		{"https", "https://portal.example.org", "https://portal.example.org", false},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

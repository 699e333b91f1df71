// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/session"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

type reviewService struct {
	adapter adapter.ActivityAPI
	session *session.Context
	cache   ActivityCache
	logger  *logger.Logger
}

func NewReviewService(activityAPI adapter.ActivityAPI, sessionCtx *session.Context, cache ActivityCache, log *logger.Logger) ReviewService {
	return &reviewService{
		adapter: activityAPI,
		session: sessionCtx,
		cache:   cache,
		logger:  log,
	}
}

func (r *reviewService) Approve(ctx context.Context, id string) error {
	return r.transition(ctx, id, models.StatusApproved, "")
}

func (r *reviewService) Reassign(ctx context.Context, id string) error {
	return r.transition(ctx, id, models.StatusUnderReview, "")
}

func (r *reviewService) Reject(ctx context.Context, id string, reason string) error {
	normalized, err := validators.NormalizeRejectionReason(reason)
	if err != nil {
		return err
	}
	return r.transition(ctx, id, models.StatusRejected, normalized)
}

// transition performs the local gates, sends the status update and applies
// the server-confirmed patch. Any gate failure means no network call was
// made and no state changed.
func (r *reviewService) transition(ctx context.Context, id string, status models.Status, reason string) error {
	if err := r.gate(id); err != nil {
		return err
	}

	updated, err := r.adapter.UpdateStatus(ctx, id, status, reason)
	if err != nil {
		return mapAdapterError(err)
	}

	// Prefer the backend's view of the record over what we asked for.
	patchedStatus := updated.Status
	if patchedStatus == "" {
		patchedStatus = status
	}
	patchedReason := updated.ReasonForRejection
	if status == models.StatusRejected && patchedReason == "" {
		patchedReason = reason
	}

	r.cache.ApplyStatusPatch(id, patchedStatus, patchedReason)
	r.logger.Info().Str("func", "reviewService.transition").Str("activity_id", id).Str("status", string(patchedStatus)).Msg("status updated")
	return nil
}

func (r *reviewService) Delete(ctx context.Context, id string, confirm func() bool) error {
	if err := r.gate(id); err != nil {
		return err
	}
	if confirm != nil && !confirm() {
		return ErrConfirmationDeclined
	}

	if err := r.adapter.DeleteActivity(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	r.cache.Splice(id)
	r.logger.Info().Str("func", "reviewService.Delete").Str("activity_id", id).Msg("activity deleted")
	return nil
}

func (r *reviewService) gate(id string) error {
	if !r.session.IsAdmin() {
		return ErrNotAdmin
	}
	if !r.cache.Contains(id) {
		return ErrActivityNotInCache
	}
	return nil
}

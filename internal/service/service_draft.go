// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/store"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

type draftService struct {
	adapter   adapter.ActivityAPI
	handoff   store.HandoffRepository
	validator validators.Validator
	logger    *logger.Logger
}

func NewDraftService(activityAPI adapter.ActivityAPI, handoff store.HandoffRepository, validator validators.Validator, log *logger.Logger) DraftService {
	return &draftService{
		adapter:   activityAPI,
		handoff:   handoff,
		validator: validator,
		logger:    log,
	}
}

func (d *draftService) Drafts(ctx context.Context) ([]models.Activity, error) {
	drafts, err := d.adapter.GetDrafts(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return drafts, nil
}

func (d *draftService) SaveDraft(ctx context.Context, sub models.Submission) (models.Activity, error) {
	sub.SaveStatus = models.SaveStatusDraft

	// A draft only needs a presentable title and a sane attachment set;
	// the remaining constraints apply on final submission.
	if err := d.validator.Validate(ctx, sub, validators.FieldTitle, validators.FieldAttachments); err != nil {
		return models.Activity{}, err
	}

	var (
		saved models.Activity
		err   error
	)
	if sub.ID == "" {
		saved, err = d.adapter.AddActivity(ctx, sub)
	} else {
		saved, err = d.adapter.UpdateDraft(ctx, sub)
	}
	if err != nil {
		return models.Activity{}, mapAdapterError(err)
	}

	if err = d.clearSlot(ctx); err != nil {
		d.logger.Warn().Err(err).Str("func", "draftService.SaveDraft").Msg("could not clear handoff slot")
	}

	d.logger.Info().Str("func", "draftService.SaveDraft").Str("activity_id", saved.ID).Msg("draft saved")
	return saved, nil
}

func (d *draftService) BeginEdit(ctx context.Context, draft models.Activity) error {
	if draft.ID == "" {
		return ErrActivityNotInCache
	}

	err := d.handoff.SaveHandoff(ctx, models.DraftHandoff{Activity: draft})
	if err != nil {
		return fmt.Errorf("stash draft for editing: %w", err)
	}
	return nil
}

// LoadEdit pops the handoff slot into a submission prefilled with the
// draft's fields. The slot being empty is the documented fallback path, not
// a failure: the form simply opens blank.
func (d *draftService) LoadEdit(ctx context.Context) (models.Submission, bool, error) {
	handoff, err := d.handoff.LoadHandoff(ctx)
	if err != nil {
		if errors.Is(err, store.ErrHandoffNotFound) {
			d.logger.Warn().Str("func", "draftService.LoadEdit").Msg("handoff slot empty, falling back to a blank form")
			return models.Submission{}, false, nil
		}
		return models.Submission{}, false, fmt.Errorf("load handoff slot: %w", err)
	}

	draft := handoff.Activity
	sub := models.Submission{
		ID:              draft.ID,
		Title:           draft.ActivityTitle,
		DescriptionHTML: draft.ActivityDescription,
		MainCriteriaID:  draft.MainCriteria.ID(),
		SubCriteriaID:   draft.SubCriteria.ID(),
		SaveStatus:      models.SaveStatusDraft,
		KeptAttachments: append([]string(nil), draft.Attachments...),
	}
	return sub, true, nil
}

func (d *draftService) Cancel(ctx context.Context) error {
	return d.clearSlot(ctx)
}

func (d *draftService) DeleteDraft(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return ErrConfirmationDeclined
	}

	if err := d.adapter.DeleteDraft(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	d.logger.Info().Str("func", "draftService.DeleteDraft").Str("activity_id", id).Msg("draft deleted")
	return nil
}

func (d *draftService) clearSlot(ctx context.Context) error {
	if err := d.handoff.ClearHandoff(ctx); err != nil {
		return fmt.Errorf("clear handoff slot: %w", err)
	}
	return nil
}

// RemoveKeptAttachment moves an existing-server attachment path from the
// kept list to the removed list after confirm answers true, freeing one slot
// against the attachment cap. Reports whether the move happened.
func RemoveKeptAttachment(sub *models.Submission, path string, confirm func() bool) bool {
	for i, kept := range sub.KeptAttachments {
		if kept != path {
			continue
		}
		if confirm != nil && !confirm() {
			return false
		}
		sub.KeptAttachments = append(sub.KeptAttachments[:i], sub.KeptAttachments[i+1:]...)
		sub.RemovedAttachments = append(sub.RemovedAttachments, path)
		return true
	}
	return false
}

// RestoreRemovedAttachment undoes RemoveKeptAttachment before submit.
func RestoreRemovedAttachment(sub *models.Submission, path string) bool {
	for i, removed := range sub.RemovedAttachments {
		if removed != path {
			continue
		}
		sub.RemovedAttachments = append(sub.RemovedAttachments[:i], sub.RemovedAttachments[i+1:]...)
		sub.KeptAttachments = append(sub.KeptAttachments, path)
		return true
	}
	return false
}

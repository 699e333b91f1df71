// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the local SQLite persistence layer of the client. It
// keeps exactly two things between runs: the bearer token of the last
// session and the single-slot draft handoff used by the drafts → creation
// form navigation.
package store

import (
	"context"

	"github.com/MKhiriev/go-achieve-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the bearer token between runs so an unexpired
// session survives a restart.
type SessionRepository interface {
	// SaveSession stores the token and owning user id, replacing any
	// previous session row.
	SaveSession(ctx context.Context, token, userID string) error

	// LoadSession returns the stored token and user id, or
	// [ErrSessionNotFound] when no session has been saved.
	LoadSession(ctx context.Context) (token, userID string, err error)

	// ClearSession removes the stored session. Clearing an empty store is
	// not an error.
	ClearSession(ctx context.Context) error
}

// HandoffRepository is the single-slot exchange between the drafts list and
// the creation form. Save overwrites, Load reads without consuming, Clear
// empties the slot; the form treats a missing slot as a non-fatal condition.
type HandoffRepository interface {
	SaveHandoff(ctx context.Context, handoff models.DraftHandoff) error

	// LoadHandoff returns the stored handoff, or [ErrHandoffNotFound] when
	// the slot is empty.
	LoadHandoff(ctx context.Context) (models.DraftHandoff, error)

	ClearHandoff(ctx context.Context) error
}

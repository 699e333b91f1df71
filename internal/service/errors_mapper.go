// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// It applies to authenticated calls: a 401 always means the stored session is
// no longer accepted, which the app turns into a global sign-out.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrForbidden):
		return ErrPermissionDenied

	case errors.Is(err, adapter.ErrNotFound):
		return ErrRecordNotFound

	case errors.Is(err, adapter.ErrBadRequest):
		return withBody(ErrInvalidData, err)

	case errors.Is(err, adapter.ErrBackendRejected):
		return withBody(ErrBackendFailure, err)

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return withBody(ErrBackendFailure, err)
	}

	return err
}

// mapLoginError translates transport errors of the unauthenticated login
// call, where 401 means bad credentials rather than an expired session.
func mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrInvalidCredentials

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccountInactive
	}

	return mapAdapterError(err)
}

// withBody attaches the backend-provided message, when there is one, to the
// business sentinel so error dialogs can show it.
func withBody(sentinel, err error) error {
	if body := extractBody(err); body != "" {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	return sentinel
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return ""
}

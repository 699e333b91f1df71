// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-achieve-portal/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Портал недоступен"
	}

	return err.Error()
}

func humanizeLoginError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrAccountInactive):
		return "Учётная запись деактивирована"
	default:
		return humanizeServerUnavailableError(err)
	}
}

// sessionExpired reports whether the backend answered 401 somewhere down the
// chain, which invalidates the whole interactive session.
func sessionExpired(err error) bool {
	return errors.Is(err, service.ErrSessionExpired)
}

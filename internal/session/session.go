// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the signed-in user identity for the
// achievements-portal client.
//
// A single [Context] is created at startup and handed to every component
// that needs to know who is signed in. Nothing in the application reads
// identity from a global; the context travels through constructors.
package session

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-achieve-portal/models"
)

// Context is the explicit session holder shared by services, the transport
// layer, and the TUI. Safe for concurrent use.
type Context struct {
	mu      sync.RWMutex
	token   string
	user    models.User
	expires time.Time
	active  bool
}

// NewContext returns an empty, signed-out session context.
func NewContext() *Context {
	return &Context{}
}

// Begin installs the identity parsed from token and marks the session
// active. The previous identity, if any, is replaced.
func (c *Context) Begin(token string) error {
	claims, err := parseClaims(token)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.user = models.User{
		ID:       claims.UserID,
		Fullname: claims.Name,
		Role:     claims.Role,
	}
	c.expires = claims.ExpiresAt
	c.active = true
	return nil
}

// End clears the session. Called on sign-out and on a 401 from the server.
func (c *Context) End() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.user = models.User{}
	c.expires = time.Time{}
	c.active = false
}

// Token returns the bearer token of the active session, or
// [ErrNotAuthenticated] when signed out or expired.
func (c *Context) Token() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.active {
		return "", ErrNotAuthenticated
	}
	if !c.expires.IsZero() && time.Now().After(c.expires) {
		return "", ErrSessionExpired
	}
	return c.token, nil
}

// User returns a copy of the signed-in user, or [ErrNotAuthenticated] when
// signed out.
func (c *Context) User() (models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.active {
		return models.User{}, ErrNotAuthenticated
	}
	return c.user, nil
}

// UserID returns the identifier of the signed-in user, or empty string when
// signed out.
func (c *Context) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.active {
		return ""
	}
	return c.user.ID
}

// IsAdmin reports whether the active session belongs to an administrator.
// Returns false when signed out.
func (c *Context) IsAdmin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.active && c.user.Role == models.RoleAdmin
}

// IsActive reports whether a session is present and not expired.
func (c *Context) IsActive() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.active {
		return false
	}
	if !c.expires.IsZero() && time.Now().After(c.expires) {
		return false
	}
	return true
}

// ExpiresAt returns the expiry of the current token, zero when the token
// carries no exp claim or the session is inactive.
func (c *Context) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.expires
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role values assigned by the backend and embedded in the session token.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AccountStatus values for department/user accounts.
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)

// User is a portal account. Department accounts and regular users share this
// shape; the role field tells them apart.
type User struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`

	// Role is RoleAdmin or RoleUser.
	Role string `json:"role"`

	// Sector references the organizational sector the account belongs to,
	// as id or expanded object.
	Sector Ref[SectorInfo] `json:"sector"`

	// Status is AccountActive or AccountInactive. Inactive accounts cannot
	// log in.
	Status string `json:"status,omitempty"`

	// Password is set only on account-creation requests and never returned
	// by the backend.
	Password string `json:"password,omitempty"`
}

// IsAdmin reports whether the account holds the administrator role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// SectorInfo is the expanded form of a sector reference.
type SectorInfo struct {
	ID string `json:"_id"`

	// Sector is the sector's display name. The backend uses the entity name
	// itself as the field key.
	Sector string `json:"sector"`
}

func (s SectorInfo) RefID() string { return s.ID }

// Sector is a top-level organizational unit.
type Sector struct {
	ID     string `json:"_id,omitempty"`
	Sector string `json:"sector"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// UserStats is the administration dashboard counters block.
type UserStats struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	InactiveUsers int `json:"inactiveUsers"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package models

import "time"

// Role controls access to administrative operations. It is an axis
// independent from Status: a blocked admin is still an admin.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status gates login. New accounts start as pending and must be approved by
// an administrator before they can sign in.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt digest; plaintext passwords are never persisted.
type User struct {
	// ID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// FullName is the display name of the user. Non-sensitive.
	FullName string `json:"fullname"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin.
	Role Role `json:"role"`

	// Status is one of pending, active or blocked.
	Status Status `json:"status"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsPending reports whether the account still awaits admin approval.
func (u User) IsPending() bool {
	return u.Status == StatusPending
}

// IsBlocked reports whether the account is currently blocked.
func (u User) IsBlocked() bool {
	return u.Status == StatusBlocked
}

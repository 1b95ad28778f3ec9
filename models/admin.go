// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Admin is the single site owner. Exactly one row is expected; it is created
// at first boot with default credentials.
type Admin struct {
	ID       int64  `json:"-"`
	Username string `json:"username"`

	// PasswordHash is a bcrypt digest. It must never leave the server.
	PasswordHash string `json:"-"`

	DisplayName  string `json:"display_name"`
	Introduction string `json:"introduction"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

// ProfileUpdate carries the public-facing admin details.
type ProfileUpdate struct {
	AdminID      int64  `validate:"required,gt=0"`
	DisplayName  string `validate:"required,max=100"`
	Introduction string `validate:"max=5000"`
}

// CredentialsUpdate carries a username and/or password change. The current
// password is required for changes made from the web interface.
type CredentialsUpdate struct {
	AdminID         int64  `validate:"required,gt=0"`
	CurrentPassword string `validate:"required"`
	Username        string `validate:"required,min=3,max=50,excludesall=<>'\";"`
	NewPassword     string `validate:"omitempty,min=8,max=72"`
}

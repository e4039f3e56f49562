// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// Credential fields are never serialized to clients.
type User struct {
	// UserID is the unique identifier of the user (UUIDv7 string).
	UserID string `json:"id"`

	// Username is the display name chosen at registration.
	Username string `json:"username"`

	// Email is the unique address used for login and confirmation mail.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the auth service.
	PasswordHash string `json:"-"`

	// EmailConfirmationToken is the one-time token sent out-of-band after
	// registration. It is cleared once the email is confirmed.
	EmailConfirmationToken *string `json:"-"`

	// EmailConfirmed reports whether the confirmation link was followed.
	EmailConfirmed bool `json:"email_confirmed"`

	// ProfileImageURL is an optional avatar reference.
	ProfileImageURL *string `json:"profile_image_url,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body accepted by the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the body accepted by the login endpoint. Either Email or
// Username may carry the identifier; older clients send the email in the
// username field.
type Credentials struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identifier returns the login identifier, preferring Email.
func (c Credentials) Identifier() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Username
}

// Registration is the outcome of a successful sign-up: the stored user and
// the one-time token mailed to them.
type Registration struct {
	User              User
	ConfirmationToken string
}

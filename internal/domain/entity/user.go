// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account. Username is unique and never changes after creation.
type User struct {
	ID           int64     // System-assigned identifier.
	Username     string    // Login name, unique across all users.
	PasswordHash string    // bcrypt hash of the password; never leaves the backend.
	Fullname     string    // Display name supplied at registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID       int64
	Username string
}

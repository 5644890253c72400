// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the user's role in the system.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleRegular UserRole = "regular"
)

// User represents a user of the nutrition tracker. New accounts start as
// regular users pending admin approval; tracked resources are gated on
// IsApproved.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	Role            UserRole
	IsApproved      bool
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		Role:            UserRoleRegular,
		IsApproved:      false,
		TermsAcceptedAt: termsAcceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Approve marks the user as approved for tracked-resource access.
func (u *User) Approve() {
	u.IsApproved = true
	u.UpdatedAt = time.Now().UTC()
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

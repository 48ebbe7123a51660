package domain

import (
	"errors"
	"time"
)

// Role classifies an authenticated user of the portal.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleStudent          Role = "student"
	RoleEmployer         Role = "employer"
	RolePlacementOfficer Role = "placement-officer"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleEmployer, RolePlacementOfficer:
		return true
	}
	return false
}

var ErrMissingCredentials = errors.New("please enter both email and password")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingSignupFields = errors.New("please fill in all required fields")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
var ErrInvalidRole = errors.New("invalid role")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrAttemptSuperseded = errors.New("authentication attempt superseded")
var ErrForbidden = errors.New("access forbidden")

// MinPasswordLength is the only credential constraint the portal enforces.
// Passwords are never persisted or compared against a stored value.
const MinPasswordLength = 6

// Identity is the authenticated user record. Department is populated for
// admin, student, and placement-officer roles; Company for employers.
type Identity struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"`
	Company    string    `json:"company,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks the structural invariants every stored identity must hold.
// A record that fails this check is treated as corrupt, not as an error.
func (i *Identity) Validate() error {
	if i.ID == "" || i.Name == "" || i.Email == "" {
		return errors.New("identity missing required fields")
	}
	if !i.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

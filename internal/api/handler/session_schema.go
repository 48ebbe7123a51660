package handler

import (
	"github.com/campusworks/placement-portal/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6"`
	Role       string `json:"role"       validate:"required,oneof=student placement-officer employer admin"`
	Department string `json:"department"`
	Company    string `json:"company"`
	Phone      string `json:"phone"`
}

type authResponse struct {
	Token string           `json:"token"`
	User  *domain.Identity `json:"user"`
}

type sessionResponse struct {
	Phase           string           `json:"phase"`
	User            *domain.Identity `json:"user,omitempty"`
	Error           string           `json:"error,omitempty"`
	IsAuthenticated bool             `json:"isAuthenticated"`
}

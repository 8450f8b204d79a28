// internal/auth/models.go
package auth

import "github.com/orbitcampus/orbit-backend/internal/profile"

// RegisterDTO is the signup payload. Only campus emails are accepted; the
// domain allowlist is enforced in the service, not here.
type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GuestLoginDTO creates a passwordless throwaway account for demos.
type GuestLoginDTO struct {
	Name string `json:"name" validate:"omitempty,max=100"`
}

type VerifyEmailDTO struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type ResendCodeDTO struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthResponse is returned from every endpoint that issues a token.
type AuthResponse struct {
	Token string                `json:"token"`
	User  *profile.UserResponse `json:"user"`
}

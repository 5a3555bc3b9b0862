package dto

import (
	"time"

	appctx "minipos/internal/core/context"
	"minipos/internal/domain/auth"
)

// LoginRequest for password authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	PointID string `json:"pointId"`
}

// FromUser creates UserResponse from a user entity.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{
		ID:      u.ID.String(),
		Email:   u.Email,
		Name:    u.Name,
		Role:    string(u.Role),
		PointID: u.PointID.String(),
	}
}

// FromUserContext creates UserResponse from token claims.
func FromUserContext(u *appctx.UserContext) UserResponse {
	return UserResponse{
		ID:      u.UserID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		PointID: u.PointID,
	}
}

// LoginResponse is the result of a successful login.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// FromSession creates LoginResponse from an auth session.
func FromSession(s *auth.Session) LoginResponse {
	return LoginResponse{
		AccessToken: s.AccessToken,
		TokenType:   s.TokenType,
		ExpiresAt:   s.ExpiresAt,
		User:        FromUser(s.User),
	}
}

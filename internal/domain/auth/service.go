package auth

import (
	"context"
	"net/http"
)

// Service defines session issuance operations.
type Service interface {
	// Login verifies credentials and issues access + refresh tokens
	Login(ctx context.Context, req LoginRequest) (LoginResponse, *http.Cookie, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
}

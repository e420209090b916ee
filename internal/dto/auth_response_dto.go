package dto

import "time"

// LoginResponse carries the access token issued after a successful sign-in.
// The refresh token travels in an http-only cookie, not in the body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleTokenSignInRequest carries the ID token obtained by the SPA from
// Google's client library.
type GoogleTokenSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

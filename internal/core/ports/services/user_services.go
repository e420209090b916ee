package services

import (
	"context"
	"time"

	"github.com/finpulse/finpulse_backend/internal/core/domain"
	"github.com/finpulse/finpulse_backend/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error

	// FindOrCreateGoogleUser resolves the local user for a verified Google
	// identity, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	UpdateRefreshTokenDetails(ctx context.Context, userID string, refreshTokenHash string, expiryTime time.Time) error
	ClearRefreshTokenDetails(ctx context.Context, userID string) error
}

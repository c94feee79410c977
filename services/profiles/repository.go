package profiles

import (
	"context"

	"github.com/kelanaapp/kelana/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kelanaapp/kelana/services/profiles ProfileRepo,VerificationRepo

// ProfileRepo defines storage operations over user profiles
type ProfileRepo interface {
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, id string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
	ListProfiles(ctx context.Context, offset, limit int) ([]*models.UserProfile, int64, error)
}

// VerificationRepo defines storage operations over verification requests.
// DecideVerification performs both the request status write and the
// profile's denormalized status sync in a single transaction.
type VerificationRepo interface {
	CreateVerification(ctx context.Context, verification *models.Verification) error
	GetVerification(ctx context.Context, id string) (*models.Verification, error)
	GetPendingByUser(ctx context.Context, userID string) (*models.Verification, error)
	DecideVerification(ctx context.Context, id string, status models.VerificationStatus) (*models.Verification, error)
	ListVerifications(ctx context.Context, status *models.VerificationStatus, offset, limit int) ([]*models.Verification, int64, error)
}

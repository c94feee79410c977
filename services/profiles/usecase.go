package profiles

import (
	"context"

	"github.com/kelanaapp/kelana/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kelanaapp/kelana/services/profiles ProfileUC

// ProfileUC represents the profile usecase interface
type ProfileUC interface {
	// profile lifecycle
	GetOrInitializeProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	ListProfiles(ctx context.Context, page, limit int) (*models.PaginatedProfiles, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserProfile, error)
	DeleteProfile(ctx context.Context, userID string) error

	// type data
	UpdateType(ctx context.Context, userID string, req *models.UpdateTypeRequest) (*models.UserProfile, error)
	UpdateVendorData(ctx context.Context, userID string, req *models.UpdateVendorDataRequest) (*models.UserProfile, error)

	// media upload
	UploadMedia(ctx context.Context, userID string, slot models.MediaSlot, upload *models.MediaUpload) (*models.UserProfile, error)

	// verification workflow
	SubmitVerification(ctx context.Context, userID string, req *models.SubmitVerificationRequest) (*models.Verification, error)
	DecideVerification(ctx context.Context, requestID string, decision models.VerificationStatus) (*models.Verification, error)
	GetVerification(ctx context.Context, requestID string) (*models.Verification, error)
	ListVerifications(ctx context.Context, status *models.VerificationStatus, page, limit int) (*models.PaginatedVerifications, error)
}

package usecase

import (
	"github.com/kelanaapp/kelana/internal/pkg/models"
	"github.com/kelanaapp/kelana/services/profiles"
)

type ProfileUC struct {
	profileRepo      profiles.ProfileRepo
	verificationRepo profiles.VerificationRepo
	profileGW        profiles.ProfileGW
	cfg              *models.Config
}

// NewProfileUC creates a new profile usecase instance
func NewProfileUC(
	profileRepo profiles.ProfileRepo,
	verificationRepo profiles.VerificationRepo,
	profileGW profiles.ProfileGW,
	cfg *models.Config,
) *ProfileUC {
	return &ProfileUC{
		profileRepo:      profileRepo,
		verificationRepo: verificationRepo,
		profileGW:        profileGW,
		cfg:              cfg,
	}
}

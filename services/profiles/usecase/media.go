package usecase

import (
	"context"
	"time"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// UploadMedia stores an uploaded file through the media gateway and writes
// the returned reference into the requested slot. Slot legality depends on
// the profile's active tag, so the profile is checked before any bytes are
// sent to storage.
func (u *ProfileUC) UploadMedia(ctx context.Context, userID string, slot models.MediaSlot, upload *models.MediaUpload) (*models.UserProfile, error) {
	if !slot.Valid() {
		return nil, apperrors.Validationf("unknown media slot %q", slot)
	}
	if upload == nil || len(upload.Data) == 0 {
		return nil, apperrors.Validation("empty upload")
	}

	profile, err := u.mutableProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := checkSlotLegality(slot, profile.TypeData.Type()); err != nil {
		return nil, err
	}

	media, err := u.profileGW.StoreMedia(ctx, upload)
	if err != nil {
		return nil, err
	}

	assignMedia(profile, slot, media)
	profile.Touch(time.Now())
	if err := u.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Stored profile media",
		logger.String("user_id", userID),
		logger.String("slot", string(slot)),
		logger.String("url", media.URL))
	u.publishProfileUpdated(ctx, profile)
	return profile, nil
}

// checkSlotLegality enforces which slots each user type may write
func checkSlotLegality(slot models.MediaSlot, userType models.UserType) error {
	legal := false
	switch slot {
	case models.SlotProfilePhoto:
		legal = true
	case models.SlotLicense:
		legal = userType == models.UserTypeDriver
	case models.SlotPassport, models.SlotResidentPermit:
		legal = userType == models.UserTypeVendor || userType == models.UserTypeCustomer
	case models.SlotStudentID:
		legal = userType == models.UserTypeCustomer
	case models.SlotVendorBanner:
		legal = userType == models.UserTypeVendor
	}
	if !legal {
		return apperrors.Validation("wrong user type for this media")
	}
	return nil
}

// assignMedia writes the stored reference into its destination field. The
// extension variants are value types, so the block is rebuilt and reassigned.
func assignMedia(profile *models.UserProfile, slot models.MediaSlot, media *models.Media) {
	if slot == models.SlotProfilePhoto {
		profile.Bio.Photo = media
		return
	}

	switch data := profile.TypeData.Data.(type) {
	case models.DriverTypeData:
		if slot == models.SlotLicense {
			data.License = media
		}
		profile.TypeData = models.TypeData{Data: data}
	case models.VendorTypeData:
		switch slot {
		case models.SlotPassport:
			data.Passport = media
		case models.SlotResidentPermit:
			data.ResidentPermit = media
		case models.SlotVendorBanner:
			data.Banner = media
		}
		profile.TypeData = models.TypeData{Data: data}
	case models.CustomerTypeData:
		switch slot {
		case models.SlotPassport:
			data.Passport = media
		case models.SlotStudentID:
			data.StudentID = media
		case models.SlotResidentPermit:
			data.ResidentPermit = media
		}
		profile.TypeData = models.TypeData{Data: data}
	}
}

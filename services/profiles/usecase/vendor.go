package usecase

import (
	"context"
	"time"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// UpdateVendorData shallow-merges the request into the profile's vendor data
// record. Only vendors carry that record; everyone else is rejected.
func (u *ProfileUC) UpdateVendorData(ctx context.Context, userID string, req *models.UpdateVendorDataRequest) (*models.UserProfile, error) {
	profile, err := u.mutableProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.TypeData.Type() != models.UserTypeVendor {
		return nil, apperrors.Validation("not a vendor")
	}
	if profile.VendorData == nil {
		// Should have been initialized on the type switch; recover here
		profile.VendorData = models.NewVendorData()
	}

	if req.Schedule != nil {
		profile.VendorData.Schedule = req.Schedule
	}
	if req.Tags != nil {
		profile.VendorData.Tags = req.Tags
	}
	if req.AveragePrepTimeInMins != nil {
		if req.AveragePrepTimeInMins.From < 0 || req.AveragePrepTimeInMins.To < req.AveragePrepTimeInMins.From {
			return nil, apperrors.Validation("invalid preparation time range")
		}
		profile.VendorData.AveragePrepTimeInMins = req.AveragePrepTimeInMins
	}

	profile.Touch(time.Now())
	if err := u.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	u.publishProfileUpdated(ctx, profile)
	return profile, nil
}

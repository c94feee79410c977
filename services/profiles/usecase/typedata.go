package usecase

import (
	"context"
	"time"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// UpdateType replaces the profile's extension block with a new variant built
// from the request. The whole block is replaced, never merged. Switching into
// the vendor tag initializes an empty vendor data record; switching away
// clears it.
func (u *ProfileUC) UpdateType(ctx context.Context, userID string, req *models.UpdateTypeRequest) (*models.UserProfile, error) {
	data, err := buildTypeData(req)
	if err != nil {
		return nil, err
	}

	profile, err := u.mutableProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	fromType := profile.TypeData.Type()
	toType := data.UserType()

	profile.TypeData = models.TypeData{Data: data}
	switch {
	case toType == models.UserTypeVendor && fromType != models.UserTypeVendor:
		profile.VendorData = models.NewVendorData()
	case toType != models.UserTypeVendor:
		profile.VendorData = nil
	}

	profile.Touch(time.Now())
	if err := u.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if fromType != toType {
		event := &models.TypeChangedEvent{
			UserID:   userID,
			FromType: fromType,
			ToType:   toType,
		}
		if err := u.profileGW.PublishTypeChanged(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish type changed event",
				logger.String("user_id", userID),
				logger.ErrorField(err))
		}
	}
	u.publishProfileUpdated(ctx, profile)

	return profile, nil
}

// buildTypeData validates the request against the rules of its tag and
// assembles the variant. Fields belonging to other tags are ignored.
func buildTypeData(req *models.UpdateTypeRequest) (models.UserTypeData, error) {
	switch req.Type {
	case models.UserTypeDriver:
		if req.License == nil {
			return nil, apperrors.Validation("driver requires a license")
		}
		return models.DriverTypeData{License: req.License}, nil

	case models.UserTypeVendor:
		if req.Name == "" || !req.VendorType.Valid() {
			return nil, apperrors.Validation("incomplete vendor details")
		}
		if req.Location == nil {
			return nil, apperrors.Validation("invalid location")
		}
		if err := validateLocation(req.Location); err != nil {
			return nil, err
		}
		return models.VendorTypeData{
			VendorType:     req.VendorType,
			Name:           req.Name,
			Banner:         req.Banner,
			Email:          req.Email,
			ContactNumber:  req.ContactNumber,
			Description:    req.Description,
			Website:        req.Website,
			Location:       *req.Location,
			Passport:       req.Passport,
			ResidentPermit: req.ResidentPermit,
		}, nil

	case models.UserTypeCustomer:
		return models.CustomerTypeData{
			Passport:       req.Passport,
			StudentID:      req.StudentID,
			ResidentPermit: req.ResidentPermit,
		}, nil

	default:
		return nil, apperrors.Validationf("unknown user type %q", req.Type)
	}
}

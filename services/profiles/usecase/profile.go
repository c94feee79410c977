package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetOrInitializeProfile returns the caller's profile, creating the default
// one on first sight of the identity. A soft-deleted profile is returned
// as-is; it still counts as existing.
func (u *ProfileUC) GetOrInitializeProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := u.profileRepo.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, err
	}

	profile = models.NewUserProfile(userID, time.Now())
	if err := u.profileRepo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Initialized default profile",
		logger.String("user_id", userID))
	return profile, nil
}

// GetProfile returns a profile by identity without initializing it.
// Soft-deleted profiles are reported as absent.
func (u *ProfileUC) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := u.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.IsDeleted() {
		return nil, apperrors.NotFound("profile not found")
	}
	return profile, nil
}

// ListProfiles returns a page of profiles with a total count
func (u *ProfileUC) ListProfiles(ctx context.Context, page, limit int) (*models.PaginatedProfiles, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := u.profileRepo.ListProfiles(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedProfiles{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateProfile applies a partial update to the caller's profile. Bio email
// and username are never merged. A non-nil saved locations list replaces the
// stored one only when every entry is valid; one bad entry rejects the whole
// request.
func (u *ProfileUC) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := u.mutableProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.SavedLocations != nil {
		for i := range req.SavedLocations {
			if err := validateLocation(&req.SavedLocations[i]); err != nil {
				return nil, err
			}
		}
		profile.Account.SavedLocations = req.SavedLocations
	}

	if req.Bio != nil {
		mergeBio(&profile.Bio, req.Bio)
	}

	if req.Settings != nil {
		if req.Settings.Notifications != nil {
			profile.Account.Settings.Notifications = *req.Settings.Notifications
		}
		if req.Settings.DriverAvailable != nil {
			profile.Account.Settings.DriverAvailable = *req.Settings.DriverAvailable
		}
	}

	profile.Touch(time.Now())
	if err := u.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	u.publishProfileUpdated(ctx, profile)
	return profile, nil
}

// DeleteProfile soft-deletes the caller's profile. Deleting an already
// deleted profile is a no-op.
func (u *ProfileUC) DeleteProfile(ctx context.Context, userID string) error {
	profile, err := u.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.IsDeleted() {
		return nil
	}

	now := time.Now()
	ts := now.UnixMilli()
	profile.Dates.DeletedAt = &ts
	profile.Touch(now)

	if err := u.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Soft-deleted profile",
		logger.String("user_id", userID))
	u.publishProfileUpdated(ctx, profile)
	return nil
}

// mutableProfile loads a profile for a mutation path; soft-deleted profiles
// reject all mutations.
func (u *ProfileUC) mutableProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := u.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.IsDeleted() {
		return nil, apperrors.InvalidState("profile has been deleted")
	}
	return profile, nil
}

func mergeBio(bio *models.Bio, update *models.BioUpdate) {
	// Email and username from the payload are deliberately ignored
	if update.FirstName != nil {
		bio.Name.First = *update.FirstName
	}
	if update.LastName != nil {
		bio.Name.Last = *update.LastName
	}
	if update.FirstName != nil || update.LastName != nil {
		bio.Name.Full = strings.TrimSpace(bio.Name.First + " " + bio.Name.Last)
	}
	if update.Phone != nil {
		bio.Phone = update.Phone
	}
}

func validateLocation(loc *models.Location) error {
	if loc == nil || len(loc.Coordinates) != 2 {
		return apperrors.Validation("invalid location")
	}
	if loc.Address == "" || loc.City == "" || loc.Country == "" {
		return apperrors.Validation("invalid location")
	}
	return nil
}

func (u *ProfileUC) publishProfileUpdated(ctx context.Context, profile *models.UserProfile) {
	event := &models.ProfileUpdatedEvent{
		UserID:    profile.ID,
		UpdatedAt: profile.Status.LastUpdatedAt,
	}
	if err := u.profileGW.PublishProfileUpdated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish profile updated event",
			logger.String("user_id", profile.ID),
			logger.ErrorField(err))
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

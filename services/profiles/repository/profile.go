package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// profileRow mirrors the user_profiles table. The nested blocks are jsonb
// columns; a NULL vendor_data scans as a nil slice.
type profileRow struct {
	ID                 string `db:"id"`
	Bio                []byte `db:"bio"`
	Dates              []byte `db:"dates"`
	Status             []byte `db:"status"`
	Account            []byte `db:"account"`
	TypeData           []byte `db:"type_data"`
	VendorData         []byte `db:"vendor_data"`
	VerificationStatus string `db:"verification_status"`
}

const profileColumns = `id, bio, dates, status, account, type_data, vendor_data, verification_status`

func toProfileRow(profile *models.UserProfile) (*profileRow, error) {
	row := &profileRow{
		ID:                 profile.ID,
		VerificationStatus: profile.VerificationStatus,
	}

	var err error
	if row.Bio, err = json.Marshal(profile.Bio); err != nil {
		return nil, fmt.Errorf("failed to encode bio: %w", err)
	}
	if row.Dates, err = json.Marshal(profile.Dates); err != nil {
		return nil, fmt.Errorf("failed to encode dates: %w", err)
	}
	if row.Status, err = json.Marshal(profile.Status); err != nil {
		return nil, fmt.Errorf("failed to encode status: %w", err)
	}
	if row.Account, err = json.Marshal(profile.Account); err != nil {
		return nil, fmt.Errorf("failed to encode account: %w", err)
	}
	if row.TypeData, err = json.Marshal(profile.TypeData); err != nil {
		return nil, fmt.Errorf("failed to encode type data: %w", err)
	}
	if profile.VendorData != nil {
		if row.VendorData, err = json.Marshal(profile.VendorData); err != nil {
			return nil, fmt.Errorf("failed to encode vendor data: %w", err)
		}
	}
	return row, nil
}

func fromProfileRow(row *profileRow) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		ID:                 row.ID,
		VerificationStatus: row.VerificationStatus,
	}

	if err := json.Unmarshal(row.Bio, &profile.Bio); err != nil {
		return nil, fmt.Errorf("failed to decode bio: %w", err)
	}
	if err := json.Unmarshal(row.Dates, &profile.Dates); err != nil {
		return nil, fmt.Errorf("failed to decode dates: %w", err)
	}
	if err := json.Unmarshal(row.Status, &profile.Status); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}
	if err := json.Unmarshal(row.Account, &profile.Account); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}
	if err := json.Unmarshal(row.TypeData, &profile.TypeData); err != nil {
		return nil, fmt.Errorf("failed to decode type data: %w", err)
	}
	if len(row.VendorData) > 0 {
		profile.VendorData = &models.VendorData{}
		if err := json.Unmarshal(row.VendorData, profile.VendorData); err != nil {
			return nil, fmt.Errorf("failed to decode vendor data: %w", err)
		}
	}
	return profile, nil
}

// CreateProfile inserts a new profile record
func (r *ProfileRepo) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	row, err := toProfileRow(profile)
	if err != nil {
		return apperrors.Internal("failed to encode profile", err)
	}

	query := `
		INSERT INTO user_profiles (id, bio, dates, status, account, type_data, vendor_data, verification_status)
		VALUES (:id, :bio, :dates, :status, :account, :type_data, :vendor_data, :verification_status)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return apperrors.Internal("failed to insert profile", err)
	}
	return nil
}

// GetProfile retrieves a profile by its identity key
func (r *ProfileRepo) GetProfile(ctx context.Context, id string) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE id = $1`

	var row profileRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("profile not found")
		}
		return nil, apperrors.Internal("failed to get profile", err)
	}

	profile, err := fromProfileRow(&row)
	if err != nil {
		return nil, apperrors.Internal("failed to decode profile", err)
	}
	return profile, nil
}

// UpdateProfile rewrites every mutable column of an existing profile
func (r *ProfileRepo) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	row, err := toProfileRow(profile)
	if err != nil {
		return apperrors.Internal("failed to encode profile", err)
	}

	query := `
		UPDATE user_profiles
		SET bio = :bio,
			dates = :dates,
			status = :status,
			account = :account,
			type_data = :type_data,
			vendor_data = :vendor_data,
			verification_status = :verification_status
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return apperrors.Internal("failed to update profile", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Internal("failed to read update result", err)
	}
	if rows == 0 {
		return apperrors.NotFound("profile not found")
	}
	return nil
}

// ListProfiles returns one page of profiles ordered by creation time,
// newest first, together with the unfiltered total.
func (r *ProfileRepo) ListProfiles(ctx context.Context, offset, limit int) ([]*models.UserProfile, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM user_profiles`); err != nil {
		return nil, 0, apperrors.Internal("failed to count profiles", err)
	}

	query := `
		SELECT ` + profileColumns + `
		FROM user_profiles
		ORDER BY (dates->>'createdAt')::bigint DESC
		LIMIT $1 OFFSET $2
	`
	var rows []profileRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, apperrors.Internal("failed to list profiles", err)
	}

	profiles := make([]*models.UserProfile, 0, len(rows))
	for i := range rows {
		profile, err := fromProfileRow(&rows[i])
		if err != nil {
			return nil, 0, apperrors.Internal("failed to decode profile", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, total, nil
}

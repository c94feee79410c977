package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

const verificationColumns = `id, user_id, role, document_type, document_url, status, metadata, created_at, updated_at`

// CreateVerification inserts a new verification request
func (r *VerificationRepo) CreateVerification(ctx context.Context, verification *models.Verification) error {
	query := `
		INSERT INTO verifications (id, user_id, role, document_type, document_url, status, metadata, created_at, updated_at)
		VALUES (:id, :user_id, :role, :document_type, :document_url, :status, :metadata, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, verification); err != nil {
		return apperrors.Internal("failed to insert verification request", err)
	}
	return nil
}

// GetVerification retrieves a verification request by ID
func (r *VerificationRepo) GetVerification(ctx context.Context, id string) (*models.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM verifications WHERE id = $1`

	var verification models.Verification
	if err := r.db.GetContext(ctx, &verification, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("verification request not found")
		}
		return nil, apperrors.Internal("failed to get verification request", err)
	}
	return &verification, nil
}

// GetPendingByUser returns the user's pending request, or nil when none exists
func (r *VerificationRepo) GetPendingByUser(ctx context.Context, userID string) (*models.Verification, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE user_id = $1 AND status = $2
		LIMIT 1
	`
	var verification models.Verification
	err := r.db.GetContext(ctx, &verification, query, userID, models.VerificationPending)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("failed to get pending verification request", err)
	}
	return &verification, nil
}

// DecideVerification moves a pending request to a terminal status and syncs
// the denormalized status onto the owning profile in the same transaction.
// If the profile write fails, both writes roll back and the caller gets a
// status-sync error.
func (r *VerificationRepo) DecideVerification(ctx context.Context, id string, status models.VerificationStatus) (*models.Verification, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Internal("failed to begin transaction", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE verifications
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + verificationColumns

	var verification models.Verification
	err = tx.QueryRowxContext(ctx, query, status, time.Now(), id, models.VerificationPending).StructScan(&verification)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.InvalidState("verification request already decided")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to update verification request", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE user_profiles SET verification_status = $1 WHERE id = $2`,
		string(status), verification.UserID)
	if err != nil {
		return nil, apperrors.StatusSync("failed to sync status onto profile", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.StatusSync("failed to read profile sync result", err)
	}
	if rows == 0 {
		return nil, apperrors.StatusSync("profile not found for status sync", sql.ErrNoRows)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.Internal("failed to commit transaction", err)
	}
	return &verification, nil
}

// ListVerifications returns one page of requests, newest first, optionally
// filtered by status, together with the matching total.
func (r *VerificationRepo) ListVerifications(ctx context.Context, status *models.VerificationStatus, offset, limit int) ([]*models.Verification, int64, error) {
	countQuery := `SELECT COUNT(*) FROM verifications`
	listQuery := `
		SELECT ` + verificationColumns + `
		FROM verifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	args := []interface{}{limit, offset}

	if status != nil {
		countQuery = `SELECT COUNT(*) FROM verifications WHERE status = $1`
		listQuery = `
			SELECT ` + verificationColumns + `
			FROM verifications
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		args = []interface{}{*status, limit, offset}
	}

	var total int64
	if status != nil {
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, apperrors.Internal("failed to count verification requests", err)
		}
	} else {
		if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
			return nil, 0, apperrors.Internal("failed to count verification requests", err)
		}
	}

	verifications := []*models.Verification{}
	if err := r.db.SelectContext(ctx, &verifications, listQuery, args...); err != nil {
		return nil, 0, apperrors.Internal("failed to list verification requests", err)
	}
	return verifications, total, nil
}

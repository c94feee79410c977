package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// SubmitVerification opens a document review for the caller. A profile may
// carry at most one pending request; the profile's denormalized status is
// moved to Pending alongside.
func (u *ProfileUC) SubmitVerification(ctx context.Context, userID string, req *models.SubmitVerificationRequest) (*models.Verification, error) {
	if !req.Role.Valid() {
		return nil, apperrors.Validationf("unknown role %q", req.Role)
	}
	if !req.DocumentType.Valid() {
		return nil, apperrors.Validationf("unknown document type %q", req.DocumentType)
	}
	if req.DocumentURL == "" {
		return nil, apperrors.Validation("document URL is required")
	}

	profile, err := u.mutableProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := u.verificationRepo.GetPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, apperrors.Conflict("a pending verification request already exists")
	}

	now := time.Now()
	verification := &models.Verification{
		ID:           uuid.New().String(),
		UserID:       userID,
		Role:         req.Role,
		DocumentType: req.DocumentType,
		DocumentURL:  req.DocumentURL,
		Status:       models.VerificationPending,
		Metadata:     req.Metadata,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.verificationRepo.CreateVerification(ctx, verification); err != nil {
		return nil, err
	}

	profile.VerificationStatus = string(models.VerificationPending)
	profile.Touch(now)
	if err := u.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, apperrors.StatusSync("verification submitted but profile status not synced", err)
	}

	event := &models.VerificationEvent{
		RequestID: verification.ID,
		UserID:    userID,
		Role:      verification.Role,
		Status:    verification.Status,
	}
	if err := u.profileGW.PublishVerificationSubmitted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish verification submitted event",
			logger.String("request_id", verification.ID),
			logger.ErrorField(err))
	}

	return verification, nil
}

// DecideVerification closes a pending request with a terminal status. The
// request write and the profile status sync happen in one transaction in the
// repository; a sync failure rolls both back and surfaces as a distinct
// status-sync error.
func (u *ProfileUC) DecideVerification(ctx context.Context, requestID string, decision models.VerificationStatus) (*models.Verification, error) {
	if !decision.Terminal() {
		return nil, apperrors.Validationf("invalid decision %q", decision)
	}

	current, err := u.verificationRepo.GetVerification(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, apperrors.InvalidState("verification request already decided")
	}

	verification, err := u.verificationRepo.DecideVerification(ctx, requestID, decision)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Decided verification request",
		logger.String("request_id", requestID),
		logger.String("user_id", verification.UserID),
		logger.String("status", string(decision)))

	event := &models.VerificationEvent{
		RequestID: verification.ID,
		UserID:    verification.UserID,
		Role:      verification.Role,
		Status:    verification.Status,
	}
	if err := u.profileGW.PublishVerificationDecided(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish verification decided event",
			logger.String("request_id", verification.ID),
			logger.ErrorField(err))
	}

	return verification, nil
}

// GetVerification returns a verification request by ID
func (u *ProfileUC) GetVerification(ctx context.Context, requestID string) (*models.Verification, error) {
	return u.verificationRepo.GetVerification(ctx, requestID)
}

// ListVerifications returns a page of requests, optionally filtered by status
func (u *ProfileUC) ListVerifications(ctx context.Context, status *models.VerificationStatus, page, limit int) (*models.PaginatedVerifications, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := u.verificationRepo.ListVerifications(ctx, status, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginatedVerifications{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

func submitRequest() *models.SubmitVerificationRequest {
	return &models.SubmitVerificationRequest{
		Role:         models.UserTypeDriver,
		DocumentType: models.DocDriversLicense,
		DocumentURL:  "https://cdn.example.com/license.png",
	}
}

func TestSubmitVerification_Success(t *testing.T) {
	uc, mockRepo, mockVerificationRepo, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	existing := &models.UserProfile{
		ID:                 userID,
		TypeData:           models.TypeData{Data: models.DriverTypeData{}},
		VerificationStatus: models.ProfileUnverified,
	}

	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)
	mockVerificationRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(nil, nil)
	mockVerificationRepo.EXPECT().CreateVerification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, verification *models.Verification) error {
			assert.NotEmpty(t, verification.ID)
			assert.Equal(t, userID, verification.UserID)
			assert.Equal(t, models.VerificationPending, verification.Status)
			return nil
		})
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile *models.UserProfile) error {
			assert.Equal(t, string(models.VerificationPending), profile.VerificationStatus)
			return nil
		})
	mockGW.EXPECT().PublishVerificationSubmitted(gomock.Any(), gomock.Any()).Return(nil)

	verification, err := uc.SubmitVerification(context.Background(), userID, submitRequest())

	assert.NoError(t, err)
	assert.Equal(t, models.VerificationPending, verification.Status)
}

func TestSubmitVerification_PendingAlreadyExists(t *testing.T) {
	uc, mockRepo, mockVerificationRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	existing := &models.UserProfile{
		ID:       userID,
		TypeData: models.TypeData{Data: models.DriverTypeData{}},
	}

	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)
	mockVerificationRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).
		Return(&models.Verification{ID: "existing", Status: models.VerificationPending}, nil)

	_, err := uc.SubmitVerification(context.Background(), userID, submitRequest())

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeConflict))
}

func TestSubmitVerification_UnknownProfile(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).
		Return(nil, apperrors.NotFound("profile not found"))

	_, err := uc.SubmitVerification(context.Background(), userID, submitRequest())

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestSubmitVerification_BadDocumentType(t *testing.T) {
	uc, _, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	req := submitRequest()
	req.DocumentType = "Library Card"

	_, err := uc.SubmitVerification(context.Background(), "any", req)

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestSubmitVerification_ProfileSyncFailureSurfacesStatusSync(t *testing.T) {
	uc, mockRepo, mockVerificationRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	existing := &models.UserProfile{
		ID:       userID,
		TypeData: models.TypeData{Data: models.DriverTypeData{}},
	}

	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)
	mockVerificationRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(nil, nil)
	mockVerificationRepo.EXPECT().CreateVerification(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		Return(apperrors.Internal("db down", nil))

	_, err := uc.SubmitVerification(context.Background(), userID, submitRequest())

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStatusSync))
}

func TestDecideVerification_ApproveSyncsProfile(t *testing.T) {
	uc, _, mockVerificationRepo, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	requestID := "req-1"
	userID := "550e8400-e29b-41d4-a716-446655440000"

	mockVerificationRepo.EXPECT().GetVerification(gomock.Any(), requestID).
		Return(&models.Verification{ID: requestID, UserID: userID, Status: models.VerificationPending}, nil)
	mockVerificationRepo.EXPECT().DecideVerification(gomock.Any(), requestID, models.VerificationApproved).
		Return(&models.Verification{ID: requestID, UserID: userID, Role: models.UserTypeDriver, Status: models.VerificationApproved}, nil)
	mockGW.EXPECT().PublishVerificationDecided(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.VerificationEvent) error {
			assert.Equal(t, models.VerificationApproved, event.Status)
			assert.Equal(t, userID, event.UserID)
			return nil
		})

	verification, err := uc.DecideVerification(context.Background(), requestID, models.VerificationApproved)

	assert.NoError(t, err)
	assert.Equal(t, models.VerificationApproved, verification.Status)
}

func TestDecideVerification_AlreadyDecided(t *testing.T) {
	uc, _, mockVerificationRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	requestID := "req-1"
	mockVerificationRepo.EXPECT().GetVerification(gomock.Any(), requestID).
		Return(&models.Verification{ID: requestID, Status: models.VerificationRejected}, nil)

	_, err := uc.DecideVerification(context.Background(), requestID, models.VerificationApproved)

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidState))
}

func TestDecideVerification_InvalidDecision(t *testing.T) {
	uc, _, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	_, err := uc.DecideVerification(context.Background(), "req-1", models.VerificationPending)

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestDecideVerification_SyncFailurePropagates(t *testing.T) {
	uc, _, mockVerificationRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	requestID := "req-1"
	mockVerificationRepo.EXPECT().GetVerification(gomock.Any(), requestID).
		Return(&models.Verification{ID: requestID, Status: models.VerificationPending}, nil)
	mockVerificationRepo.EXPECT().DecideVerification(gomock.Any(), requestID, models.VerificationRejected).
		Return(nil, apperrors.StatusSync("profile not found for status sync", nil))

	_, err := uc.DecideVerification(context.Background(), requestID, models.VerificationRejected)

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStatusSync))
}

func TestListVerifications_StatusFilterPassedThrough(t *testing.T) {
	uc, _, mockVerificationRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	pending := models.VerificationPending
	mockVerificationRepo.EXPECT().ListVerifications(gomock.Any(), &pending, 0, 20).
		Return([]*models.Verification{{ID: "a"}}, int64(1), nil)

	result, err := uc.ListVerifications(context.Background(), &pending, 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

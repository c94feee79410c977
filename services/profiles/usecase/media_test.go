package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/models"
)

func testUpload() *models.MediaUpload {
	return &models.MediaUpload{
		FileName:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("fake-image-bytes"),
	}
}

func TestUploadMedia_ProfilePhotoAllowedForEveryType(t *testing.T) {
	for _, data := range []models.UserTypeData{
		models.DriverTypeData{},
		models.VendorTypeData{},
		models.CustomerTypeData{},
	} {
		uc, mockRepo, _, mockGW, ctrl := setupUCTest(t)

		userID := "550e8400-e29b-41d4-a716-446655440000"
		existing := &models.UserProfile{
			ID:       userID,
			TypeData: models.TypeData{Data: data},
		}
		stored := &models.Media{URL: "https://cdn.example.com/photo.jpg", Type: "image/jpeg", Size: 16}

		mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)
		mockGW.EXPECT().StoreMedia(gomock.Any(), gomock.Any()).Return(stored, nil)
		mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)
		mockGW.EXPECT().PublishProfileUpdated(gomock.Any(), gomock.Any()).Return(nil)

		profile, err := uc.UploadMedia(context.Background(), userID, models.SlotProfilePhoto, testUpload())

		assert.NoError(t, err)
		assert.Equal(t, stored, profile.Bio.Photo)

		ctrl.Finish()
	}
}

func TestUploadMedia_LicenseOnVendorRejected(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	existing := &models.UserProfile{
		ID:       userID,
		TypeData: models.TypeData{Data: models.VendorTypeData{}},
	}

	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)
	// no StoreMedia call expected: legality is checked before upload

	_, err := uc.UploadMedia(context.Background(), userID, models.SlotLicense, testUpload())

	assert.Error(t, err)
	assert.Equal(t, "wrong user type for this media", apperrors.MessageOf(err))
}

func TestUploadMedia_StudentIDOnVendorRejected(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	existing := &models.UserProfile{
		ID:       userID,
		TypeData: models.TypeData{Data: models.VendorTypeData{}},
	}

	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)

	_, err := uc.UploadMedia(context.Background(), userID, models.SlotStudentID, testUpload())

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestUploadMedia_LicenseOnDriverStored(t *testing.T) {
	uc, mockRepo, _, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	existing := &models.UserProfile{
		ID:       userID,
		TypeData: models.TypeData{Data: models.DriverTypeData{}},
	}
	stored := &models.Media{URL: "https://cdn.example.com/license.png", Type: "image/png", Size: 42}

	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)
	mockGW.EXPECT().StoreMedia(gomock.Any(), gomock.Any()).Return(stored, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishProfileUpdated(gomock.Any(), gomock.Any()).Return(nil)

	profile, err := uc.UploadMedia(context.Background(), userID, models.SlotLicense, testUpload())

	assert.NoError(t, err)
	driverData, ok := profile.TypeData.Data.(models.DriverTypeData)
	assert.True(t, ok)
	assert.Equal(t, stored, driverData.License)
}

func TestUploadMedia_BannerOnVendorStored(t *testing.T) {
	uc, mockRepo, _, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	existing := &models.UserProfile{
		ID: userID,
		TypeData: models.TypeData{Data: models.VendorTypeData{
			VendorType: models.VendorTypeFoods,
			Name:       "Warung Sedap",
		}},
		VendorData: models.NewVendorData(),
	}
	stored := &models.Media{URL: "https://cdn.example.com/banner.png", Type: "image/png", Size: 77}

	mockRepo.EXPECT().GetProfile(gomock.Any(), userID).Return(existing, nil)
	mockGW.EXPECT().StoreMedia(gomock.Any(), gomock.Any()).Return(stored, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishProfileUpdated(gomock.Any(), gomock.Any()).Return(nil)

	profile, err := uc.UploadMedia(context.Background(), userID, models.SlotVendorBanner, testUpload())

	assert.NoError(t, err)
	vendorData, ok := profile.TypeData.Data.(models.VendorTypeData)
	assert.True(t, ok)
	assert.Equal(t, stored, vendorData.Banner)
	// unrelated fields survive the rebuild
	assert.Equal(t, "Warung Sedap", vendorData.Name)
}

func TestUploadMedia_UnknownSlotRejected(t *testing.T) {
	uc, _, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	_, err := uc.UploadMedia(context.Background(), "any", "SELFIE", testUpload())

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestUploadMedia_EmptyUploadRejected(t *testing.T) {
	uc, _, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	_, err := uc.UploadMedia(context.Background(), "any", models.SlotProfilePhoto, &models.MediaUpload{})

	assert.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

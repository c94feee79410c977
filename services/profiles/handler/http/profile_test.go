package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/models"
	"github.com/kelanaapp/kelana/services/profiles/mocks"
)

const testUserID = "550e8400-e29b-41d4-a716-446655440000"

func newProfileContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", testUserID)
	return c, rec
}

func TestGetMyProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	c, rec := newProfileContext(e, http.MethodGet, "/profiles/me", "")

	mockUC.EXPECT().
		GetOrInitializeProfile(gomock.Any(), testUserID).
		Return(&models.UserProfile{
			ID:       testUserID,
			TypeData: models.TypeData{Data: models.CustomerTypeData{}},
		}, nil)

	err := handler.GetMyProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, testUserID, data["id"])

	typeData, ok := data["typeData"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "customer", typeData["type"])
}

func TestGetMyProfile_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profiles/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// no user_id set

	err := handler.GetMyProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateMyProfile_ValidationErrorMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	c, rec := newProfileContext(e, http.MethodPatch, "/profiles/me", `{"savedLocations":[{"coordinates":[1]}]}`)

	mockUC.EXPECT().
		UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, apperrors.Validation("invalid location"))

	err := handler.UpdateMyProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "VALIDATION", response["code"])
	assert.Equal(t, "invalid location", response["error"])
}

func TestUpdateMyType_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	body := `{"type":"vendor","vendorType":"foods","name":"Warung Sedap","location":{"type":"Point","coordinates":[106.8,-6.2],"address":"Jl. Thamrin","city":"Jakarta","country":"Indonesia"}}`
	c, rec := newProfileContext(e, http.MethodPut, "/profiles/me/type", body)

	mockUC.EXPECT().
		UpdateType(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *models.UpdateTypeRequest) (*models.UserProfile, error) {
			assert.Equal(t, models.UserTypeVendor, req.Type)
			assert.Equal(t, "Warung Sedap", req.Name)
			return &models.UserProfile{
				ID:         testUserID,
				TypeData:   models.TypeData{Data: models.VendorTypeData{VendorType: req.VendorType, Name: req.Name}},
				VendorData: models.NewVendorData(),
			}, nil
		})

	err := handler.UpdateMyType(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateMyVendorData_NotAVendorMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	c, rec := newProfileContext(e, http.MethodPatch, "/profiles/me/vendor-data", `{"tags":{"sate":5}}`)

	mockUC.EXPECT().
		UpdateVendorData(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, apperrors.Validation("not a vendor"))

	err := handler.UpdateMyVendorData(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMedia_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "photo.jpg")
	assert.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/profiles/me/media/PROFILE_PHOTO", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", testUserID)
	c.SetParamNames("slot")
	c.SetParamValues("PROFILE_PHOTO")

	mockUC.EXPECT().
		UploadMedia(gomock.Any(), testUserID, models.SlotProfilePhoto, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, _ models.MediaSlot, upload *models.MediaUpload) (*models.UserProfile, error) {
			assert.Equal(t, "photo.jpg", upload.FileName)
			assert.Equal(t, []byte("fake-image-bytes"), upload.Data)
			return &models.UserProfile{
				ID:       testUserID,
				TypeData: models.TypeData{Data: models.CustomerTypeData{}},
			}, nil
		})

	err = handler.UploadMedia(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadMedia_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/profiles/me/media/PROFILE_PHOTO", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", testUserID)
	c.SetParamNames("slot")
	c.SetParamValues("PROFILE_PHOTO")

	err := handler.UploadMedia(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMyProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	c, rec := newProfileContext(e, http.MethodDelete, "/profiles/me", "")

	mockUC.EXPECT().DeleteProfile(gomock.Any(), testUserID).Return(nil)

	err := handler.DeleteMyProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfile_NotFoundMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profiles/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockUC.EXPECT().
		GetProfile(gomock.Any(), "missing").
		Return(nil, apperrors.NotFound("profile not found"))

	err := handler.GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProfiles_PassesPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewProfileHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profiles?page=3&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ListProfiles(gomock.Any(), 3, 10).
		Return(&models.PaginatedProfiles{Items: []*models.UserProfile{}, Page: 3, Limit: 10}, nil)

	err := handler.ListProfiles(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

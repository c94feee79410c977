package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/models"
	"github.com/kelanaapp/kelana/services/profiles/mocks"
)

func TestSubmitVerification_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	body := `{"role":"driver","documentType":"Driver's License","documentUrl":"https://cdn.example.com/license.png"}`
	c, rec := newProfileContext(e, http.MethodPost, "/verifications", body)

	mockUC.EXPECT().
		SubmitVerification(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *models.SubmitVerificationRequest) (*models.Verification, error) {
			assert.Equal(t, models.UserTypeDriver, req.Role)
			assert.Equal(t, models.DocDriversLicense, req.DocumentType)
			return &models.Verification{
				ID:     "req-1",
				UserID: testUserID,
				Status: models.VerificationPending,
			}, nil
		})

	err := handler.SubmitVerification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubmitVerification_PendingConflictMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	body := `{"role":"driver","documentType":"Driver's License","documentUrl":"https://cdn.example.com/license.png"}`
	c, rec := newProfileContext(e, http.MethodPost, "/verifications", body)

	mockUC.EXPECT().
		SubmitVerification(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, apperrors.Conflict("a pending verification request already exists"))

	err := handler.SubmitVerification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "CONFLICT", response["code"])
}

func TestDecideVerification_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	c, rec := newProfileContext(e, http.MethodPost, "/verifications/req-1/decision", `{"decision":"Approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	mockUC.EXPECT().
		DecideVerification(gomock.Any(), "req-1", models.VerificationApproved).
		Return(&models.Verification{ID: "req-1", Status: models.VerificationApproved}, nil)

	err := handler.DecideVerification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDecideVerification_AlreadyDecidedMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	c, rec := newProfileContext(e, http.MethodPost, "/verifications/req-1/decision", `{"decision":"Rejected"}`)
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	mockUC.EXPECT().
		DecideVerification(gomock.Any(), "req-1", models.VerificationRejected).
		Return(nil, apperrors.InvalidState("verification request already decided"))

	err := handler.DecideVerification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "INVALID_STATE", response["code"])
}

func TestDecideVerification_SyncFailureMapsTo500WithCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	c, rec := newProfileContext(e, http.MethodPost, "/verifications/req-1/decision", `{"decision":"Approved"}`)
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	mockUC.EXPECT().
		DecideVerification(gomock.Any(), "req-1", models.VerificationApproved).
		Return(nil, apperrors.StatusSync("profile not found for status sync", nil))

	err := handler.DecideVerification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "STATUS_SYNC_FAILED", response["code"])
}

func TestGetVerification_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/verifications/req-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	mockUC.EXPECT().
		GetVerification(gomock.Any(), "req-1").
		Return(&models.Verification{ID: "req-1", Status: models.VerificationPending}, nil)

	err := handler.GetVerification(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListVerifications_BadStatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/verifications?status=Cancelled", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListVerifications(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListVerifications_WithStatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockProfileUC(ctrl)
	handler := NewVerificationHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/verifications?status=Pending&page=1&limit=20", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pending := models.VerificationPending
	mockUC.EXPECT().
		ListVerifications(gomock.Any(), &pending, 1, 20).
		Return(&models.PaginatedVerifications{Items: []*models.Verification{}}, nil)

	err := handler.ListVerifications(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

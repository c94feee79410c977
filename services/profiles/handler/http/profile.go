package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/pkg/models"
	"github.com/kelanaapp/kelana/internal/utils"
	"github.com/kelanaapp/kelana/services/profiles"
)

// maxUploadBytes bounds media uploads read into memory
const maxUploadBytes = 10 << 20

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	profileUC profiles.ProfileUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(
	profileUC profiles.ProfileUC,
) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
	}
}

// currentUserID extracts the authenticated identity set by the JWT middleware
func currentUserID(c echo.Context) (string, error) {
	raw := c.Get("user_id")
	if raw == nil {
		return "", apperrors.Unauthorized("missing user identity")
	}
	id := fmt.Sprintf("%v", raw)
	if id == "" || id == "<nil>" {
		return "", apperrors.Unauthorized("invalid user identity")
	}
	return id, nil
}

// GetMyProfile returns the caller's profile, initializing it on first access
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	profile, err := h.profileUC.GetOrInitializeProfile(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get or initialize profile",
			logger.ErrorField(err),
			logger.String("user_id", userID),
		)
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateMyProfile applies a partial update to the caller's profile
func (h *ProfileHandler) UpdateMyProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

// UpdateMyType replaces the caller's extension block
func (h *ProfileHandler) UpdateMyType(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.UpdateTypeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.profileUC.UpdateType(c.Request().Context(), userID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User type updated successfully", profile)
}

// UpdateMyVendorData merges vendor data fields for a vendor profile
func (h *ProfileHandler) UpdateMyVendorData(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.UpdateVendorDataRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.profileUC.UpdateVendorData(c.Request().Context(), userID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vendor data updated successfully", profile)
}

// UploadMedia stores an uploaded file into the slot named in the path
func (h *ProfileHandler) UploadMedia(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	slot := models.MediaSlot(c.Param("slot"))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing file upload")
	}
	if fileHeader.Size > maxUploadBytes {
		return utils.BadRequestResponse(c, "File too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable file upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable file upload")
	}
	if len(data) > maxUploadBytes {
		return utils.BadRequestResponse(c, "File too large")
	}

	upload := &models.MediaUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	profile, err := h.profileUC.UploadMedia(c.Request().Context(), userID, slot, upload)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Media uploaded successfully", profile)
}

// DeleteMyProfile soft-deletes the caller's profile
func (h *ProfileHandler) DeleteMyProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.profileUC.DeleteProfile(c.Request().Context(), userID); err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile deleted successfully", nil)
}

// GetProfile returns a profile by ID
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID := c.Param("id")
	if profileID == "" {
		return utils.BadRequestResponse(c, "Invalid profile ID")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// ListProfiles returns a page of profiles
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.profileUC.ListProfiles(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profiles retrieved successfully", result)
}

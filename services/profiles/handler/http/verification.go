package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kelanaapp/kelana/internal/pkg/logger"
	"github.com/kelanaapp/kelana/internal/pkg/models"
	"github.com/kelanaapp/kelana/internal/utils"
	"github.com/kelanaapp/kelana/services/profiles"
)

// VerificationHandler handles HTTP requests for the verification workflow
type VerificationHandler struct {
	profileUC profiles.ProfileUC
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(
	profileUC profiles.ProfileUC,
) *VerificationHandler {
	return &VerificationHandler{
		profileUC: profileUC,
	}
}

// SubmitVerification opens a document review for the caller
func (h *VerificationHandler) SubmitVerification(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.SubmitVerificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	verification, err := h.profileUC.SubmitVerification(c.Request().Context(), userID, &req)
	if err != nil {
		return writeError(c, err)
	}

	logger.Info("Verification request submitted",
		logger.String("request_id", verification.ID),
		logger.String("user_id", userID),
	)
	return utils.SuccessResponse(c, http.StatusCreated, "Verification request submitted successfully", verification)
}

// DecideVerification closes a review with a terminal decision
func (h *VerificationHandler) DecideVerification(c echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var req models.DecideVerificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	verification, err := h.profileUC.DecideVerification(c.Request().Context(), requestID, req.Decision)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification request decided successfully", verification)
}

// GetVerification returns a verification request by ID
func (h *VerificationHandler) GetVerification(c echo.Context) error {
	requestID := c.Param("id")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	verification, err := h.profileUC.GetVerification(c.Request().Context(), requestID)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification request retrieved successfully", verification)
}

// ListVerifications returns a page of requests, optionally filtered by status
func (h *VerificationHandler) ListVerifications(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var status *models.VerificationStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := models.VerificationStatus(raw)
		if s != models.VerificationPending && !s.Terminal() {
			return utils.BadRequestResponse(c, "Invalid status filter")
		}
		status = &s
	}

	result, err := h.profileUC.ListVerifications(c.Request().Context(), status, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification requests retrieved successfully", result)
}

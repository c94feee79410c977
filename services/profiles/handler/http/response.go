package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kelanaapp/kelana/internal/pkg/apperrors"
	"github.com/kelanaapp/kelana/internal/utils"
)

// writeError maps a usecase error onto an HTTP status and response body.
// The machine-checkable code rides along so clients can branch without
// parsing messages.
func writeError(c echo.Context, err error) error {
	code := apperrors.CodeOf(err)
	message := apperrors.MessageOf(err)

	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeValidation:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeConflict, apperrors.CodeInvalidState:
		status = http.StatusConflict
	case apperrors.CodeUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.CodeStatusSync, apperrors.CodeInternal:
		status = http.StatusInternalServerError
	}

	return utils.ErrorResponseWithCode(c, status, string(code), message)
}

package utils

import (
	"errors"
	"net/http"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorBody is the wire shape of every failure.
type ErrorBody struct {
	Error string `json:"error"`
}

func SuccessResponse(c echo.Context, code int, body interface{}) error {
	return c.JSON(code, body)
}

// ErrorResponse maps an application error to its HTTP status and a
// client-safe body. Storage and driver errors are logged here and
// surface as a generic 500.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Error: validationErrors.Error()})
	}

	if code, ok := knownErrorCodes(err); ok {
		return c.JSON(code, ErrorBody{Error: err.Error()})
	}

	logger.Error("unexpected error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "server error"})
}

func knownErrorCodes(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenNotYetValid),
		errors.Is(err, apperrors.ErrUserIDNotFoundInContext):
		return http.StatusUnauthorized, true
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrNoTeamAssigned):
		return http.StatusForbidden, true
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, true
	}
	return 0, false
}

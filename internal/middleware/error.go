package middleware

import (
	"errors"
	"net/http"

	"art-atlas/internal/domain"
	"art-atlas/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists the rejected fields of a request.
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// errorStatus maps domain error codes to HTTP status. Unlisted codes are 500.
var errorStatus = map[domain.ErrorCode]int{
	domain.CodeNotFound:             http.StatusNotFound,
	domain.CodeItemNotFound:         http.StatusNotFound,
	domain.CodeQuestionNotFound:     http.StatusNotFound,
	domain.CodeInvalidInput:         http.StatusBadRequest,
	domain.CodeValidation:           http.StatusBadRequest,
	domain.CodeMissingField:         http.StatusBadRequest,
	domain.CodeInvalidFormat:        http.StatusBadRequest,
	domain.CodeOutOfRange:           http.StatusBadRequest,
	domain.CodeConfirmationRequired: http.StatusConflict,
	domain.CodeStoreUnavailable:     http.StatusServiceUnavailable,
}

// StatusFor returns the HTTP status of a domain error.
func StatusFor(err *domain.DomainError) int {
	if status, ok := errorStatus[err.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorHandler is the centralized fiber error handler. Install it through
// fiber.Config.ErrorHandler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request rejected", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := StatusFor(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
			}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", fields...)
			} else {
				log.Warn("Request failed", fields...)
			}

			resp := ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  status,
				Path:    c.Path(),
			}
			if len(domainErr.Context) > 0 {
				resp.Details = domainErr.Context
			}
			return c.Status(status).JSON(resp)
		}

		// fiber's own errors: unknown route, bad method, body too large
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("HTTP error", zap.Int("status", fiberErr.Code), zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
				Path:    c.Path(),
			})
		}

		log.Error("Unhandled error", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
			Path:    c.Path(),
		})
	}
}

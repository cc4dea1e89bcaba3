package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest          ErrorCode = "bad_request"
	errCodeNotFound            ErrorCode = "not_found"
	errCodeValidationFailed    ErrorCode = "validation_failed"
	errCodeForbidden           ErrorCode = "forbidden"
	errCodeInvalidTransition   ErrorCode = "invalid_transition"
	errCodeInsufficientPayment ErrorCode = "insufficient_payment"
	errCodeAlreadyRegistered   ErrorCode = "already_registered"
	errCodeOutOfRange          ErrorCode = "out_of_range"
	errCodeEmptyTreasury       ErrorCode = "empty_treasury"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps a workflow error to its HTTP representation.
// Each error kind keeps its own code so callers can tell which condition
// was violated.
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, message, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, message, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		respondWithError(c, http.StatusConflict, errCodeInvalidTransition, message, err.Error())
	case errors.Is(err, domain.ErrInsufficientPayment):
		respondWithError(c, http.StatusPaymentRequired, errCodeInsufficientPayment, message, err.Error())
	case errors.Is(err, domain.ErrAlreadyRegistered):
		respondWithError(c, http.StatusConflict, errCodeAlreadyRegistered, message, err.Error())
	case errors.Is(err, domain.ErrReputationOutOfRange):
		respondWithError(c, http.StatusBadRequest, errCodeOutOfRange, message, err.Error())
	case errors.Is(err, domain.ErrEmptyTreasury):
		respondWithError(c, http.StatusConflict, errCodeEmptyTreasury, message, err.Error())
	default:
		// ErrInsufficientEscrow lands here: it means the books diverged,
		// which is a bug, not a user error
		respondInternalError(c, err, message)
	}
}

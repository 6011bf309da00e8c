package handlers

import (
	"net/http"

	"todoapi/internal/domain"
	"todoapi/internal/http/middleware"
	"todoapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps the error taxonomy to HTTP responses. Anything
// outside the taxonomy is an internal failure: logged, never leaked.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "BAD_USER_INPUT", err.Error())
	case domain.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, "AUTHENTICATION_ERROR", err.Error())
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
	}
}

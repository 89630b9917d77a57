package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel errors from the service layer onto HTTP
// codes. Scope violations come back 403, never 404.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "You do not have access to this member")
	case errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrCampNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrFollowUpNotFound),
		errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidDismissType),
		errors.Is(err, ErrInvalidEventDate),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrMissingNameColumns),
		errors.Is(err, ErrNoRecipient),
		errors.Is(err, ErrUpdateTokenInvalid):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrGatewayFailure):
		log.Printf("Gateway error: %v", err)
		RespondError(c, http.StatusBadGateway, "Message could not be delivered")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

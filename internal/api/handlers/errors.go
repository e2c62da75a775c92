package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/application"
	"github.com/issuehub/issuehub/internal/api/response"
)

// respondError maps service error kinds onto stable status codes so
// clients can branch on status instead of parsing messages.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, application.ErrNotAuthenticated),
		errors.Is(err, application.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, application.ErrNotAMember),
		errors.Is(err, application.ErrInsufficientRole):
		status = http.StatusForbidden
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrProjectNotFound),
		errors.Is(err, application.ErrIssueNotFound),
		errors.Is(err, application.ErrAttachmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrKeyTaken),
		errors.Is(err, application.ErrAlreadyMember):
		status = http.StatusConflict
	case errors.Is(err, application.ErrInvalidAssignee),
		errors.Is(err, application.ErrValidation):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

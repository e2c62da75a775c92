package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/application"
)

type Handlers struct {
	Auth       *AuthHandler
	Project    *ProjectHandler
	Issue      *IssueHandler
	Comment    *CommentHandler
	Attachment *AttachmentHandler
	Events     *EventsHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		Auth:       &AuthHandler{Services: services},
		Project:    &ProjectHandler{Services: services},
		Issue:      &IssueHandler{Services: services},
		Comment:    &CommentHandler{Services: services},
		Attachment: &AttachmentHandler{Services: services},
		Events:     &EventsHandler{Services: services},
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id64), true
}

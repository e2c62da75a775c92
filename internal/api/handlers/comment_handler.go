package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/api/response"
	"github.com/issuehub/issuehub/internal/application"
	"github.com/issuehub/issuehub/internal/domain/comment"
)

type CommentHandler struct {
	Services *application.Services
}

// List godoc
// @Summary List an issue's comments, oldest first
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 200 {array} comment.Comment
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /api/issues/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue ID"})
		return
	}

	actor := middleware.CurrentUser(c)
	comments, err := h.Services.Comment.ListComments(actor.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create godoc
// @Summary Add a comment to an issue
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Param input body comment.CreateCommentDTO true "Comment body"
// @Success 201 {object} comment.Comment
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /api/issues/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue ID"})
		return
	}

	var input comment.CreateCommentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	actor := middleware.CurrentUser(c)
	created, err := h.Services.Comment.CreateComment(actor.ID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

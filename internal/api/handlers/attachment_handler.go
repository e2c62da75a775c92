package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/api/response"
	"github.com/issuehub/issuehub/internal/application"
)

// MaxAttachmentSize caps uploads at 25 MiB.
const MaxAttachmentSize = 25 << 20

type AttachmentHandler struct {
	Services *application.Services
}

// Upload godoc
// @Summary Upload a file attachment to an issue
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Param file formData file true "File to attach"
// @Success 201 {object} attachment.Attachment
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /api/issues/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing file field"})
		return
	}
	if fileHeader.Size > MaxAttachmentSize {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "File too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Could not read file"})
		return
	}
	defer f.Close()

	actor := middleware.CurrentUser(c)
	a, err := h.Services.Attachment.Upload(
		c.Request.Context(),
		actor.ID,
		id,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		f,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

// List godoc
// @Summary List an issue's attachments
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 200 {array} attachment.Attachment
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Router /api/issues/{id}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue ID"})
		return
	}

	actor := middleware.CurrentUser(c)
	attachments, err := h.Services.Attachment.List(actor.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attachments)
}

// Download godoc
// @Summary Get a short-lived download URL for an attachment
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attachment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /api/attachments/{id} [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid attachment ID"})
		return
	}

	actor := middleware.CurrentUser(c)
	url, err := h.Services.Attachment.DownloadURL(c.Request.Context(), actor.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Delete godoc
// @Summary Delete an attachment (uploader or maintainer)
// @Tags attachments
// @Security BearerAuth
// @Param id path int true "Attachment ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse "Not permitted"
// @Failure 404 {object} response.ErrorResponse "Attachment not found"
// @Router /api/attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid attachment ID"})
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.Services.Attachment.Delete(c.Request.Context(), actor.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

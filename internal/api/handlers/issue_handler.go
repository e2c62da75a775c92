package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/api/response"
	"github.com/issuehub/issuehub/internal/application"
	"github.com/issuehub/issuehub/internal/domain/issue"
)

type IssueHandler struct {
	Services *application.Services
}

// List godoc
// @Summary List a project's issues with filtering, sorting, pagination
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param q query string false "Search in title and description"
// @Param status query string false "Filter by status" Enums(open, in_progress, resolved, closed)
// @Param priority query string false "Filter by priority" Enums(low, medium, high, critical)
// @Param assignee_id query int false "Filter by assignee user ID"
// @Param sort query string false "Sort key" Enums(created_at, updated_at, priority, status)
// @Param page query int false "Page number (1-indexed)"
// @Param page_size query int false "Items per page (1-100, default 20)"
// @Success 200 {object} issue.Page
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Router /api/projects/{id}/issues [get]
func (h *IssueHandler) List(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	var q issue.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	actor := middleware.CurrentUser(c)
	page, err := h.Services.Issue.ListIssues(actor.ID, id, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Create godoc
// @Summary File a new issue; the caller becomes the reporter
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param input body issue.CreateIssueDTO true "Issue info"
// @Success 201 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Assignee must be a project member"
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Router /api/projects/{id}/issues [post]
func (h *IssueHandler) Create(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	var input issue.CreateIssueDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	actor := middleware.CurrentUser(c)
	i, err := h.Services.Issue.CreateIssue(actor.ID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, i)
}

// Get godoc
// @Summary Get an issue
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 200 {object} issue.Issue
// @Failure 403 {object} response.ErrorResponse "Not a member of the issue's project"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /api/issues/{id} [get]
func (h *IssueHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue ID"})
		return
	}

	actor := middleware.CurrentUser(c)
	i, err := h.Services.Issue.GetIssue(actor.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, i)
}

// Update godoc
// @Summary Partially update an issue
// @Description Reporters may change title and description; status,
// @Description priority and assignee are maintainer-only. One
// @Description disallowed field rejects the whole payload.
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Param input body issue.UpdateIssueDTO true "Fields to update"
// @Success 200 {object} issue.Issue
// @Failure 403 {object} response.ErrorResponse "Field not permitted for caller"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /api/issues/{id} [patch]
func (h *IssueHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue ID"})
		return
	}

	input, err := bindIssueUpdate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	actor := middleware.CurrentUser(c)
	i, err := h.Services.Issue.UpdateIssue(actor.ID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, i)
}

// Delete godoc
// @Summary Delete an issue and its comments (maintainers only)
// @Tags issues
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse "Maintainer role required"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Router /api/issues/{id} [delete]
func (h *IssueHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid issue ID"})
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.Services.Issue.DeleteIssue(actor.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindIssueUpdate decodes the partial update and records whether the
// assignee_id key was present at all, so "assignee_id": null can mean
// unassign while an absent key means leave unchanged.
func bindIssueUpdate(c *gin.Context) (issue.UpdateIssueDTO, error) {
	var input issue.UpdateIssueDTO

	body, err := c.GetRawData()
	if err != nil {
		return input, err
	}
	if err := json.Unmarshal(body, &input); err != nil {
		return input, err
	}
	if err := binding.Validator.ValidateStruct(input); err != nil {
		return input, err
	}
	// omitempty skips the min check for a present-but-empty string.
	if input.Title != nil && *input.Title == "" {
		return input, errors.New("title must not be empty")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err == nil {
		if _, present := raw["assignee_id"]; present {
			input.AssigneeSet = true
		}
	}

	return input, nil
}

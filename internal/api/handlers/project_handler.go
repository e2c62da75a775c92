package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/api/response"
	"github.com/issuehub/issuehub/internal/application"
	"github.com/issuehub/issuehub/internal/domain/project"
)

type ProjectHandler struct {
	Services *application.Services
}

// Create godoc
// @Summary Create a project; the creator becomes a maintainer
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body project.CreateProjectDTO true "Project info"
// @Success 201 {object} project.Project
// @Failure 409 {object} response.ErrorResponse "Project key already exists"
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	actor := middleware.CurrentUser(c)
	p, err := h.Services.Project.CreateProject(actor.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary List projects the caller belongs to
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {array} project.Project
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	projects, err := h.Services.Project.ListProjects(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}

	c.JSON(http.StatusOK, projects)
}

// Detail godoc
// @Summary Get a project with its member list
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} project.Detail
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	actor := middleware.CurrentUser(c)
	detail, err := h.Services.Project.GetProjectDetail(actor.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// AddMember godoc
// @Summary Add a user to a project (maintainers only)
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param input body project.AddMemberDTO true "Member email and role"
// @Success 201 {object} project.MemberInfo
// @Failure 403 {object} response.ErrorResponse "Maintainer role required"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 409 {object} response.ErrorResponse "Already a member"
// @Router /api/projects/{id}/members [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	var input project.AddMemberDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	actor := middleware.CurrentUser(c)
	m, err := h.Services.Project.AddMember(actor.ID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

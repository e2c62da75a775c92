package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/api/response"
	"github.com/issuehub/issuehub/internal/application"
	"github.com/issuehub/issuehub/internal/domain/user"
)

type AuthHandler struct {
	Services *application.Services
}

// Signup godoc
// @Summary Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SignupInput true "Signup info"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var input user.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	u, err := h.Services.User.Signup(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Incorrect email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	token, _, err := h.Services.User.Login(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me godoc
// @Summary Get the current user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 401 {object} response.ErrorResponse
// @Router /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, u)
}

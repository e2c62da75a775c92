package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root godoc
// @Summary API welcome message
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to IssueHub API",
		"docs":    "/api/docs/index.html",
		"version": "1.0.0",
	})
}

// Health godoc
// @Summary Health check for monitoring
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

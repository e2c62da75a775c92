package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/issuehub/issuehub/internal/api/middleware"
	"github.com/issuehub/issuehub/internal/api/response"
	"github.com/issuehub/issuehub/internal/application"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type EventsHandler struct {
	Services *application.Services
}

// Stream godoc
// @Summary Subscribe to a project's issue and comment events over WebSocket
// @Tags events
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Failure 403 {object} response.ErrorResponse "Not a member"
// @Router /api/projects/{id}/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project ID"})
		return
	}

	// Membership is checked before the upgrade so non-members get a
	// plain 403 instead of a dropped socket.
	actor := middleware.CurrentUser(c)
	if _, err := h.Services.Authz.RequireMember(id, actor.ID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	ch, cancel := h.Services.Hub.Subscribe(id)
	defer cancel()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				conn.Close()
				return
			}
		}
	}()

	for evt := range ch {
		if err := conn.WriteJSON(evt); err != nil {
			break
		}
	}
	conn.Close()
}

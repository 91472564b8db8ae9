package api

import (
	"net/http"

	resdto "crewcal/internal/handler/dto/response"
	"crewcal/internal/usecase/commands"
	"crewcal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	commands commands.NotificationCommands
	queries  queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, qrys queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary List notifications
// @Description List notifications addressed to a role, oldest first
// @Tags notifications
// @Produce json
// @Param role query string true "provider or requester"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 422 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role query parameter is required"})
		return
	}

	views, err := h.queries.ListByRole(c.Request.Context(), role)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Mark notification read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.MarkRead(c.Request.Context(), id); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

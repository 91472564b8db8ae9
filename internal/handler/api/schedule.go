package api

import (
	"net/http"

	"crewcal/internal/domain/schedule"
	reqdto "crewcal/internal/handler/dto/request"
	resdto "crewcal/internal/handler/dto/response"
	"crewcal/internal/usecase/commands"
	"crewcal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	commands     commands.ScheduleCommands
	availability queries.AvailabilityQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, availability queries.AvailabilityQueries) *ScheduleHandler {
	return &ScheduleHandler{
		commands:     cmds,
		availability: availability,
	}
}

// viewerFromQuery builds the viewer for availability reads. No requester_id
// means the provider is asking about their own calendar.
func viewerFromQuery(c *gin.Context) (schedule.Viewer, bool) {
	raw := c.Query("requester_id")
	if raw == "" {
		return schedule.ProviderViewer(), true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requester_id format"})
		return schedule.Viewer{}, false
	}
	return schedule.RequesterViewer(id), true
}

// @Summary Day status
// @Description Resolve one calendar day for the given viewer
// @Tags schedule
// @Produce json
// @Param providerId path string true "Provider ID"
// @Param date path string true "Day in YYYY-MM-DD"
// @Param requester_id query string false "Requesting party; omit for the provider's own view"
// @Param exclude_booking_id query string false "Booking ID to ignore during resolution"
// @Success 200 {object} resdto.DayStatusResponse
// @Failure 422 {object} map[string]string
// @Router /providers/{providerId}/schedule/{date} [get]
func (h *ScheduleHandler) GetDayStatus(c *gin.Context) {
	providerID, ok := pathUUID(c, "providerId")
	if !ok {
		return
	}
	viewer, ok := viewerFromQuery(c)
	if !ok {
		return
	}

	excludeID := uuid.Nil
	if raw := c.Query("exclude_booking_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude_booking_id format"})
			return
		}
		excludeID = id
	}

	view, err := h.availability.DayStatus(c.Request.Context(), providerID, c.Param("date"), viewer, excludeID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayStatusView(view))
}

// @Summary Day statuses over a range
// @Description Resolve every day in [from, to] for the given viewer
// @Tags schedule
// @Produce json
// @Param providerId path string true "Provider ID"
// @Param from query string true "First day in YYYY-MM-DD"
// @Param to query string true "Last day in YYYY-MM-DD"
// @Param requester_id query string false "Requesting party; omit for the provider's own view"
// @Success 200 {array} resdto.DayStatusResponse
// @Failure 422 {object} map[string]string
// @Router /providers/{providerId}/schedule [get]
func (h *ScheduleHandler) GetDayStatuses(c *gin.Context) {
	providerID, ok := pathUUID(c, "providerId")
	if !ok {
		return
	}
	viewer, ok := viewerFromQuery(c)
	if !ok {
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	views, err := h.availability.DayStatuses(c.Request.Context(), providerID, from, to, viewer)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayStatusViews(views))
}

// @Summary Block day
// @Description Block a day; open blocks still accept requests
// @Tags schedule
// @Accept json
// @Param providerId path string true "Provider ID"
// @Param date path string true "Day in YYYY-MM-DD"
// @Param request body reqdto.BlockDayRequest false "Block options"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /providers/{providerId}/schedule/{date}/block [post]
func (h *ScheduleHandler) BlockDay(c *gin.Context) {
	providerID, ok := pathUUID(c, "providerId")
	if !ok {
		return
	}

	var req reqdto.BlockDayRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	var err error
	if req.Open {
		err = h.commands.BlockDayOpen(c.Request.Context(), providerID, c.Param("date"))
	} else {
		err = h.commands.BlockDay(c.Request.Context(), providerID, c.Param("date"))
	}
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Unblock day
// @Tags schedule
// @Param providerId path string true "Provider ID"
// @Param date path string true "Day in YYYY-MM-DD"
// @Success 204
// @Router /providers/{providerId}/schedule/{date}/block [delete]
func (h *ScheduleHandler) UnblockDay(c *gin.Context) {
	providerID, ok := pathUUID(c, "providerId")
	if !ok {
		return
	}

	if err := h.commands.UnblockDay(c.Request.Context(), providerID, c.Param("date")); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle open-for-more
// @Description Flip whether a fully fixed day still shows as available to others
// @Tags schedule
// @Param providerId path string true "Provider ID"
// @Param date path string true "Day in YYYY-MM-DD"
// @Success 204
// @Router /providers/{providerId}/schedule/{date}/open-for-more [post]
func (h *ScheduleHandler) ToggleOpenForMore(c *gin.Context) {
	providerID, ok := pathUUID(c, "providerId")
	if !ok {
		return
	}

	if err := h.commands.ToggleOpenForMore(c.Request.Context(), providerID, c.Param("date")); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

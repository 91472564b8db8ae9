package api

import (
	"context"
	"net/http"
	"strings"

	"crewcal/internal/domain/booking"
	reqdto "crewcal/internal/handler/dto/request"
	resdto "crewcal/internal/handler/dto/response"
	"crewcal/internal/usecase/commands"
	"crewcal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrys queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary Create booking
// @Description Create a new option or fix booking request
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: id})
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List provider bookings
// @Tags bookings
// @Produce json
// @Param providerId path string true "Provider ID"
// @Success 200 {array} resdto.BookingResponse
// @Router /providers/{providerId}/bookings [get]
func (h *BookingHandler) ListProviderBookings(c *gin.Context) {
	providerID, ok := pathUUID(c, "providerId")
	if !ok {
		return
	}

	views, err := h.queries.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List requester bookings
// @Tags bookings
// @Produce json
// @Param requesterId path string true "Requester ID"
// @Success 200 {array} resdto.BookingResponse
// @Router /requesters/{requesterId}/bookings [get]
func (h *BookingHandler) ListRequesterBookings(c *gin.Context) {
	requesterID, ok := pathUUID(c, "requesterId")
	if !ok {
		return
	}

	views, err := h.queries.ListByRequester(c.Request.Context(), requesterID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List overlapping bookings
// @Description List the provider's active bookings intersecting the given dates
// @Tags bookings
// @Produce json
// @Param providerId path string true "Provider ID"
// @Param dates query string true "Comma-separated YYYY-MM-DD dates"
// @Param exclude query string false "Booking ID to exclude"
// @Success 200 {array} resdto.BookingResponse
// @Router /providers/{providerId}/bookings/overlapping [get]
func (h *BookingHandler) ListOverlappingBookings(c *gin.Context) {
	providerID, ok := pathUUID(c, "providerId")
	if !ok {
		return
	}

	rawDates := c.Query("dates")
	if rawDates == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates query parameter is required"})
		return
	}
	dates := strings.Split(rawDates, ",")

	excludeID := uuid.Nil
	if raw := c.Query("exclude"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude format"})
			return
		}
		excludeID = id
	}

	views, err := h.queries.Overlapping(c.Request.Context(), providerID, dates, excludeID)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Accept booking
// @Description Provider accepts a pending request
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/accept [post]
func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	h.act(c, h.commands.Accept)
}

// @Summary Decline booking
// @Description Provider declines a pending request
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/decline [post]
func (h *BookingHandler) DeclineBooking(c *gin.Context) {
	h.act(c, h.commands.Decline)
}

// @Summary Withdraw booking
// @Description Requester withdraws a pending request
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/withdraw [post]
func (h *BookingHandler) WithdrawBooking(c *gin.Context) {
	h.act(c, h.commands.Withdraw)
}

// @Summary Cancel booking
// @Description Either side cancels a confirmed booking
// @Tags bookings
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), id, req.GetReason(), booking.Role(req.By)); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Convert option to fix
// @Description Upgrade a confirmed option to a fix-confirmed booking
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/convert [post]
func (h *BookingHandler) ConvertBooking(c *gin.Context) {
	h.act(c, h.commands.ConvertOptionToFix)
}

// @Summary Decline overlapping bookings
// @Description Decline every active competitor overlapping the given booking's dates
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.DeclineOverlappingResponse
// @Router /bookings/{id}/decline-overlapping [post]
func (h *BookingHandler) DeclineOverlapping(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	count, err := h.commands.DeclineOverlapping(c.Request.Context(), id)
	if err != nil {
		respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DeclineOverlappingResponse{DeclinedCount: count})
}

// @Summary Request reschedule
// @Description Propose new dates for an active booking
// @Tags bookings
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleRequest true "New dates"
// @Success 204
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) RequestReschedule(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.RescheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.RequestReschedule(c.Request.Context(), id, req.NewDates); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Accept reschedule
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/reschedule/accept [post]
func (h *BookingHandler) AcceptReschedule(c *gin.Context) {
	h.act(c, h.commands.AcceptReschedule)
}

// @Summary Decline reschedule
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/reschedule/decline [post]
func (h *BookingHandler) DeclineReschedule(c *gin.Context) {
	h.act(c, h.commands.DeclineReschedule)
}

// @Summary Withdraw reschedule
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Router /bookings/{id}/reschedule/withdraw [post]
func (h *BookingHandler) WithdrawReschedule(c *gin.Context) {
	h.act(c, h.commands.WithdrawReschedule)
}

// act runs an id-only command and replies 204 on success.
func (h *BookingHandler) act(c *gin.Context, cmd func(ctx context.Context, id uuid.UUID) error) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := cmd(c.Request.Context(), id); err != nil {
		respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

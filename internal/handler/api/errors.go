package api

import (
	"errors"
	"net/http"

	"crewcal/internal/handler/httperr"
	"crewcal/internal/infra"
	"crewcal/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondCommandError translates usecase sentinels into HTTP statuses. The
// mapping is shared by every handler so the same failure always looks the
// same on the wire.
func respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrDayBlockNotFound),
		infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})

	case errors.Is(err, errs.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": "Another command for this resource is in flight"})

	case infra.IsKind(err, infra.KindStaleVersion):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource was modified concurrently"})

	case errors.Is(err, errs.ErrDateOccupied):
		c.JSON(http.StatusConflict, gin.H{"error": "Date has active bookings"})

	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrNoReschedulePending),
		errors.Is(err, errs.ErrRescheduleOutstanding):
		c.JSON(http.StatusConflict, gin.H{"error": "Command not legal for current state"})

	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrPastDate),
		errors.Is(err, errs.ErrEmptyDates),
		errors.Is(err, errs.ErrInvalidDayKey),
		errors.Is(err, errs.ErrInvalidRequestType),
		errors.Is(err, errs.ErrInvalidRate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

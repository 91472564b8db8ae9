package schedule

import (
	"crewcal/internal/domain/booking"

	"github.com/google/uuid"
)

// DayStatus is the resolved availability outcome for one provider-day pair
// from one viewer's perspective.
type DayStatus string

const (
	DayAvailable       DayStatus = "available"
	DayPending         DayStatus = "pending"
	DayOptionConfirmed DayStatus = "option-confirmed"
	DayFixConfirmed    DayStatus = "fix-confirmed"
	// DayFixOpen is the provider's dual indicator: fix-confirmed with the
	// open-for-more flag set. Informational only; the day stays unbookable
	// in the provider's own view.
	DayFixOpen DayStatus = "fix-open"
	// DayBooked is what a non-owning requester sees on a fix-confirmed day:
	// occupied, with no hint of who owns it.
	DayBooked      DayStatus = "booked"
	DayBlocked     DayStatus = "blocked"
	DayBlockedOpen DayStatus = "blocked-open"
)

func (s DayStatus) String() string {
	return string(s)
}

// Viewer is the perspective a day status is resolved for: either the
// provider's own calendar or one requester's view of it.
type Viewer struct {
	requesterID *uuid.UUID
}

func ProviderViewer() Viewer {
	return Viewer{}
}

func RequesterViewer(requesterID uuid.UUID) Viewer {
	id := requesterID
	return Viewer{requesterID: &id}
}

func (v Viewer) IsProvider() bool {
	return v.requesterID == nil
}

func (v Viewer) RequesterID() *uuid.UUID {
	return v.requesterID
}

// Owns reports whether the viewer is the requester that placed the booking.
// The provider never "owns" a booking in the privacy sense.
func (v Viewer) Owns(b *booking.Booking) bool {
	return v.requesterID != nil && *v.requesterID == b.RequesterID()
}

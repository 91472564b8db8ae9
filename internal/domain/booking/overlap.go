package booking

import (
	"crewcal/internal/domain/daykey"

	"github.com/google/uuid"
)

// FindOverlapping returns every non-terminal booking from the given slice
// whose dates intersect the set, excluding excludeID. Passing the booking's
// own id as excludeID keeps a reschedule proposal from conflicting with
// itself.
func FindOverlapping(all []*Booking, dates daykey.Set, excludeID uuid.UUID) []*Booking {
	var out []*Booking
	for _, b := range all {
		if b.ID() == excludeID {
			continue
		}
		if b.Status().IsTerminal() {
			continue
		}
		if b.dates.Intersects(dates) {
			out = append(out, b)
		}
	}
	return out
}

// OccupyingDay filters to the bookings that claim the given day.
func OccupyingDay(all []*Booking, day daykey.Key, excludeID uuid.UUID) []*Booking {
	var out []*Booking
	for _, b := range all {
		if b.ID() == excludeID {
			continue
		}
		if b.Occupies(day) {
			out = append(out, b)
		}
	}
	return out
}

// ConflictsFor maps overlapping bookings into reschedule conflict summaries
// against the proposed dates.
func ConflictsFor(overlapping []*Booking, proposed daykey.Set) []RescheduleConflict {
	out := make([]RescheduleConflict, 0, len(overlapping))
	for _, b := range overlapping {
		out = append(out, RescheduleConflict{
			BookingID: b.ID(),
			Status:    b.Status(),
			Dates:     b.dates.Intersection(proposed),
		})
	}
	return out
}

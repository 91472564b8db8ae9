package schedule

import (
	"crewcal/internal/domain/booking"
)

// ResolveInput is the snapshot the resolver works on: the day's block record
// if any, the open-for-more flag, and every booking occupying the day (with
// terminal bookings and any excluded id already filtered out by the caller).
type ResolveInput struct {
	Block       *DayBlock
	OpenForMore bool
	Bookings    []*booking.Booking
	Viewer      Viewer
}

// Resolution is the visibility/status outcome for one viewer.
type Resolution struct {
	Status     DayStatus
	Bookable   bool
	IsBlocked  bool
	HasBooking bool
	// Bookings lists only what the viewer is allowed to see.
	Bookings []*booking.Booking
}

// The resolver is an ordered rule table, first match wins:
// day-block > fix-confirmed > option-confirmed > pending > available.
// Only fix-confirmed bookings are cross-visible between requesters; options
// and pendings resolve to available for everyone but their owner. This
// ordering is the system's central invariant, keep it explicit.
type rule struct {
	name  string
	apply func(in ResolveInput) (Resolution, bool)
}

var rules = []rule{
	{name: "day-block", apply: applyDayBlock},
	{name: "fix-confirmed", apply: applyFixConfirmed},
	{name: "option-confirmed", apply: applyOptionConfirmed},
	{name: "pending", apply: applyPending},
}

// Resolve evaluates the rule table top-down. Pure: no I/O, no clock.
func Resolve(in ResolveInput) Resolution {
	for _, r := range rules {
		if res, ok := r.apply(in); ok {
			return res
		}
	}
	return Resolution{Status: DayAvailable, Bookable: true}
}

func applyDayBlock(in ResolveInput) (Resolution, bool) {
	if in.Block == nil {
		return Resolution{}, false
	}
	if in.Viewer.IsProvider() {
		status := DayBlocked
		if in.Block.Kind() == BlockKindBlockedOpen {
			status = DayBlockedOpen
		}
		return Resolution{Status: status, IsBlocked: true}, true
	}
	// blocked-open is private to the provider: requesters see a free day.
	if in.Block.Kind() == BlockKindBlockedOpen {
		return Resolution{Status: DayAvailable, Bookable: true}, true
	}
	return Resolution{Status: DayBlocked, IsBlocked: true}, true
}

func applyFixConfirmed(in ResolveInput) (Resolution, bool) {
	fixed := filterStatus(in.Bookings, booking.StatusFixConfirmed)
	if len(fixed) == 0 {
		return Resolution{}, false
	}
	if in.Viewer.IsProvider() {
		status := DayFixConfirmed
		if in.OpenForMore {
			status = DayFixOpen
		}
		return Resolution{Status: status, HasBooking: true, Bookings: fixed}, true
	}
	if ownsAny(in.Viewer, fixed) {
		return Resolution{Status: DayFixConfirmed, HasBooking: true, Bookings: owned(in.Viewer, fixed)}, true
	}
	// Another requester's fix booking is cross-visible, but open-for-more
	// reopens the day for competitors.
	if in.OpenForMore {
		return Resolution{Status: DayAvailable, Bookable: true}, true
	}
	return Resolution{Status: DayBooked, HasBooking: true}, true
}

func applyOptionConfirmed(in ResolveInput) (Resolution, bool) {
	options := filterStatus(in.Bookings, booking.StatusOptionConfirmed)
	if len(options) == 0 {
		return Resolution{}, false
	}
	if in.Viewer.IsProvider() {
		return Resolution{Status: DayOptionConfirmed, HasBooking: true, Bookings: options}, true
	}
	if ownsAny(in.Viewer, options) {
		return Resolution{Status: DayOptionConfirmed, HasBooking: true, Bookings: owned(in.Viewer, options)}, true
	}
	// Options are invisible to competing requesters.
	return Resolution{Status: DayAvailable, Bookable: true}, true
}

func applyPending(in ResolveInput) (Resolution, bool) {
	var pending []*booking.Booking
	for _, b := range in.Bookings {
		if b.Status().IsPending() {
			pending = append(pending, b)
		}
	}
	if len(pending) == 0 {
		return Resolution{}, false
	}
	if in.Viewer.IsProvider() {
		// Aggregated: several simultaneous requests still read as one
		// pending day.
		return Resolution{Status: DayPending, HasBooking: true, Bookings: pending}, true
	}
	if ownsAny(in.Viewer, pending) {
		return Resolution{Status: DayPending, HasBooking: true, Bookings: owned(in.Viewer, pending)}, true
	}
	return Resolution{Status: DayAvailable, Bookable: true}, true
}

func filterStatus(bs []*booking.Booking, s booking.Status) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range bs {
		if b.Status() == s {
			out = append(out, b)
		}
	}
	return out
}

func ownsAny(v Viewer, bs []*booking.Booking) bool {
	for _, b := range bs {
		if v.Owns(b) {
			return true
		}
	}
	return false
}

func owned(v Viewer, bs []*booking.Booking) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range bs {
		if v.Owns(b) {
			out = append(out, b)
		}
	}
	return out
}

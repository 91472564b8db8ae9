package booking

import (
	"time"

	"crewcal/internal/domain/daykey"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

// RescheduleConflict summarizes one competing booking overlapping the
// proposed dates. It is captured at proposal time so both sides see the same
// picture the requester saw.
type RescheduleConflict struct {
	BookingID uuid.UUID
	Status    Status
	Dates     daykey.Set
}

// Blocking conflicts are fix-confirmed competitors; everything else is a
// soft warning.
func (c RescheduleConflict) IsBlocking() bool {
	return c.Status == StatusFixConfirmed
}

// Reschedule is the outstanding proposal attached to a booking. It never
// touches the primary dates until accepted.
type Reschedule struct {
	newDates      daykey.Set
	originalDates daykey.Set
	requestedAt   time.Time
	newTotalCost  Money
	conflicts     []RescheduleConflict
}

func ReconstructReschedule(
	newDates, originalDates daykey.Set,
	requestedAt time.Time,
	newTotalCost Money,
	conflicts []RescheduleConflict,
) *Reschedule {
	return &Reschedule{
		newDates:      newDates,
		originalDates: originalDates,
		requestedAt:   requestedAt,
		newTotalCost:  newTotalCost,
		conflicts:     conflicts,
	}
}

func (r *Reschedule) NewDates() daykey.Set            { return r.newDates.Clone() }
func (r *Reschedule) OriginalDates() daykey.Set       { return r.originalDates.Clone() }
func (r *Reschedule) RequestedAt() time.Time          { return r.requestedAt }
func (r *Reschedule) NewTotalCost() Money             { return r.newTotalCost }
func (r *Reschedule) Conflicts() []RescheduleConflict { return r.conflicts }

func (r *Reschedule) HasConflicts() bool {
	return len(r.conflicts) > 0
}

func (r *Reschedule) HasBlockingConflicts() bool {
	for _, c := range r.conflicts {
		if c.IsBlocking() {
			return true
		}
	}
	return false
}

func (r *Reschedule) clone() *Reschedule {
	cp := *r
	cp.newDates = r.newDates.Clone()
	cp.originalDates = r.originalDates.Clone()
	cp.conflicts = make([]RescheduleConflict, len(r.conflicts))
	copy(cp.conflicts, r.conflicts)
	return &cp
}

// RequestReschedule attaches a proposal. Legal on any non-terminal booking
// with no proposal already outstanding; the new dates must be valid future
// days.
func (b *Booking) RequestReschedule(newDates daykey.Set, conflicts []RescheduleConflict, now time.Time) error {
	if b.status.IsTerminal() {
		return errs.Mark(errs.New("cannot reschedule a "+b.status.String()+" booking"), errs.ErrInvalidState)
	}
	if b.reschedule != nil {
		return errs.Mark(errs.ErrRescheduleOutstanding, errs.ErrInvalidState)
	}
	if len(newDates) == 0 {
		return errs.Mark(errs.ErrEmptyDates, errs.ErrValidation)
	}
	if newDates.AnyBefore(daykey.FromTime(now)) {
		return errs.Mark(errs.ErrPastDate, errs.ErrValidation)
	}

	b.reschedule = &Reschedule{
		newDates:      newDates.Clone(),
		originalDates: b.dates.Clone(),
		requestedAt:   now,
		newTotalCost:  b.rate.Total(len(newDates)),
		conflicts:     conflicts,
	}
	return nil
}

// AcceptReschedule applies the proposal: dates and total cost are
// overwritten, the sub-record cleared.
func (b *Booking) AcceptReschedule(now time.Time) error {
	if b.status.IsTerminal() {
		return errs.Mark(errs.New("cannot resolve a proposal on a "+b.status.String()+" booking"), errs.ErrInvalidState)
	}
	if b.reschedule == nil {
		return errs.Mark(errs.ErrNoReschedulePending, errs.ErrInvalidState)
	}
	b.dates = b.reschedule.newDates.Clone()
	b.totalCost = b.reschedule.newTotalCost
	b.rescheduledAt = &now
	b.reschedule = nil
	return nil
}

// DeclineReschedule drops the proposal without touching dates or cost.
func (b *Booking) DeclineReschedule() error {
	if b.status.IsTerminal() {
		return errs.Mark(errs.New("cannot resolve a proposal on a "+b.status.String()+" booking"), errs.ErrInvalidState)
	}
	if b.reschedule == nil {
		return errs.Mark(errs.ErrNoReschedulePending, errs.ErrInvalidState)
	}
	b.reschedule = nil
	return nil
}

// WithdrawReschedule is the requester pulling its own proposal back; same
// effect as a decline.
func (b *Booking) WithdrawReschedule() error {
	if b.status.IsTerminal() {
		return errs.Mark(errs.New("cannot resolve a proposal on a "+b.status.String()+" booking"), errs.ErrInvalidState)
	}
	if b.reschedule == nil {
		return errs.Mark(errs.ErrNoReschedulePending, errs.ErrInvalidState)
	}
	b.reschedule = nil
	return nil
}

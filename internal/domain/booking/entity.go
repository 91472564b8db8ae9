package booking

import (
	"time"

	"crewcal/internal/domain/daykey"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingProvider  = errs.New("provider is required")
	ErrMissingRequester = errs.New("requester is required")
	ErrMissingProject   = errs.New("project is required")
	ErrMissingPhase     = errs.New("phase is required")
)

// Booking is the aggregate root of the lifecycle state machine. All state
// changes go through the transition methods below; they enforce the directed
// graph declared in types.go.
type Booking struct {
	id          uuid.UUID
	status      Status
	providerID  uuid.UUID
	requesterID uuid.UUID
	projectID   uuid.UUID
	phaseID     uuid.UUID
	dates       daykey.Set
	rate        Rate
	totalCost   Money

	requestedAt   time.Time
	confirmedAt   *time.Time
	fixedAt       *time.Time
	cancelledAt   *time.Time
	rescheduledAt *time.Time

	cancelledBy  Role
	cancelReason string

	reschedule *Reschedule

	// version backs optimistic concurrency in the store layer.
	version int64
}

func NewBooking(
	requestType RequestType,
	providerID, requesterID, projectID, phaseID uuid.UUID,
	dates daykey.Set,
	rate Rate,
	now time.Time,
) (*Booking, error) {
	if !requestType.IsValid() {
		return nil, errs.Mark(errs.New("unknown request type: "+string(requestType)), errs.ErrInvalidRequestType)
	}
	if providerID == uuid.Nil {
		return nil, errs.Mark(ErrMissingProvider, errs.ErrValidation)
	}
	if requesterID == uuid.Nil {
		return nil, errs.Mark(ErrMissingRequester, errs.ErrValidation)
	}
	if projectID == uuid.Nil {
		return nil, errs.Mark(ErrMissingProject, errs.ErrValidation)
	}
	if phaseID == uuid.Nil {
		return nil, errs.Mark(ErrMissingPhase, errs.ErrValidation)
	}
	if len(dates) == 0 {
		return nil, errs.Mark(errs.ErrEmptyDates, errs.ErrValidation)
	}
	if dates.AnyBefore(daykey.FromTime(now)) {
		return nil, errs.Mark(errs.ErrPastDate, errs.ErrValidation)
	}

	return &Booking{
		id:          uuid.New(),
		status:      requestType.InitialStatus(),
		providerID:  providerID,
		requesterID: requesterID,
		projectID:   projectID,
		phaseID:     phaseID,
		dates:       dates.Clone(),
		rate:        rate,
		totalCost:   rate.Total(len(dates)),
		requestedAt: now,
		version:     1,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	status Status,
	providerID, requesterID, projectID, phaseID uuid.UUID,
	dates daykey.Set,
	rate Rate,
	totalCost Money,
	requestedAt time.Time,
	confirmedAt, fixedAt, cancelledAt, rescheduledAt *time.Time,
	cancelledBy Role,
	cancelReason string,
	reschedule *Reschedule,
	version int64,
) *Booking {
	return &Booking{
		id:            id,
		status:        status,
		providerID:    providerID,
		requesterID:   requesterID,
		projectID:     projectID,
		phaseID:       phaseID,
		dates:         dates,
		rate:          rate,
		totalCost:     totalCost,
		requestedAt:   requestedAt,
		confirmedAt:   confirmedAt,
		fixedAt:       fixedAt,
		cancelledAt:   cancelledAt,
		rescheduledAt: rescheduledAt,
		cancelledBy:   cancelledBy,
		cancelReason:  cancelReason,
		reschedule:    reschedule,
		version:       version,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) ProviderID() uuid.UUID    { return b.providerID }
func (b *Booking) RequesterID() uuid.UUID   { return b.requesterID }
func (b *Booking) ProjectID() uuid.UUID     { return b.projectID }
func (b *Booking) PhaseID() uuid.UUID       { return b.phaseID }
func (b *Booking) Dates() daykey.Set        { return b.dates.Clone() }
func (b *Booking) Rate() Rate               { return b.rate }
func (b *Booking) TotalCost() Money         { return b.totalCost }
func (b *Booking) RequestedAt() time.Time   { return b.requestedAt }
func (b *Booking) ConfirmedAt() *time.Time  { return b.confirmedAt }
func (b *Booking) FixedAt() *time.Time      { return b.fixedAt }
func (b *Booking) CancelledAt() *time.Time  { return b.cancelledAt }
func (b *Booking) RescheduledAt() *time.Time { return b.rescheduledAt }
func (b *Booking) CancelledBy() Role        { return b.cancelledBy }
func (b *Booking) CancelReason() string     { return b.cancelReason }
func (b *Booking) Reschedule() *Reschedule  { return b.reschedule }
func (b *Booking) Version() int64           { return b.version }

// SetVersion is for the store layer only, after a successful versioned write.
func (b *Booking) SetVersion(v int64) { b.version = v }

// Occupies reports whether this booking claims the given day for conflict
// and availability purposes. Terminal bookings never occupy anything.
func (b *Booking) Occupies(day daykey.Key) bool {
	return !b.status.IsTerminal() && b.dates.Contains(day)
}

func (b *Booking) transitionTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return errs.Mark(
			errs.New("illegal transition "+b.status.String()+" -> "+next.String()),
			errs.ErrInvalidState,
		)
	}
	b.status = next
	return nil
}

// Accept moves a pending booking to its matching confirmed status.
func (b *Booking) Accept(now time.Time) error {
	if !b.status.IsPending() {
		return errs.Mark(errs.New("accept requires a pending status, got "+b.status.String()), errs.ErrInvalidState)
	}
	next := StatusOptionConfirmed
	if b.status == StatusFixPending {
		next = StatusFixConfirmed
	}
	if err := b.transitionTo(next); err != nil {
		return err
	}
	b.confirmedAt = &now
	if next == StatusFixConfirmed {
		b.fixedAt = &now
	}
	return nil
}

// Decline resolves a pending booking negatively, provider-initiated.
func (b *Booking) Decline(now time.Time) error {
	if !b.status.IsPending() {
		return errs.Mark(errs.New("decline requires a pending status, got "+b.status.String()), errs.ErrInvalidState)
	}
	if err := b.transitionTo(StatusDeclined); err != nil {
		return err
	}
	b.cancelledAt = &now
	b.cancelledBy = RoleProvider
	b.reschedule = nil
	return nil
}

// ForceDecline is the declineOverlapping path: the provider clears a
// competitor that is pending or option-confirmed. Fix-confirmed and terminal
// bookings are out of reach.
func (b *Booking) ForceDecline(now time.Time) error {
	if !b.status.IsPending() && b.status != StatusOptionConfirmed {
		return errs.Mark(errs.New("force decline not legal from "+b.status.String()), errs.ErrInvalidState)
	}
	b.status = StatusDeclined
	b.cancelledAt = &now
	b.cancelledBy = RoleProvider
	b.reschedule = nil
	return nil
}

// Withdraw resolves a pending booking negatively, requester-initiated.
func (b *Booking) Withdraw(now time.Time) error {
	if !b.status.IsPending() {
		return errs.Mark(errs.New("withdraw requires a pending status, got "+b.status.String()), errs.ErrInvalidState)
	}
	if err := b.transitionTo(StatusWithdrawn); err != nil {
		return err
	}
	b.cancelledAt = &now
	b.cancelledBy = RoleRequester
	b.reschedule = nil
	return nil
}

// Cancel ends a confirmed booking, recording who pulled out and why.
func (b *Booking) Cancel(now time.Time, reason string, by Role) error {
	if !b.status.IsConfirmed() {
		return errs.Mark(errs.New("cancel requires a confirmed status, got "+b.status.String()), errs.ErrInvalidState)
	}
	if !by.IsValid() {
		return errs.Mark(errs.New("unknown cancelling role: "+string(by)), errs.ErrValidation)
	}
	if err := b.transitionTo(StatusCancelled); err != nil {
		return err
	}
	b.cancelledAt = &now
	b.cancelledBy = by
	b.cancelReason = reason
	b.reschedule = nil
	return nil
}

// ConvertToFix upgrades a confirmed option to a fix booking directly,
// without a second acceptance round.
func (b *Booking) ConvertToFix(now time.Time) error {
	if b.status != StatusOptionConfirmed {
		return errs.Mark(errs.New("convert requires option_confirmed, got "+b.status.String()), errs.ErrInvalidState)
	}
	if err := b.transitionTo(StatusFixConfirmed); err != nil {
		return err
	}
	b.fixedAt = &now
	return nil
}

// Clone returns a deep copy. Stores hand out clones so callers never alias
// persisted state.
func (b *Booking) Clone() *Booking {
	cp := *b
	cp.dates = b.dates.Clone()
	cp.confirmedAt = cloneTime(b.confirmedAt)
	cp.fixedAt = cloneTime(b.fixedAt)
	cp.cancelledAt = cloneTime(b.cancelledAt)
	cp.rescheduledAt = cloneTime(b.rescheduledAt)
	if b.reschedule != nil {
		cp.reschedule = b.reschedule.clone()
	}
	return &cp
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

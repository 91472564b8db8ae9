package queries

import (
	"context"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/notification"
	"crewcal/internal/domain/schedule"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID             uuid.UUID       `json:"id"`
	Status         string          `json:"status"`
	ProviderID     uuid.UUID       `json:"provider_id"`
	RequesterID    uuid.UUID       `json:"requester_id"`
	ProjectID      uuid.UUID       `json:"project_id"`
	PhaseID        uuid.UUID       `json:"phase_id"`
	Dates          []string        `json:"dates"`
	RateType       string          `json:"rate_type"`
	DayRateCents   int64           `json:"day_rate_cents"`
	FlatRateCents  int64           `json:"flat_rate_cents"`
	TotalCostCents int64           `json:"total_cost_cents"`
	RequestedAt    time.Time       `json:"requested_at"`
	ConfirmedAt    *time.Time      `json:"confirmed_at,omitempty"`
	FixedAt        *time.Time      `json:"fixed_at,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	RescheduledAt  *time.Time      `json:"rescheduled_at,omitempty"`
	CancelledBy    string          `json:"cancelled_by,omitempty"`
	CancelReason   string          `json:"cancel_reason,omitempty"`
	Reschedule     *RescheduleView `json:"reschedule,omitempty"`
}

type RescheduleView struct {
	NewDates             []string       `json:"new_dates"`
	OriginalDates        []string       `json:"original_dates"`
	RequestedAt          time.Time      `json:"requested_at"`
	NewTotalCostCents    int64          `json:"new_total_cost_cents"`
	Conflicts            []ConflictView `json:"conflicts"`
	HasConflicts         bool           `json:"has_conflicts"`
	HasBlockingConflicts bool           `json:"has_blocking_conflicts"`
}

type ConflictView struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Dates     []string  `json:"dates"`
}

type DayStatusView struct {
	Date       string         `json:"date"`
	Status     string         `json:"status"`
	Bookable   bool           `json:"bookable"`
	IsBlocked  bool           `json:"is_blocked"`
	HasBooking bool           `json:"has_booking"`
	Bookings   []*BookingView `json:"bookings,omitempty"`
}

type NotificationView struct {
	ID               uuid.UUID `json:"id"`
	ForRole          string    `json:"for_role"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"created_at"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	RelatedBookingID uuid.UUID `json:"related_booking_id,omitempty"`
}

// Read stores implemented by the infra layer. A call sees a consistent
// snapshot: partially applied mutations are never observable.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*booking.Booking, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*booking.Booking, error)
}

type ScheduleReadStore interface {
	// FindBlock returns (nil, nil) when the day has no block.
	FindBlock(ctx context.Context, providerID uuid.UUID, date daykey.Key) (*schedule.DayBlock, error)
	IsOpenForMore(ctx context.Context, providerID uuid.UUID, date daykey.Key) (bool, error)
}

type NotificationReadStore interface {
	ListByRole(ctx context.Context, role booking.Role) ([]*notification.Notification, error)
}

func NewBookingView(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:             b.ID(),
		Status:         b.Status().String(),
		ProviderID:     b.ProviderID(),
		RequesterID:    b.RequesterID(),
		ProjectID:      b.ProjectID(),
		PhaseID:        b.PhaseID(),
		Dates:          b.Dates().Strings(),
		RateType:       string(b.Rate().Type()),
		DayRateCents:   b.Rate().DayRate().Cents(),
		FlatRateCents:  b.Rate().FlatRate().Cents(),
		TotalCostCents: b.TotalCost().Cents(),
		RequestedAt:    b.RequestedAt(),
		ConfirmedAt:    b.ConfirmedAt(),
		FixedAt:        b.FixedAt(),
		CancelledAt:    b.CancelledAt(),
		RescheduledAt:  b.RescheduledAt(),
		CancelledBy:    string(b.CancelledBy()),
		CancelReason:   b.CancelReason(),
	}
	if r := b.Reschedule(); r != nil {
		v.Reschedule = newRescheduleView(r)
	}
	return v
}

func newRescheduleView(r *booking.Reschedule) *RescheduleView {
	conflicts := make([]ConflictView, 0, len(r.Conflicts()))
	for _, c := range r.Conflicts() {
		conflicts = append(conflicts, ConflictView{
			BookingID: c.BookingID,
			Status:    c.Status.String(),
			Dates:     c.Dates.Strings(),
		})
	}
	return &RescheduleView{
		NewDates:             r.NewDates().Strings(),
		OriginalDates:        r.OriginalDates().Strings(),
		RequestedAt:          r.RequestedAt(),
		NewTotalCostCents:    r.NewTotalCost().Cents(),
		Conflicts:            conflicts,
		HasConflicts:         r.HasConflicts(),
		HasBlockingConflicts: r.HasBlockingConflicts(),
	}
}

func NewNotificationView(n *notification.Notification) *NotificationView {
	return &NotificationView{
		ID:               n.ID,
		ForRole:          string(n.ForRole),
		Read:             n.Read,
		CreatedAt:        n.CreatedAt,
		Type:             string(n.Type),
		Title:            n.Title,
		Message:          n.Message,
		RelatedBookingID: n.RelatedBookingID,
	}
}

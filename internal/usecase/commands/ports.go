package commands

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/notification"
	"crewcal/internal/domain/schedule"

	"github.com/google/uuid"
)

// UnitOfWork brackets one command's mutations. Everything inside fn is
// applied atomically with respect to readers: a query never observes a
// booking update without the notifications that describe it.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Schedule() ScheduleRepository
	Notifications() NotificationRepository
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	// Update rejects writes based on a stale read via the version counter.
	Update(ctx context.Context, b *booking.Booking) error
}

type ScheduleRepository interface {
	FindBlock(ctx context.Context, providerID uuid.UUID, date daykey.Key) (*schedule.DayBlock, error)
	PutBlock(ctx context.Context, block *schedule.DayBlock) error
	DeleteBlock(ctx context.Context, providerID uuid.UUID, date daykey.Key) error
	IsOpenForMore(ctx context.Context, providerID uuid.UUID, date daykey.Key) (bool, error)
	SetOpenForMore(ctx context.Context, providerID uuid.UUID, date daykey.Key, open bool) error
}

type NotificationRepository interface {
	Append(ctx context.Context, n *notification.Notification) error
	MarkRead(ctx context.Context, id uuid.UUID) error
}

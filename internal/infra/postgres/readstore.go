package postgres

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/notification"
	"crewcal/internal/domain/schedule"

	"github.com/google/uuid"
)

// Read-store methods run against the pool outside any transaction.

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return (&bookingRepo{db: s.pool}).FindByID(ctx, id)
}

func (s *Store) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*booking.Booking, error) {
	return (&bookingRepo{db: s.pool}).ListByProvider(ctx, providerID)
}

func (s *Store) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*booking.Booking, error) {
	return (&bookingRepo{db: s.pool}).ListByRequester(ctx, requesterID)
}

func (s *Store) FindBlock(ctx context.Context, providerID uuid.UUID, date daykey.Key) (*schedule.DayBlock, error) {
	return (&scheduleRepo{db: s.pool}).FindBlock(ctx, providerID, date)
}

func (s *Store) IsOpenForMore(ctx context.Context, providerID uuid.UUID, date daykey.Key) (bool, error) {
	return (&scheduleRepo{db: s.pool}).IsOpenForMore(ctx, providerID, date)
}

func (s *Store) ListByRole(ctx context.Context, role booking.Role) ([]*notification.Notification, error) {
	return (&notificationRepo{db: s.pool}).ListByRole(ctx, role)
}

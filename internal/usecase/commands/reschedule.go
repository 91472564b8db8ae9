package commands

import (
	"context"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/notification"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

// RequestReschedule attaches a proposal with its conflict summary. The
// booking's own dates are excluded from conflict detection so it does not
// collide with itself.
func (c *bookingCommandsImpl) RequestReschedule(ctx context.Context, id uuid.UUID, newDates []string) error {
	dates, err := daykey.NewSet(newDates)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		all, err := tx.Bookings().ListByProvider(ctx, b.ProviderID())
		if err != nil {
			return err
		}
		overlapping := booking.FindOverlapping(all, dates, b.ID())
		conflicts := booking.ConflictsFor(overlapping, dates)

		if err := b.RequestReschedule(dates, conflicts, now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.RescheduleRequested(b, now))
	})
}

func (c *bookingCommandsImpl) AcceptReschedule(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.AcceptReschedule(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.RescheduleAccepted(b, now))
	})
}

func (c *bookingCommandsImpl) DeclineReschedule(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.DeclineReschedule(); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.RescheduleDeclined(b, now))
	})
}

func (c *bookingCommandsImpl) WithdrawReschedule(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.WithdrawReschedule(); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.RescheduleWithdrawn(b, now))
	})
}

package commands

import (
	"context"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/notification"
	"crewcal/internal/infra"
	"crewcal/internal/pkg/clock"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	RequestType   string
	ProviderID    uuid.UUID
	RequesterID   uuid.UUID
	ProjectID     uuid.UUID
	PhaseID       uuid.UUID
	Dates         []string
	RateType      string
	DayRateCents  int64
	FlatRateCents int64
}

// BookingCommands is the write side of the booking lifecycle. Every method
// is guarded so at most one command per booking id is in flight; a second
// concurrent call fails with ErrConcurrentModification.
type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	Accept(ctx context.Context, id uuid.UUID) error
	Decline(ctx context.Context, id uuid.UUID) error
	Withdraw(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID, reason string, by booking.Role) error
	ConvertOptionToFix(ctx context.Context, id uuid.UUID) error
	DeclineOverlapping(ctx context.Context, id uuid.UUID) (int, error)

	RequestReschedule(ctx context.Context, id uuid.UUID, newDates []string) error
	AcceptReschedule(ctx context.Context, id uuid.UUID) error
	DeclineReschedule(ctx context.Context, id uuid.UUID) error
	WithdrawReschedule(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   UnitOfWork
	guard *InflightGuard
	clock clock.Clock
}

func NewBookingCommands(uow UnitOfWork, guard *InflightGuard, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, guard: guard, clock: clk}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	dates, err := daykey.NewSet(params.Dates)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	rate, err := buildRate(params)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrValidation)
	}

	now := c.clock.Now()
	b, err := booking.NewBooking(
		booking.RequestType(params.RequestType),
		params.ProviderID, params.RequesterID, params.ProjectID, params.PhaseID,
		dates, rate, now,
	)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.BookingRequested(b, now))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func buildRate(params CreateBookingParams) (booking.Rate, error) {
	switch booking.RateType(params.RateType) {
	case booking.RateDaily:
		return booking.NewDailyRate(booking.NewMoney(params.DayRateCents))
	case booking.RateFlat:
		return booking.NewFlatRate(booking.NewMoney(params.FlatRateCents))
	default:
		return booking.Rate{}, errs.Mark(errs.New("unknown rate type: "+params.RateType), errs.ErrInvalidRate)
	}
}

func (c *bookingCommandsImpl) Accept(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.Accept(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.BookingConfirmed(b, now))
	})
}

func (c *bookingCommandsImpl) Decline(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.Decline(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.BookingDeclined(b, now))
	})
}

func (c *bookingCommandsImpl) Withdraw(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.Withdraw(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.BookingWithdrawn(b, now))
	})
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, reason string, by booking.Role) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.Cancel(now, reason, by); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.BookingCancelled(b, by, now))
	})
}

// ConvertOptionToFix upgrades the option and notifies the requesters of
// every other option-confirmed booking on the same dates that they were
// overtaken. The competitors' status is deliberately left untouched.
func (c *bookingCommandsImpl) ConvertOptionToFix(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, id, func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error {
		if err := b.ConvertToFix(now); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}

		all, err := tx.Bookings().ListByProvider(ctx, b.ProviderID())
		if err != nil {
			return err
		}
		for _, other := range booking.FindOverlapping(all, b.Dates(), b.ID()) {
			if other.Status() != booking.StatusOptionConfirmed {
				continue
			}
			if err := tx.Notifications().Append(ctx, notification.OptionOvertaken(other, now)); err != nil {
				return err
			}
		}

		if err := tx.Notifications().Append(ctx, notification.OptionConverted(b, booking.RoleProvider, now)); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.OptionConverted(b, booking.RoleRequester, now))
	})
}

// DeclineOverlapping force-declines every pending or option-confirmed
// competitor on the booking's dates. Returns how many were declined.
func (c *bookingCommandsImpl) DeclineOverlapping(ctx context.Context, id uuid.UUID) (int, error) {
	release, err := c.guard.Acquire(id.String())
	if err != nil {
		return 0, err
	}
	defer release()

	now := c.clock.Now()
	declined := 0
	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		declined = 0
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return markNotFound(err)
		}
		all, err := tx.Bookings().ListByProvider(ctx, b.ProviderID())
		if err != nil {
			return err
		}
		for _, other := range booking.FindOverlapping(all, b.Dates(), b.ID()) {
			if !other.Status().IsPending() && other.Status() != booking.StatusOptionConfirmed {
				continue
			}
			if err := other.ForceDecline(now); err != nil {
				return err
			}
			if err := tx.Bookings().Update(ctx, other); err != nil {
				return err
			}
			if err := tx.Notifications().Append(ctx, notification.BookingDeclined(other, now)); err != nil {
				return err
			}
			declined++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return declined, nil
}

// mutate runs the common guard/load/apply/commit pattern shared by all
// single-booking commands. The timestamp is taken once so every mutation
// within the command shares the same instant.
func (c *bookingCommandsImpl) mutate(
	ctx context.Context,
	id uuid.UUID,
	apply func(ctx context.Context, tx Tx, b *booking.Booking, now time.Time) error,
) error {
	release, err := c.guard.Acquire(id.String())
	if err != nil {
		return err
	}
	defer release()

	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return markNotFound(err)
		}
		return apply(ctx, tx, b, now)
	})
}

func markNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrBookingNotFound)
	}
	return err
}

package commands

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/notification"
	"crewcal/internal/domain/schedule"
	"crewcal/internal/pkg/clock"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

// ScheduleCommands manages the provider's self-imposed calendar overrides.
// Day blocks live in their own registry, not the booking store.
type ScheduleCommands interface {
	BlockDay(ctx context.Context, providerID uuid.UUID, date string) error
	BlockDayOpen(ctx context.Context, providerID uuid.UUID, date string) error
	UnblockDay(ctx context.Context, providerID uuid.UUID, date string) error
	ToggleOpenForMore(ctx context.Context, providerID uuid.UUID, date string) error
}

type scheduleCommandsImpl struct {
	uow   UnitOfWork
	guard *InflightGuard
	clock clock.Clock
}

func NewScheduleCommands(uow UnitOfWork, guard *InflightGuard, clk clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow, guard: guard, clock: clk}
}

func (c *scheduleCommandsImpl) BlockDay(ctx context.Context, providerID uuid.UUID, date string) error {
	return c.block(ctx, providerID, date, schedule.BlockKindBlocked)
}

func (c *scheduleCommandsImpl) BlockDayOpen(ctx context.Context, providerID uuid.UUID, date string) error {
	return c.block(ctx, providerID, date, schedule.BlockKindBlockedOpen)
}

// block fails when any non-terminal booking occupies the date; a provider
// cannot block a day they already sold.
func (c *scheduleCommandsImpl) block(ctx context.Context, providerID uuid.UUID, date string, kind schedule.BlockKind) error {
	day, err := daykey.New(date)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	release, err := c.guard.Acquire(blockKey(providerID, day))
	if err != nil {
		return err
	}
	defer release()

	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		all, err := tx.Bookings().ListByProvider(ctx, providerID)
		if err != nil {
			return err
		}
		if len(booking.OccupyingDay(all, day, uuid.Nil)) > 0 {
			return errs.ErrDateOccupied
		}

		blk, err := schedule.NewDayBlock(providerID, day, kind, now)
		if err != nil {
			return err
		}
		if err := tx.Schedule().PutBlock(ctx, blk); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx,
			notification.DayBlocked(day.String(), kind == schedule.BlockKindBlockedOpen, now))
	})
}

func (c *scheduleCommandsImpl) UnblockDay(ctx context.Context, providerID uuid.UUID, date string) error {
	day, err := daykey.New(date)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	release, err := c.guard.Acquire(blockKey(providerID, day))
	if err != nil {
		return err
	}
	defer release()

	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.Schedule().DeleteBlock(ctx, providerID, day); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.DayUnblocked(day.String(), now))
	})
}

// ToggleOpenForMore flips the flag regardless of booking state; it only
// becomes meaningful next to a fix-confirmed booking on that date.
func (c *scheduleCommandsImpl) ToggleOpenForMore(ctx context.Context, providerID uuid.UUID, date string) error {
	day, err := daykey.New(date)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	release, err := c.guard.Acquire(blockKey(providerID, day))
	if err != nil {
		return err
	}
	defer release()

	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		open, err := tx.Schedule().IsOpenForMore(ctx, providerID, day)
		if err != nil {
			return err
		}
		if err := tx.Schedule().SetOpenForMore(ctx, providerID, day, !open); err != nil {
			return err
		}
		return tx.Notifications().Append(ctx, notification.OpenForMoreToggled(day.String(), !open, now))
	})
}

func blockKey(providerID uuid.UUID, day daykey.Key) string {
	return providerID.String() + "/" + day.String()
}

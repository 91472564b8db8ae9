package commands

import (
	"context"

	"crewcal/internal/pkg/clock"

	"github.com/google/uuid"
)

// NotificationCommands covers the only mutation the log allows: marking a
// record read.
type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow   UnitOfWork
	clock clock.Clock
}

func NewNotificationCommands(uow UnitOfWork, clk clock.Clock) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, clock: clk}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Notifications().MarkRead(ctx, id)
	})
}

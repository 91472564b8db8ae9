//go:build unit

package commands_test

import (
	"context"
	"testing"

	"crewcal/internal/domain/schedule"
	"crewcal/internal/pkg/errs"
	"crewcal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockDay(t *testing.T) {
	ctx := context.Background()

	t.Run("block and unblock a free day", func(t *testing.T) {
		e := newEnv()
		provider := uuid.New()
		require.NoError(t, e.schedule.BlockDay(ctx, provider, "2026-03-10"))

		blk, err := e.store.FindBlock(ctx, provider, "2026-03-10")
		require.NoError(t, err)
		require.NotNil(t, blk)
		assert.Equal(t, schedule.BlockKindBlocked, blk.Kind())

		require.NoError(t, e.schedule.UnblockDay(ctx, provider, "2026-03-10"))
		blk, err = e.store.FindBlock(ctx, provider, "2026-03-10")
		require.NoError(t, err)
		assert.Nil(t, blk)
	})

	t.Run("open variant records the kind", func(t *testing.T) {
		e := newEnv()
		provider := uuid.New()
		require.NoError(t, e.schedule.BlockDayOpen(ctx, provider, "2026-03-10"))

		blk, err := e.store.FindBlock(ctx, provider, "2026-03-10")
		require.NoError(t, err)
		require.NotNil(t, blk)
		assert.Equal(t, schedule.BlockKindBlockedOpen, blk.Kind())
	})

	t.Run("occupied day cannot be blocked", func(t *testing.T) {
		e := newEnv()
		provider := uuid.New()
		e.create(t, func(b *builder.BookingBuilder) { b.ProviderID = provider })

		err := e.schedule.BlockDay(ctx, provider, "2026-03-10")
		assert.ErrorIs(t, err, errs.ErrDateOccupied)
	})

	t.Run("terminal booking does not occupy the day", func(t *testing.T) {
		e := newEnv()
		provider := uuid.New()
		id := e.create(t, func(b *builder.BookingBuilder) { b.ProviderID = provider })
		require.NoError(t, e.bookings.Decline(ctx, id))

		assert.NoError(t, e.schedule.BlockDay(ctx, provider, "2026-03-10"))
	})

	t.Run("malformed date", func(t *testing.T) {
		e := newEnv()
		err := e.schedule.BlockDay(ctx, uuid.New(), "10.03.2026")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestToggleOpenForMore(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	provider := uuid.New()

	require.NoError(t, e.schedule.ToggleOpenForMore(ctx, provider, "2026-03-10"))
	open, err := e.store.IsOpenForMore(ctx, provider, "2026-03-10")
	require.NoError(t, err)
	assert.True(t, open)

	require.NoError(t, e.schedule.ToggleOpenForMore(ctx, provider, "2026-03-10"))
	open, err = e.store.IsOpenForMore(ctx, provider, "2026-03-10")
	require.NoError(t, err)
	assert.False(t, open)

	// the flag is scoped to the day
	open, err = e.store.IsOpenForMore(ctx, provider, "2026-03-11")
	require.NoError(t, err)
	assert.False(t, open)
}

//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/infra"
	"crewcal/internal/infra/memstore"
	"crewcal/internal/pkg/errs"
	"crewcal/internal/usecase/commands"
	"crewcal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	return b
}

func TestWithinRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b := newBooking(t)

	err := s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		return errs.New("boom")
	})
	require.Error(t, err)

	_, err = s.FindByID(ctx, b.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "create must be rolled back")
}

func TestWithinCommits(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b := newBooking(t)

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
		return tx.Bookings().Create(ctx, b)
	}))

	got, err := s.FindByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, b.ID(), got.ID())
	assert.Equal(t, int64(1), got.Version())
}

func TestUpdateVersioning(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := memstore.New()
	b := newBooking(t)

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
		return tx.Bookings().Create(ctx, b)
	}))

	t.Run("matching version increments", func(t *testing.T) {
		fresh, err := s.FindByID(ctx, b.ID())
		require.NoError(t, err)
		require.NoError(t, fresh.Accept(now))

		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
			return tx.Bookings().Update(ctx, fresh)
		}))

		got, err := s.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version())
		assert.Equal(t, booking.StatusOptionConfirmed, got.Status())
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		stale := b.Clone() // still carries version 1
		err := s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
			return tx.Bookings().Update(ctx, stale)
		})
		assert.True(t, infra.IsKind(err, infra.KindStaleVersion))
	})

	t.Run("unknown booking", func(t *testing.T) {
		err := s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
			return tx.Bookings().Update(ctx, newBooking(t))
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestStoredEntitiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := memstore.New()
	b := newBooking(t)

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
		return tx.Bookings().Create(ctx, b)
	}))

	// mutating the caller's copy after commit must not leak into the store
	require.NoError(t, b.Decline(now))

	got, err := s.FindByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusOptionPending, got.Status())
}

func TestMarkReadUnknownNotification(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	err := s.Within(ctx, func(ctx context.Context, tx commands.Tx) error {
		return tx.Notifications().MarkRead(ctx, uuid.New())
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"crewcal/internal/domain/schedule"
	"crewcal/internal/infra/memstore"
	"crewcal/internal/pkg/clock"
	"crewcal/internal/pkg/errs"
	"crewcal/internal/usecase/commands"
	"crewcal/internal/usecase/queries"
	"crewcal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store        *memstore.Store
	bookings     commands.BookingCommands
	schedule     commands.ScheduleCommands
	availability queries.AvailabilityQueries
	provider     uuid.UUID
}

func newFixture() *fixture {
	store := memstore.New()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	guard := commands.NewInflightGuard()
	return &fixture{
		store:        store,
		bookings:     commands.NewBookingCommands(store, guard, clk),
		schedule:     commands.NewScheduleCommands(store, guard, clk),
		availability: queries.NewAvailabilityQueries(store, store),
		provider:     uuid.New(),
	}
}

func (f *fixture) create(t *testing.T, mutate func(*builder.BookingBuilder)) uuid.UUID {
	t.Helper()
	bld := builder.NewBookingBuilder()
	bld.ProviderID = f.provider
	if mutate != nil {
		bld.With(mutate)
	}
	id, err := f.bookings.Create(context.Background(), bld.BuildParams())
	require.NoError(t, err)
	return id
}

func TestDayStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("free day", func(t *testing.T) {
		f := newFixture()
		view, err := f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.ProviderViewer(), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "available", view.Status)
		assert.True(t, view.Bookable)
	})

	t.Run("fix booking seen from both sides", func(t *testing.T) {
		f := newFixture()
		requester := uuid.New()
		id := f.create(t, func(b *builder.BookingBuilder) {
			b.RequestType = "fix"
			b.RequesterID = requester
		})
		require.NoError(t, f.bookings.Accept(ctx, id))

		view, err := f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.ProviderViewer(), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "fix-confirmed", view.Status)
		require.Len(t, view.Bookings, 1)
		assert.Equal(t, id, view.Bookings[0].ID)

		view, err = f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.RequesterViewer(uuid.New()), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "booked", view.Status)
		assert.True(t, view.HasBooking)
		assert.Empty(t, view.Bookings)

		view, err = f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.RequesterViewer(requester), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "fix-confirmed", view.Status)
		require.Len(t, view.Bookings, 1)
	})

	t.Run("exclude id ignores the booking", func(t *testing.T) {
		f := newFixture()
		id := f.create(t, nil)
		require.NoError(t, f.bookings.Accept(ctx, id))

		view, err := f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.ProviderViewer(), id)
		require.NoError(t, err)
		assert.Equal(t, "available", view.Status)
	})

	t.Run("blocked day", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.schedule.BlockDay(ctx, f.provider, "2026-03-10"))

		view, err := f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.RequesterViewer(uuid.New()), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "blocked", view.Status)
		assert.True(t, view.IsBlocked)
	})

	t.Run("open-for-more hides a fix day from other requesters", func(t *testing.T) {
		f := newFixture()
		id := f.create(t, func(b *builder.BookingBuilder) { b.RequestType = "fix" })
		require.NoError(t, f.bookings.Accept(ctx, id))
		require.NoError(t, f.schedule.ToggleOpenForMore(ctx, f.provider, "2026-03-10"))

		view, err := f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.RequesterViewer(uuid.New()), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "available", view.Status)
		assert.True(t, view.Bookable)

		view, err = f.availability.DayStatus(ctx, f.provider, "2026-03-10", schedule.ProviderViewer(), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "fix-open", view.Status)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newFixture()
		_, err := f.availability.DayStatus(ctx, f.provider, "March 10th", schedule.ProviderViewer(), uuid.Nil)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestDayStatuses(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.create(t, func(b *builder.BookingBuilder) { b.Dates = []string{"2026-03-11"} })
	require.NoError(t, f.bookings.Accept(ctx, id))
	require.NoError(t, f.schedule.BlockDay(ctx, f.provider, "2026-03-12"))

	views, err := f.availability.DayStatuses(ctx, f.provider, "2026-03-10", "2026-03-13", schedule.ProviderViewer())
	require.NoError(t, err)
	require.Len(t, views, 4)

	assert.Equal(t, "2026-03-10", views[0].Date)
	assert.Equal(t, "available", views[0].Status)
	assert.Equal(t, "option-confirmed", views[1].Status)
	assert.Equal(t, "blocked", views[2].Status)
	assert.Equal(t, "available", views[3].Status)

	t.Run("reversed range", func(t *testing.T) {
		_, err := f.availability.DayStatuses(ctx, f.provider, "2026-03-13", "2026-03-10", schedule.ProviderViewer())
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("range over 366 days", func(t *testing.T) {
		_, err := f.availability.DayStatuses(ctx, f.provider, "2026-01-01", "2027-01-02", schedule.ProviderViewer())
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("full year is allowed", func(t *testing.T) {
		views, err := f.availability.DayStatuses(ctx, f.provider, "2026-01-01", "2026-12-31", schedule.ProviderViewer())
		require.NoError(t, err)
		assert.Len(t, views, 365)
	})
}

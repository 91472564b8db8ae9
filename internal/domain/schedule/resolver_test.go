//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/schedule"
	"crewcal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func bookingWithStatus(t *testing.T, requesterID uuid.UUID, status booking.Status) *booking.Booking {
	t.Helper()
	bld := builder.NewBookingBuilder()
	bld.RequesterID = requesterID
	if status == booking.StatusFixPending || status == booking.StatusFixConfirmed {
		bld.RequestType = "fix"
	}
	b, err := bld.BuildDomain()
	require.NoError(t, err)

	switch status {
	case booking.StatusOptionConfirmed, booking.StatusFixConfirmed:
		require.NoError(t, b.Accept(testNow))
	case booking.StatusOptionPending, booking.StatusFixPending:
		// initial status already
	default:
		t.Fatalf("unsupported fixture status %s", status)
	}
	return b
}

func block(t *testing.T, kind schedule.BlockKind) *schedule.DayBlock {
	t.Helper()
	blk, err := schedule.NewDayBlock(uuid.New(), "2026-03-10", kind, testNow)
	require.NoError(t, err)
	return blk
}

func TestResolveEmptyDay(t *testing.T) {
	res := schedule.Resolve(schedule.ResolveInput{Viewer: schedule.ProviderViewer()})
	assert.Equal(t, schedule.DayAvailable, res.Status)
	assert.True(t, res.Bookable)
	assert.False(t, res.HasBooking)
}

func TestResolveDayBlock(t *testing.T) {
	requester := uuid.New()

	t.Run("provider sees blocked", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Block:  block(t, schedule.BlockKindBlocked),
			Viewer: schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayBlocked, res.Status)
		assert.True(t, res.IsBlocked)
		assert.False(t, res.Bookable)
	})

	t.Run("provider sees blocked-open", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Block:  block(t, schedule.BlockKindBlockedOpen),
			Viewer: schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayBlockedOpen, res.Status)
		assert.True(t, res.IsBlocked)
	})

	t.Run("requester sees hard block", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Block:  block(t, schedule.BlockKindBlocked),
			Viewer: schedule.RequesterViewer(requester),
		})
		assert.Equal(t, schedule.DayBlocked, res.Status)
		assert.False(t, res.Bookable)
	})

	t.Run("blocked-open is invisible to requesters", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Block:  block(t, schedule.BlockKindBlockedOpen),
			Viewer: schedule.RequesterViewer(requester),
		})
		assert.Equal(t, schedule.DayAvailable, res.Status)
		assert.True(t, res.Bookable)
	})

	t.Run("block outranks a fix booking", func(t *testing.T) {
		fix := bookingWithStatus(t, requester, booking.StatusFixConfirmed)
		res := schedule.Resolve(schedule.ResolveInput{
			Block:    block(t, schedule.BlockKindBlocked),
			Bookings: []*booking.Booking{fix},
			Viewer:   schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayBlocked, res.Status)
	})
}

func TestResolveFixConfirmed(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	fix := bookingWithStatus(t, owner, booking.StatusFixConfirmed)

	t.Run("provider sees fix-confirmed", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{fix},
			Viewer:   schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayFixConfirmed, res.Status)
		assert.True(t, res.HasBooking)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("provider sees fix-open when flag set", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			OpenForMore: true,
			Bookings:    []*booking.Booking{fix},
			Viewer:      schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayFixOpen, res.Status)
		assert.False(t, res.Bookable)
	})

	t.Run("owner sees own fix booking", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{fix},
			Viewer:   schedule.RequesterViewer(owner),
		})
		assert.Equal(t, schedule.DayFixConfirmed, res.Status)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("other requester sees anonymous booked", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{fix},
			Viewer:   schedule.RequesterViewer(other),
		})
		assert.Equal(t, schedule.DayBooked, res.Status)
		assert.True(t, res.HasBooking)
		assert.Empty(t, res.Bookings, "no booking details leak across requesters")
	})

	t.Run("fix wins even for the owner of a pending request", func(t *testing.T) {
		pending := bookingWithStatus(t, other, booking.StatusOptionPending)
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{pending, fix},
			Viewer:   schedule.RequesterViewer(other),
		})
		assert.Equal(t, schedule.DayBooked, res.Status)
		assert.False(t, res.Bookable)
	})

	t.Run("open-for-more flips other requester to available", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			OpenForMore: true,
			Bookings:    []*booking.Booking{fix},
			Viewer:      schedule.RequesterViewer(other),
		})
		assert.Equal(t, schedule.DayAvailable, res.Status)
		assert.True(t, res.Bookable)
	})
}

func TestResolveOptionConfirmed(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	opt := bookingWithStatus(t, owner, booking.StatusOptionConfirmed)

	t.Run("provider sees option-confirmed", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{opt},
			Viewer:   schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayOptionConfirmed, res.Status)
	})

	t.Run("owner sees own option", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{opt},
			Viewer:   schedule.RequesterViewer(owner),
		})
		assert.Equal(t, schedule.DayOptionConfirmed, res.Status)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("option is invisible to other requesters", func(t *testing.T) {
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{opt},
			Viewer:   schedule.RequesterViewer(other),
		})
		assert.Equal(t, schedule.DayAvailable, res.Status)
		assert.True(t, res.Bookable)
	})

	t.Run("fix outranks option", func(t *testing.T) {
		fix := bookingWithStatus(t, other, booking.StatusFixConfirmed)
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{opt, fix},
			Viewer:   schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayFixConfirmed, res.Status)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, fix.ID(), res.Bookings[0].ID())
	})
}

func TestResolvePending(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	t.Run("provider aggregates simultaneous requests", func(t *testing.T) {
		a := bookingWithStatus(t, owner, booking.StatusOptionPending)
		b := bookingWithStatus(t, other, booking.StatusFixPending)
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{a, b},
			Viewer:   schedule.ProviderViewer(),
		})
		assert.Equal(t, schedule.DayPending, res.Status)
		assert.Len(t, res.Bookings, 2)
	})

	t.Run("owner sees own pending request", func(t *testing.T) {
		a := bookingWithStatus(t, owner, booking.StatusOptionPending)
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{a},
			Viewer:   schedule.RequesterViewer(owner),
		})
		assert.Equal(t, schedule.DayPending, res.Status)
	})

	t.Run("pending is invisible to other requesters", func(t *testing.T) {
		a := bookingWithStatus(t, owner, booking.StatusOptionPending)
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{a},
			Viewer:   schedule.RequesterViewer(other),
		})
		assert.Equal(t, schedule.DayAvailable, res.Status)
	})

	t.Run("own pending on a day with another's option still reads available", func(t *testing.T) {
		// First match wins: the competitor's option-confirmed rule fires
		// before the viewer's own pending is considered, and resolves to
		// available for a non-owning requester.
		pending := bookingWithStatus(t, owner, booking.StatusOptionPending)
		option := bookingWithStatus(t, other, booking.StatusOptionConfirmed)
		res := schedule.Resolve(schedule.ResolveInput{
			Bookings: []*booking.Booking{pending, option},
			Viewer:   schedule.RequesterViewer(owner),
		})
		assert.Equal(t, schedule.DayAvailable, res.Status)
	})
}

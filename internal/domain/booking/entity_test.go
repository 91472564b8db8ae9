//go:build unit

package booking_test

import (
	"testing"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/pkg/errs"
	"crewcal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("option request starts pending", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusOptionPending, b.Status())
		assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, b.Dates().Strings())
		assert.Nil(t, b.ConfirmedAt())
		assert.Equal(t, int64(1), b.Version())
	})

	t.Run("fix request starts fix_pending", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.RequestType = "fix" }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.StatusFixPending, b.Status())
	})

	t.Run("daily rate totals per day", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		// two days at 50000 cents
		assert.Equal(t, int64(100000), b.TotalCost().Cents())
	})

	t.Run("flat rate ignores day count", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) {
				b.RateType = "flat"
				b.FlatRateCents = 75000
				b.Dates = []string{"2026-03-10", "2026-03-11", "2026-03-12"}
			}).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(75000), b.TotalCost().Cents())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown request type",
				mutate: func(b *builder.BookingBuilder) { b.RequestType = "standing" },
				errIs:  errs.ErrInvalidRequestType,
			},
			{
				name:   "missing provider",
				mutate: func(b *builder.BookingBuilder) { b.ProviderID = uuid.Nil },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "missing requester",
				mutate: func(b *builder.BookingBuilder) { b.RequesterID = uuid.Nil },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "missing project",
				mutate: func(b *builder.BookingBuilder) { b.ProjectID = uuid.Nil },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "missing phase",
				mutate: func(b *builder.BookingBuilder) { b.PhaseID = uuid.Nil },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "empty dates",
				mutate: func(b *builder.BookingBuilder) { b.Dates = nil },
				errIs:  errs.ErrEmptyDates,
			},
			{
				name:   "date in the past",
				mutate: func(b *builder.BookingBuilder) { b.Dates = []string{"2026-02-28"} },
				errIs:  errs.ErrPastDate,
			},
			{
				name:   "today is not past",
				mutate: func(b *builder.BookingBuilder) { b.Dates = []string{"2026-03-01"} },
			},
			{
				name:   "zero day rate",
				mutate: func(b *builder.BookingBuilder) { b.DayRateCents = 0 },
				errIs:  errs.ErrInvalidRate,
			},
			{
				name:   "negative flat rate",
				mutate: func(b *builder.BookingBuilder) { b.RateType = "flat"; b.FlatRateCents = -1 },
				errIs:  errs.ErrInvalidRate,
			},
		})
	})
}

func TestLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	newOption := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return b
	}
	newFix := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.RequestType = "fix" }).
			BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("accept option", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Accept(now))
		assert.Equal(t, booking.StatusOptionConfirmed, b.Status())
		require.NotNil(t, b.ConfirmedAt())
		assert.Nil(t, b.FixedAt())
	})

	t.Run("accept fix sets fixedAt", func(t *testing.T) {
		b := newFix(t)
		require.NoError(t, b.Accept(now))
		assert.Equal(t, booking.StatusFixConfirmed, b.Status())
		require.NotNil(t, b.FixedAt())
		assert.Equal(t, now, *b.FixedAt())
	})

	t.Run("accept twice fails", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Accept(now))
		err := b.Accept(now)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("decline pending", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Decline(now))
		assert.Equal(t, booking.StatusDeclined, b.Status())
		assert.Equal(t, booking.RoleProvider, b.CancelledBy())
	})

	t.Run("withdraw pending", func(t *testing.T) {
		b := newFix(t)
		require.NoError(t, b.Withdraw(now))
		assert.Equal(t, booking.StatusWithdrawn, b.Status())
		assert.Equal(t, booking.RoleRequester, b.CancelledBy())
	})

	t.Run("withdraw after accept fails", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Accept(now))
		require.ErrorIs(t, b.Withdraw(now), errs.ErrInvalidState)
	})

	t.Run("cancel confirmed", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Accept(now))
		require.NoError(t, b.Cancel(now, "project postponed", booking.RoleRequester))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, "project postponed", b.CancelReason())
		assert.Equal(t, booking.RoleRequester, b.CancelledBy())
	})

	t.Run("cancel pending fails", func(t *testing.T) {
		b := newOption(t)
		require.ErrorIs(t, b.Cancel(now, "", booking.RoleProvider), errs.ErrInvalidState)
	})

	t.Run("cancel with unknown role fails", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Accept(now))
		require.ErrorIs(t, b.Cancel(now, "", booking.Role("admin")), errs.ErrValidation)
	})

	t.Run("convert confirmed option", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Accept(now))
		require.NoError(t, b.ConvertToFix(now))
		assert.Equal(t, booking.StatusFixConfirmed, b.Status())
		require.NotNil(t, b.FixedAt())
	})

	t.Run("convert pending option fails", func(t *testing.T) {
		b := newOption(t)
		require.ErrorIs(t, b.ConvertToFix(now), errs.ErrInvalidState)
	})

	t.Run("convert fix fails", func(t *testing.T) {
		b := newFix(t)
		require.NoError(t, b.Accept(now))
		require.ErrorIs(t, b.ConvertToFix(now), errs.ErrInvalidState)
	})

	t.Run("terminal statuses reject everything", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Decline(now))

		require.ErrorIs(t, b.Accept(now), errs.ErrInvalidState)
		require.ErrorIs(t, b.Decline(now), errs.ErrInvalidState)
		require.ErrorIs(t, b.Withdraw(now), errs.ErrInvalidState)
		require.ErrorIs(t, b.Cancel(now, "", booking.RoleProvider), errs.ErrInvalidState)
		require.ErrorIs(t, b.ConvertToFix(now), errs.ErrInvalidState)
		require.ErrorIs(t, b.ForceDecline(now), errs.ErrInvalidState)
	})

	t.Run("force decline clears confirmed option", func(t *testing.T) {
		b := newOption(t)
		require.NoError(t, b.Accept(now))
		require.NoError(t, b.ForceDecline(now))
		assert.Equal(t, booking.StatusDeclined, b.Status())
	})

	t.Run("force decline cannot touch fix_confirmed", func(t *testing.T) {
		b := newFix(t)
		require.NoError(t, b.Accept(now))
		require.ErrorIs(t, b.ForceDecline(now), errs.ErrInvalidState)
	})
}

func TestOccupies(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	assert.True(t, b.Occupies("2026-03-10"))
	assert.False(t, b.Occupies("2026-03-12"))

	require.NoError(t, b.Decline(now))
	assert.False(t, b.Occupies("2026-03-10"), "terminal bookings never occupy days")
}

func TestClone(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	cp := b.Clone()
	require.NoError(t, cp.Accept(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)))

	assert.Equal(t, booking.StatusOptionPending, b.Status(), "mutating the clone must not touch the original")
	assert.Equal(t, booking.StatusOptionConfirmed, cp.Status())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

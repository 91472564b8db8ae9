//go:build unit

package booking_test

import (
	"testing"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/pkg/errs"
	"crewcal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, days ...string) daykey.Set {
	t.Helper()
	set, err := daykey.NewSet(days)
	require.NoError(t, err)
	return set
}

func TestRequestReschedule(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	newBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return b
	}

	t.Run("attaches proposal without touching dates", func(t *testing.T) {
		b := newBooking(t)
		newDates := mustSet(t, "2026-03-20", "2026-03-21", "2026-03-22")

		require.NoError(t, b.RequestReschedule(newDates, nil, now))

		rs := b.Reschedule()
		require.NotNil(t, rs)
		assert.Equal(t, []string{"2026-03-20", "2026-03-21", "2026-03-22"}, rs.NewDates().Strings())
		assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, rs.OriginalDates().Strings())
		// three days at the daily rate of 50000
		assert.Equal(t, int64(150000), rs.NewTotalCost().Cents())

		assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, b.Dates().Strings())
		assert.Equal(t, int64(100000), b.TotalCost().Cents())
	})

	t.Run("second outstanding proposal fails", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20"), nil, now))
		err := b.RequestReschedule(mustSet(t, "2026-03-25"), nil, now)
		require.ErrorIs(t, err, errs.ErrRescheduleOutstanding)
	})

	t.Run("past new dates fail", func(t *testing.T) {
		b := newBooking(t)
		err := b.RequestReschedule(mustSet(t, "2026-02-01"), nil, now)
		require.ErrorIs(t, err, errs.ErrPastDate)
	})

	t.Run("terminal booking fails", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Decline(now))
		err := b.RequestReschedule(mustSet(t, "2026-03-20"), nil, now)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("records conflicts", func(t *testing.T) {
		b := newBooking(t)
		conflicts := []booking.RescheduleConflict{
			{BookingID: uuid.New(), Status: booking.StatusOptionConfirmed, Dates: mustSet(t, "2026-03-20")},
			{BookingID: uuid.New(), Status: booking.StatusFixConfirmed, Dates: mustSet(t, "2026-03-21")},
		}
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20", "2026-03-21"), conflicts, now))

		rs := b.Reschedule()
		require.NotNil(t, rs)
		assert.True(t, rs.HasConflicts())
		assert.True(t, rs.HasBlockingConflicts())
		assert.Len(t, rs.Conflicts(), 2)
	})

	t.Run("option conflicts are not blocking", func(t *testing.T) {
		b := newBooking(t)
		conflicts := []booking.RescheduleConflict{
			{BookingID: uuid.New(), Status: booking.StatusOptionPending, Dates: mustSet(t, "2026-03-20")},
		}
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20"), conflicts, now))

		rs := b.Reschedule()
		assert.True(t, rs.HasConflicts())
		assert.False(t, rs.HasBlockingConflicts())
	})
}

func TestAcceptReschedule(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("applies dates and cost", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20", "2026-03-21", "2026-03-22"), nil, now))

		require.NoError(t, b.AcceptReschedule(now))

		assert.Equal(t, []string{"2026-03-20", "2026-03-21", "2026-03-22"}, b.Dates().Strings())
		assert.Equal(t, int64(150000), b.TotalCost().Cents())
		assert.Nil(t, b.Reschedule())
		require.NotNil(t, b.RescheduledAt())
	})

	t.Run("without proposal fails", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, b.AcceptReschedule(now), errs.ErrNoReschedulePending)
	})

	t.Run("declined booking cannot apply a proposal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-18"), nil, now))
		require.NoError(t, b.Decline(now))

		require.ErrorIs(t, b.AcceptReschedule(now), errs.ErrInvalidState)

		assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, b.Dates().Strings())
		assert.Equal(t, int64(100000), b.TotalCost().Cents())
		assert.Nil(t, b.RescheduledAt())
	})
}

func TestDeclineAndWithdrawReschedule(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("decline keeps original dates", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20"), nil, now))

		require.NoError(t, b.DeclineReschedule())

		assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, b.Dates().Strings())
		assert.Nil(t, b.Reschedule())
		assert.Nil(t, b.RescheduledAt())
	})

	t.Run("withdraw keeps original dates", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20"), nil, now))

		require.NoError(t, b.WithdrawReschedule())
		assert.Nil(t, b.Reschedule())
	})

	t.Run("decline without proposal fails", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, b.DeclineReschedule(), errs.ErrNoReschedulePending)
	})

	t.Run("declining the booking clears the proposal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20"), nil, now))

		require.NoError(t, b.Decline(now))
		assert.Nil(t, b.Reschedule())
	})

	t.Run("withdrawing the booking clears the proposal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20"), nil, now))

		require.NoError(t, b.Withdraw(now))
		assert.Nil(t, b.Reschedule())
	})

	t.Run("cancel clears outstanding proposal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Accept(now))
		require.NoError(t, b.RequestReschedule(mustSet(t, "2026-03-20"), nil, now))

		require.NoError(t, b.Cancel(now, "scope change", booking.RoleProvider))
		assert.Nil(t, b.Reschedule())
	})
}

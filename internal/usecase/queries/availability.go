package queries

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/schedule"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityQueries answers "what does this viewer see on this provider's
// day". Pass uuid.Nil as excludeBookingID when nothing should be excluded.
type AvailabilityQueries interface {
	DayStatus(ctx context.Context, providerID uuid.UUID, date string, viewer schedule.Viewer, excludeBookingID uuid.UUID) (*DayStatusView, error)
	DayStatuses(ctx context.Context, providerID uuid.UUID, from, to string, viewer schedule.Viewer) ([]*DayStatusView, error)
}

type availabilityQueriesImpl struct {
	bookings BookingReadStore
	schedule ScheduleReadStore
}

func NewAvailabilityQueries(bookings BookingReadStore, scheduleStore ScheduleReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{bookings: bookings, schedule: scheduleStore}
}

func (q *availabilityQueriesImpl) DayStatus(
	ctx context.Context,
	providerID uuid.UUID,
	date string,
	viewer schedule.Viewer,
	excludeBookingID uuid.UUID,
) (*DayStatusView, error) {
	day, err := daykey.New(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	all, err := q.bookings.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return q.resolveDay(ctx, providerID, day, viewer, excludeBookingID, all)
}

// maxRangeDays caps a single schedule query at one leap year of days.
const maxRangeDays = 366

// DayStatuses resolves an inclusive date range in one pass, loading the
// provider's bookings once. The range is capped at maxRangeDays.
func (q *availabilityQueriesImpl) DayStatuses(
	ctx context.Context,
	providerID uuid.UUID,
	from, to string,
	viewer schedule.Viewer,
) ([]*DayStatusView, error) {
	fromDay, err := daykey.New(from)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	toDay, err := daykey.New(to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if !toDay.Before(fromDay) {
		span := int(toDay.Time().Sub(fromDay.Time()).Hours()/24) + 1
		if span > maxRangeDays {
			return nil, errs.Mark(errs.New("date range exceeds the maximum of 366 days"), errs.ErrValidation)
		}
	}
	days, err := daykey.Range(fromDay, toDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	all, err := q.bookings.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	out := make([]*DayStatusView, 0, len(days))
	for _, day := range days {
		view, err := q.resolveDay(ctx, providerID, day, viewer, uuid.Nil, all)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (q *availabilityQueriesImpl) resolveDay(
	ctx context.Context,
	providerID uuid.UUID,
	day daykey.Key,
	viewer schedule.Viewer,
	excludeBookingID uuid.UUID,
	all []*booking.Booking,
) (*DayStatusView, error) {
	block, err := q.schedule.FindBlock(ctx, providerID, day)
	if err != nil {
		return nil, err
	}
	open, err := q.schedule.IsOpenForMore(ctx, providerID, day)
	if err != nil {
		return nil, err
	}

	res := schedule.Resolve(schedule.ResolveInput{
		Block:       block,
		OpenForMore: open,
		Bookings:    booking.OccupyingDay(all, day, excludeBookingID),
		Viewer:      viewer,
	})

	view := &DayStatusView{
		Date:       day.String(),
		Status:     res.Status.String(),
		Bookable:   res.Bookable,
		IsBlocked:  res.IsBlocked,
		HasBooking: res.HasBooking,
	}
	for _, b := range res.Bookings {
		view.Bookings = append(view.Bookings, NewBookingView(b))
	}
	return view, nil
}

package queries

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/infra"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*BookingView, error)
	// Overlapping finds all non-terminal bookings of the provider whose
	// dates intersect the given set, excluding excludeBookingID.
	Overlapping(ctx context.Context, providerID uuid.UUID, dates []string, excludeBookingID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*BookingView, error) {
	bs, err := q.store.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return views(bs), nil
}

func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*BookingView, error) {
	bs, err := q.store.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return views(bs), nil
}

func (q *bookingQueriesImpl) Overlapping(
	ctx context.Context,
	providerID uuid.UUID,
	dates []string,
	excludeBookingID uuid.UUID,
) ([]*BookingView, error) {
	set, err := daykey.NewSet(dates)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	all, err := q.store.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return views(booking.FindOverlapping(all, set, excludeBookingID)), nil
}

func views(bs []*booking.Booking) []*BookingView {
	out := make([]*BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, NewBookingView(b))
	}
	return out
}

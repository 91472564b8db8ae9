package queries

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/pkg/errs"
)

type NotificationQueries interface {
	ListByRole(ctx context.Context, role string) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListByRole(ctx context.Context, role string) ([]*NotificationView, error) {
	r := booking.Role(role)
	if !r.IsValid() {
		return nil, errs.Mark(errs.New("unknown role: "+role), errs.ErrValidation)
	}
	ns, err := q.store.ListByRole(ctx, r)
	if err != nil {
		return nil, err
	}
	out := make([]*NotificationView, 0, len(ns))
	for _, n := range ns {
		out = append(out, NewNotificationView(n))
	}
	return out, nil
}

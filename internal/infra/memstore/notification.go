package memstore

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/notification"
	"crewcal/internal/infra"

	"github.com/google/uuid"
)

type txNotifications memTx

func (r *txNotifications) Append(_ context.Context, n *notification.Notification) error {
	cp := *n
	r.s.notifications = append(r.s.notifications, &cp)
	return nil
}

// MarkRead replaces the slice entry rather than mutating through the stored
// pointer, keeping transaction snapshots intact.
func (r *txNotifications) MarkRead(_ context.Context, id uuid.UUID) error {
	for i, n := range r.s.notifications {
		if n.ID == id {
			cp := *n
			cp.Read = true
			r.s.notifications[i] = &cp
			return nil
		}
	}
	return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
}

// ---- read store (queries.NotificationReadStore) ----

func (s *Store) ListByRole(_ context.Context, role booking.Role) ([]*notification.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*notification.Notification
	for _, n := range s.notifications {
		if n.ForRole == role {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

package postgres

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/notification"
	"crewcal/internal/infra"

	"github.com/google/uuid"
)

type notificationRepo struct {
	db querier
}

func (r *notificationRepo) Append(ctx context.Context, n *notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, for_role, read, created_at, type, title, message, related_booking_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, string(n.ForRole), n.Read, n.CreatedAt, string(n.Type), n.Title, n.Message, n.RelatedBookingID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to append notification", err)
	}
	return nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	return nil
}

func (r *notificationRepo) ListByRole(ctx context.Context, role booking.Role) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, for_role, read, created_at, type, title, message, related_booking_id
		 FROM notifications WHERE for_role = $1 ORDER BY created_at, id`, string(role))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications", err)
	}
	defer rows.Close()

	var out []*notification.Notification
	for rows.Next() {
		var (
			n       notification.Notification
			forRole string
			nType   string
		)
		if err := rows.Scan(&n.ID, &forRole, &n.Read, &n.CreatedAt, &nType, &n.Title, &n.Message, &n.RelatedBookingID); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification", err)
		}
		n.ForRole = booking.Role(forRole)
		n.Type = notification.Type(nType)
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications", err)
	}
	return out, nil
}

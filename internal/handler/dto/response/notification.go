package response

import (
	"time"

	"crewcal/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID               uuid.UUID `json:"id"`
	ForRole          string    `json:"forRole"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"createdAt"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	RelatedBookingID uuid.UUID `json:"relatedBookingId,omitempty"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:               v.ID,
		ForRole:          v.ForRole,
		Read:             v.Read,
		CreatedAt:        v.CreatedAt,
		Type:             v.Type,
		Title:            v.Title,
		Message:          v.Message,
		RelatedBookingID: v.RelatedBookingID,
	}
}

func FromNotificationViews(vs []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromNotificationView(v)
	}
	return out
}

package response

import (
	"time"

	"crewcal/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID           `json:"id"`
	Status         string              `json:"status"`
	ProviderID     uuid.UUID           `json:"providerId"`
	RequesterID    uuid.UUID           `json:"requesterId"`
	ProjectID      uuid.UUID           `json:"projectId"`
	PhaseID        uuid.UUID           `json:"phaseId"`
	Dates          []string            `json:"dates"`
	RateType       string              `json:"rateType"`
	DayRateCents   int64               `json:"dayRateCents"`
	FlatRateCents  int64               `json:"flatRateCents"`
	TotalCostCents int64               `json:"totalCostCents"`
	RequestedAt    time.Time           `json:"requestedAt"`
	ConfirmedAt    *time.Time          `json:"confirmedAt,omitempty"`
	FixedAt        *time.Time          `json:"fixedAt,omitempty"`
	CancelledAt    *time.Time          `json:"cancelledAt,omitempty"`
	RescheduledAt  *time.Time          `json:"rescheduledAt,omitempty"`
	CancelledBy    string              `json:"cancelledBy,omitempty"`
	CancelReason   string              `json:"cancelReason,omitempty"`
	Reschedule     *RescheduleResponse `json:"reschedule,omitempty"`
}

type RescheduleResponse struct {
	NewDates             []string           `json:"newDates"`
	OriginalDates        []string           `json:"originalDates"`
	RequestedAt          time.Time          `json:"requestedAt"`
	NewTotalCostCents    int64              `json:"newTotalCostCents"`
	Conflicts            []ConflictResponse `json:"conflicts,omitempty"`
	HasConflicts         bool               `json:"hasConflicts"`
	HasBlockingConflicts bool               `json:"hasBlockingConflicts"`
}

type ConflictResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
	Dates     []string  `json:"dates"`
}

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

type DeclineOverlappingResponse struct {
	DeclinedCount int `json:"declinedCount"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:             v.ID,
		Status:         v.Status,
		ProviderID:     v.ProviderID,
		RequesterID:    v.RequesterID,
		ProjectID:      v.ProjectID,
		PhaseID:        v.PhaseID,
		Dates:          v.Dates,
		RateType:       v.RateType,
		DayRateCents:   v.DayRateCents,
		FlatRateCents:  v.FlatRateCents,
		TotalCostCents: v.TotalCostCents,
		RequestedAt:    v.RequestedAt,
		ConfirmedAt:    v.ConfirmedAt,
		FixedAt:        v.FixedAt,
		CancelledAt:    v.CancelledAt,
		RescheduledAt:  v.RescheduledAt,
		CancelledBy:    v.CancelledBy,
		CancelReason:   v.CancelReason,
	}
	if v.Reschedule != nil {
		resp.Reschedule = fromRescheduleView(v.Reschedule)
	}
	return resp
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}

func fromRescheduleView(v *queries.RescheduleView) *RescheduleResponse {
	resp := &RescheduleResponse{
		NewDates:             v.NewDates,
		OriginalDates:        v.OriginalDates,
		RequestedAt:          v.RequestedAt,
		NewTotalCostCents:    v.NewTotalCostCents,
		HasConflicts:         v.HasConflicts,
		HasBlockingConflicts: v.HasBlockingConflicts,
	}
	for _, c := range v.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			BookingID: c.BookingID,
			Status:    c.Status,
			Dates:     c.Dates,
		})
	}
	return resp
}

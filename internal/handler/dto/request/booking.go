package request

import (
	"strings"

	"crewcal/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RequestType   string    `json:"request_type" binding:"required,oneof=option fix"`
	ProviderID    uuid.UUID `json:"provider_id" binding:"required"`
	RequesterID   uuid.UUID `json:"requester_id" binding:"required"`
	ProjectID     uuid.UUID `json:"project_id" binding:"required"`
	PhaseID       uuid.UUID `json:"phase_id" binding:"required"`
	Dates         []string  `json:"dates" binding:"required,min=1"`
	RateType      string    `json:"rate_type" binding:"required,oneof=daily flat"`
	DayRateCents  int64     `json:"day_rate_cents"`
	FlatRateCents int64     `json:"flat_rate_cents"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		RequestType:   r.RequestType,
		ProviderID:    r.ProviderID,
		RequesterID:   r.RequesterID,
		ProjectID:     r.ProjectID,
		PhaseID:       r.PhaseID,
		Dates:         r.Dates,
		RateType:      r.RateType,
		DayRateCents:  r.DayRateCents,
		FlatRateCents: r.FlatRateCents,
	}
}

type CancelBookingRequest struct {
	By     string `json:"by" binding:"required,oneof=provider requester"`
	Reason string `json:"reason"`
}

func (r CancelBookingRequest) GetReason() string {
	return strings.TrimSpace(r.Reason)
}

type RescheduleRequest struct {
	NewDates []string `json:"new_dates" binding:"required,min=1"`
}

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	reqdto "crewcal/internal/handler/dto/request"
	"crewcal/internal/usecase/commands"

	"github.com/google/uuid"
)

// BookingBuilder assembles booking fixtures. Now is fixed so date validity
// does not depend on the wall clock.
type BookingBuilder struct {
	RequestType   string
	ProviderID    uuid.UUID
	RequesterID   uuid.UUID
	ProjectID     uuid.UUID
	PhaseID       uuid.UUID
	Dates         []string
	RateType      string
	DayRateCents  int64
	FlatRateCents int64
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RequestType:  "option",
		ProviderID:   uuid.New(),
		RequesterID:  uuid.New(),
		ProjectID:    uuid.New(),
		PhaseID:      uuid.New(),
		Dates:        []string{"2026-03-10", "2026-03-11"},
		RateType:     "daily",
		DayRateCents: 50000,
		Now:          time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) buildRate() (dombooking.Rate, error) {
	if b.RateType == "flat" {
		return dombooking.NewFlatRate(dombooking.NewMoney(b.FlatRateCents))
	}
	return dombooking.NewDailyRate(dombooking.NewMoney(b.DayRateCents))
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	dates, err := daykey.NewSet(b.Dates)
	if err != nil {
		return nil, err
	}
	rate, err := b.buildRate()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		dombooking.RequestType(b.RequestType),
		b.ProviderID, b.RequesterID, b.ProjectID, b.PhaseID,
		dates, rate, b.Now,
	)
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		RequestType:   b.RequestType,
		ProviderID:    b.ProviderID,
		RequesterID:   b.RequesterID,
		ProjectID:     b.ProjectID,
		PhaseID:       b.PhaseID,
		Dates:         b.Dates,
		RateType:      b.RateType,
		DayRateCents:  b.DayRateCents,
		FlatRateCents: b.FlatRateCents,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RequestType:   b.RequestType,
		ProviderID:    b.ProviderID,
		RequesterID:   b.RequesterID,
		ProjectID:     b.ProjectID,
		PhaseID:       b.PhaseID,
		Dates:         b.Dates,
		RateType:      b.RateType,
		DayRateCents:  b.DayRateCents,
		FlatRateCents: b.FlatRateCents,
	}
}

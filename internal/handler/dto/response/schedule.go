package response

import (
	"crewcal/internal/usecase/queries"
)

type DayStatusResponse struct {
	Date       string             `json:"date"`
	Status     string             `json:"status"`
	Bookable   bool               `json:"bookable"`
	IsBlocked  bool               `json:"isBlocked"`
	HasBooking bool               `json:"hasBooking"`
	Bookings   []*BookingResponse `json:"bookings,omitempty"`
}

func FromDayStatusView(v *queries.DayStatusView) *DayStatusResponse {
	resp := &DayStatusResponse{
		Date:       v.Date,
		Status:     v.Status,
		Bookable:   v.Bookable,
		IsBlocked:  v.IsBlocked,
		HasBooking: v.HasBooking,
	}
	if len(v.Bookings) > 0 {
		resp.Bookings = FromBookingViews(v.Bookings)
	}
	return resp
}

func FromDayStatusViews(vs []*queries.DayStatusView) []*DayStatusResponse {
	out := make([]*DayStatusResponse, len(vs))
	for i, v := range vs {
		out[i] = FromDayStatusView(v)
	}
	return out
}

// Package notification is the append-only log of lifecycle events. Records
// are created on every state-changing command, mutated only to mark read,
// and never deleted; delivery is a concern of whoever consumes the log.
package notification

import (
	"fmt"
	"time"

	"crewcal/internal/domain/booking"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBookingRequested    Type = "booking_requested"
	TypeBookingConfirmed    Type = "booking_confirmed"
	TypeBookingDeclined     Type = "booking_declined"
	TypeBookingWithdrawn    Type = "booking_withdrawn"
	TypeBookingCancelled    Type = "booking_cancelled"
	TypeOptionConverted     Type = "option_converted"
	TypeOptionOvertaken     Type = "option_overtaken"
	TypeRescheduleRequested Type = "reschedule_requested"
	TypeRescheduleAccepted  Type = "reschedule_accepted"
	TypeRescheduleDeclined  Type = "reschedule_declined"
	TypeRescheduleWithdrawn Type = "reschedule_withdrawn"
	TypeDayBlocked          Type = "day_blocked"
	TypeDayUnblocked        Type = "day_unblocked"
	TypeOpenForMoreToggled  Type = "open_for_more_toggled"
)

type Notification struct {
	ID               uuid.UUID
	ForRole          booking.Role
	Read             bool
	CreatedAt        time.Time
	Type             Type
	Title            string
	Message          string
	RelatedBookingID uuid.UUID
}

func New(forRole booking.Role, t Type, title, message string, relatedBookingID uuid.UUID, now time.Time) *Notification {
	return &Notification{
		ID:               uuid.New(),
		ForRole:          forRole,
		CreatedAt:        now,
		Type:             t,
		Title:            title,
		Message:          message,
		RelatedBookingID: relatedBookingID,
	}
}

func dateSummary(b *booking.Booking) string {
	dates := b.Dates()
	if len(dates) == 1 {
		return dates[0].String()
	}
	return fmt.Sprintf("%s – %s (%d days)", dates[0], dates[len(dates)-1], len(dates))
}

func BookingRequested(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleProvider, TypeBookingRequested,
		"New booking request",
		fmt.Sprintf("A %s request for %s is waiting for your response.", requestKind(b), dateSummary(b)),
		b.ID(), now)
}

func BookingConfirmed(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleRequester, TypeBookingConfirmed,
		"Booking confirmed",
		fmt.Sprintf("Your %s request for %s was accepted.", requestKind(b), dateSummary(b)),
		b.ID(), now)
}

func BookingDeclined(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleRequester, TypeBookingDeclined,
		"Booking declined",
		fmt.Sprintf("Your request for %s was declined.", dateSummary(b)),
		b.ID(), now)
}

func BookingWithdrawn(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleProvider, TypeBookingWithdrawn,
		"Booking withdrawn",
		fmt.Sprintf("The request for %s was withdrawn by the requester.", dateSummary(b)),
		b.ID(), now)
}

// BookingCancelled notifies the side that did not cancel.
func BookingCancelled(b *booking.Booking, cancelledBy booking.Role, now time.Time) *Notification {
	return New(cancelledBy.Other(), TypeBookingCancelled,
		"Booking cancelled",
		fmt.Sprintf("The booking for %s was cancelled by the %s.", dateSummary(b), cancelledBy),
		b.ID(), now)
}

func OptionConverted(b *booking.Booking, forRole booking.Role, now time.Time) *Notification {
	return New(forRole, TypeOptionConverted,
		"Option converted to fix booking",
		fmt.Sprintf("The option for %s is now a fix booking.", dateSummary(b)),
		b.ID(), now)
}

// OptionOvertaken targets the requester of a shadowed option: its status is
// untouched, only this record tells them a fix booking claimed the dates.
func OptionOvertaken(shadowed *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleRequester, TypeOptionOvertaken,
		"Option overtaken",
		fmt.Sprintf("A fix booking now covers %s; your option on these dates has been overtaken.", dateSummary(shadowed)),
		shadowed.ID(), now)
}

func RescheduleRequested(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleProvider, TypeRescheduleRequested,
		"Reschedule requested",
		fmt.Sprintf("A new date proposal for the booking on %s is waiting for your response.", dateSummary(b)),
		b.ID(), now)
}

func RescheduleAccepted(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleRequester, TypeRescheduleAccepted,
		"Reschedule accepted",
		fmt.Sprintf("The booking was moved to %s.", dateSummary(b)),
		b.ID(), now)
}

func RescheduleDeclined(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleRequester, TypeRescheduleDeclined,
		"Reschedule declined",
		fmt.Sprintf("The date proposal was declined; the booking stays on %s.", dateSummary(b)),
		b.ID(), now)
}

func RescheduleWithdrawn(b *booking.Booking, now time.Time) *Notification {
	return New(booking.RoleProvider, TypeRescheduleWithdrawn,
		"Reschedule withdrawn",
		fmt.Sprintf("The date proposal was withdrawn; the booking stays on %s.", dateSummary(b)),
		b.ID(), now)
}

func DayBlocked(date string, open bool, now time.Time) *Notification {
	t := "Day blocked"
	if open {
		t = "Day blocked (open to requests)"
	}
	return New(booking.RoleProvider, TypeDayBlocked, t,
		fmt.Sprintf("%s is now blocked in your calendar.", date),
		uuid.Nil, now)
}

func DayUnblocked(date string, now time.Time) *Notification {
	return New(booking.RoleProvider, TypeDayUnblocked, "Day unblocked",
		fmt.Sprintf("%s is no longer blocked.", date),
		uuid.Nil, now)
}

func OpenForMoreToggled(date string, open bool, now time.Time) *Notification {
	msg := fmt.Sprintf("%s is no longer open for additional requests.", date)
	if open {
		msg = fmt.Sprintf("%s is now open for additional requests.", date)
	}
	return New(booking.RoleProvider, TypeOpenForMoreToggled, "Open-for-more toggled", msg, uuid.Nil, now)
}

func requestKind(b *booking.Booking) string {
	switch b.Status() {
	case booking.StatusFixPending, booking.StatusFixConfirmed:
		return "fix"
	default:
		return "option"
	}
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, status, provider_id, requester_id, project_id, phase_id,
	dates, rate_type, day_rate_cents, flat_rate_cents, total_cost_cents,
	requested_at, confirmed_at, fixed_at, cancelled_at, rescheduled_at,
	cancelled_by, cancel_reason, reschedule, version`

type bookingRepo struct {
	db querier
}

func (r *bookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}
	return b, nil
}

func (r *bookingRepo) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*booking.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE provider_id = $1 ORDER BY requested_at, id`,
		providerID)
}

func (r *bookingRepo) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*booking.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE requester_id = $1 ORDER BY requested_at, id`,
		requesterID)
}

func (r *bookingRepo) list(ctx context.Context, sql string, arg any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	return out, nil
}

func (r *bookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	datesJSON, reschedJSON, err := marshalBookingJSON(b)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode booking", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO bookings (`+bookingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		b.ID(), string(b.Status()), b.ProviderID(), b.RequesterID(), b.ProjectID(), b.PhaseID(),
		datesJSON, string(b.Rate().Type()), b.Rate().DayRate().Cents(), b.Rate().FlatRate().Cents(),
		b.TotalCost().Cents(), b.RequestedAt(), b.ConfirmedAt(), b.FixedAt(), b.CancelledAt(),
		b.RescheduledAt(), string(b.CancelledBy()), b.CancelReason(), reschedJSON, b.Version())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}
	return nil
}

func (r *bookingRepo) Update(ctx context.Context, b *booking.Booking) error {
	datesJSON, reschedJSON, err := marshalBookingJSON(b)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode booking", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE bookings
		 SET status = $2, dates = $3, total_cost_cents = $4,
		     confirmed_at = $5, fixed_at = $6, cancelled_at = $7, rescheduled_at = $8,
		     cancelled_by = $9, cancel_reason = $10, reschedule = $11, version = version + 1
		 WHERE id = $1 AND version = $12`,
		b.ID(), string(b.Status()), datesJSON, b.TotalCost().Cents(),
		b.ConfirmedAt(), b.FixedAt(), b.CancelledAt(), b.RescheduledAt(),
		string(b.CancelledBy()), b.CancelReason(), reschedJSON, b.Version())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, b.ID()).Scan(&exists); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking", err)
		}
		if !exists {
			return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
		}
		return infra.WrapRepoErr(infra.KindStaleVersion, "booking was modified concurrently", nil)
	}
	b.SetVersion(b.Version() + 1)
	return nil
}

// rescheduleRow is the jsonb shape of an outstanding reschedule proposal.
type rescheduleRow struct {
	NewDates      []string      `json:"new_dates"`
	OriginalDates []string      `json:"original_dates"`
	RequestedAt   time.Time     `json:"requested_at"`
	NewTotalCost  int64         `json:"new_total_cost_cents"`
	Conflicts     []conflictRow `json:"conflicts"`
}

type conflictRow struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Dates     []string  `json:"dates"`
}

func marshalBookingJSON(b *booking.Booking) (dates []byte, resched []byte, err error) {
	dates, err = json.Marshal(b.Dates().Strings())
	if err != nil {
		return nil, nil, err
	}
	if rs := b.Reschedule(); rs != nil {
		row := rescheduleRow{
			NewDates:      rs.NewDates().Strings(),
			OriginalDates: rs.OriginalDates().Strings(),
			RequestedAt:   rs.RequestedAt(),
			NewTotalCost:  rs.NewTotalCost().Cents(),
		}
		for _, c := range rs.Conflicts() {
			row.Conflicts = append(row.Conflicts, conflictRow{
				BookingID: c.BookingID,
				Status:    string(c.Status),
				Dates:     c.Dates.Strings(),
			})
		}
		resched, err = json.Marshal(row)
		if err != nil {
			return nil, nil, err
		}
	}
	return dates, resched, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, providerID, requesterID, projectID, phaseID uuid.UUID
		status, rateType, cancelledBy, cancelReason     string
		datesJSON, reschedJSON                          []byte
		dayRate, flatRate, totalCost, version           int64
		requestedAt                                     time.Time
		confirmedAt, fixedAt, cancelledAt, rescheduledAt *time.Time
	)

	err := row.Scan(
		&id, &status, &providerID, &requesterID, &projectID, &phaseID,
		&datesJSON, &rateType, &dayRate, &flatRate, &totalCost,
		&requestedAt, &confirmedAt, &fixedAt, &cancelledAt, &rescheduledAt,
		&cancelledBy, &cancelReason, &reschedJSON, &version)
	if err != nil {
		return nil, err
	}

	dates, err := decodeDates(datesJSON)
	if err != nil {
		return nil, err
	}

	var resched *booking.Reschedule
	if len(reschedJSON) > 0 {
		var rr rescheduleRow
		if err := json.Unmarshal(reschedJSON, &rr); err != nil {
			return nil, err
		}
		nd, err := daykey.NewSet(rr.NewDates)
		if err != nil {
			return nil, err
		}
		od, err := daykey.NewSet(rr.OriginalDates)
		if err != nil {
			return nil, err
		}
		conflicts := make([]booking.RescheduleConflict, 0, len(rr.Conflicts))
		for _, c := range rr.Conflicts {
			cd, err := daykey.NewSet(c.Dates)
			if err != nil {
				return nil, err
			}
			conflicts = append(conflicts, booking.RescheduleConflict{
				BookingID: c.BookingID,
				Status:    booking.Status(c.Status),
				Dates:     cd,
			})
		}
		resched = booking.ReconstructReschedule(nd, od, rr.RequestedAt, booking.NewMoney(rr.NewTotalCost), conflicts)
	}

	return booking.ReconstructBooking(
		id,
		booking.Status(status),
		providerID, requesterID, projectID, phaseID,
		dates,
		booking.ReconstructRate(booking.RateType(rateType), booking.NewMoney(dayRate), booking.NewMoney(flatRate)),
		booking.NewMoney(totalCost),
		requestedAt,
		confirmedAt, fixedAt, cancelledAt, rescheduledAt,
		booking.Role(cancelledBy),
		cancelReason,
		resched,
		version,
	), nil
}

func decodeDates(raw []byte) (daykey.Set, error) {
	var ss []string
	if err := json.Unmarshal(raw, &ss); err != nil {
		return nil, err
	}
	return daykey.NewSet(ss)
}

package memstore

import (
	"context"

	"crewcal/internal/domain/booking"
	"crewcal/internal/infra"

	"github.com/google/uuid"
)

// txBookings is the write-side view used inside a unit of work; the store
// lock is already held.
type txBookings memTx

func (r *txBookings) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.s.findBooking(id)
}

func (r *txBookings) ListByProvider(_ context.Context, providerID uuid.UUID) ([]*booking.Booking, error) {
	return r.s.listBookings(func(b *booking.Booking) bool { return b.ProviderID() == providerID }), nil
}

func (r *txBookings) Create(_ context.Context, b *booking.Booking) error {
	if _, exists := r.s.bookings[b.ID()]; exists {
		return infra.WrapRepoErr(infra.KindDBFailure, "booking id already exists", nil)
	}
	r.s.bookings[b.ID()] = b.Clone()
	return nil
}

func (r *txBookings) Update(_ context.Context, b *booking.Booking) error {
	cur, ok := r.s.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	if cur.Version() != b.Version() {
		return infra.WrapRepoErr(infra.KindStaleVersion, "booking modified since read", nil)
	}
	b.SetVersion(b.Version() + 1)
	r.s.bookings[b.ID()] = b.Clone()
	return nil
}

// ---- read store (queries.BookingReadStore), takes the read lock ----

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findBooking(id)
}

func (s *Store) ListByProvider(_ context.Context, providerID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listBookings(func(b *booking.Booking) bool { return b.ProviderID() == providerID }), nil
}

func (s *Store) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listBookings(func(b *booking.Booking) bool { return b.RequesterID() == requesterID }), nil
}

func (s *Store) findBooking(id uuid.UUID) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return b.Clone(), nil
}

func (s *Store) listBookings(match func(*booking.Booking) bool) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if match(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}

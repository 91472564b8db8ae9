// Package memstore is the in-process booking store. It backs local runs and
// the test suite; the postgres package provides the durable equivalent.
//
// Writers run one at a time under the store lock, readers see either all of
// a command's mutations or none of them. Stored entities are never mutated
// in place: repositories insert and return clones, so a rolled-back
// transaction can restore the previous maps wholesale.
package memstore

import (
	"context"
	"sync"

	"crewcal/internal/domain/booking"
	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/notification"
	"crewcal/internal/domain/schedule"
	"crewcal/internal/usecase/commands"

	"github.com/google/uuid"
)

type Store struct {
	mu            sync.RWMutex
	bookings      map[uuid.UUID]*booking.Booking
	blocks        map[string]*schedule.DayBlock
	openDays      map[string]bool
	notifications []*notification.Notification
}

func New() *Store {
	return &Store{
		bookings: make(map[uuid.UUID]*booking.Booking),
		blocks:   make(map[string]*schedule.DayBlock),
		openDays: make(map[string]bool),
	}
}

func dayKeyOf(providerID uuid.UUID, date daykey.Key) string {
	return providerID.String() + "/" + date.String()
}

// Within implements commands.UnitOfWork. The write lock is held for the
// whole function, so queries never observe a half-applied command. On error
// every map is restored from its entry snapshot.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapBookings := make(map[uuid.UUID]*booking.Booking, len(s.bookings))
	for k, v := range s.bookings {
		snapBookings[k] = v
	}
	snapBlocks := make(map[string]*schedule.DayBlock, len(s.blocks))
	for k, v := range s.blocks {
		snapBlocks[k] = v
	}
	snapOpen := make(map[string]bool, len(s.openDays))
	for k, v := range s.openDays {
		snapOpen[k] = v
	}
	snapNotifications := append([]*notification.Notification(nil), s.notifications...)

	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.bookings = snapBookings
		s.blocks = snapBlocks
		s.openDays = snapOpen
		s.notifications = snapNotifications
		return err
	}
	return nil
}

type memTx struct {
	s *Store
}

func (t *memTx) Bookings() commands.BookingRepository          { return (*txBookings)(t) }
func (t *memTx) Schedule() commands.ScheduleRepository         { return (*txSchedule)(t) }
func (t *memTx) Notifications() commands.NotificationRepository { return (*txNotifications)(t) }

package memstore

import (
	"context"

	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/schedule"

	"github.com/google/uuid"
)

type txSchedule memTx

func (r *txSchedule) FindBlock(_ context.Context, providerID uuid.UUID, date daykey.Key) (*schedule.DayBlock, error) {
	return r.s.blocks[dayKeyOf(providerID, date)], nil
}

func (r *txSchedule) PutBlock(_ context.Context, block *schedule.DayBlock) error {
	r.s.blocks[dayKeyOf(block.ProviderID(), block.Date())] = block
	return nil
}

// DeleteBlock is unconditional: unblocking a free day is a no-op.
func (r *txSchedule) DeleteBlock(_ context.Context, providerID uuid.UUID, date daykey.Key) error {
	delete(r.s.blocks, dayKeyOf(providerID, date))
	return nil
}

func (r *txSchedule) IsOpenForMore(_ context.Context, providerID uuid.UUID, date daykey.Key) (bool, error) {
	return r.s.openDays[dayKeyOf(providerID, date)], nil
}

func (r *txSchedule) SetOpenForMore(_ context.Context, providerID uuid.UUID, date daykey.Key, open bool) error {
	key := dayKeyOf(providerID, date)
	if open {
		r.s.openDays[key] = true
	} else {
		delete(r.s.openDays, key)
	}
	return nil
}

// ---- read store (queries.ScheduleReadStore) ----

func (s *Store) FindBlock(_ context.Context, providerID uuid.UUID, date daykey.Key) (*schedule.DayBlock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blocks[dayKeyOf(providerID, date)], nil
}

func (s *Store) IsOpenForMore(_ context.Context, providerID uuid.UUID, date daykey.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.openDays[dayKeyOf(providerID, date)], nil
}

package schedule

import (
	"time"

	"crewcal/internal/domain/daykey"
	"crewcal/internal/pkg/errs"

	"github.com/google/uuid"
)

// BlockKind distinguishes a hard self-block from one the provider keeps
// private: a blocked-open day still reads as available to requesters.
type BlockKind string

const (
	BlockKindBlocked     BlockKind = "blocked"
	BlockKindBlockedOpen BlockKind = "blocked-open"
)

func (k BlockKind) IsValid() bool {
	return k == BlockKindBlocked || k == BlockKindBlockedOpen
}

// DayBlock is a self-imposed calendar override, independent of bookings.
type DayBlock struct {
	providerID uuid.UUID
	date       daykey.Key
	kind       BlockKind
	createdAt  time.Time
}

func NewDayBlock(providerID uuid.UUID, date daykey.Key, kind BlockKind, now time.Time) (*DayBlock, error) {
	if providerID == uuid.Nil {
		return nil, errs.Mark(errs.New("provider is required"), errs.ErrValidation)
	}
	if !kind.IsValid() {
		return nil, errs.Mark(errs.New("unknown block kind: "+string(kind)), errs.ErrValidation)
	}
	return &DayBlock{
		providerID: providerID,
		date:       date,
		kind:       kind,
		createdAt:  now,
	}, nil
}

func ReconstructDayBlock(providerID uuid.UUID, date daykey.Key, kind BlockKind, createdAt time.Time) *DayBlock {
	return &DayBlock{providerID: providerID, date: date, kind: kind, createdAt: createdAt}
}

func (d *DayBlock) ProviderID() uuid.UUID { return d.providerID }
func (d *DayBlock) Date() daykey.Key      { return d.date }
func (d *DayBlock) Kind() BlockKind       { return d.kind }
func (d *DayBlock) CreatedAt() time.Time  { return d.createdAt }

package postgres

import (
	"context"
	"errors"
	"time"

	"crewcal/internal/domain/daykey"
	"crewcal/internal/domain/schedule"
	"crewcal/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type scheduleRepo struct {
	db querier
}

func (r *scheduleRepo) FindBlock(ctx context.Context, providerID uuid.UUID, date daykey.Key) (*schedule.DayBlock, error) {
	var (
		kind      string
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT kind, created_at FROM day_blocks WHERE provider_id = $1 AND date = $2`,
		providerID, date.String()).Scan(&kind, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find day block", err)
	}
	return schedule.ReconstructDayBlock(providerID, date, schedule.BlockKind(kind), createdAt), nil
}

func (r *scheduleRepo) PutBlock(ctx context.Context, block *schedule.DayBlock) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO day_blocks (provider_id, date, kind, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (provider_id, date) DO UPDATE SET kind = EXCLUDED.kind`,
		block.ProviderID(), block.Date().String(), string(block.Kind()), block.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to put day block", err)
	}
	return nil
}

func (r *scheduleRepo) DeleteBlock(ctx context.Context, providerID uuid.UUID, date daykey.Key) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM day_blocks WHERE provider_id = $1 AND date = $2`,
		providerID, date.String())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete day block", err)
	}
	return nil
}

func (r *scheduleRepo) IsOpenForMore(ctx context.Context, providerID uuid.UUID, date daykey.Key) (bool, error) {
	var open bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM open_days WHERE provider_id = $1 AND date = $2)`,
		providerID, date.String()).Scan(&open)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to read open-for-more flag", err)
	}
	return open, nil
}

func (r *scheduleRepo) SetOpenForMore(ctx context.Context, providerID uuid.UUID, date daykey.Key, open bool) error {
	var err error
	if open {
		_, err = r.db.Exec(ctx,
			`INSERT INTO open_days (provider_id, date) VALUES ($1, $2)
			 ON CONFLICT (provider_id, date) DO NOTHING`,
			providerID, date.String())
	} else {
		_, err = r.db.Exec(ctx,
			`DELETE FROM open_days WHERE provider_id = $1 AND date = $2`,
			providerID, date.String())
	}
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to set open-for-more flag", err)
	}
	return nil
}

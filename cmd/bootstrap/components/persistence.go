package components

import (
	"context"
	"fmt"

	"crewcal/internal/infra/memstore"
	"crewcal/internal/infra/postgres"
	"crewcal/internal/pkg/config"
	"crewcal/internal/usecase/commands"
	"crewcal/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores bundles the write and read ports of whichever backend the
// STORE_DRIVER setting picks. Both backends satisfy every port, so the
// rest of the graph never knows which one it got.
type Stores struct {
	fx.Out

	UnitOfWork        commands.UnitOfWork
	BookingReads      queries.BookingReadStore
	ScheduleReads     queries.ScheduleReadStore
	NotificationReads queries.NotificationReadStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	switch cfg.Store.Driver {
	case "postgres":
		pool, cleanup, err := postgres.Connect(cfg.DB)
		if err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		st := postgres.NewStore(pool)
		return Stores{
			UnitOfWork:        st,
			BookingReads:      st,
			ScheduleReads:     st,
			NotificationReads: st,
		}, nil

	case "memory", "":
		st := memstore.New()
		return Stores{
			UnitOfWork:        st,
			BookingReads:      st,
			ScheduleReads:     st,
			NotificationReads: st,
		}, nil

	default:
		return Stores{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

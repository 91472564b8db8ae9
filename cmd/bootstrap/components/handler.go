package components

import (
	"crewcal/internal/handler"
	"crewcal/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewNotificationHandler,
	),
	fx.Invoke(handler.NewRouter),
)

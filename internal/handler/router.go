package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"crewcal/internal/handler/api"
	"crewcal/internal/handler/middleware"
	"crewcal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	scheduleHandler *api.ScheduleHandler,
	notificationHandler *api.NotificationHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, scheduleHandler, notificationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	scheduleHandler *api.ScheduleHandler,
	notificationHandler *api.NotificationHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: bookingHandler.AcceptBooking},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: bookingHandler.DeclineBooking},
				{Method: http.MethodPost, Path: "/:id/withdraw", Handler: bookingHandler.WithdrawBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/convert", Handler: bookingHandler.ConvertBooking},
				{Method: http.MethodPost, Path: "/:id/decline-overlapping", Handler: bookingHandler.DeclineOverlapping},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: bookingHandler.RequestReschedule},
				{Method: http.MethodPost, Path: "/:id/reschedule/accept", Handler: bookingHandler.AcceptReschedule},
				{Method: http.MethodPost, Path: "/:id/reschedule/decline", Handler: bookingHandler.DeclineReschedule},
				{Method: http.MethodPost, Path: "/:id/reschedule/withdraw", Handler: bookingHandler.WithdrawReschedule},
			})
		}

		providers := apiGroup.Group("/providers/:providerId")
		{
			addRoutes(providers, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListProviderBookings},
				{Method: http.MethodGet, Path: "/bookings/overlapping", Handler: bookingHandler.ListOverlappingBookings},
				{Method: http.MethodGet, Path: "/schedule", Handler: scheduleHandler.GetDayStatuses},
				{Method: http.MethodGet, Path: "/schedule/:date", Handler: scheduleHandler.GetDayStatus},
				{Method: http.MethodPost, Path: "/schedule/:date/block", Handler: scheduleHandler.BlockDay},
				{Method: http.MethodDelete, Path: "/schedule/:date/block", Handler: scheduleHandler.UnblockDay},
				{Method: http.MethodPost, Path: "/schedule/:date/open-for-more", Handler: scheduleHandler.ToggleOpenForMore},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/requesters/:requesterId/bookings", Handler: bookingHandler.ListRequesterBookings},
			{Method: http.MethodGet, Path: "/notifications", Handler: notificationHandler.ListNotifications},
			{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: notificationHandler.MarkRead},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

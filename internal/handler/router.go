package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"consultbook/internal/handler/api"
	"consultbook/internal/handler/middleware"
	"consultbook/internal/observability/metrics"
	"consultbook/internal/pkg/config"
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
	logger *middleware.Logger,
	m *metrics.Metrics,
	slotHandler *api.SlotHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	adminHandler *api.AdminHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, slotHandler, bookingHandler, paymentHandler, adminHandler, adminAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	slotHandler *api.SlotHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	adminHandler *api.AdminHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/consultants/:id/slots", Handler: slotHandler.ListSlots},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CommitBooking},
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.ListClientBookings},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: bookingHandler.GetBookingStatus},
			{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: bookingHandler.CancelBooking},
			{Method: http.MethodPost, Path: "/webhooks/payment", Handler: paymentHandler.HandlePaymentWebhook},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(adminAuth.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/bookings/:id/force-release", Handler: adminHandler.ForceRelease},
				{Method: http.MethodPost, Path: "/consultants/:id/sync", Handler: adminHandler.SyncNow},
				{Method: http.MethodGet, Path: "/consultants/:id/agenda", Handler: adminHandler.ConsultantAgenda},
			})
		}
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

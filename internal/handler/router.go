package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"transit-booking/internal/domain/principal"
	"transit-booking/internal/handler/api"
	"transit-booking/internal/handler/middleware"
	"transit-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, bookingHandler *api.BookingHandler, operatorHandler *api.OperatorHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, operatorHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// the request id is assigned first so a recovered panic can still be traced
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, operatorHandler *api.OperatorHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	tp := engine.Group("/tp")
	{
		commuters := tp.Group("/commuters")
		addRoutes(commuters, []route{
			{Method: http.MethodPost, Path: "/book-and-pay", Handler: bookingHandler.BookAndPay},
			{Method: http.MethodPost, Path: "/cancel-booking", Handler: bookingHandler.CancelBooking},
			{Method: http.MethodGet, Path: "/available-seats", Handler: bookingHandler.AvailableSeats},
			{Method: http.MethodGet, Path: "/buses", Handler: bookingHandler.SearchBuses},
			// path used by the first commuter app release
			{Method: http.MethodGet, Path: "/available-buses", Handler: bookingHandler.SearchBuses},
		})

		operators := tp.Group("/operators")
		operators.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(principal.RoleOperator))
		{
			addRoutes(operators, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: operatorHandler.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/:transactionId", Handler: operatorHandler.GetBooking},
				{
					Method:  http.MethodGet,
					Path:    "/notifications/pending",
					Handler: operatorHandler.PendingNotifications,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(principal.RoleAdmin)},
				},
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

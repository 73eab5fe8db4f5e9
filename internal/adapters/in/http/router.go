package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RouterConfig tunes the middleware stack. A zero RateLimit disables the
// limiter.
type RouterConfig struct {
	RateLimit float64
	RateBurst int
}

// NewRouter builds the echo instance with every route registered.
func NewRouter(s *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = httpErrorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	if cfg.RateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(cfg.RateLimit),
			Burst: cfg.RateBurst,
		})
		e.Use(middleware.RateLimiter(store))
	}

	e.GET("/health", s.Health)

	api := e.Group("/api")

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrdersByStatus)
	orders.GET("/active", s.GetActiveOrders)
	orders.GET("/code/:code", s.GetOrderByCode)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.PATCH("/:id/complete", s.CompleteOrder)
	orders.POST("/:id/items", s.AddLineItem)
	orders.PATCH("/:id/items/:itemId/status", s.ChangeLineItemStatus)

	reports := api.Group("/reports")
	reports.GET("/download/:type", s.DownloadReport)
	reports.GET("/:type", s.GetReport)

	return e
}

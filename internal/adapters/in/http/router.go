package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"
)

// RouterConfig holds the settings of the public HTTP surface.
type RouterConfig struct {
	JWTSecret []byte

	// RateLimit and RateBurst apply per client IP to checkout and the payment webhook.
	RateLimit rate.Limit
	RateBurst int
}

// DefaultRouterConfig returns the limits used when none are configured.
func DefaultRouterConfig(jwtSecret []byte) RouterConfig {
	return RouterConfig{
		JWTSecret: jwtSecret,
		RateLimit: rate.Limit(5),
		RateBurst: 10,
	}
}

var registerDoc sync.Once

var limitedPaths = map[string]bool{
	"/api/v1/checkout/create-order": true,
	"/webhook/payment-gateway":      true,
}

// NewRouter assembles the echo instance: middleware, health check, API docs and
// the generated API routes bound to server.
func NewRouter(server *Server, cfg RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	if server == nil {
		return nil, errs.NewValueIsRequiredError("server")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	docJSON, err := json.Marshal(swagger)
	if err != nil {
		return nil, err
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, staticDoc(docJSON))
	})

	validator, err := ValidateRequests(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig(cfg)))
	e.Use(Authenticate(cfg.JWTSecret)...)
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": "marketplace",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func rateLimiterConfig(cfg RouterConfig) middleware.RateLimiterConfig {
	return middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !limitedPaths[c.Request().URL.Path]
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      cfg.RateLimit,
				Burst:     cfg.RateBurst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client").SetInternal(err)
		},
		DenyHandler: func(_ echo.Context, _ string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded").SetInternal(err)
		},
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil && v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}

// staticDoc serves the embedded OpenAPI document through swag's registry.
type staticDoc []byte

func (d staticDoc) ReadDoc() string {
	return string(d)
}

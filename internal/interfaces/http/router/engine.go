package router

import (
	"fmt"
	"net/http"

	_ "github.com/erp/crm/docs"
	"github.com/erp/crm/internal/infrastructure/config"
	"github.com/erp/crm/internal/infrastructure/logger"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/erp/crm/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Paths served outside the resource group
const (
	HealthPath  = "/health"
	SwaggerPath = "/swagger/*any"
)

// Config collects what the engine needs beyond the route registrars
type Config struct {
	HTTP        config.HTTPConfig
	Logger      *zap.Logger
	Tracing     middleware.TracingConfig
	Meter       metric.Meter // nil disables HTTP metrics
	Security    middleware.SecurityConfig
	JWT         middleware.JWTMiddlewareConfig
	Idempotency middleware.IdempotencyConfig
	// Health handles GET /health when set
	Health gin.HandlerFunc
}

// NewEngine builds the gin engine with the global middleware chain, the
// health probe, the Swagger UI, and registrars mounted under /api.
//
// Order: recovery, request id, tracing, span enrichment, metrics, access log,
// security headers, CORS, body limit. The /api group adds the actor and
// idempotency middleware.
func NewEngine(cfg Config, registrars ...RouteRegistrar) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	engine.Use(
		logger.Recovery(log, func(c *gin.Context) {
			middleware.AbortWithError(c, http.StatusInternalServerError, dto.MsgInternal)
		}),
		middleware.RequestID(),
		middleware.Tracing(cfg.Tracing),
		middleware.SpanEnricher(),
		middleware.HTTPMetrics(cfg.Meter, log),
		logger.GinMiddleware(log),
		middleware.SecureWithConfig(cfg.Security),
		middleware.CORSWithConfig(corsConfig(cfg.HTTP)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.NoRoute(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusNotFound, dto.MsgRouteNotFound)
	})
	engine.NoMethod(func(c *gin.Context) {
		middleware.AbortWithError(c, http.StatusMethodNotAllowed, dto.MsgMethodNotAllowed)
	})

	if cfg.Health != nil {
		engine.GET(HealthPath, cfg.Health)
	}

	// Swagger documentation endpoint
	engine.GET(SwaggerPath, ginSwagger.WrapHandler(swaggerFiles.Handler))

	jwtCfg := cfg.JWT
	if jwtCfg.Logger == nil {
		jwtCfg.Logger = log
	}
	idemCfg := cfg.Idempotency
	if idemCfg.Logger == nil {
		idemCfg.Logger = log
	}

	NewRouter(engine,
		WithGroupMiddleware(
			middleware.JWTActor(jwtCfg),
			middleware.Idempotency(idemCfg),
		),
	).Register(registrars...).Setup()

	return engine, nil
}

// corsConfig overlays the configured lists on the defaults
func corsConfig(httpCfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(httpCfg.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = httpCfg.CORSAllowOrigins
	}
	if len(httpCfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = httpCfg.CORSAllowMethods
	}
	if len(httpCfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = httpCfg.CORSAllowHeaders
	}
	return cors
}

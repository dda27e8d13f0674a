package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"opal-server/internal/config"
	"opal-server/internal/infrastructure"
	middleware "opal-server/internal/interfaces/httpserver/middlewares"
	v1 "opal-server/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine  *gin.Engine
	infra   *infrastructure.Infrastructure
	v1Route *v1.V1Route
	config  *config.Config
}

func NewHttpServer(
	v1Route *v1.V1Route,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		v1Route,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		sqlDB, err := infra.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return &server
}

// Engine exposes the configured router, mainly for tests.
func (httpServer *HTTPServer) Engine() *gin.Engine {
	return httpServer.engine
}

func (httpServer *HTTPServer) Run() error {
	// Page-style paths outside the API keep their own auth gate; only the
	// configured prefixes and exact paths require a principal.
	matcher := middleware.NewPathMatcher(
		httpServer.config.ProtectedPathPrefixes,
		httpServer.config.ProtectedExactPaths,
	)
	httpServer.engine.Use(middleware.ProtectedPaths(matcher, httpServer.infra.Validator, httpServer.infra.Logger))

	// API routes (auth middleware applied)
	protected := httpServer.engine.Group("/")
	protected.Use(
		middleware.AuthMiddleware(httpServer.infra.Validator, httpServer.infra.Logger),
	)

	httpServer.v1Route.RegisterRouter(protected)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}

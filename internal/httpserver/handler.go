package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	parseHTTP "lifelog-engine/internal/parse/delivery/http"
	profileHTTP "lifelog-engine/internal/profile/delivery/http"
	varsHTTP "lifelog-engine/internal/vars/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	srv.registerDomainRoutes()

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts the engine's API under /api/v1. The rate
// limiter only guards the API surface, never the health probes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	api.Use(srv.mw.RateLimit())

	parseHTTP.RegisterRoutes(api, srv.parseHandler)
	varsHTTP.RegisterRoutes(api, srv.varsHandler)
	profileHTTP.RegisterRoutes(api, srv.profileHandler)

	srv.l.Infof(ctx, "API routes registered under /api/v1")
}

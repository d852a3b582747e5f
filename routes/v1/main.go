package v1

import (
	"iconhive/config"
	"iconhive/handlers/apps"
	"iconhive/handlers/proxy"
	"iconhive/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups the handler sets mounted under /api/v1
type Handlers struct {
	Apps  *apps.Handler
	Proxy *proxy.Handler
}

// Register the endpoints for the v1 API
func Register(r *gin.Engine, h Handlers) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(middleware.MethodNotAllowed)
	r.NoRoute(middleware.NotFound)
	// on the engine so preflights of routes without an OPTIONS handler are answered too
	r.Use(middleware.CORSMiddleware(config.App.CORSOrigins))

	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())
	v1.Use(middleware.TracingMiddleware())
	v1.Use(middleware.RequestIDMiddleware())

	rateLimiter := middleware.NewRateLimiterFromConfig(config.APIRateLimit)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	proxy.RegisterRoutes(v1, h.Proxy)
	apps.RegisterRoutes(v1, h.Apps)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)

	RegisterSwaggerRoutes(r)
}

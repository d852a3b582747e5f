package proxy

import (
	"iconhive/config"
	"iconhive/middleware"
	"iconhive/services"

	"github.com/gin-gonic/gin"
)

// Handler forwards browser requests to the spreadsheet and store services
type Handler struct {
	proxy *services.ProxyService
}

func NewHandler(proxy *services.ProxyService) *Handler {
	return &Handler{proxy: proxy}
}

// RegisterRoutes registers the proxy routes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	proxyRateLimiter := middleware.NewRateLimiterFromConfig(config.ProxyRateLimit)

	proxy := r.Group("/proxy")
	proxy.Use(middleware.RateLimiterMiddleware(proxyRateLimiter))
	{
		proxy.GET("/sheet", h.GetSheet)
		proxy.OPTIONS("/sheet", middleware.OptionsOK)
		proxy.GET("/lookup", h.GetLookup)
		proxy.OPTIONS("/lookup", middleware.OptionsOK)
	}
}

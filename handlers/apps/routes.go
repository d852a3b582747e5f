package apps

import (
	"context"

	"iconhive/config"
	"iconhive/middleware"
	"iconhive/models"
	"iconhive/services"

	"github.com/gin-gonic/gin"
)

// Gallery runs the app pipeline and lists the catalog categories
type Gallery interface {
	services.Viewer
	Categories(ctx context.Context) ([]string, error)
}

// Handler serves the gallery of a session
type Handler struct {
	gallery  Gallery
	sessions *services.SessionStore
	exports  *services.ExportService
	publish  func(models.RunEvent)
}

// NewHandler creates the gallery handlers. publish receives pipeline run events and may be nil.
func NewHandler(gallery Gallery, sessions *services.SessionStore, exports *services.ExportService, publish func(models.RunEvent)) *Handler {
	return &Handler{gallery: gallery, sessions: sessions, exports: exports, publish: publish}
}

// RegisterRoutes registers all routes related to the app gallery
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	exportRateLimiter := middleware.NewRateLimiterFromConfig(config.ExportRateLimit)

	apps := r.Group("/apps")
	{
		apps.GET("", h.GetApps)
		apps.POST("/search", h.SearchApps)
		apps.DELETE("/search", h.ClearSearch)
		apps.GET("/categories", h.GetCategories)
		apps.GET("/colors", h.GetColors)
		apps.GET("/history", h.GetHistory)

		apps.GET("/selection", h.GetSelection)
		apps.POST("/selection", h.ToggleSelection)
		apps.DELETE("/selection", h.ClearSelection)

		apps.POST("/export/single", middleware.RateLimiterMiddleware(exportRateLimiter), h.ExportSingle)
		apps.POST("/export/combined", middleware.RateLimiterMiddleware(exportRateLimiter), h.ExportCombined)
		apps.GET("/export.xlsx", h.ExportWorkbook)

		apps.GET("/events", h.Events)
	}
}

// session resolves the caller's session and echoes its id back
func (h *Handler) session(c *gin.Context) *services.Session {
	session := h.sessions.Get(middleware.SessionID(c))
	c.Header(middleware.SessionHeader, session.ID)
	c.SetCookie(middleware.SessionCookie, session.ID, 0, "/", "", false, true)
	return session
}

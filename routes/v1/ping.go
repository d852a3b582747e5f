package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping Check that the API is up
// @Summary Check that the API is up
// @Tags Ping
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// RegisterPingRoutes registers the liveness route
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", ping)
}

package middleware

import (
	"net/http"

	"iconhive/utils/response"

	"github.com/gin-gonic/gin"
)

// MethodNotAllowed answers 405 with the JSON envelope; used as the engine's NoMethod handler
func MethodNotAllowed(c *gin.Context) {
	response.Abort(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method "+c.Request.Method+" is not allowed")
}

// NotFound answers 404 with the JSON envelope
func NotFound(c *gin.Context) {
	response.Abort(c, http.StatusNotFound, "NOT_FOUND", "Route "+c.Request.URL.Path+" does not exist")
}

// OptionsOK answers preflight requests that reach a route without an Origin header
func OptionsOK(c *gin.Context) {
	c.Status(http.StatusOK)
}

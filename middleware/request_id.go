package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const (
	RequestIDHeader    = "X-Request-ID"
	SessionHeader      = "X-Session-ID"
	SessionCookie      = "iconhive_session"
	DeliveryModeHeader = "X-Delivery-Mode"
	StatusTextHeader   = "X-Status-Text"

	requestIDKey = "request_id"
)

// RequestIDMiddleware tags each request with an id, reusing the caller's when present
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger returns a request-scoped log entry, tagged with the trace id when a span is active
func Logger(c *gin.Context) *log.Entry {
	entry := log.WithFields(log.Fields{
		"request_id": c.GetString(requestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	})
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		entry = entry.WithField("trace_id", sc.TraceID().String())
	}
	return entry
}

// SessionID reads the session id from the header, then the query, then the cookie. Empty when the client has none yet.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	if id := c.Query("session"); id != "" {
		return id
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

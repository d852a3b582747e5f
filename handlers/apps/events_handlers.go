package apps

import (
	"net/http"

	"iconhive/apperrors"
	"iconhive/middleware"
	"iconhive/realtime"
	"iconhive/services"
	"iconhive/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Events Stream pipeline run events
// @Summary Stream pipeline run events
// @Description WebSocket stream of loading, ready and failed events for the session's pipeline runs
// @Tags Apps
// @Param session query string false "Session id, when the X-Session-ID header cannot be set"
// @Success 101 {object} models.RunEvent
// @Failure 400 {object} response.Envelope
// @Router /apps/events [get]
func (h *Handler) Events(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if !services.ValidSessionID(sessionID) {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrMissingSession)
		return
	}
	session := h.sessions.Get(sessionID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		middleware.Logger(c).WithError(err).Warn("WebSocket upgrade error")
		return
	}

	realtime.RegisterClient(session.ID, conn)
	defer func() {
		realtime.UnregisterClient(session.ID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			middleware.Logger(c).WithError(err).Debug("WebSocket closed")
			break
		}
	}
}

package apps

import (
	"net/http"
	"strings"

	"iconhive/apperrors"
	"iconhive/utils/response"

	"github.com/gin-gonic/gin"
)

// GetSelection List the selected apps
// @Summary List the selected apps
// @Tags Selection
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} SelectionResponse
// @Router /apps/selection [get]
func (h *Handler) GetSelection(c *gin.Context) {
	ids := h.session(c).Selection()
	c.JSON(http.StatusOK, SelectionResponse{Selection: ids, Count: len(ids)})
}

// ToggleSelection Toggle an app in the selection
// @Summary Toggle an app in the selection
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body ToggleSelectionRequest true "App track id"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} ToggleSelectionResponse
// @Failure 400 {object} response.Envelope
// @Router /apps/selection [post]
func (h *Handler) ToggleSelection(c *gin.Context) {
	var req ToggleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrInvalidRequest+": "+err.Error())
		return
	}
	id := strings.TrimSpace(req.ID)
	if id == "" {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrInvalidRequest)
		return
	}

	session := h.session(c)
	selected := session.ToggleSelection(id)
	ids := session.Selection()
	c.JSON(http.StatusOK, ToggleSelectionResponse{
		ID:                id,
		Selected:          selected,
		SelectionResponse: SelectionResponse{Selection: ids, Count: len(ids)},
	})
}

// ClearSelection Clear the selection
// @Summary Clear the selection
// @Tags Selection
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} SelectionResponse
// @Router /apps/selection [delete]
func (h *Handler) ClearSelection(c *gin.Context) {
	h.session(c).ClearSelection()
	c.JSON(http.StatusOK, SelectionResponse{Selection: []string{}, Count: 0})
}

package apps

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"iconhive/apperrors"
	"iconhive/colors"
	"iconhive/middleware"
	"iconhive/models"
	"iconhive/services"
	"iconhive/utils/response"

	"github.com/gin-gonic/gin"
)

// GetApps Get the app gallery
// @Summary Get the app gallery
// @Description Runs the pipeline for a category, search term and color filter and stores the result as the session's display list.
// @Description A search term widens the scope to every category.
// @Tags Apps
// @Produce json
// @Param category query string false "Category tab, all when empty"
// @Param search query string false "Case-insensitive name search"
// @Param color query string false "Color bucket id"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /apps [get]
func (h *Handler) GetApps(c *gin.Context) {
	var state models.ViewState
	if err := c.ShouldBindQuery(&state); err != nil {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrInvalidQuery)
		return
	}
	state.Search = strings.TrimSpace(state.Search)
	if state.Color == "" {
		state.Color = models.BucketAll
	}
	if _, ok := colors.Lookup(state.Color); !ok {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrUnknownColor)
		return
	}

	h.runView(c, h.session(c), state)
}

// SearchApps Search the gallery
// @Summary Search the gallery
// @Description Submits a search term. Blank terms are rejected without touching the history.
// @Tags Apps
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search term"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /apps/search [post]
func (h *Handler) SearchApps(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrInvalidRequest+": "+err.Error())
		return
	}

	session := h.session(c)
	state, err := session.Submit(req.Term)
	if err != nil {
		response.FromError(c, err, ErrInvalidRequest)
		return
	}

	h.runView(c, session, state)
}

// ClearSearch Clear the search term
// @Summary Clear the search term
// @Description Drops the search term and runs the pipeline for the current category and color
// @Tags Apps
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} ViewResponse
// @Failure 409 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /apps/search [delete]
func (h *Handler) ClearSearch(c *gin.Context) {
	session := h.session(c)
	h.runView(c, session, session.ClearSearch())
}

func (h *Handler) runView(c *gin.Context, session *services.Session, state models.ViewState) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ViewTimeout)
	defer cancel()

	apps, err := services.RunView(ctx, h.gallery, session, state, h.publish)
	if err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			response.Error(c, http.StatusConflict, "SUPERSEDED", ErrSuperseded)
			return
		}
		middleware.Logger(c).WithError(err).WithField("session_id", session.ID).Error("Pipeline run failed")
		response.FromError(c, err, ErrViewFailed)
		return
	}

	c.JSON(http.StatusOK, ViewResponse{
		SessionID: session.ID,
		State:     state,
		Count:     len(apps),
		Apps:      apps,
	})
}

// GetCategories Get the category tabs
// @Summary Get the category tabs
// @Description Lists the catalog categories in first-seen order, preceded by "all"
// @Tags Apps
// @Produce json
// @Success 200 {array} string
// @Router /apps/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ViewTimeout)
	defer cancel()

	categories := []string{services.AllCategories}
	found, err := h.gallery.Categories(ctx)
	if err != nil {
		middleware.Logger(c).WithError(err).Warn(ErrCategoriesFailed)
	}
	for _, category := range found {
		if !strings.EqualFold(category, services.AllCategories) {
			categories = append(categories, category)
		}
	}

	c.JSON(http.StatusOK, categories)
}

// GetColors Get the color filter palette
// @Summary Get the color filter palette
// @Tags Apps
// @Produce json
// @Success 200 {array} models.Bucket
// @Router /apps/colors [get]
func (h *Handler) GetColors(c *gin.Context) {
	c.JSON(http.StatusOK, colors.Palette())
}

// GetHistory Get the search history
// @Summary Get the search history
// @Description Most recent first, at most 5 distinct terms
// @Tags Apps
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {array} string
// @Router /apps/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).History())
}

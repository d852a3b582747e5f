package proxy

import (
	"context"
	"net/http"
	"strings"

	"iconhive/middleware"
	"iconhive/models"
	"iconhive/utils/response"

	"github.com/gin-gonic/gin"
)

// GetSheet Forward a spreadsheet query
// @Summary Forward a spreadsheet query
// @Description Returns the raw gviz response of a sheet tab, callback wrapper included
// @Tags Proxy
// @Produce plain
// @Param sheet query string true "Sheet tab name"
// @Success 200 {string} string "Raw gviz payload"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /proxy/sheet [get]
func (h *Handler) GetSheet(c *gin.Context) {
	sheet := strings.TrimSpace(c.Query("sheet"))
	if sheet == "" {
		response.Error(c, http.StatusBadRequest, CodeInvalidParameter, ErrMissingSheet)
		return
	}
	if len(sheet) > maxSheetName {
		response.Error(c, http.StatusBadRequest, CodeInvalidParameter, ErrInvalidSheet)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), UpstreamTimeout)
	defer cancel()

	body, err := h.proxy.Sheet(ctx, sheet)
	if err != nil {
		middleware.Logger(c).WithError(err).WithField("sheet", sheet).Error("Sheet proxy failed")
		response.Error(c, http.StatusInternalServerError, CodeUpstreamError, ErrSheetFetchFailed)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

// GetLookup Forward a store lookup
// @Summary Forward a store lookup
// @Description Returns the raw store lookup response for up to 10 comma-separated ids
// @Tags Proxy
// @Produce json
// @Param id query string true "Comma-separated store ids"
// @Success 200 {object} models.LookupResponse
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /proxy/lookup [get]
func (h *Handler) GetLookup(c *gin.Context) {
	ids, message := parseIDs(c.Query("id"))
	if message != "" {
		response.Error(c, http.StatusBadRequest, CodeInvalidParameter, message)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), UpstreamTimeout)
	defer cancel()

	body, err := h.proxy.Lookup(ctx, ids)
	if err != nil {
		middleware.Logger(c).WithError(err).WithField("ids", len(ids)).Error("Lookup proxy failed")
		response.Error(c, http.StatusInternalServerError, CodeUpstreamError, ErrLookupFailed)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// parseIDs splits and validates the id parameter, returning an error message when it is unusable
func parseIDs(raw string) ([]string, string) {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		for _, r := range id {
			if r < '0' || r > '9' {
				return nil, ErrInvalidID
			}
		}
		ids = append(ids, id)
	}

	switch {
	case len(ids) == 0:
		return nil, ErrMissingIDs
	case len(ids) > models.LookupBatchSize:
		return nil, ErrTooManyIDs
	}
	return ids, ""
}

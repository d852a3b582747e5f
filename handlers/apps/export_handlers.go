package apps

import (
	"context"
	"fmt"
	"net/http"

	"iconhive/apperrors"
	"iconhive/middleware"
	"iconhive/models"
	"iconhive/services"
	"iconhive/utils/response"

	"github.com/gin-gonic/gin"
)

// responseDownloader keeps the artifact so the handler can attach it to the response.
// A browser cannot receive an image on its clipboard from the server, so every HTTP
// export is delivered through this fallback.
type responseDownloader struct {
	artifact *models.Artifact
}

func (d *responseDownloader) Download(_ context.Context, artifact models.Artifact) error {
	d.artifact = &artifact
	return nil
}

func writeDelivery(c *gin.Context, result models.DeliveryResult, artifact *models.Artifact) {
	c.Header(middleware.DeliveryModeHeader, string(result.Mode))
	c.Header(middleware.StatusTextHeader, result.StatusText)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, "image/png", artifact.Data)
}

func writeDeliveryError(c *gin.Context, result models.DeliveryResult, err error) {
	c.Header(middleware.DeliveryModeHeader, string(models.DeliveryFailed))
	c.Header(middleware.StatusTextHeader, result.StatusText)
	middleware.Logger(c).WithError(err).Warn("Export failed")
	response.FromError(c, err, ErrExportFailed)
}

// ExportSingle Export one icon
// @Summary Export one icon
// @Description Renders the icon with its rounded corners at natural resolution and returns it as app-logo.png.
// @Description Only artwork of the session's display list is exported.
// @Tags Export
// @Accept json
// @Produce png
// @Param request body models.ExportItem true "Icon to export"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {file} file "PNG image"
// @Header 200 {string} X-Delivery-Mode "copied or downloaded"
// @Header 200 {string} X-Status-Text "Status text to display"
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /apps/export/single [post]
func (h *Handler) ExportSingle(c *gin.Context) {
	var item models.ExportItem
	if err := c.ShouldBindJSON(&item); err != nil {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrInvalidRequest+": "+err.Error())
		return
	}

	if !h.session(c).Displays(item.ImageURL) {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrImageNotDisplayed)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ExportTimeout)
	defer cancel()

	downloader := &responseDownloader{}
	result, err := h.exports.ExportSingle(ctx, item, nil, downloader)
	if err != nil {
		writeDeliveryError(c, result, err)
		return
	}
	writeDelivery(c, result, downloader.artifact)
}

// ExportCombined Export a grid sheet of icons
// @Summary Export a grid sheet of icons
// @Description Composes the given icons, or the session's selection when none are given, into one grid image named app-logos-<n>.png.
// @Description The selection is cleared after a successful export.
// @Tags Export
// @Accept json
// @Produce png
// @Param request body CombinedExportRequest true "Icons and layout"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {file} file "PNG image"
// @Header 200 {string} X-Delivery-Mode "copied or downloaded"
// @Header 200 {string} X-Status-Text "Status text to display"
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /apps/export/combined [post]
func (h *Handler) ExportCombined(c *gin.Context) {
	var req CombinedExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrInvalidRequest+": "+err.Error())
		return
	}

	session := h.session(c)
	items := req.Items
	if len(items) == 0 {
		items = services.ItemsFromApps(session.SelectedApps(), req.BorderRadius)
	}
	if len(items) == 0 {
		response.Error(c, http.StatusBadRequest, string(apperrors.EmptyInput), ErrNothingToExport)
		return
	}
	for _, item := range items {
		if !session.Displays(item.ImageURL) {
			response.Error(c, http.StatusBadRequest, string(apperrors.InvalidParameter), ErrImageNotDisplayed)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ExportTimeout)
	defer cancel()

	downloader := &responseDownloader{}
	result, err := h.exports.ExportCombined(ctx, items, req.Layout, nil, downloader)
	if err != nil {
		writeDeliveryError(c, result, err)
		return
	}

	session.ClearSelection()
	middleware.Logger(c).WithField("count", len(items)).Info("Combined export delivered")
	writeDelivery(c, result, downloader.artifact)
}

// ExportWorkbook Export the display list as a spreadsheet
// @Summary Export the display list as a spreadsheet
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Session-ID header string false "Session id"
// @Success 200 {file} file "XLSX workbook"
// @Failure 500 {object} response.Envelope
// @Router /apps/export.xlsx [get]
func (h *Handler) ExportWorkbook(c *gin.Context) {
	session := h.session(c)

	workbook, err := services.BuildWorkbook(session.Apps())
	if err != nil {
		middleware.Logger(c).WithError(err).Error(ErrWorkbookFailed)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", ErrWorkbookFailed)
		return
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		middleware.Logger(c).WithError(err).Error(ErrWorkbookFailed)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", ErrWorkbookFailed)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", WorkbookFilename))
	c.Data(http.StatusOK, workbookMIME, buf.Bytes())
}

package apps

import (
	"time"

	"iconhive/imaging"
	"iconhive/models"
)

// Constants for error messages and timeouts
const (
	ErrInvalidQuery      = "Invalid query parameters"
	ErrInvalidRequest    = "Invalid request format"
	ErrUnknownColor      = "Unknown color filter"
	ErrViewFailed        = "Failed to load apps"
	ErrSuperseded        = "A newer request replaced this one"
	ErrCategoriesFailed  = "Failed to load categories"
	ErrNothingToExport   = "No icons selected for export"
	ErrImageNotDisplayed = "Only icons shown in the gallery can be exported"
	ErrExportFailed      = "Failed to export icons"
	ErrWorkbookFailed    = "Failed to build spreadsheet"
	ErrMissingSession    = "A valid session id is required to subscribe to events"

	ViewTimeout   = 30 * time.Second
	ExportTimeout = 30 * time.Second

	WorkbookFilename = "app-logos.xlsx"
	workbookMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ViewResponse is the display list of a session after a pipeline run
type ViewResponse struct {
	SessionID string               `json:"session_id"`
	State     models.ViewState     `json:"state"`
	Count     int                  `json:"count"`
	Apps      []models.EnrichedApp `json:"apps"`
}

// SearchRequest submits a search term
type SearchRequest struct {
	Term string `json:"term"`
}

// ToggleSelectionRequest toggles one app in the selection
type ToggleSelectionRequest struct {
	ID string `json:"id" binding:"required"`
}

// SelectionResponse lists the selected app ids, in selection order
type SelectionResponse struct {
	Selection []string `json:"selection"`
	Count     int      `json:"count"`
}

// ToggleSelectionResponse reports whether the toggled app is now selected
type ToggleSelectionResponse struct {
	ID       string `json:"id"`
	Selected bool   `json:"selected"`
	SelectionResponse
}

// CombinedExportRequest exports explicit items, or the session's selection when Items is empty
type CombinedExportRequest struct {
	Items        []models.ExportItem  `json:"items" binding:"omitempty,dive"`
	BorderRadius string               `json:"borderRadius"`
	Layout       imaging.SheetOptions `json:"layout"`
}

package services

import (
	"fmt"
	"strings"

	"iconhive/models"

	"github.com/xuri/excelize/v2"
)

const appsSheet = "Apps"

var workbookHeaders = []string{"Name", "Track ID", "Category", "Genre", "Dominant color", "Color bucket", "Store page", "Artwork"}

// BuildWorkbook writes the display list into a spreadsheet, one app per row.
// The dominant color cell is filled with the color itself.
func BuildWorkbook(apps []models.EnrichedApp) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", appsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(appsSheet, "A1", &workbookHeaders); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(appsSheet, 1, 1, headerStyle)
	}

	styles := map[string]int{}
	for i, app := range apps {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{
			app.TrackName,
			formatTrackID(app.TrackID),
			app.Category,
			app.PrimaryGenreName,
			app.DominantColor,
			string(app.ColorBucket),
			app.TrackViewURL,
			app.ArtworkURL100,
		}
		if err := f.SetSheetRow(appsSheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}

		if app.DominantColor == "" {
			continue
		}
		style, ok := styles[app.DominantColor]
		if !ok {
			style, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(app.DominantColor, "#")}},
			})
			if err != nil {
				continue
			}
			styles[app.DominantColor] = style
		}
		colorCell, _ := excelize.CoordinatesToCellName(5, row)
		_ = f.SetCellStyle(appsSheet, colorCell, colorCell, style)
	}

	_ = f.SetColWidth(appsSheet, "A", "A", 32)
	_ = f.SetColWidth(appsSheet, "G", "H", 48)
	return f, nil
}

package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"iconhive/config"
	"iconhive/imaging"
	"iconhive/models"
	"iconhive/services"

	"github.com/charmbracelet/huh/spinner"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

// ExportFlags extend ViewFlags with the export layout
var ExportFlags = append([]cli.Flag{
	&cli.StringFlag{Name: "radius", Value: "22%", Usage: "icon corner rounding, as a CSS border-radius (% or px)"},
	&cli.Int64Flag{Name: "id", Usage: "export only the displayed app with this track id"},
	&cli.IntFlag{Name: "limit", Usage: "export at most this many apps, 0 for all"},
	&cli.IntFlag{Name: "cell", Value: imaging.DefaultCellSize, Usage: "cell edge of the combined sheet in pixels"},
	&cli.Float64Flag{Name: "gap", Value: imaging.DefaultGapRatio, Usage: "gap between cells as a fraction of the cell edge"},
	&cli.StringFlag{Name: "out", Value: ".", Usage: "directory used when the clipboard is unavailable"},
	&cli.DurationFlag{Name: "hold", Value: 30 * time.Second, Usage: "how long to keep serving a copied image, ended early when the clipboard changes"},
}, ViewFlags...)

// Export copies the displayed icons to the clipboard, or saves them when the clipboard refuses
func Export(c *cli.Context) error {
	state, err := viewState(c)
	if err != nil {
		return err
	}

	s := newStack(config.App)
	apps, err := loadApps(c, s, state)
	if err != nil {
		return err
	}

	if id := c.Int64("id"); id != 0 {
		apps = filterByTrackID(apps, id)
	}
	if limit := c.Int("limit"); limit > 0 && len(apps) > limit {
		apps = apps[:limit]
	}
	if len(apps) == 0 {
		return fmt.Errorf("nothing to export")
	}

	items := services.ItemsFromApps(apps, c.String("radius"))
	opts := imaging.SheetOptions{CellSize: c.Int("cell"), GapRatio: c.Float64("gap")}
	downloader := &services.FileDownloader{Dir: c.String("out")}
	systemClipboard := &services.SystemClipboard{}

	var (
		result   models.DeliveryResult
		artifact models.Artifact
	)
	render := func(ctx context.Context) error {
		var err error
		if len(items) == 1 {
			artifact, err = s.exports.RenderSingle(ctx, items[0])
		} else {
			artifact, err = s.exports.RenderCombined(ctx, items, opts)
		}
		if err != nil {
			return err
		}
		result, err = services.Deliver(ctx, systemClipboard, downloader, artifact, len(items) > 1)
		return err
	}

	if err := spinner.New().Title("Exporting " + strconv.Itoa(len(items)) + " icons...").Context(c.Context).ActionWithErr(render).Run(); err != nil {
		return err
	}

	fmt.Printf("%s %s (%dx%d, %s)\n", result.StatusText, result.Filename, artifact.Width, artifact.Height, humanize.Bytes(uint64(len(artifact.Data))))
	if result.Mode == models.DeliveryDownloaded {
		fmt.Printf("Saved to %s\n", downloader.Path)
	}
	if result.Mode == models.DeliveryCopied {
		holdClipboard(c.Context, systemClipboard.Changed(), c.Duration("hold"))
	}
	return nil
}

// holdClipboard keeps the process serving the copied image until it is replaced, hold elapses
// or the command is interrupted
func holdClipboard(ctx context.Context, changed <-chan struct{}, hold time.Duration) {
	if changed == nil || hold <= 0 {
		return
	}
	fmt.Printf("Keeping the image on the clipboard for %s (Ctrl+C to quit)\n", hold)

	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-changed:
	case <-timer.C:
	case <-ctx.Done():
	}
}

func filterByTrackID(apps []models.EnrichedApp, id int64) []models.EnrichedApp {
	for _, app := range apps {
		if app.TrackID == id {
			return []models.EnrichedApp{app}
		}
	}
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"iconhive/colors"
	"iconhive/config"
	"iconhive/models"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v2"
)

// ViewFlags select what the pipeline shows
var ViewFlags = []cli.Flag{
	&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Value: "all", Usage: "category tab"},
	&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "case-insensitive name search, across every category"},
	&cli.StringFlag{Name: "color", Value: string(models.BucketAll), Usage: "color bucket (all, red, orange, yellow, green, blue, purple, pink, black, white)"},
}

func viewState(c *cli.Context) (models.ViewState, error) {
	state := models.ViewState{
		Category: c.String("category"),
		Search:   c.String("search"),
		Color:    models.BucketID(c.String("color")),
	}
	if _, ok := colors.Lookup(state.Color); !ok {
		return state, fmt.Errorf("unknown color %q", state.Color)
	}
	return state, nil
}

// loadApps runs the pipeline behind a spinner
func loadApps(c *cli.Context, s stack, state models.ViewState) ([]models.EnrichedApp, error) {
	var apps []models.EnrichedApp
	load := func(ctx context.Context) error {
		var err error
		apps, err = s.pipeline.View(ctx, state)
		return err
	}

	err := spinner.New().Title("Loading apps...").Context(c.Context).ActionWithErr(load).Run()
	return apps, err
}

// View prints the gallery for the selected category, search and color
func View(c *cli.Context) error {
	state, err := viewState(c)
	if err != nil {
		return err
	}

	apps, err := loadApps(c, newStack(config.App), state)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("No apps found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTRACK ID\tCATEGORY\tCOLOR\tBUCKET")
	for _, app := range apps {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", app.TrackName, app.TrackID, app.Category, app.DominantColor, app.ColorBucket)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d apps\n", len(apps))
	return nil
}

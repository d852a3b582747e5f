package main

import (
	"fmt"
	"os"

	"iconhive/commands"
	"iconhive/config"

	"github.com/urfave/cli/v2"
)

// @title IconHive API
// @version 1.0
// @description App icon gallery: catalog, store enrichment, color filtering and icon export
// @BasePath /api/v1
func main() {
	app := &cli.App{
		Name:  "iconhive",
		Usage: "Browse app icons by category and dominant color, and export them as images.",
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.SetupLogger()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen port, overrides API_PORT"}},
				Action: commands.Serve,
			},
			{
				Name:   "view",
				Usage:  "Print the gallery for a category, search and color",
				Flags:  commands.ViewFlags,
				Action: commands.View,
			},
			{
				Name:   "export",
				Usage:  "Copy the displayed icons to the clipboard as one image",
				Flags:  commands.ExportFlags,
				Action: commands.Export,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

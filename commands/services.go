// Package commands holds the actions of the iconhive command line.
package commands

import (
	"iconhive/config"
	"iconhive/services"
)

// stack is the set of services every command runs against
type stack struct {
	pipeline *services.Pipeline
	exports  *services.ExportService
	proxy    *services.ProxyService
}

func newStack(cfg config.Config) stack {
	client := services.NewHTTPClient(cfg.UpstreamTimeout)
	images := services.NewImageLoader(client)

	return stack{
		pipeline: services.NewPipeline(
			services.NewCatalogService(cfg, client),
			services.NewLookupService(cfg, client),
			services.NewColorService(images),
			cfg.ColorWorkers,
			cfg.SortLocale,
		),
		exports: services.NewExportService(images),
		proxy:   services.NewProxyService(cfg, client),
	}
}

package services

import (
	"context"
	"net/http"

	"iconhive/config"
)

// ProxyService forwards raw requests to the spreadsheet and store lookup services
type ProxyService struct {
	client *http.Client
	cfg    config.Config
}

func NewProxyService(cfg config.Config, client *http.Client) *ProxyService {
	return &ProxyService{client: client, cfg: cfg}
}

// Sheet returns the raw gviz response of a sheet tab, callback wrapper included
func (s *ProxyService) Sheet(ctx context.Context, sheet string) ([]byte, error) {
	return upstreamGet(ctx, s.client, s.cfg.SheetURL(sheet), catalogSource)
}

// Lookup returns the raw store lookup response for at most models.LookupBatchSize ids
func (s *ProxyService) Lookup(ctx context.Context, ids []string) ([]byte, error) {
	return upstreamGet(ctx, s.client, s.cfg.LookupQueryURL(ids), lookupSource)
}

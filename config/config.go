package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds every setting read from the environment (and an optional .env file)
type Config struct {
	Port    string `env:"API_PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Catalog spreadsheet, either a full gviz URL or a sheet id + tab name
	CatalogURL       string `env:"CATALOG_URL"`
	CatalogSheetID   string `env:"CATALOG_SHEET_ID"`
	CatalogSheetName string `env:"CATALOG_SHEET_NAME" envDefault:"apps"`

	LookupURL     string `env:"STORE_LOOKUP_URL" envDefault:"https://itunes.apple.com/lookup"`
	LookupCountry string `env:"STORE_LOOKUP_COUNTRY"`

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	ColorWorkers    int           `env:"COLOR_WORKERS" envDefault:"8"`
	SortLocale      string        `env:"SORT_LOCALE" envDefault:"en"`

	SessionLimit int           `env:"SESSION_LIMIT" envDefault:"10000"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// App is the configuration loaded by Load, shared by the handlers
var App Config

// Load reads the .env file when present, then parses the environment into App
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Could not load .env file: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ColorWorkers <= 0 {
		cfg.ColorWorkers = 1
	}

	App = cfg
	return cfg, nil
}

// SheetURL returns the gviz query URL for a sheet tab. An empty tab falls back to CatalogSheetName.
func (c Config) SheetURL(sheet string) string {
	if c.CatalogURL != "" && sheet == "" {
		return c.CatalogURL
	}
	if sheet == "" {
		sheet = c.CatalogSheetName
	}
	if c.CatalogSheetID == "" {
		return c.CatalogURL
	}

	query := url.Values{}
	query.Set("tqx", "out:json")
	query.Set("sheet", sheet)
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?%s", url.PathEscape(c.CatalogSheetID), query.Encode())
}

// LookupQueryURL returns the store lookup URL for a comma-joined id list
func (c Config) LookupQueryURL(ids []string) string {
	query := url.Values{}
	query.Set("id", strings.Join(ids, ","))
	if c.LookupCountry != "" {
		query.Set("country", c.LookupCountry)
	}

	separator := "?"
	if strings.Contains(c.LookupURL, "?") {
		separator = "&"
	}
	return c.LookupURL + separator + query.Encode()
}

// SetupLogger applies the configured level and format to the standard logrus logger
func (c Config) SetupLogger() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

package config

import (
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"API_PORT", "COLOR_WORKERS", "CATALOG_SHEET_NAME", "UPSTREAM_TIMEOUT", "SESSION_LIMIT", "SESSION_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.CatalogSheetName != "apps" || cfg.UpstreamTimeout != 10*time.Second || cfg.ColorWorkers != 8 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SessionLimit != 10000 || cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("session settings = %d, %s", cfg.SessionLimit, cfg.SessionTTL)
	}
	if App.Port != cfg.Port {
		t.Fatal("App was not set")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("COLOR_WORKERS", "-2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || len(cfg.CORSOrigins) != 2 || cfg.UpstreamTimeout != 3*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ColorWorkers != 1 {
		t.Fatalf("ColorWorkers = %d, want 1", cfg.ColorWorkers)
	}
}

func TestSheetURL(t *testing.T) {
	cfg := Config{CatalogSheetID: "abc", CatalogSheetName: "apps"}

	parsed, err := url.Parse(cfg.SheetURL(""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Path != "/spreadsheets/d/abc/gviz/tq" || parsed.Query().Get("sheet") != "apps" || parsed.Query().Get("tqx") != "out:json" {
		t.Fatalf("url = %s", parsed)
	}

	parsed, _ = url.Parse(cfg.SheetURL("other tab"))
	if parsed.Query().Get("sheet") != "other tab" {
		t.Fatalf("url = %s", parsed)
	}

	explicit := Config{CatalogURL: "https://sheets.example/gviz"}
	if explicit.SheetURL("") != "https://sheets.example/gviz" {
		t.Fatalf("explicit url = %s", explicit.SheetURL(""))
	}
}

func TestLookupQueryURL(t *testing.T) {
	cfg := Config{LookupURL: "https://store.example/lookup", LookupCountry: "fr"}
	got := cfg.LookupQueryURL([]string{"1", "2"})
	if got != "https://store.example/lookup?country=fr&id=1%2C2" {
		t.Fatalf("url = %s", got)
	}

	cfg = Config{LookupURL: "https://store.example/lookup?entity=software"}
	if got := cfg.LookupQueryURL([]string{"3"}); !strings.HasPrefix(got, "https://store.example/lookup?entity=software&id=3") {
		t.Fatalf("url = %s", got)
	}
}

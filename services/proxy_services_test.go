package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"iconhive/config"
)

func TestProxyServicePassesBodiesThrough(t *testing.T) {
	var lookupQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sheet":
			w.Write([]byte(catalogPayload))
		case "/lookup":
			lookupQuery = r.URL.RawQuery
			w.Write([]byte(`{"resultCount":0,"results":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	proxy := NewProxyService(config.Config{CatalogURL: srv.URL + "/sheet", LookupURL: srv.URL + "/lookup", LookupCountry: "fr"}, srv.Client())

	body, err := proxy.Sheet(context.Background(), "apps")
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if string(body) != catalogPayload {
		t.Fatal("sheet body was altered")
	}

	if _, err := proxy.Lookup(context.Background(), []string{"1", "2"}); err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if lookupQuery != "country=fr&id=1%2C2" {
		t.Fatalf("query = %s", lookupQuery)
	}
}

func TestProxyServiceReportsUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	proxy := NewProxyService(config.Config{CatalogURL: srv.URL}, srv.Client())
	if _, err := proxy.Sheet(context.Background(), "apps"); err == nil {
		t.Fatal("expected an error for a 403")
	}
}

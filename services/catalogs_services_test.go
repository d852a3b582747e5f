package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"

	"iconhive/apperrors"
	"iconhive/models"
)

const catalogPayload = `/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","status":"ok","table":{
"cols":[{"id":"A","label":"ID","type":"number"},{"id":"B","label":"Name","type":"string"},{"id":"C","label":"App_Store_ID","type":"number"},{"id":"D","label":"Category","type":"string"},{"id":"E","label":"created_at","type":"datetime"}],
"rows":[
{"c":[{"v":1.0,"f":"1"},{"v":"Alpha"},{"v":1.23456789E8,"f":"123,456,789"},{"v":"games"},{"v":"Date(2024,0,15,9,30,0)","f":"1/15/2024 9:30:00"}]},
{"c":[{"v":"7abc"},{"v":"  Beta  "},{"v":"42"},{"v":"tools"},null]},
{"c":[{"v":0},{"v":"Zero"},{"v":"1"},{"v":"games"},null]},
{"c":[{"v":3},{"v":""},{"v":"5"},{"v":"games"},null]},
{"c":[{"v":4},{"v":"NoStore"},null,{"v":"games"},null]},
{"c":[{"v":5.9},{"v":"Float"},{"v":"77"}]}
]}});`

func TestParseCatalogCoercesAndDropsInvalidRows(t *testing.T) {
	records, err := ParseCatalog([]byte(catalogPayload))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}

	want := []models.CatalogRecord{
		{ID: 1, Name: "Alpha", AppStoreID: "123456789", Category: "games", CreatedAt: "2024-01-15T09:30:00Z"},
		{ID: 7, Name: "Beta", AppStoreID: "42", Category: "tools"},
		{ID: 5, Name: "Float", AppStoreID: "77"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("records = %+v\nwant %+v", records, want)
	}
}

func TestParseCatalogMissingColumnsYieldNoRecords(t *testing.T) {
	payload := `{"table":{"cols":[{"label":"id"},{"label":"title"}],"rows":[{"c":[{"v":1},{"v":"Alpha"}]}]}}`
	records, err := ParseCatalog([]byte(payload))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records = %+v, want none", records)
	}
}

func TestParseCatalogKeepsLargeIDsInEitherForm(t *testing.T) {
	payload := `{"table":{"cols":[{"label":"id"},{"label":"name"},{"label":"app_store_id"}],"rows":[
{"c":[{"v":3000000000},{"v":"BigNum"},{"v":"1"}]},
{"c":[{"v":"3000000000"},{"v":"BigStr"},{"v":"2"}]}]}}`
	records, err := ParseCatalog([]byte(payload))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(records) != 2 || records[0].ID != 3000000000 || records[1].ID != 3000000000 {
		t.Fatalf("records = %+v", records)
	}
}

func TestStripGvizWrapper(t *testing.T) {
	got, err := StripGvizWrapper([]byte(`cb({"a":{"b":1}});`))
	if err != nil {
		t.Fatalf("StripGvizWrapper: %v", err)
	}
	if string(got) != `{"a":{"b":1}}` {
		t.Fatalf("got %s", got)
	}

	if _, err := StripGvizWrapper([]byte("not json")); err == nil {
		t.Fatal("expected an error for a payload without an object")
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		value any
		want  int
	}{
		{12.0, 12},
		{12.9, 12},
		{"34", 34},
		{" 56xyz", 56},
		{"-3", -3},
		{3000000000.0, 3000000000},
		{"3000000000", 3000000000},
		{1e300, 0},
		{math.Inf(1), 0},
		{math.NaN(), 0},
		{"abc", 0},
		{nil, 0},
		{true, 0},
	}
	for _, tt := range tests {
		if got := coerceInt(tt.value); got != tt.want {
			t.Errorf("coerceInt(%#v) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestCoerceStringFormatsNumbersWithoutExponent(t *testing.T) {
	if got := coerceString(1.23456789e9); got != "1234567890" {
		t.Fatalf("coerceString = %q", got)
	}
	if got := coerceString(nil); got != "" {
		t.Fatalf("coerceString(nil) = %q", got)
	}
}

func TestCatalogServiceLoadFetchesEveryTime(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(catalogPayload))
	}))
	defer srv.Close()

	service := NewCatalogServiceFromURL(srv.URL, srv.Client())
	for range 2 {
		records, err := service.Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("len(records) = %d, want 3", len(records))
		}
	}
	if hits.Load() != 2 {
		t.Fatalf("hits = %d, want 2", hits.Load())
	}
}

func TestCatalogServiceLoadReportsSourceUnavailable(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"structure": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`setResponse({"status":"error"});`))
		},
		"garbage": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>sign in</html>`))
		},
	}

	for name, handler := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()

			_, err := NewCatalogServiceFromURL(srv.URL, srv.Client()).Load(context.Background())
			if !errors.Is(err, apperrors.ErrSourceUnavailable) {
				t.Fatalf("err = %v, want SourceUnavailable", err)
			}
		})
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	records := []models.CatalogRecord{
		{Category: "tools"}, {Category: "games"}, {Category: "Tools"}, {Category: ""}, {Category: "music"},
	}
	want := []string{"tools", "games", "music"}
	if got := Categories(records); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
}

func TestFilterByCategoryAndSearch(t *testing.T) {
	records := []models.CatalogRecord{
		{ID: 1, Name: "Photo Lab", Category: "photo"},
		{ID: 2, Name: "Chess", Category: "games"},
		{ID: 3, Name: "photon", Category: "games"},
	}

	if got := FilterByCategory(records, "all"); len(got) != 3 {
		t.Fatalf("all kept %d records", len(got))
	}
	if got := FilterByCategory(records, ""); len(got) != 3 {
		t.Fatalf("empty category kept %d records", len(got))
	}
	if got := FilterByCategory(records, "Games"); len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("games = %+v", got)
	}

	got := SearchRecords(records, "  PHOTO ")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("search = %+v", got)
	}
}

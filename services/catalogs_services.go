package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"iconhive/apperrors"
	"iconhive/config"
	"iconhive/models"
)

const catalogSource = "catalog"

// AllCategories selects every category tab
const AllCategories = "all"

// Column labels of the catalog sheet, matched case-insensitively
const (
	ColumnID         = "id"
	ColumnName       = "name"
	ColumnAppStoreID = "app_store_id"
	ColumnCategory   = "category"
	ColumnCreatedAt  = "created_at"
	ColumnUpdatedAt  = "updated_at"
)

var gvizDatePattern = regexp.MustCompile(`^Date\((\d+),(\d+),(\d+)(?:,(\d+),(\d+),(\d+))?\)$`)

// CatalogService loads the catalog spreadsheet. Nothing is cached between loads.
type CatalogService struct {
	client *http.Client
	url    string
}

func NewCatalogService(cfg config.Config, client *http.Client) *CatalogService {
	return &CatalogService{client: client, url: cfg.SheetURL("")}
}

// NewCatalogServiceFromURL loads the catalog from an explicit gviz URL
func NewCatalogServiceFromURL(url string, client *http.Client) *CatalogService {
	return &CatalogService{client: client, url: url}
}

// Load fetches and parses the catalog, keeping source row order
func (s *CatalogService) Load(ctx context.Context) ([]models.CatalogRecord, error) {
	if s.url == "" {
		return nil, apperrors.Wrap(apperrors.SourceUnavailable, "catalog source is not configured", nil)
	}

	body, err := upstreamGet(ctx, s.client, s.url, catalogSource)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.SourceUnavailable, "fetch catalog", err)
	}

	records, err := ParseCatalog(body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.SourceUnavailable, "parse catalog", err)
	}
	return records, nil
}

// StripGvizWrapper removes the callback text around the JSON object of a gviz response
func StripGvizWrapper(body []byte) ([]byte, error) {
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end < start {
		return nil, errors.New("gviz payload has no JSON object")
	}
	return body[start : end+1], nil
}

// ParseCatalog turns a gviz payload into catalog records, dropping invalid rows
func ParseCatalog(body []byte) ([]models.CatalogRecord, error) {
	payload, err := StripGvizWrapper(body)
	if err != nil {
		return nil, err
	}

	var response models.GvizResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("failed to decode gviz payload: %w", err)
	}
	if response.Table == nil {
		return nil, errors.New("gviz payload has no table")
	}

	columns := columnIndex(response.Table.Cols)
	records := make([]models.CatalogRecord, 0, len(response.Table.Rows))
	for _, row := range response.Table.Rows {
		record := models.CatalogRecord{
			ID:         coerceInt(cellValue(row, columns, ColumnID)),
			Name:       strings.TrimSpace(coerceString(cellValue(row, columns, ColumnName))),
			AppStoreID: strings.TrimSpace(coerceString(cellValue(row, columns, ColumnAppStoreID))),
			Category:   strings.TrimSpace(coerceString(cellValue(row, columns, ColumnCategory))),
			CreatedAt:  coerceTimestamp(cellAt(row, columns, ColumnCreatedAt)),
			UpdatedAt:  coerceTimestamp(cellAt(row, columns, ColumnUpdatedAt)),
		}
		if !record.Valid() {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func columnIndex(cols []models.GvizColumn) map[string]int {
	index := make(map[string]int, len(cols))
	for i, col := range cols {
		label := strings.ToLower(strings.TrimSpace(col.Label))
		if label == "" {
			continue
		}
		if _, exists := index[label]; !exists {
			index[label] = i
		}
	}
	return index
}

func cellAt(row models.GvizRow, columns map[string]int, label string) *models.GvizCell {
	i, ok := columns[label]
	if !ok || i >= len(row.C) {
		return nil
	}
	return row.C[i]
}

func cellValue(row models.GvizRow, columns map[string]int, label string) any {
	cell := cellAt(row, columns, label)
	if cell == nil {
		return nil
	}
	return cell.V
}

// coerceInt truncates numbers and parses the leading integer of strings. Anything else is 0.
func coerceInt(value any) int {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= math.MaxInt {
			return 0
		}
		return int(v)
	case string:
		return parseLeadingInt(v)
	case bool:
		return 0
	default:
		return 0
	}
}

func parseLeadingInt(value string) int {
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// coerceTimestamp renders gviz Date(y,m,d[,h,mi,s]) values (zero-based month) as RFC3339
func coerceTimestamp(cell *models.GvizCell) string {
	if cell == nil || cell.V == nil {
		return ""
	}

	raw, ok := cell.V.(string)
	if !ok {
		if cell.F != nil {
			return *cell.F
		}
		return coerceString(cell.V)
	}

	match := gvizDatePattern.FindStringSubmatch(raw)
	if match == nil {
		return raw
	}

	parts := make([]int, 6)
	for i := range parts {
		if match[i+1] == "" {
			continue
		}
		parts[i], _ = strconv.Atoi(match[i+1])
	}
	return time.Date(parts[0], time.Month(parts[1]+1), parts[2], parts[3], parts[4], parts[5], 0, time.UTC).Format(time.RFC3339)
}

// Categories lists the distinct record categories in first-seen order
func Categories(records []models.CatalogRecord) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, record := range records {
		key := strings.ToLower(record.Category)
		if record.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, record.Category)
	}
	return categories
}

// FilterByCategory keeps records of one category. An empty or "all" category keeps everything.
func FilterByCategory(records []models.CatalogRecord, category string) []models.CatalogRecord {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return records
	}

	filtered := make([]models.CatalogRecord, 0, len(records))
	for _, record := range records {
		if strings.EqualFold(record.Category, category) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// SearchRecords keeps records whose name contains term, case-insensitively, across all categories
func SearchRecords(records []models.CatalogRecord, term string) []models.CatalogRecord {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return records
	}

	filtered := make([]models.CatalogRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Name), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

package models

// CatalogRecord is one valid row of the catalog spreadsheet
type CatalogRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	AppStoreID string `json:"app_store_id"`
	Category   string `json:"category,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// Valid reports whether the record may enter the catalog
func (r CatalogRecord) Valid() bool {
	return r.ID > 0 && r.Name != "" && r.AppStoreID != ""
}

// GvizResponse is the tabular payload returned by the spreadsheet query endpoint
type GvizResponse struct {
	Status string     `json:"status"`
	Table  *GvizTable `json:"table"`
}

type GvizTable struct {
	Cols []GvizColumn `json:"cols"`
	Rows []GvizRow    `json:"rows"`
}

type GvizColumn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type GvizRow struct {
	C []*GvizCell `json:"c"`
}

// GvizCell holds a raw value (number, string, bool or null) and its optional formatted form
type GvizCell struct {
	V any     `json:"v"`
	F *string `json:"f,omitempty"`
}

package models

// LookupBatchSize is the maximum number of ids sent in a single store lookup request
const LookupBatchSize = 10

// StoreApp is a single result of the store lookup service
type StoreApp struct {
	TrackID          int64    `json:"trackId"`
	TrackName        string   `json:"trackName"`
	ArtworkURL100    string   `json:"artworkUrl100"`
	ArtworkURL512    string   `json:"artworkUrl512,omitempty"`
	PrimaryGenreName string   `json:"primaryGenreName"`
	Genres           []string `json:"genres"`
	TrackViewURL     string   `json:"trackViewUrl"`
	SellerName       string   `json:"sellerName,omitempty"`
	BundleID         string   `json:"bundleId,omitempty"`
}

// LookupResponse is the envelope returned by the store lookup service
type LookupResponse struct {
	ResultCount int        `json:"resultCount"`
	Results     []StoreApp `json:"results"`
}

// EnrichedApp is a store result joined with its catalog record, ready for display
type EnrichedApp struct {
	TrackID          int64    `json:"trackId"`
	TrackName        string   `json:"trackName"`
	ArtworkURL100    string   `json:"artworkUrl100"`
	PrimaryGenreName string   `json:"primaryGenreName"`
	Genres           []string `json:"genres"`
	TrackViewURL     string   `json:"trackViewUrl"`

	CatalogID int    `json:"catalogId,omitempty"`
	Category  string `json:"category,omitempty"`
	// InCatalog is false for store-only results, whose name is kept as returned by the store
	InCatalog bool `json:"inCatalog"`

	DominantColor string   `json:"dominantColor,omitempty"`
	ColorBucket   BucketID `json:"colorBucket,omitempty"`
}

package models

import "time"

// DeliveryMode tells the caller which delivery path succeeded
type DeliveryMode string

const (
	DeliveryCopied     DeliveryMode = "copied"
	DeliveryDownloaded DeliveryMode = "downloaded"
	DeliveryFailed     DeliveryMode = "failed"
)

const (
	SingleExportFilename = "app-logo.png"

	StatusCopied     = "Copied!"
	StatusDownloaded = "Downloaded!"
	StatusFailed     = "Failed to copy"

	// StatusClearAfter is how long the per-icon status text stays visible
	StatusClearAfter = 1200 * time.Millisecond
	// ToastClearAfter is how long the combined export toast stays visible
	ToastClearAfter = 1500 * time.Millisecond
)

// ExportItem describes a rendered icon: its source and the corner rounding it is displayed with
type ExportItem struct {
	ID           string  `json:"id"`
	ImageURL     string  `json:"imageUrl" binding:"required"`
	BorderRadius string  `json:"borderRadius"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
}

// Artifact is an encoded image ready for delivery
type Artifact struct {
	Filename string
	Data     []byte
	Width    int
	Height   int
	Count    int
}

// DeliveryResult reports how an artifact reached the user
type DeliveryResult struct {
	Mode       DeliveryMode `json:"mode"`
	Filename   string       `json:"filename"`
	StatusText string       `json:"statusText"`
	ClearAfter int64        `json:"clearAfterMs"`
}

package models

// BucketID names a color bucket
type BucketID string

const (
	BucketAll    BucketID = "all"
	BucketRed    BucketID = "red"
	BucketOrange BucketID = "orange"
	BucketYellow BucketID = "yellow"
	BucketGreen  BucketID = "green"
	BucketBlue   BucketID = "blue"
	BucketPurple BucketID = "purple"
	BucketPink   BucketID = "pink"
	BucketBlack  BucketID = "black"
	BucketWhite  BucketID = "white"
)

// BucketKind separates the wildcard from real classification targets
type BucketKind int

const (
	Wildcard BucketKind = iota
	Named
)

// Bucket is an entry of the color filter palette
type Bucket struct {
	Kind  BucketKind `json:"-"`
	ID    BucketID   `json:"id"`
	Name  string     `json:"name"`
	Color string     `json:"color,omitempty"`
	// Neutral buckets are only reachable through the saturation gate, never by hue
	Neutral bool `json:"neutral,omitempty"`
}

// Matches reports whether an app classified as id passes this filter
func (b Bucket) Matches(id BucketID) bool {
	if b.Kind == Wildcard {
		return true
	}
	return b.ID == id
}

package colors

import (
	"testing"

	"iconhive/models"
)

func TestClassifyScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color string
		want  models.BucketID
	}{
		{name: "near black", color: "#1a1a1a", want: models.BucketBlack},
		{name: "near white", color: "#fefefe", want: models.BucketWhite},
		{name: "orange red is nearer red", color: "#ff4500", want: models.BucketRed},
		{name: "pure orange", color: "#ffa500", want: models.BucketOrange},
		{name: "yellow", color: "#f5d90a", want: models.BucketYellow},
		{name: "green", color: "#1db954", want: models.BucketGreen},
		{name: "blue", color: "#1877f2", want: models.BucketBlue},
		{name: "purple", color: "#8e44ad", want: models.BucketPurple},
		{name: "pink", color: "#ff6fa0", want: models.BucketPink},
		{name: "short form", color: "#f00", want: models.BucketRed},
		{name: "without hash", color: "0000ff", want: models.BucketBlue},
		{name: "mid gray is black", color: "#808080", want: models.BucketBlack},
		{name: "light gray is white", color: "#dddddd", want: models.BucketWhite},
		{name: "garbage", color: "not-a-color", want: models.BucketBlack},
		{name: "empty", color: "", want: models.BucketBlack},
		{name: "five digits", color: "#ff450", want: models.BucketBlack},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.color); got != tt.want {
				t.Fatalf("Classify(%q) = %q, want %q", tt.color, got, tt.want)
			}
		})
	}
}

func TestClassifyTieGoesToFirstDeclaredBucket(t *testing.T) {
	t.Parallel()

	// cyan sits at hue 180, exactly 60 degrees from both green (120) and blue (240)
	c, _ := ParseHex("#00ffff")
	h, _, _ := c.Hsl()
	if HueDistance(h, 120) != HueDistance(h, 240) {
		t.Fatalf("hue %v is not equidistant from green and blue", h)
	}
	if got := Classify("#00ffff"); got != models.BucketGreen {
		t.Fatalf("Classify(#00ffff) = %q, want green", got)
	}
}

func TestClassifyNeutralGateIgnoresHue(t *testing.T) {
	t.Parallel()

	// Saturation stays under the gate while the hue points at red, blue and green.
	for _, color := range []string{"#201c1c", "#1c1c20", "#f4f5f4", "#8a8585"} {
		got := Classify(color)
		if got != models.BucketBlack && got != models.BucketWhite {
			t.Fatalf("Classify(%q) = %q, want a neutral bucket", color, got)
		}
	}
}

func TestClassifyIgnoresSaturationPastGate(t *testing.T) {
	t.Parallel()

	vivid := Classify("#0000ff")
	muted := Classify("#5a5aa0")
	if vivid != muted {
		t.Fatalf("equal hue classified differently: %q vs %q", vivid, muted)
	}
}

func TestClassifyIsTotalOverPalette(t *testing.T) {
	t.Parallel()

	valid := map[models.BucketID]bool{}
	for _, bucket := range Palette() {
		if bucket.Kind == models.Named {
			valid[bucket.ID] = true
		}
	}

	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				hex := hexOf(uint8(r), uint8(g), uint8(b))
				if got := Classify(hex); !valid[got] {
					t.Fatalf("Classify(%q) = %q, not a named bucket", hex, got)
				}
			}
		}
	}
}

func TestHueDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want float64
	}{
		{a: 0, b: 0, want: 0},
		{a: 120, b: 120, want: 0},
		{a: 10, b: 350, want: 20},
		{a: 350, b: 10, want: 20},
		{a: 0, b: 180, want: 180},
		{a: 90, b: 300, want: 150},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.a, tt.b); got != tt.want {
			t.Fatalf("HueDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if HueDistance(tt.a, tt.b) != HueDistance(tt.b, tt.a) {
			t.Fatalf("HueDistance(%v, %v) is not symmetric", tt.a, tt.b)
		}
	}
}

func TestPaletteWildcardFirst(t *testing.T) {
	t.Parallel()

	buckets := Palette()
	if len(buckets) != 10 {
		t.Fatalf("palette has %d buckets, want 10", len(buckets))
	}
	if buckets[0].Kind != models.Wildcard || buckets[0].ID != models.BucketAll {
		t.Fatalf("first bucket = %+v, want wildcard", buckets[0])
	}
	if !buckets[0].Matches(models.BucketPink) {
		t.Fatal("wildcard must match every bucket")
	}
	if buckets[1].Matches(models.BucketBlue) {
		t.Fatal("red must not match blue")
	}

	buckets[0].Name = "changed"
	if Palette()[0].Name != "All" {
		t.Fatal("Palette must return a copy")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	if bucket, ok := Lookup(""); !ok || bucket.Kind != models.Wildcard {
		t.Fatalf("Lookup(\"\") = %+v, %v", bucket, ok)
	}
	if bucket, ok := Lookup(models.BucketGreen); !ok || bucket.Name != "Green" {
		t.Fatalf("Lookup(green) = %+v, %v", bucket, ok)
	}
	if _, ok := Lookup("teal"); ok {
		t.Fatal("expected unknown bucket to be rejected")
	}
}

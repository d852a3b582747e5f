package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(UpstreamError, "batch 2 failed", errors.New("connection reset"))

	if !errors.Is(err, ErrUpstream) {
		t.Fatal("expected wrapped upstream error to match ErrUpstream")
	}
	if errors.Is(err, ErrSourceUnavailable) {
		t.Fatal("upstream error must not match ErrSourceUnavailable")
	}
}

func TestCodeOfFollowsChain(t *testing.T) {
	inner := New(ImageLoadError, "decode")
	outer := fmt.Errorf("extract: %w", inner)

	if got := CodeOf(outer); got != ImageLoadError {
		t.Fatalf("CodeOf = %q, want %q", got, ImageLoadError)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(SourceUnavailable, "fetch catalog", errors.New("timeout"))
	if err.Error() != "fetch catalog: timeout" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, err.Cause) {
		t.Fatal("expected Unwrap to expose the cause")
	}
}

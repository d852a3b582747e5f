package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"iconhive/apperrors"
	"iconhive/models"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// SystemClipboard places exported PNGs on the desktop clipboard as image data.
// Without a usable clipboard (no display, or a build without cgo) writes are denied.
type SystemClipboard struct {
	changed <-chan struct{}
}

func (c *SystemClipboard) WriteImage(_ context.Context, artifact models.Artifact) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return apperrors.Wrap(apperrors.ClipboardDenied, "clipboard unavailable", clipboardErr)
	}

	changed := clipboard.Write(clipboard.FmtImage, artifact.Data)
	if changed == nil {
		return apperrors.ErrClipboardDenied
	}
	c.changed = changed
	return nil
}

// Changed is closed once another program replaces the image, nil before a successful write.
// On X11 the image is served by this process, so it must stay alive until then.
func (c *SystemClipboard) Changed() <-chan struct{} {
	return c.changed
}

// FileDownloader saves exported images into a directory
type FileDownloader struct {
	Dir string
	// Path is set to the written file after a successful Download
	Path string
}

func (d *FileDownloader) Download(_ context.Context, artifact models.Artifact) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}

	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	d.Path = path
	return nil
}

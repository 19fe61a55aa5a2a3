package imageupload

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/yigit/forensicsite/internal/pkg/filestorage"
)

// Encoder turns an accepted image into a URI a page can display.
type Encoder interface {
	Encode(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

// DataURIEncoder inlines the image as a base64 data URI, so the image lives inside the
// page document itself.
type DataURIEncoder struct{}

func (DataURIEncoder) Encode(_ context.Context, _ string, mimeType string, data []byte) (string, error) {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// FileEncoder writes the image to file storage and returns its URL.
type FileEncoder struct {
	Storage filestorage.FileStorage
	SubPath string
}

func (f FileEncoder) Encode(ctx context.Context, filename, _ string, data []byte) (string, error) {
	stored, err := f.Storage.Save(ctx, filename, bytes.NewReader(data), f.SubPath)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return stored.URL, nil
}

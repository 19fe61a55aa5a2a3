// Package imageupload accepts image files for editable images and encodes them into a
// displayable URI.
package imageupload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes bounds a single image.
const DefaultMaxBytes = 2 * 1024 * 1024

var (
	// ErrTooLarge is returned for files above the configured size limit.
	ErrTooLarge = errors.New("imageupload: image exceeds size limit")
	// ErrNotImage is returned when the content is not an image.
	ErrNotImage = errors.New("imageupload: file is not an image")
	// ErrEmpty is returned for zero-byte uploads.
	ErrEmpty = errors.New("imageupload: file is empty")
)

// Image is an accepted and encoded upload.
type Image struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Filename string `json:"filename"`
}

// Uploader validates and encodes images.
type Uploader struct {
	encoder  Encoder
	maxBytes int64
}

// NewUploader creates an Uploader. A nil encoder means DataURIEncoder and a non-positive
// maxBytes means DefaultMaxBytes.
func NewUploader(encoder Encoder, maxBytes int64) *Uploader {
	if encoder == nil {
		encoder = DataURIEncoder{}
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Uploader{encoder: encoder, maxBytes: maxBytes}
}

// MaxBytes returns the size limit.
func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// Process reads r, checks its size and content type, and encodes it.
func (u *Uploader) Process(ctx context.Context, filename string, r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, u.maxBytes)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	mimeType, ok := imageType(data)
	if !ok {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mimetype.Detect(data).String())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	uri, err := u.encoder.Encode(ctx, filename, mimeType, data)
	if err != nil {
		return nil, err
	}

	return &Image{URI: uri, MimeType: mimeType, Size: int64(len(data)), Filename: filename}, nil
}

func imageType(data []byte) (string, bool) {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return m.String(), true
		}
	}
	return "", false
}

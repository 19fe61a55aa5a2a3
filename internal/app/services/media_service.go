package services

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/models/dto"
	"github.com/yigit/forensicsite/internal/pkg/imageupload"
	"github.com/yigit/forensicsite/internal/pkg/richtext"
)

// MediaService turns uploaded files into displayable image URIs and applies toolbar
// commands to rich-text values.
type MediaService struct {
	uploader *imageupload.Uploader
	logger   zerolog.Logger
}

// NewMediaService creates a new MediaService
func NewMediaService(uploader *imageupload.Uploader, logger zerolog.Logger) *MediaService {
	return &MediaService{
		uploader: uploader,
		logger:   logger,
	}
}

// MaxImageBytes returns the upload size limit
func (s *MediaService) MaxImageBytes() int64 {
	return s.uploader.MaxBytes()
}

// UploadImage validates and encodes an uploaded image
func (s *MediaService) UploadImage(ctx context.Context, filename string, r io.Reader) (*dto.ImageUploadResponse, error) {
	img, err := s.uploader.Process(ctx, filename, r)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", filename).Msg("Image upload rejected")
		return nil, err
	}
	return &dto.ImageUploadResponse{
		URI:      img.URI,
		MimeType: img.MimeType,
		Size:     img.Size,
		Filename: img.Filename,
	}, nil
}

// Format applies one toolbar command to req.HTML and returns the sanitized result
func (s *MediaService) Format(req *dto.FormatRequest) (*dto.FormatResponse, error) {
	editor := richtext.New(req.HTML, true, nil)
	cmd := richtext.Command{
		Name:  req.Command,
		Block: req.Block,
		Align: richtext.Alignment(req.Align),
		URL:   req.URL,
		HTML:  req.Value,
	}
	if err := editor.Exec(cmd); err != nil {
		return nil, err
	}
	return &dto.FormatResponse{HTML: editor.HTML()}, nil
}

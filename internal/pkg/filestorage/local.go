package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/forensicsite/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // Prepended to returned paths when set
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates the base directory if needed.
// baseURL is optional; without it returned URLs are "/uploads/..." paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Save copies r to a uniquely named file under subPath.
func (ls *LocalStorage) Save(ctx context.Context, filename string, r io.Reader, subPath string) (*StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := ls.basePath
	if subPath != "" {
		dir = filepath.Join(ls.basePath, filepath.Clean("/"+subPath))
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
			return nil, fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	uniqueFilename := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	dstPath := filepath.Join(dir, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	size, err := io.Copy(dst, r)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	rel := path.Join(filepath.ToSlash(strings.TrimPrefix(dir, ls.basePath)), uniqueFilename)
	stored := &StoredFile{
		URL:      ls.urlFor(rel),
		Path:     dstPath,
		Filename: filename,
		Size:     size,
	}

	logger.Info().Str("filename", filename).Str("saved_as", uniqueFilename).Str("url", stored.URL).Msg("File saved successfully")
	return stored, nil
}

// Delete removes the file behind fileURL. Missing files are not an error.
func (ls *LocalStorage) Delete(fileURL string) error {
	full := ls.FullPath(fileURL)
	if full == "" {
		return fmt.Errorf("invalid file url %q", fileURL)
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// FullPath returns the filesystem path for a URL returned by Save, or "" when the URL
// does not point inside the storage directory.
func (ls *LocalStorage) FullPath(fileURL string) string {
	rel := fileURL
	if ls.baseURL != "" {
		rel = strings.TrimPrefix(rel, strings.TrimRight(ls.baseURL, "/"))
	}
	rel = strings.TrimPrefix(rel, "/uploads")
	rel = path.Clean("/" + rel)
	if rel == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel))
}

func (ls *LocalStorage) urlFor(rel string) string {
	rel = strings.TrimPrefix(rel, "/")
	if ls.baseURL != "" {
		return strings.TrimRight(ls.baseURL, "/") + "/" + rel
	}
	return "/uploads/" + rel
}

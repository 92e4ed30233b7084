// Package upload stores image uploads (product photos, user avatars, the
// company logo) on local disk and derives a thumbnail for each.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mtechuganda/backoffice-api/internal/domain"
	"github.com/mtechuganda/backoffice-api/pkg/config"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Storage writes uploads under a base directory. Stored paths are relative to
// that directory and safe to persist.
type Storage struct {
	dir        string
	maxBytes   int64
	thumbWidth int
}

// NewStorage creates the base directory if needed.
func NewStorage(cfg config.UploadConfig) (*Storage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{
		dir:        cfg.Dir,
		maxBytes:   int64(cfg.MaxSizeMB) << 20,
		thumbWidth: cfg.ThumbWidth,
	}, nil
}

// SaveImage validates and stores an uploaded image under subdir, writes a
// thumbnail next to it, and returns the relative path of the original.
// Rejects files over the size limit and non-image extensions.
func (s *Storage) SaveImage(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > s.maxBytes {
		return "", domain.ErrInvalidInput
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", domain.ErrInvalidInput
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// Decoding doubles as content validation: a renamed non-image fails here.
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	if err := os.MkdirAll(filepath.Join(s.dir, subdir), 0o755); err != nil {
		return "", fmt.Errorf("create upload subdir: %w", err)
	}

	name := uuid.New().String() + ext
	relPath := path.Join(subdir, name)
	if err := imaging.Save(img, filepath.Join(s.dir, subdir, name)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, s.thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(s.dir, subdir, thumbName(name))); err != nil {
		// The original is already on disk; remove it so a failed upload
		// leaves nothing behind.
		_ = os.Remove(filepath.Join(s.dir, subdir, name))
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return relPath, nil
}

// Delete removes a stored file and its thumbnail. Missing files are ignored
// so replacing an upload never fails on cleanup.
func (s *Storage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return domain.ErrInvalidInput
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.Dir(clean), thumbName(filepath.Base(clean))))
	if err := os.Remove(filepath.Join(s.dir, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

// Dir returns the base directory, for serving files statically.
func (s *Storage) Dir() string { return s.dir }

func thumbName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_thumb" + ext
}

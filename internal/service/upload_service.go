package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
	"github.com/teamMongle/Mongle-Server/internal/config"
	"github.com/teamMongle/Mongle-Server/internal/storage"
)

// allowedExtensions is the image allow-list for uploads.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type UploadService interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
	Fetch(ctx context.Context, objectName string) (io.ReadCloser, string, error)
}

type uploadService struct {
	store storage.Storage
	cfg   *config.Config
}

func NewUploadService(store storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{store: store, cfg: cfg}
}

// Upload stores the blob and returns a publicly retrievable URL. Persisting
// the URL onto a work or profile record is the caller's job, via the normal
// update paths.
func (s *uploadService) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[fileExt] {
		return "", fmt.Errorf("file type not allowed: %w", apperrors.ErrValidation)
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := uuid.New().String() + fileExt

	if err := s.store.Put(ctx, objectName, contentType, file, size); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s", strings.TrimSuffix(s.cfg.PublicBaseURL, "/"), objectName), nil
}

func (s *uploadService) Fetch(ctx context.Context, objectName string) (io.ReadCloser, string, error) {
	reader, contentType, err := s.store.Get(ctx, objectName)
	if err != nil {
		return nil, "", fmt.Errorf("image: %w", apperrors.ErrNotFound)
	}

	return reader, contentType, nil
}

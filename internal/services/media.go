package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize caps a single media upload at 10 MB.
const MaxUploadSize = 10 << 20

var ErrUnsupportedMedia = errors.New("unsupported media type")
var ErrFileTooLarge = errors.New("file exceeds the upload size limit")

var allowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

type MediaService struct {
	repo repository.MediaRepo
}

func NewMediaService(repo repository.MediaRepo) *MediaService {
	return &MediaService{repo: repo}
}

// Upload stores an image blob and returns its metadata, including the
// object key used to build the public URL for editor image nodes.
func (s *MediaService) Upload(ctx context.Context, uploaderID *int64, filename, mimeType string, data []byte) (*models.MediaFile, error) {
	log := logger.WithCtx(ctx)

	if !allowedMimeTypes[strings.ToLower(mimeType)] {
		log.Warn("upload rejected, unsupported mime type", zap.String("mime", mimeType))
		return nil, ErrUnsupportedMedia
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty upload: %w", ErrUnsupportedMedia)
	}
	if len(data) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	created, err := s.repo.Create(ctx, &models.MediaFile{
		UploaderID: uploaderID,
		ObjectKey:  key,
		Filename:   filepath.Base(filename),
		MimeType:   mimeType,
		SizeBytes:  int64(len(data)),
		Data:       data,
	})
	if err != nil {
		log.Error("failed to store media file (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("media file uploaded", zap.Int64("id", created.ID), zap.String("key", key))
	return created, nil
}

func (s *MediaService) Get(ctx context.Context, id int64) (*models.MediaFile, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *MediaService) List(ctx context.Context, limit, offset int) ([]*models.MediaFile, error) {
	return s.repo.GetAll(ctx, limit, offset)
}

func (s *MediaService) Delete(ctx context.Context, id int64) error {
	logger.WithCtx(ctx).Info("deleting media file", zap.Int64("id", id))
	return s.repo.Delete(ctx, id)
}

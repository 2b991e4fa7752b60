package service

import (
	"context"
	"log/slog"

	"github.com/cantikstore/storefront/internal/imaging"
	"github.com/cantikstore/storefront/internal/storage"
	apperrors "github.com/cantikstore/storefront/pkg/errors"
)

// UploadFile is one incoming image file.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaService compresses product images and stores them, falling back to
// inline data URIs when the bucket is unreachable. Either way the caller
// gets a string that renders in an <img> tag, so a storage outage degrades
// payload size, not functionality.
type MediaService struct {
	store  storage.Storage
	logger *slog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(store storage.Storage, logger *slog.Logger) *MediaService {
	return &MediaService{
		store:  store,
		logger: logger,
	}
}

// UploadImage compresses and stores one image, returning its URL.
func (s *MediaService) UploadImage(ctx context.Context, file UploadFile) (string, error) {
	if len(file.Data) == 0 {
		return "", apperrors.InvalidInput("empty image file")
	}

	result := imaging.Compress(file.Data, file.ContentType)
	if result.Compressed {
		s.logger.DebugContext(ctx, "image compressed",
			slog.String("filename", file.Filename),
			slog.Int("original_bytes", len(file.Data)),
			slog.Int("compressed_bytes", len(result.Data)),
		)
	}

	obj, err := s.store.Upload(ctx, file.Filename, result.ContentType, result.Data)
	if err != nil {
		s.logger.WarnContext(ctx, "bucket upload failed, inlining image",
			slog.String("filename", file.Filename),
			slog.String("error", err.Error()),
		)
		return imaging.DataURI(result.ContentType, result.Data), nil
	}

	return obj.URL, nil
}

// UploadImages uploads several images sequentially, preserving order: the
// returned URLs line up with the input files. A partial failure falls back
// per file rather than aborting the batch.
func (s *MediaService) UploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := s.UploadImage(ctx, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

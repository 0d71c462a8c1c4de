package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/internal/dto/response"
	"github.com/monnybrand/the-shots-system/internal/media"
)

type MediaService interface {
	UploadVideo(ctx context.Context, fh *multipart.FileHeader) (*response.UploadResponse, error)
}

type mediaService struct {
	store *media.Store
	log   *zap.Logger
}

func NewMediaService(store *media.Store, log *zap.Logger) MediaService {
	return &mediaService{
		store: store,
		log:   log.With(zap.String("service", "media")),
	}
}

func (s *mediaService) UploadVideo(ctx context.Context, fh *multipart.FileHeader) (*response.UploadResponse, error) {
	name, err := s.store.SaveVideo(fh)
	if err != nil {
		if errors.Is(err, media.ErrNotMP4) || errors.Is(err, media.ErrTooLarge) {
			return nil, fmt.Errorf("invalid upload: %w", err)
		}
		s.log.Error("Failed to store video", zap.Error(err), zap.String("filename", fh.Filename))
		return nil, fmt.Errorf("store video: %w", err)
	}

	return &response.UploadResponse{
		FileName: name,
		VideoURL: "/" + path.Join(filepath.ToSlash(s.store.Dir()), name),
	}, nil
}

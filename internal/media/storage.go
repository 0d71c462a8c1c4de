package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/monnybrand/the-shots-system/pkg/utils"
)

var (
	ErrNotMP4   = errors.New("only MP4 videos allowed")
	ErrTooLarge = errors.New("file exceeds upload size limit")
)

// Store writes uploaded portfolio videos to disk under timestamp-prefixed
// names. Nothing touches the disk until both the declared media type and
// the sniffed content check out.
type Store struct {
	dir     string
	maxSize int64
	log     *zap.Logger
}

func NewStore(config utils.UploadConfig, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", config.Dir, err)
	}

	return &Store{
		dir:     config.Dir,
		maxSize: config.MaxSizeMB * 1024 * 1024,
		log:     log.With(zap.String("component", "media_store")),
	}, nil
}

// SaveVideo stores one uploaded file and returns the stored file name.
func (s *Store) SaveVideo(fh *multipart.FileHeader) (string, error) {
	// Declared type gates first, before anything is opened or written
	if fh.Header.Get("Content-Type") != "video/mp4" {
		return "", ErrNotMP4
	}

	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	// Sniff the actual bytes; a renamed non-video does not get stored
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("sniff uploaded file: %w", err)
	}
	if !mtype.Is("video/mp4") {
		s.log.Warn("Rejected upload with mismatched content",
			zap.String("declared", fh.Header.Get("Content-Type")),
			zap.String("sniffed", mtype.String()),
			zap.String("filename", fh.Filename),
		)
		return "", ErrNotMP4
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind uploaded file: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), utils.SanitizeFilename(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create video file %s: %w", name, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write video file %s: %w", name, err)
	}

	s.log.Info("Video stored",
		zap.String("file", name),
		zap.Int64("bytes", written),
	)

	return name, nil
}

// Dir returns the directory uploads are written to
func (s *Store) Dir() string {
	return s.dir
}

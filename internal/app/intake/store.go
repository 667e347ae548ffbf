// Package intake accepts uploaded meeting recordings and keeps them on local
// disk for the duration of a single request.
package intake

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/model"
)

// maxNameAttempts bounds how often a colliding storage name is redrawn.
const maxNameAttempts = 5

// audioExtensions is used when the original file name carries no extension;
// the speech-to-text provider detects the encoding from the file name.
var audioExtensions = map[string]string{
	"audio/mpeg":   ".mp3",
	"audio/mp3":    ".mp3",
	"audio/mp4":    ".m4a",
	"audio/m4a":    ".m4a",
	"audio/x-m4a":  ".m4a",
	"audio/wav":    ".wav",
	"audio/x-wav":  ".wav",
	"audio/wave":   ".wav",
	"audio/webm":   ".webm",
	"audio/ogg":    ".ogg",
	"audio/flac":   ".flac",
	"audio/x-flac": ".flac",
}

// extensionMediaTypes maps local file extensions to the media type declared
// for them. The runtime mime table does not cover most audio types.
var extensionMediaTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".mpga": "audio/mpeg",
	".mpeg": "audio/mpeg",
	".m4a":  "audio/mp4",
	".wav":  "audio/wav",
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
}

// MediaTypeFor guesses the media type of a local file from its extension.
// It returns "" when the extension is unknown.
func MediaTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mediaType, ok := extensionMediaTypes[ext]; ok {
		return mediaType
	}
	if mediaType := mime.TypeByExtension(ext); mediaType != "" {
		mediaType, _, _ = strings.Cut(mediaType, ";")
		return mediaType
	}
	return ""
}

// Store writes uploads into a scoped temporary directory under
// collision-resistant names.
type Store struct {
	dir      string
	maxBytes int64
	logger   *zap.Logger

	now    func() time.Time
	suffix func() int64
}

// NewStore creates a store rooted at dir. Uploads larger than maxBytes are
// rejected; maxBytes <= 0 disables the limit.
func NewStore(dir string, maxBytes int64, logger *zap.Logger) *Store {
	return &Store{
		dir:      dir,
		maxBytes: maxBytes,
		logger:   logger,
		now:      time.Now,
		suffix:   func() int64 { return rand.Int64N(1e9) },
	}
}

// Dir returns the storage directory
func (s *Store) Dir() string {
	return s.dir
}

// IsAudio reports whether a declared media type is an audio type.
func IsAudio(mediaType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mediaType)), "audio/")
}

// Validate checks the declared media type and size before anything touches
// the disk.
func (s *Store) Validate(mediaType string, size int64) error {
	if !IsAudio(mediaType) {
		return apperrors.Wrapf(apperrors.ErrNotAudio, "media type %q", mediaType)
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return apperrors.Wrapf(apperrors.ErrUploadTooLarge, "%d bytes exceeds limit of %d bytes", size, s.maxBytes)
	}
	return nil
}

// SaveMultipart validates and stores the file part of a multipart form.
func (s *Store) SaveMultipart(header *multipart.FileHeader) (*model.UploadedAudio, error) {
	if header == nil {
		return nil, apperrors.ErrMissingUpload
	}

	mediaType := header.Header.Get("Content-Type")
	if err := s.Validate(mediaType, header.Size); err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded part: %w", err)
	}
	defer file.Close()

	return s.Save(file, header.Filename, mediaType)
}

// Save streams src into a new file in the storage directory. The directory
// is created if absent.
func (s *Store) Save(src io.Reader, originalName, mediaType string) (*model.UploadedAudio, error) {
	if err := s.Validate(mediaType, 0); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrFileWriteFailed, "create upload directory %s: %v", s.dir, err)
	}

	file, err := s.create(extensionFor(originalName, mediaType))
	if err != nil {
		return nil, err
	}
	storagePath := file.Name()

	reader := src
	if s.maxBytes > 0 {
		reader = io.LimitReader(src, s.maxBytes+1)
	}

	written, copyErr := io.Copy(file, reader)
	closeErr := file.Close()

	switch {
	case copyErr != nil:
		s.discard(storagePath)
		return nil, apperrors.Wrapf(apperrors.ErrFileWriteFailed, "write %s: %v", storagePath, copyErr)
	case closeErr != nil:
		s.discard(storagePath)
		return nil, apperrors.Wrapf(apperrors.ErrFileWriteFailed, "close %s: %v", storagePath, closeErr)
	case s.maxBytes > 0 && written > s.maxBytes:
		s.discard(storagePath)
		return nil, apperrors.Wrapf(apperrors.ErrUploadTooLarge, "upload exceeds limit of %d bytes", s.maxBytes)
	}

	upload := &model.UploadedAudio{
		StoragePath:  storagePath,
		OriginalName: originalName,
		MediaType:    mediaType,
		SizeBytes:    written,
	}

	s.logger.Debug("Stored upload",
		zap.String("path", upload.StoragePath),
		zap.String("original_name", upload.OriginalName),
		zap.String("media_type", upload.MediaType),
		zap.Int64("size_bytes", upload.SizeBytes),
	)

	return upload, nil
}

// Release deletes the stored file. Releasing an already deleted upload is
// not an error.
func (s *Store) Release(upload *model.UploadedAudio) error {
	if upload == nil || upload.StoragePath == "" {
		return nil
	}
	if err := os.Remove(upload.StoragePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove upload %s: %w", upload.StoragePath, err)
	}
	return nil
}

// create opens a fresh file named <millis>-<random><ext>. O_EXCL guarantees
// two uploads never share a path, even within the same millisecond.
func (s *Store) create(ext string) (*os.File, error) {
	var lastErr error
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := fmt.Sprintf("%d-%d%s", s.now().UnixMilli(), s.suffix(), ext)
		path := filepath.Join(s.dir, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, apperrors.Wrapf(apperrors.ErrFileWriteFailed, "create %s: %v", path, err)
		}
		lastErr = err
	}
	return nil, apperrors.Wrapf(apperrors.ErrFileWriteFailed, "no free storage name after %d attempts: %v", maxNameAttempts, lastErr)
}

func (s *Store) discard(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("Failed to remove partial upload", zap.String("path", path), zap.Error(err))
	}
}

func extensionFor(originalName, mediaType string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if ext != "" && len(ext) <= 8 {
		return ext
	}
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(mediaType)), ";")
	return lo.ValueOr(audioExtensions, strings.TrimSpace(base), "")
}

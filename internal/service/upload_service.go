package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mailtriage/internal/config"
	"mailtriage/internal/domain"
	"mailtriage/internal/extract"
	"mailtriage/internal/port"
)

// UploadInput is the DTO for an uploaded document.
type UploadInput struct {
	Filename string
	Size     int64 // declared size; -1 when unknown
	Reader   io.Reader
}

// UploadService turns an uploaded document into a ClassificationRequest.
type UploadService interface {
	Ingest(ctx context.Context, input UploadInput) (*domain.ClassificationRequest, error)
}

type uploadService struct {
	extractor port.TextExtractor
	cfg       config.UploadConfig
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(extractor port.TextExtractor, cfg config.UploadConfig) UploadService {
	return &uploadService{
		extractor: extractor,
		cfg:       cfg,
	}
}

// Ingest checks the extension against the allow-list, stages the bytes under
// the upload dir and hands the staged file to the extractor, which deletes it.
// Extraction failures come back as *domain.ExtractionError.
func (s *uploadService) Ingest(ctx context.Context, input UploadInput) (*domain.ClassificationRequest, error) {
	filename := strings.TrimSpace(filepath.Base(input.Filename))
	if input.Reader == nil || filename == "" || filename == "." || filename == string(filepath.Separator) {
		return nil, domain.ErrMissingFile
	}

	ext := extract.NormalizeExt(filepath.Ext(filename))
	if ext == "" || !s.cfg.IsAllowed(ext) {
		return nil, domain.ErrUnsupportedFileType
	}
	maxBytes := s.cfg.MaxBytes()
	if input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.stage(input.Reader, ext, maxBytes)
	if err != nil {
		return nil, err
	}

	log.Info().Str("filename", filename).Str("ext", ext).Msg("uploadService.Ingest: extracting staged upload")
	outcome := s.extractor.Extract(path, ext)
	if !outcome.OK() {
		log.Warn().Err(outcome.Err).Str("filename", filename).Str("failure", string(outcome.Failure)).
			Msg("uploadService.Ingest: extraction failed")
		return nil, outcome.Error(filename)
	}

	return domain.NewClassificationRequest(outcome.Text, domain.SourceFile, filename)
}

// stage copies r into a fresh file under the upload dir. Bodies over maxBytes
// are rejected and the partial file removed.
func (s *uploadService) stage(r io.Reader, ext string, maxBytes int64) (string, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0o750); err != nil {
		return "", fmt.Errorf("%w: creating upload dir: %v", domain.ErrUploadFailed, err)
	}

	path := filepath.Join(s.cfg.Dir, uuid.New().String()+"."+ext)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	n, copyErr := io.Copy(f, io.LimitReader(r, maxBytes+1))
	closeErr := f.Close()
	switch {
	case copyErr != nil:
		discard(path)
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, copyErr)
	case closeErr != nil:
		discard(path)
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, closeErr)
	case n > maxBytes:
		discard(path)
		return "", domain.ErrFileTooLarge
	}
	return path, nil
}

func discard(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("uploadService: failed to remove staged file")
	}
}

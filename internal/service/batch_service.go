package service

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"mailtriage/internal/domain"
)

// BatchItem is the outcome for one input file. Exactly one of Result or Err is set.
type BatchItem struct {
	Path   string
	Result *domain.ClassificationResult
	Err    error
}

// BatchService classifies many files concurrently.
type BatchService interface {
	ClassifyFiles(ctx context.Context, paths []string) ([]BatchItem, error)
}

type batchService struct {
	uploads     UploadService
	pipeline    PipelineService
	concurrency int
	minLength   int
}

// NewBatchService creates a new BatchService implementation. Extracted text
// shorter than minLength runes is rejected like a short upload.
func NewBatchService(uploads UploadService, pipeline PipelineService, concurrency, minLength int) BatchService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &batchService{
		uploads:     uploads,
		pipeline:    pipeline,
		concurrency: concurrency,
		minLength:   minLength,
	}
}

// ClassifyFiles returns one item per path in input order. Per-file failures
// are recorded on the item; the returned error is only set when ctx is done.
// Source files are read through the upload path, which stages a copy, so the
// originals are never deleted.
func (s *batchService) ClassifyFiles(ctx context.Context, paths []string) ([]BatchItem, error) {
	items := make([]BatchItem, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		items[i].Path = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i].Err = err
				return err
			}
			result, err := s.classifyFile(gctx, path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("batchService.ClassifyFiles: file failed")
				items[i].Err = err
				return nil
			}
			items[i].Result = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return items, err
	}
	return items, nil
}

func (s *batchService) classifyFile(ctx context.Context, path string) (*domain.ClassificationResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ExtractionError{Kind: domain.ExtractionReadFailure, Filename: filepath.Base(path), Err: err}
	}
	defer func() { _ = f.Close() }()

	size := int64(-1)
	if info, statErr := f.Stat(); statErr == nil {
		size = info.Size()
	}

	req, err := s.uploads.Ingest(ctx, UploadInput{Filename: filepath.Base(path), Size: size, Reader: f})
	if err != nil {
		return nil, err
	}
	if err := RequireMinLength(req.Content(), s.minLength); err != nil {
		return nil, err
	}
	return s.pipeline.Process(ctx, req)
}

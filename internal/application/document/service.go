// Package document orchestrates the full processing pipeline for legal
// documents: raw text extraction, law-source detection and merge, article
// segmentation, and statistics — for one file or a batch with per-file
// failure isolation.
package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mizan-ai/Mizan-Intelligence/internal/config"
	"github.com/mizan-ai/Mizan-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/mizan-ai/Mizan-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/arabictext"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/articles"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/keywords"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/lawsource"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/references"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/textextract"
	"github.com/mizan-ai/Mizan-Intelligence/pkg/errors"
	"github.com/mizan-ai/Mizan-Intelligence/pkg/types/legaldoc"
)

// Service is the document processing orchestrator.  It is stateless across
// calls: every invocation allocates only call-local data, so a single Service
// is safe for concurrent use without locking.
type Service struct {
	cfg       config.ProcessingConfig
	extractor textextract.Extractor
	detector  *lawsource.Detector
	articles  *articles.Extractor
	logger    logging.Logger
	metrics   *prometheus.ProcessingMetrics
	now       func() time.Time
}

// Option customises Service construction.
type Option func(*Service)

// WithTextExtractor injects a text extraction implementation.  Tests use this
// to supply stubbed extraction without fixture files.
func WithTextExtractor(e textextract.Extractor) Option {
	return func(s *Service) { s.extractor = e }
}

// WithClock overrides the completion-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New constructs a fully wired Service.  metrics may be nil (metrics become
// no-ops); logger may be nil (logging is discarded).
func New(cfg *config.Config, logger logging.Logger, metrics *prometheus.ProcessingMetrics, opts ...Option) *Service {
	if cfg == nil {
		cfg = config.NewDefault()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	text := arabictext.New()
	s := &Service{
		cfg:       cfg.Processing,
		extractor: textextract.New(logger),
		detector:  lawsource.New(cfg.Processing.DescriptionWindow, logger),
		articles: articles.New(
			cfg.Processing.MinArticleLength,
			text,
			keywords.New(text, cfg.Processing.MaxKeywords),
			references.New(),
			logger,
		),
		logger:  logger.Named("document"),
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process converts one document into a ProcessingResult.  It fails with a
// CodeExtraction error for unsupported or unreadable files, a CodeEmptyText
// error when extraction yields only whitespace, and wraps any other internal
// fault into a CodeUnexpected error — always carrying the document path.
func (s *Service) Process(ctx context.Context, filePath string, overrides *legaldoc.LawSourceOverrides) (result *legaldoc.ProcessingResult, err error) {
	start := s.now()
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.NewUnexpectedError(filePath, "document processing failed", fmt.Errorf("panic: %v", r))
		}
		s.metrics.RecordDocument(err == nil, s.now().Sub(start))
		if err != nil {
			s.logger.Error("document processing failed",
				logging.String("file_path", filePath), logging.Err(err))
		}
	}()

	extractStart := s.now()
	text, err := s.extractor.ExtractText(ctx, filePath)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExtraction, filePath, "text extraction failed")
	}
	s.metrics.RecordExtraction(formatLabel(filePath), s.now().Sub(extractStart))

	if strings.TrimSpace(text) == "" {
		return nil, errors.NewEmptyTextError(filePath)
	}
	if s.cfg.MaxTextLength > 0 {
		if runes := []rune(text); len(runes) > s.cfg.MaxTextLength {
			text = string(runes[:s.cfg.MaxTextLength])
		}
	}

	detected := s.detector.Detect(text)
	merged := lawsource.Merge(detected, overrides)

	arts, pass := s.articles.Extract(text)
	s.metrics.RecordArticles(string(pass), len(arts))

	totalChars := 0
	for _, a := range arts {
		totalChars += len([]rune(a.Content))
	}

	result = &legaldoc.ProcessingResult{
		LawSource: merged,
		Articles:  arts,
		Statistics: legaldoc.Statistics{
			TotalArticles:   len(arts),
			TotalCharacters: totalChars,
			ProcessingTime:  s.now(),
			FilePath:        filePath,
			DocumentHash:    fmt.Sprintf("%016x", xxhash.Sum64String(text)),
		},
	}

	s.logger.Info("document processed",
		logging.String("file_path", filePath),
		logging.Int("articles", len(arts)),
		logging.String("pass", string(pass)),
		logging.Duration("elapsed", s.now().Sub(start)))
	return result, nil
}

// ProcessBatch processes each path independently and sequentially.  A failure
// on one path is captured as data in its entry and never aborts or affects
// the other paths; the batch call itself does not fail for a bad file.
func (s *Service) ProcessBatch(ctx context.Context, filePaths []string, overrides *legaldoc.LawSourceOverrides) *legaldoc.BatchResult {
	batch := s.newBatch(len(filePaths))
	for i, path := range filePaths {
		batch.Entries[i] = s.processEntry(ctx, path, overrides)
	}
	return s.finishBatch(batch)
}

// ProcessBatchConcurrent behaves like ProcessBatch but fans the files out to a
// bounded worker pool.  Per-file processing is side-effect-free, so no
// synchronization beyond the index-addressed result slice is needed; entry
// order matches the input order.
func (s *Service) ProcessBatchConcurrent(ctx context.Context, filePaths []string, overrides *legaldoc.LawSourceOverrides) *legaldoc.BatchResult {
	batch := s.newBatch(len(filePaths))

	// An unvalidated config may carry a zero concurrency; SetLimit(0) would
	// block every worker forever.
	limit := s.cfg.BatchConcurrency
	if limit < 1 {
		limit = config.DefaultBatchConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range filePaths {
		i, path := i, path
		g.Go(func() error {
			batch.Entries[i] = s.processEntry(ctx, path, overrides)
			return nil
		})
	}
	// Workers never return errors; failures are entries.
	_ = g.Wait()

	return s.finishBatch(batch)
}

func (s *Service) newBatch(n int) *legaldoc.BatchResult {
	return &legaldoc.BatchResult{
		JobID:      uuid.NewString(),
		Entries:    make([]legaldoc.BatchEntry, n),
		TotalFiles: n,
	}
}

func (s *Service) processEntry(ctx context.Context, path string, overrides *legaldoc.LawSourceOverrides) legaldoc.BatchEntry {
	res, err := s.Process(ctx, path, overrides)
	s.metrics.RecordBatchFile(err == nil)
	if err != nil {
		return legaldoc.BatchEntry{FilePath: path, Success: false, Error: err.Error()}
	}
	return legaldoc.BatchEntry{FilePath: path, Success: true, Data: res}
}

func (s *Service) finishBatch(batch *legaldoc.BatchResult) *legaldoc.BatchResult {
	for _, e := range batch.Entries {
		if e.Success {
			batch.Successful++
		} else {
			batch.Failed++
		}
	}
	s.logger.Info("batch processed",
		logging.String("job_id", batch.JobID),
		logging.Int("total", batch.TotalFiles),
		logging.Int("successful", batch.Successful),
		logging.Int("failed", batch.Failed))
	return batch
}

func formatLabel(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

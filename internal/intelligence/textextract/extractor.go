// Package textextract obtains raw text from legal document files.  Dispatch is
// strictly by file extension: .pdf goes to an ordered list of PDF backends
// probed once at construction, .docx/.doc to the DOCX backend.  No content
// sniffing is attempted; anything else fails immediately.
package textextract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mizan-ai/Mizan-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/mizan-ai/Mizan-Intelligence/pkg/errors"
)

// Extractor is the text extraction capability consumed by the document
// processor.
type Extractor interface {
	// ExtractText returns the raw text of the file at path.  All failures —
	// unsupported extension, missing backend, corrupt file, I/O error — are
	// reported as the same CodeExtraction error kind carrying the document
	// path.
	ExtractText(ctx context.Context, path string) (string, error)
}

// Backend extracts text for one document format.  Implementations are probed
// once at construction, not per call.
type Backend interface {
	// Name identifies the backend in logs and error details.
	Name() string

	// Available reports whether the backend can operate in this process.
	Available() bool

	// Extract returns the raw text of the file at path.
	Extract(ctx context.Context, path string) (string, error)
}

type service struct {
	pdf    Backend // first available backend from the ordered candidate list
	docx   Backend
	logger logging.Logger
}

// Option customises the extractor service.
type Option func(*options)

type options struct {
	pdfBackends []Backend
	docxBackend Backend
}

// WithPDFBackends overrides the ordered PDF backend candidate list.  Used by
// tests to inject stubs and by deployments that disable a backend.
func WithPDFBackends(backends ...Backend) Option {
	return func(o *options) { o.pdfBackends = backends }
}

// WithDOCXBackend overrides the DOCX backend.
func WithDOCXBackend(b Backend) Option {
	return func(o *options) { o.docxBackend = b }
}

// New constructs an Extractor.  The PDF backend is chosen once: the first
// available entry of the ordered candidate list wins; when none is available
// every .pdf extraction fails with a CodeExtraction error.
func New(logger logging.Logger, opts ...Option) Extractor {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	o := &options{
		pdfBackends: []Backend{NewPDFBackend(), NewTabulaBackend()},
		docxBackend: NewDOCXBackend(),
	}
	for _, opt := range opts {
		opt(o)
	}

	s := &service{docx: o.docxBackend, logger: logger.Named("textextract")}
	for _, b := range o.pdfBackends {
		if b != nil && b.Available() {
			s.pdf = b
			break
		}
	}
	if s.pdf != nil {
		s.logger.Info("selected pdf backend", logging.String("backend", s.pdf.Name()))
	} else {
		s.logger.Warn("no pdf backend available; pdf extraction disabled")
	}
	return s
}

func (s *service) ExtractText(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		if s.pdf == nil {
			return "", errors.NewExtractionError(path, "no pdf extraction backend available")
		}
		text, err := s.pdf.Extract(ctx, path)
		if err != nil {
			return "", errors.Wrap(err, errors.CodeExtraction, path, "pdf extraction failed").
				WithDetail("backend=" + s.pdf.Name())
		}
		return text, nil
	case ".docx", ".doc":
		if s.docx == nil || !s.docx.Available() {
			return "", errors.NewExtractionError(path, "no docx extraction backend available")
		}
		text, err := s.docx.Extract(ctx, path)
		if err != nil {
			return "", errors.Wrap(err, errors.CodeExtraction, path, "docx extraction failed").
				WithDetail("backend=" + s.docx.Name())
		}
		return text, nil
	default:
		ext := filepath.Ext(path)
		if ext == "" {
			ext = "(none)"
		}
		return "", errors.NewExtractionError(path, fmt.Sprintf("unsupported file format: %s", ext))
	}
}

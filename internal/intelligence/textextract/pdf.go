package textextract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfBackend extracts PDF text page by page with github.com/ledongthuc/pdf.
// It is the primary backend: pure Go, fast, and tolerant of pages whose text
// streams fail to decode (bad pages are skipped rather than failing the file).
type pdfBackend struct{}

// NewPDFBackend returns the primary PDF text backend.
func NewPDFBackend() Backend { return pdfBackend{} }

func (pdfBackend) Name() string { return "ledongthuc/pdf" }

func (pdfBackend) Available() bool { return true }

func (pdfBackend) Extract(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat pdf: %w", err)
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single undecodable page must not sink the document.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

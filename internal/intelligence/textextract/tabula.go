package textextract

import (
	"context"
	"fmt"

	"github.com/tsawler/tabula"
)

// tabulaBackend is the secondary PDF backend, built on the layout-aware
// github.com/tsawler/tabula extractor.  It is slower than the primary backend
// but copes better with multi-column layouts.
type tabulaBackend struct{}

// NewTabulaBackend returns the secondary PDF text backend.
func NewTabulaBackend() Backend { return tabulaBackend{} }

func (tabulaBackend) Name() string { return "tsawler/tabula" }

func (tabulaBackend) Available() bool { return true }

func (tabulaBackend) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ex := tabula.Open(path)
	defer ex.Close()

	// Per-page decode warnings are tolerated the same way the primary backend
	// tolerates undecodable pages.
	text, _, err := ex.Text()
	if err != nil {
		return "", fmt.Errorf("tabula extract: %w", err)
	}
	return text, nil
}

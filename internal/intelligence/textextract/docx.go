package textextract

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// docxBackend extracts paragraph text from the OOXML container: it opens the
// zip archive, parses word/document.xml, and walks <w:p> paragraphs in
// document order, concatenating their <w:t> text runs.  Legacy .doc files are
// accepted only when they are actually OOXML archives with a .doc name, which
// matches how the upstream document sources mislabel them.
type docxBackend struct{}

// NewDOCXBackend returns the DOCX text backend.
func NewDOCXBackend() Backend { return docxBackend{} }

func (docxBackend) Name() string { return "ooxml" }

func (docxBackend) Available() bool { return true }

func (docxBackend) Extract(ctx context.Context, path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx container: %w", err)
	}
	defer archive.Close()

	var docXML []byte
	for _, f := range archive.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open word/document.xml: %w", err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read word/document.xml: %w", err)
		}
		break
	}
	if docXML == nil {
		return "", fmt.Errorf("word/document.xml not found in %s", path)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return "", fmt.Errorf("parse word/document.xml: %w", err)
	}

	body := doc.FindElement("//body")
	if body == nil {
		return "", fmt.Errorf("document body not found in %s", path)
	}

	var b strings.Builder
	for _, p := range body.FindElements(".//p") {
		var para strings.Builder
		for _, t := range p.FindElements(".//t") {
			para.WriteString(t.Text())
		}
		if para.Len() == 0 {
			continue
		}
		b.WriteString(para.String())
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Package legaldoc defines the public value types produced by the legal
// document processing core: law-source metadata, extracted articles, and the
// per-document / per-batch result envelopes consumed by the ingestion service.
//
// All values are created fresh per invocation and returned by value semantics;
// nothing in this package is mutated after construction.
package legaldoc

import "time"

// LawSourceType classifies the kind of legal instrument a document represents.
type LawSourceType string

const (
	TypeLaw        LawSourceType = "law"        // نظام / قانون
	TypeDecree     LawSourceType = "decree"     // مرسوم
	TypeRegulation LawSourceType = "regulation" // لائحة
	TypeDirective  LawSourceType = "directive"  // قرار / تعليمات / تعميم
)

// IsValid checks if the LawSourceType is one of the supported values.
func (t LawSourceType) IsValid() bool {
	switch t {
	case TypeLaw, TypeDecree, TypeRegulation, TypeDirective:
		return true
	default:
		return false
	}
}

// Static defaults applied when detection finds no matching pattern.  Name,
// type, and jurisdiction are never empty in output.
const (
	DefaultName         = "وثيقة قانونية"
	DefaultJurisdiction = "المملكة العربية السعودية"
)

// DefaultType is the law-source type assumed when no type indicator matches.
const DefaultType = TypeLaw

// LawSourceMetadata describes the legal instrument a document represents.
// Optional fields use pointers so that "not detected" and "explicitly
// provided" are distinguishable during merge.
type LawSourceMetadata struct {
	Name             string        `json:"name"`
	Type             LawSourceType `json:"type"`
	Jurisdiction     string        `json:"jurisdiction"`
	IssuingAuthority *string       `json:"issuing_authority,omitempty"`
	IssueDate        *time.Time    `json:"issue_date,omitempty"`
	LastUpdate       *time.Time    `json:"last_update,omitempty"`
	Description      *string       `json:"description,omitempty"`
	SourceURL        *string       `json:"source_url,omitempty"`
}

// NewDefaultLawSource returns metadata populated with the static defaults.
func NewDefaultLawSource() LawSourceMetadata {
	return LawSourceMetadata{
		Name:         DefaultName,
		Type:         DefaultType,
		Jurisdiction: DefaultJurisdiction,
	}
}

// LawSourceOverrides is caller-supplied partial metadata (e.g. from an upload
// endpoint).  Any non-nil field takes precedence over detection.
type LawSourceOverrides struct {
	Name             *string        `json:"name,omitempty"`
	Type             *LawSourceType `json:"type,omitempty"`
	Jurisdiction     *string        `json:"jurisdiction,omitempty"`
	IssuingAuthority *string        `json:"issuing_authority,omitempty"`
	IssueDate        *time.Time     `json:"issue_date,omitempty"`
	LastUpdate       *time.Time     `json:"last_update,omitempty"`
	Description      *string        `json:"description,omitempty"`
	SourceURL        *string        `json:"source_url,omitempty"`
}

// Article is a single numbered article segmented out of a legal document.
type Article struct {
	// ArticleNumber is the canonical "المادة {N}" form, produced even when the
	// source used a spelled-out ordinal.  When an ordinal phrase matched the
	// segmentation pattern but is absent from the lookup table, the raw phrase
	// is kept in place of the numeral (see DESIGN.md).
	ArticleNumber string `json:"article_number"`

	// Title is reserved; segmentation does not currently populate titles.
	Title *string `json:"title,omitempty"`

	// Content is the normalized body text of the article.
	Content string `json:"content"`

	// Keywords are unique domain keywords in insertion order; may be empty.
	Keywords []string `json:"keywords"`

	// RelatedReferences are unique cross-references to other legal
	// instruments, in insertion order; may be empty.
	RelatedReferences []string `json:"related_references"`
}

// Statistics summarizes one processed document.
type Statistics struct {
	TotalArticles   int       `json:"total_articles"`
	TotalCharacters int       `json:"total_characters"` // sum of article content lengths, in runes
	ProcessingTime  time.Time `json:"processing_time"`  // completion timestamp
	FilePath        string    `json:"file_path"`
	DocumentHash    string    `json:"document_hash,omitempty"` // xxhash64 of the extracted text
}

// ProcessingResult is the full output for one document.
type ProcessingResult struct {
	LawSource  LawSourceMetadata `json:"law_source"`
	Articles   []Article         `json:"articles"`
	Statistics Statistics        `json:"statistics"`
}

// BatchEntry is the per-file outcome inside a batch run.  A failed file is
// data, not an exception: Success is false, Error holds the message, and Data
// is nil.
type BatchEntry struct {
	FilePath string            `json:"file_path"`
	Success  bool              `json:"success"`
	Data     *ProcessingResult `json:"data,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// BatchResult aggregates an ordered list of per-file outcomes.
type BatchResult struct {
	JobID      string       `json:"job_id"`
	Entries    []BatchEntry `json:"entries"`
	TotalFiles int          `json:"total_files"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
}

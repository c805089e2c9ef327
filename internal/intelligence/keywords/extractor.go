// Package keywords extracts domain keywords from article content.  A fixed
// dictionary of Arabic legal terms is scanned first, in dictionary order; the
// generic text-utility collaborator then contributes frequency-based keywords
// for whatever remains of the cap.
package keywords

import (
	"strings"

	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/arabictext"
)

// legalTerms is the fixed legal-term dictionary, scanned in order.  The order
// is part of the contract: it decides which terms survive the cap.
var legalTerms = []string{
	"حق", "التزام", "عقد", "اتفاقية", "عقوبة", "غرامة", "محكمة", "قاضي",
	"دعوى", "حكم", "طعن", "استئناف", "تعويض", "ملكية", "إيجار", "بيع",
	"رهن", "ضمان", "كفالة", "وكالة", "شركة", "إفلاس", "تصفية", "عامل",
	"صاحب العمل", "أجر", "إجازة", "تأمين", "ضريبة", "رسوم", "ترخيص",
	"تصريح", "مخالفة", "جريمة", "سجن", "براءة", "شاهد", "إثبات", "ميراث",
	"نفقة",
}

// DefaultMaxKeywords caps the keyword list when no explicit limit is given.
const DefaultMaxKeywords = 10

// Extractor extracts keywords from article content.  It holds only read-only
// state and is safe for concurrent use.
type Extractor struct {
	text arabictext.Utility
	max  int
}

// New constructs an Extractor.  max <= 0 falls back to DefaultMaxKeywords.
func New(text arabictext.Utility, max int) *Extractor {
	if text == nil {
		text = arabictext.New()
	}
	if max <= 0 {
		max = DefaultMaxKeywords
	}
	return &Extractor{text: text, max: max}
}

// Extract returns up to the configured maximum of unique keywords in
// insertion order: dictionary terms found in content first, then generic
// collaborator keywords.  It never fails; an empty result is valid.
func (e *Extractor) Extract(content string) []string {
	if content == "" {
		return nil
	}
	lowered := strings.ToLower(content)

	out := make([]string, 0, e.max)
	seen := make(map[string]struct{}, e.max)

	for _, term := range legalTerms {
		if len(out) >= e.max {
			return out
		}
		if strings.Contains(lowered, term) {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			out = append(out, term)
		}
	}

	for _, kw := range e.text.GenericKeywords(content, e.max) {
		if len(out) >= e.max {
			break
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

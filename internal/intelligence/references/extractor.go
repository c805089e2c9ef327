// Package references extracts cross-references to other legal instruments
// from article content, using a fixed ordered list of patterns.
package references

import (
	"regexp"
	"strings"

	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/arabictext"
)

// referencePattern couples a regex with the reconstruction of its reference
// string.  Go's RE2 engine has no lookahead, so "name up to رقم/لعام" is
// captured in a group and the reference is rebuilt as prefix + name instead
// of slicing a lookahead match; the output string is the same.
type referencePattern struct {
	re     *regexp.Regexp
	prefix string
}

// patterns are applied in fixed order; all matches of every pattern are
// collected (duplicates removed).
var patterns = []referencePattern{
	{regexp.MustCompile(`نظام\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام)`), "نظام"},
	{regexp.MustCompile(`قانون\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام)`), "قانون"},
	{regexp.MustCompile(`مرسوم\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام)`), "مرسوم"},
	{regexp.MustCompile(`المادة\s*\(?\s*([0-9٠-٩]+)\s*\)?\s*من\s+([\p{Arabic}][\p{Arabic}\s]*?)(?:\s+(?:رقم|لعام)|$)`), "المادة"},
	{regexp.MustCompile(`الفقرة\s*\(?\s*([0-9٠-٩]+)\s*\)?\s*من\s+([\p{Arabic}][\p{Arabic}\s]*?)(?:\s+(?:رقم|لعام)|$)`), "الفقرة"},
}

// Extractor extracts cross-references from article content.  Stateless apart
// from the read-only pattern table; safe for concurrent use.
type Extractor struct{}

// New constructs an Extractor.
func New() *Extractor { return &Extractor{} }

// Extract returns the unique reference strings found in content, in match
// order.  It never fails; an empty result is valid.
func (e *Extractor) Extract(content string) []string {
	if content == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(ref string) {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return
		}
		if _, dup := seen[ref]; dup {
			return
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}

	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(content, -1) {
			switch len(m) {
			case 2:
				add(p.prefix + " " + m[1])
			case 3:
				add(p.prefix + " " + arabictext.FoldDigits(m[1]) + " من " + m[2])
			}
		}
	}
	return out
}

// Package lawsource infers law metadata (name, type, issuing authority, issue
// year, description) from raw Arabic legal text using ordered, first-match-wins
// regex tables.  Detection never fails: when no pattern matches, the static
// defaults apply.
//
// The pattern lists are prioritized scanners — the first pattern in a list
// that matches anywhere in the text wins, regardless of where competing
// patterns would match.  The order is load-bearing: reordering silently
// changes detected output on real documents, so the lists must stay fixed.
package lawsource

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mizan-ai/Mizan-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/mizan-ai/Mizan-Intelligence/pkg/types/legaldoc"
)

// namePatterns capture the instrument name: an instrument word followed by the
// name, running up to the next رقم / لعام / لسنة token.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`نظام\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام|لسنة)`),
	regexp.MustCompile(`مرسوم\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام|لسنة)`),
	regexp.MustCompile(`قانون\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام|لسنة)`),
	regexp.MustCompile(`لائحة\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام|لسنة)`),
	regexp.MustCompile(`قرار\s+([\p{Arabic}][\p{Arabic}\s]*?)\s+(?:رقم|لعام|لسنة)`),
}

// namePrefixes pair each name pattern with the instrument word that prefixes
// the detected name, index-aligned with namePatterns.
var namePrefixes = []string{"نظام", "مرسوم", "قانون", "لائحة", "قرار"}

// typeIndicator maps a keyword to a law-source type; scanned in order, first
// match wins.
type typeIndicator struct {
	keyword string
	kind    legaldoc.LawSourceType
}

var typeIndicators = []typeIndicator{
	{"مرسوم ملكي", legaldoc.TypeDecree},
	{"مرسوم", legaldoc.TypeDecree},
	{"لائحة تنفيذية", legaldoc.TypeRegulation},
	{"لائحة", legaldoc.TypeRegulation},
	{"قرار وزاري", legaldoc.TypeDirective},
	{"قرار", legaldoc.TypeDirective},
	{"تعميم", legaldoc.TypeDirective},
	{"نظام", legaldoc.TypeLaw},
	{"قانون", legaldoc.TypeLaw},
}

// authorityPatterns capture the issuing authority: a body word plus its name.
var authorityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(وزارة\s+[\p{Arabic}]+(?:\s+[\p{Arabic}]+)?)`),
	regexp.MustCompile(`(هيئة\s+[\p{Arabic}]+(?:\s+[\p{Arabic}]+)?)`),
	regexp.MustCompile(`(مجلس\s+[\p{Arabic}]+(?:\s+[\p{Arabic}]+)?)`),
}

// yearPatterns capture a 4-digit issue year (Hijri or Gregorian, as written).
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`لعام\s+(\d{4})`),
	regexp.MustCompile(`لسنة\s+(\d{4})`),
	regexp.MustCompile(`عام\s+(\d{4})`),
	regexp.MustCompile(`سنة\s+(\d{4})`),
}

// sentenceEnders terminate the description sentence.
var sentenceEnders = regexp.MustCompile(`[.!?]`)

// Detector infers LawSourceMetadata from raw document text.
type Detector struct {
	descriptionWindow int
	logger            logging.Logger
}

// New constructs a Detector.  descriptionWindow is the leading character
// window scanned for the description sentence (0 falls back to 500).
func New(descriptionWindow int, logger logging.Logger) *Detector {
	if descriptionWindow <= 0 {
		descriptionWindow = 500
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Detector{descriptionWindow: descriptionWindow, logger: logger.Named("lawsource")}
}

// Detect scans text with the fixed pattern tables and returns metadata.  It
// never fails; fields without a match keep their static defaults.
func (d *Detector) Detect(text string) legaldoc.LawSourceMetadata {
	meta := legaldoc.NewDefaultLawSource()

	for i, re := range namePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			meta.Name = namePrefixes[i] + " " + strings.TrimSpace(m[1])
			break
		}
	}

	for _, ind := range typeIndicators {
		if strings.Contains(text, ind.keyword) {
			meta.Type = ind.kind
			break
		}
	}

	for _, re := range authorityPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			authority := strings.TrimSpace(m[1])
			meta.IssuingAuthority = &authority
			break
		}
	}

	for _, re := range yearPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if year, err := strconv.Atoi(m[1]); err == nil {
				// Only the year is written in the instrument; the issue date
				// is synthesized as January 1st of that year.
				date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
				meta.IssueDate = &date
			}
			break
		}
	}

	if desc := d.description(text); desc != "" {
		meta.Description = &desc
	}

	return meta
}

// description takes the first sentence of the leading window, unconditionally.
// Boilerplate headers produce low-quality descriptions; this mirrors the
// established behavior and is not corrected here.
func (d *Detector) description(text string) string {
	window := []rune(strings.TrimSpace(text))
	if len(window) == 0 {
		return ""
	}
	if len(window) > d.descriptionWindow {
		window = window[:d.descriptionWindow]
	}
	head := string(window)
	if loc := sentenceEnders.FindStringIndex(head); loc != nil {
		head = head[:loc[0]]
	}
	return strings.TrimSpace(head)
}

// Merge overlays provided onto detected field by field.  Explicit caller input
// always wins; the detected value survives only where the override is nil.
func Merge(detected legaldoc.LawSourceMetadata, provided *legaldoc.LawSourceOverrides) legaldoc.LawSourceMetadata {
	if provided == nil {
		return detected
	}
	out := detected
	if provided.Name != nil {
		out.Name = *provided.Name
	}
	if provided.Type != nil {
		out.Type = *provided.Type
	}
	if provided.Jurisdiction != nil {
		out.Jurisdiction = *provided.Jurisdiction
	}
	if provided.IssuingAuthority != nil {
		out.IssuingAuthority = provided.IssuingAuthority
	}
	if provided.IssueDate != nil {
		out.IssueDate = provided.IssueDate
	}
	if provided.LastUpdate != nil {
		out.LastUpdate = provided.LastUpdate
	}
	if provided.Description != nil {
		out.Description = provided.Description
	}
	if provided.SourceURL != nil {
		out.SourceURL = provided.SourceURL
	}
	return out
}

// Package articles segments raw Arabic legal text into an ordered list of
// numbered articles.  Segmentation is a two-pass heuristic: the ordinal pass
// matches "المادة" followed by a spelled-out ordinal phrase; only when it
// yields nothing does the numeric fallback pass look for digit-style markers
// (المادة 5 / مادة 5 / الفقرة 5 / البند 5).  Retained article bodies are
// normalized and enriched with keywords and cross-references.
package articles

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mizan-ai/Mizan-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/arabictext"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/keywords"
	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/references"
	"github.com/mizan-ai/Mizan-Intelligence/pkg/types/legaldoc"
)

// Pass identifies which segmentation pass produced a result.
type Pass string

const (
	PassOrdinal Pass = "ordinal"
	PassNumeric Pass = "numeric"
	PassNone    Pass = ""
)

// ordinalPhrasePattern matches any spelled-out ordinal phrase shaped like the
// corpus writes them.  It is deliberately broader than the lookup table (it
// accepts, e.g., "الحادية عشرة بعد المائة" = 111, which the table does not
// carry); a matched phrase with no table entry is kept verbatim inside the
// article number and flagged with a WARN log.
var ordinalPhrasePattern = func() string {
	units := strings.Join(append([]string{"الحادية"}, ordinalUnits...), "|")
	tens := strings.Join(tensWords, "|")
	return fmt.Sprintf(
		`(?:(?:%s)(?:\s+عشرة)?(?:\s+وال(?:%s))?|ال(?:%s)|%s|%s)(?:\s+بعد\s+(?:المائة|المائتين))?`,
		units, tens, tens, hundredWord, twoHundredWord,
	)
}()

// ordinalArticleRe anchors an ordinal phrase to the article marker, with an
// optional ":" or "." separator before the body.
var ordinalArticleRe = regexp.MustCompile(`المادة\s+(` + ordinalPhrasePattern + `)\s*[:.]?\s*`)

// numericArticleRes are the fallback markers, applied in fixed priority
// order.  Both ASCII and Arabic-Indic digits occur in real documents.
var numericArticleRes = []*regexp.Regexp{
	regexp.MustCompile(`المادة\s*[:.]?\s*([0-9٠-٩]+)\s*[:.]?\s*`),
	regexp.MustCompile(`مادة\s*[:.]?\s*([0-9٠-٩]+)\s*[:.]?\s*`),
	regexp.MustCompile(`الفقرة\s*[:.]?\s*([0-9٠-٩]+)\s*[:.]?\s*`),
	regexp.MustCompile(`البند\s*[:.]?\s*([0-9٠-٩]+)\s*[:.]?\s*`),
}

// sortKeyRe extracts the numeral embedded in a canonical article number.
var sortKeyRe = regexp.MustCompile(`\d+`)

// Extractor segments text into articles.  It holds only read-only pattern
// state and is safe for concurrent use.
type Extractor struct {
	minLength int
	text      arabictext.Utility
	keywords  *keywords.Extractor
	refs      *references.Extractor
	logger    logging.Logger
}

// New constructs an Extractor.  minLength is the minimum retained article body
// length in runes (0 falls back to 11: bodies of 10 runes or fewer are stray
// heading matches, not articles).
func New(
	minLength int,
	text arabictext.Utility,
	kw *keywords.Extractor,
	refs *references.Extractor,
	logger logging.Logger,
) *Extractor {
	if minLength <= 0 {
		minLength = 11
	}
	if text == nil {
		text = arabictext.New()
	}
	if kw == nil {
		kw = keywords.New(text, 0)
	}
	if refs == nil {
		refs = references.New()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Extractor{
		minLength: minLength,
		text:      text,
		keywords:  kw,
		refs:      refs,
		logger:    logger.Named("articles"),
	}
}

// Extract segments text and returns the articles sorted ascending by the
// numeral embedded in their article number (unparseable numbers sort as 0),
// together with the pass that produced them.  Segmentation failure degrades
// to an empty result: internal faults are logged, never propagated.
func (e *Extractor) Extract(text string) (result []legaldoc.Article, pass Pass) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("article extraction failed", logging.Any("panic", r))
			result, pass = nil, PassNone
		}
	}()

	arts := e.ordinalPass(text)
	pass = PassOrdinal
	if len(arts) == 0 {
		arts = e.numericPass(text)
		pass = PassNumeric
	}
	if len(arts) == 0 {
		return nil, PassNone
	}

	sort.SliceStable(arts, func(i, j int) bool {
		return sortKey(arts[i].ArticleNumber) < sortKey(arts[j].ArticleNumber)
	})
	return arts, pass
}

// ordinalPass splits on "المادة" + spelled-out ordinal markers.
func (e *Extractor) ordinalPass(text string) []legaldoc.Article {
	matches := ordinalArticleRe.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	arts := make([]legaldoc.Article, 0, len(matches))
	for i, m := range matches {
		phrase := text[m[2]:m[3]]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := text[m[1]:end]

		number := "المادة "
		if n, ok := LookupOrdinal(phrase); ok {
			number += strconv.Itoa(n)
		} else {
			// Known gap: phrase matched the pattern but is outside the table
			// (e.g. 110–199).  The raw phrase is kept so no content is lost;
			// such articles sort with key 0.
			e.logger.Warn("ordinal phrase missing from lookup table",
				logging.String("phrase", phrase))
			number += strings.Join(strings.Fields(phrase), " ")
		}

		if a, ok := e.buildArticle(number, body); ok {
			arts = append(arts, a)
		}
	}
	return arts
}

// numericPass applies the digit-style marker patterns in priority order and
// returns the articles of the first pattern that yields any.
func (e *Extractor) numericPass(text string) []legaldoc.Article {
	for _, re := range numericArticleRes {
		matches := re.FindAllStringSubmatchIndex(text, -1)
		if matches == nil {
			continue
		}

		arts := make([]legaldoc.Article, 0, len(matches))
		for i, m := range matches {
			digits := arabictext.FoldDigits(text[m[2]:m[3]])
			end := len(text)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			body := text[m[1]:end]

			if a, ok := e.buildArticle("المادة "+digits, body); ok {
				arts = append(arts, a)
			}
		}
		if len(arts) > 0 {
			return arts
		}
	}
	return nil
}

// buildArticle normalizes and filters one segmented body, then enriches it.
// Bodies shorter than the minimum length are noise and are dropped.
func (e *Extractor) buildArticle(number, body string) (legaldoc.Article, bool) {
	content := e.text.Normalize(body)
	if len([]rune(content)) < e.minLength {
		return legaldoc.Article{}, false
	}
	return legaldoc.Article{
		ArticleNumber:     number,
		Content:           content,
		Keywords:          e.keywords.Extract(content),
		RelatedReferences: e.refs.Extract(content),
	}, true
}

// sortKey parses the numeral out of an article number; numbers without a
// parsable numeral (unknown ordinal passthrough) sort first with key 0.
func sortKey(articleNumber string) int {
	digits := sortKeyRe.FindString(articleNumber)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// Package arabictext implements the generic Arabic text utility the
// extraction pipeline collaborates with: whitespace/diacritics normalization
// and frequency-based generic keyword mining.  The pipeline depends only on
// the Utility interface, so deployments can substitute a richer NLP-backed
// implementation without touching the extraction code.
package arabictext

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Utility is the text collaborator contract consumed by the extractors.
type Utility interface {
	// Normalize returns a cleaned form of text: Unicode-normalized, with
	// tashkeel and tatweel removed, Arabic-Indic digits folded to ASCII, and
	// whitespace collapsed.
	Normalize(text string) string

	// GenericKeywords returns up to max frequency-ranked content words.
	GenericKeywords(text string, max int) []string
}

// New returns the default deterministic Utility implementation.
func New() Utility {
	return &utility{}
}

type utility struct{}

// tatweel is the Arabic elongation character, purely typographic.
const tatweel = 'ـ'

// isTashkeel reports whether r is an Arabic short-vowel or emphasis mark
// (fathatan through sukun, plus the dagger alef).  Hamza seats are NOT
// stripped: removing them would rewrite letters (أ → ا) and break dictionary
// matching downstream.
func isTashkeel(r rune) bool {
	return (r >= 0x064B && r <= 0x0652) || r == 0x0670
}

// foldDigit maps Arabic-Indic and Extended Arabic-Indic digits to ASCII.
func foldDigit(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩': // ٠..٩
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹': // ۰..۹
		return '0' + (r - '۰')
	default:
		return r
	}
}

// FoldDigits rewrites every Arabic-Indic digit in s to its ASCII equivalent.
// Arabic legal documents mix both digit systems freely; numeral parsing always
// folds first.
func FoldDigits(s string) string {
	return strings.Map(foldDigit, s)
}

func (u *utility) Normalize(text string) string {
	// NFC first so decomposed input (alef + combining hamza) recomposes into
	// the precomposed letters the pattern tables are written with.
	folded := norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := false
	for _, r := range folded {
		switch {
		case r == tatweel || isTashkeel(r):
			continue
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(foldDigit(r))
			lastSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}

// stopwords are high-frequency Arabic function words excluded from generic
// keyword mining.
var stopwords = map[string]struct{}{
	"في": {}, "من": {}, "إلى": {}, "على": {}, "عن": {}, "مع": {},
	"هذا": {}, "هذه": {}, "ذلك": {}, "تلك": {}, "التي": {}, "الذي": {},
	"أو": {}, "ثم": {}, "إذا": {}, "كما": {}, "لما": {}, "حتى": {},
	"كل": {}, "بعد": {}, "قبل": {}, "عند": {}, "لدى": {}, "دون": {},
	"غير": {}, "بين": {}, "خلال": {}, "وفق": {}, "وفقا": {}, "بموجب": {},
	"يكون": {}, "تكون": {}, "كان": {}, "كانت": {}, "يجب": {}, "يجوز": {},
	"ولا": {}, "فلا": {}, "إلا": {}, "أن": {}, "إن": {}, "قد": {},
}

// isArabicLetter reports whether r belongs to the Arabic script and is a
// letter (digits and punctuation split tokens).
func isArabicLetter(r rune) bool {
	return unicode.Is(unicode.Arabic, r) && unicode.IsLetter(r)
}

func (u *utility) GenericKeywords(text string, max int) []string {
	if max <= 0 {
		return nil
	}

	tokens := strings.FieldsFunc(u.Normalize(text), func(r rune) bool {
		return !isArabicLetter(r)
	})

	type entry struct {
		word  string
		count int
		first int
	}
	index := make(map[string]*entry)
	order := make([]*entry, 0, len(tokens))
	for i, tok := range tokens {
		if len([]rune(tok)) < 3 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if e, ok := index[tok]; ok {
			e.count++
			continue
		}
		e := &entry{word: tok, count: 1, first: i}
		index[tok] = e
		order = append(order, e)
	}

	// Highest frequency first; ties resolved by first occurrence so the
	// output is deterministic for identical input.
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > max {
		order = order[:max]
	}
	out := make([]string, 0, len(order))
	for _, e := range order {
		out = append(out, e.word)
	}
	return out
}

package articles

import "strings"

// The spelled-out Arabic ordinal table.  Legal prose numbers articles with
// feminine ordinal phrases ("المادة الثالثة والعشرون"); this table maps every
// phrase the corpus uses to its decimal numeral:
//
//	units 1–10, teens 11–19 (via "عشرة"), tens 20–90 with compound
//	"X والعشرون" forms for 21–99, then 100, 101–109 ("بعد المائة"),
//	200, and 201–209 ("بعد المائتين").
//
// The table is pure static data built once at package load and shared
// read-only across all callers; no locking is required.

// ordinalUnits are the feminine ordinals 1–10.
var ordinalUnits = []string{
	"الأولى",   // 1
	"الثانية",  // 2
	"الثالثة",  // 3
	"الرابعة",  // 4
	"الخامسة",  // 5
	"السادسة",  // 6
	"السابعة",  // 7
	"الثامنة",  // 8
	"التاسعة",  // 9
	"العاشرة",  // 10
}

// compoundUnits are the unit forms used inside teens and compound tens;
// only "1" differs from the standalone form (الحادية, not الأولى).
var compoundUnits = []string{
	"الحادية",
	"الثانية",
	"الثالثة",
	"الرابعة",
	"الخامسة",
	"السادسة",
	"السابعة",
	"الثامنة",
	"التاسعة",
}

// tensWords are the tens 20–90 without the definite article.
var tensWords = []string{
	"عشرون",  // 20
	"ثلاثون", // 30
	"أربعون", // 40
	"خمسون",  // 50
	"ستون",   // 60
	"سبعون",  // 70
	"ثمانون", // 80
	"تسعون",  // 90
}

const (
	hundredWord     = "المائة"
	twoHundredWord  = "المائتان"
	afterHundred    = "بعد المائة"
	afterTwoHundred = "بعد المائتين"
)

// ordinalTable maps an ordinal phrase to its decimal numeral.
var ordinalTable = buildOrdinalTable()

func buildOrdinalTable() map[string]int {
	t := make(map[string]int, 140)

	base := make(map[int]string, 100)

	// 1–10
	for i, w := range ordinalUnits {
		base[i+1] = w
	}
	// 11–19
	for i, w := range compoundUnits {
		base[11+i] = w + " عشرة"
	}
	// 20–90 and compounds 21–99
	for i, tw := range tensWords {
		tens := 20 + 10*i
		base[tens] = "ال" + tw
		for u, uw := range compoundUnits {
			base[tens+u+1] = uw + " وال" + tw
		}
	}

	for n, phrase := range base {
		t[phrase] = n
	}

	// 100, 101–109
	t[hundredWord] = 100
	for i, w := range ordinalUnits[:9] {
		t[w+" "+afterHundred] = 101 + i
	}

	// 200, 201–209
	t[twoHundredWord] = 200
	for i, w := range ordinalUnits[:9] {
		t[w+" "+afterTwoHundred] = 201 + i
	}

	return t
}

// LookupOrdinal returns the decimal numeral for phrase, normalising interior
// whitespace first.  ok is false when the phrase is absent from the table —
// the caller decides whether to pass the raw phrase through (see DESIGN.md).
func LookupOrdinal(phrase string) (int, bool) {
	n, ok := ordinalTable[strings.Join(strings.Fields(phrase), " ")]
	return n, ok
}

// OrdinalTableSize reports the number of phrases the table carries.
func OrdinalTableSize() int { return len(ordinalTable) }

package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizan-ai/Mizan-Intelligence/internal/intelligence/arabictext"
)

func TestExtract_DictionaryTermFound(t *testing.T) {
	e := New(nil, 0)
	kws := e.Extract("يلتزم الطرفان بتنفيذ بنود عقد العمل")
	assert.Contains(t, kws, "عقد")
}

func TestExtract_SubstringMatch(t *testing.T) {
	e := New(nil, 0)
	// "يحق" contains the dictionary term "حق".
	kws := e.Extract("يحق للعامل الحصول على إجازة سنوية")
	assert.Contains(t, kws, "حق")
	assert.Contains(t, kws, "عامل")
	assert.Contains(t, kws, "إجازة")
}

func TestExtract_DictionaryOrderPreserved(t *testing.T) {
	e := New(nil, 0)
	kws := e.Extract("عقوبة الإخلال بالعقد غرامة يقدرها القاضي")
	// "عقد" precedes "عقوبة" in the dictionary, so it must appear first even
	// though "عقوبة" occurs earlier in the content.
	idxContract, idxPenalty := -1, -1
	for i, kw := range kws {
		switch kw {
		case "عقد":
			idxContract = i
		case "عقوبة":
			idxPenalty = i
		}
	}
	assert.GreaterOrEqual(t, idxContract, 0)
	assert.GreaterOrEqual(t, idxPenalty, 0)
	assert.Less(t, idxContract, idxPenalty)
}

func TestExtract_GenericKeywordsAppendedWithoutDuplicates(t *testing.T) {
	e := New(arabictext.New(), 10)
	kws := e.Extract("التعويض واجب والتعويض مستحق في حالة الضرر")
	seen := map[string]int{}
	for _, kw := range kws {
		seen[kw]++
		assert.Equal(t, 1, seen[kw], "duplicate keyword %q", kw)
	}
	assert.Contains(t, kws, "تعويض")
}

func TestExtract_MaxCap(t *testing.T) {
	e := New(nil, 3)
	kws := e.Extract("حق عقد عقوبة محكمة دعوى حكم تعويض ملكية")
	assert.Len(t, kws, 3)
}

func TestExtract_EmptyContent(t *testing.T) {
	e := New(nil, 0)
	assert.Empty(t, e.Extract(""))
}

func TestExtract_NoMatches(t *testing.T) {
	e := New(nil, 0)
	// No dictionary terms; generic keywords still apply to long tokens only.
	kws := e.Extract("ab cd")
	assert.Empty(t, kws)
}

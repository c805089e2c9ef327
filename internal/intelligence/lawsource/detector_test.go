package lawsource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-ai/Mizan-Intelligence/pkg/types/legaldoc"
)

func TestDetect_EmptyInputReturnsDefaults(t *testing.T) {
	d := New(0, nil)
	meta := d.Detect("")

	assert.Equal(t, legaldoc.DefaultName, meta.Name)
	assert.Equal(t, legaldoc.DefaultType, meta.Type)
	assert.Equal(t, legaldoc.DefaultJurisdiction, meta.Jurisdiction)
	assert.Nil(t, meta.IssuingAuthority)
	assert.Nil(t, meta.IssueDate)
	assert.Nil(t, meta.Description)
}

func TestDetect_NameFromLawPattern(t *testing.T) {
	d := New(0, nil)
	meta := d.Detect("نظام العمل رقم م/51")
	assert.Equal(t, "نظام العمل", meta.Name)
}

func TestDetect_NamePatternPriority(t *testing.T) {
	d := New(0, nil)
	// Both a نظام and a لائحة appear; the نظام pattern has higher priority
	// regardless of position in the text.
	meta := d.Detect("لائحة المكاتب لسنة 1440 ويشار إلى نظام العمل رقم م/51")
	assert.Equal(t, "نظام العمل", meta.Name)
}

func TestDetect_TypeIndicators(t *testing.T) {
	d := New(0, nil)

	cases := []struct {
		text string
		want legaldoc.LawSourceType
	}{
		{"مرسوم ملكي رقم م/51", legaldoc.TypeDecree},
		{"لائحة تنفيذية صادرة", legaldoc.TypeRegulation},
		{"قرار وزاري بشأن التنفيذ", legaldoc.TypeDirective},
		{"نظام العمل رقم م/51", legaldoc.TypeLaw},
		{"نص بلا مؤشر", legaldoc.DefaultType},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, d.Detect(tc.text).Type, "text: %s", tc.text)
	}
}

func TestDetect_IssuingAuthority(t *testing.T) {
	d := New(0, nil)
	meta := d.Detect("صدر عن وزارة العدل.")
	require.NotNil(t, meta.IssuingAuthority)
	assert.Equal(t, "وزارة العدل", *meta.IssuingAuthority)
}

func TestDetect_YearSynthesizedAsJanuaryFirst(t *testing.T) {
	d := New(0, nil)
	meta := d.Detect("نظام العمل لعام 1426")
	require.NotNil(t, meta.IssueDate)
	assert.Equal(t, time.Date(1426, time.January, 1, 0, 0, 0, 0, time.UTC), *meta.IssueDate)
}

func TestDetect_DescriptionIsFirstSentence(t *testing.T) {
	d := New(0, nil)
	meta := d.Detect("نظام المعاملات المدنية. يهدف هذا النظام إلى تنظيم المعاملات")
	require.NotNil(t, meta.Description)
	assert.Equal(t, "نظام المعاملات المدنية", *meta.Description)
}

func TestDetect_DescriptionWindowBoundsScan(t *testing.T) {
	d := New(20, nil)
	meta := d.Detect("نص تمهيدي طويل جداً بلا نقطة حتى ما بعد النافذة. ثم جملة")
	require.NotNil(t, meta.Description)
	// The sentence terminator lies beyond the 20-rune window, so the
	// description is the truncated window itself.
	assert.LessOrEqual(t, len([]rune(*meta.Description)), 20)
}

func TestMerge_ProvidedWins(t *testing.T) {
	detected := legaldoc.NewDefaultLawSource()
	detected.Name = "نظام العمل"

	name := "نظام مخصص"
	merged := Merge(detected, &legaldoc.LawSourceOverrides{Name: &name})
	assert.Equal(t, "نظام مخصص", merged.Name)
}

func TestMerge_NilFieldKeepsDetected(t *testing.T) {
	detected := legaldoc.NewDefaultLawSource()
	detected.Name = "نظام العمل"

	merged := Merge(detected, &legaldoc.LawSourceOverrides{Name: nil})
	assert.Equal(t, "نظام العمل", merged.Name)
}

func TestMerge_NilOverrides(t *testing.T) {
	detected := legaldoc.NewDefaultLawSource()
	assert.Equal(t, detected, Merge(detected, nil))
}

func TestMerge_AllFields(t *testing.T) {
	detected := legaldoc.NewDefaultLawSource()

	kind := legaldoc.TypeRegulation
	jurisdiction := "دولة الكويت"
	authority := "وزارة التجارة"
	issue := time.Date(2020, time.March, 5, 0, 0, 0, 0, time.UTC)
	url := "https://laws.example.gov/123"

	merged := Merge(detected, &legaldoc.LawSourceOverrides{
		Type:             &kind,
		Jurisdiction:     &jurisdiction,
		IssuingAuthority: &authority,
		IssueDate:        &issue,
		SourceURL:        &url,
	})

	assert.Equal(t, legaldoc.TypeRegulation, merged.Type)
	assert.Equal(t, "دولة الكويت", merged.Jurisdiction)
	assert.Equal(t, "وزارة التجارة", *merged.IssuingAuthority)
	assert.Equal(t, issue, *merged.IssueDate)
	assert.Equal(t, url, *merged.SourceURL)
	// Name was not overridden; the detected default survives.
	assert.Equal(t, legaldoc.DefaultName, merged.Name)
}

package document

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-ai/Mizan-Intelligence/internal/config"
	pkgerrors "github.com/mizan-ai/Mizan-Intelligence/pkg/errors"
	"github.com/mizan-ai/Mizan-Intelligence/pkg/types/legaldoc"
)

const sampleText = "نظام العمل الصادر لعام 1426. " +
	"المادة الأولى: يُسمى هذا النظام نظام العمل ويعمل به بعد نشره. " +
	"المادة الثانية: يقصد بالألفاظ الآتية المعاني المبينة أمامها."

type stubExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (s stubExtractor) ExtractText(_ context.Context, path string) (string, error) {
	if err, ok := s.errs[path]; ok {
		return "", err
	}
	return s.texts[path], nil
}

type panicExtractor struct{}

func (panicExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	panic("extractor blew up")
}

func newTestService(t *testing.T, texts map[string]string, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{WithTextExtractor(stubExtractor{texts: texts})}, opts...)
	return New(nil, nil, nil, opts...)
}

func TestProcess_FullPipeline(t *testing.T) {
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t,
		map[string]string{"law.pdf": sampleText},
		WithClock(func() time.Time { return fixed }),
	)

	res, err := svc.Process(context.Background(), "law.pdf", nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "نظام العمل الصادر", res.LawSource.Name)
	assert.Equal(t, legaldoc.TypeLaw, res.LawSource.Type)
	assert.Equal(t, legaldoc.DefaultJurisdiction, res.LawSource.Jurisdiction)
	require.NotNil(t, res.LawSource.IssueDate)
	assert.Equal(t, 1426, res.LawSource.IssueDate.Year())

	require.Len(t, res.Articles, 2)
	assert.Equal(t, "المادة 1", res.Articles[0].ArticleNumber)
	assert.Equal(t, "المادة 2", res.Articles[1].ArticleNumber)

	wantChars := 0
	for _, a := range res.Articles {
		wantChars += len([]rune(a.Content))
	}
	assert.Equal(t, 2, res.Statistics.TotalArticles)
	assert.Equal(t, wantChars, res.Statistics.TotalCharacters)
	assert.Equal(t, "law.pdf", res.Statistics.FilePath)
	assert.Equal(t, fixed, res.Statistics.ProcessingTime)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), res.Statistics.DocumentHash)
}

func TestProcess_HashIsDeterministic(t *testing.T) {
	svc := newTestService(t, map[string]string{"a.pdf": sampleText, "b.pdf": sampleText})

	first, err := svc.Process(context.Background(), "a.pdf", nil)
	require.NoError(t, err)
	second, err := svc.Process(context.Background(), "b.pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, first.Statistics.DocumentHash, second.Statistics.DocumentHash)
}

func TestProcess_OverridesWinOverDetection(t *testing.T) {
	svc := newTestService(t, map[string]string{"law.pdf": sampleText})

	name := "نظام مخصص"
	kind := legaldoc.TypeRegulation
	res, err := svc.Process(context.Background(), "law.pdf", &legaldoc.LawSourceOverrides{
		Name: &name,
		Type: &kind,
	})
	require.NoError(t, err)
	assert.Equal(t, "نظام مخصص", res.LawSource.Name)
	assert.Equal(t, legaldoc.TypeRegulation, res.LawSource.Type)
	// Fields without an override keep the detected values.
	require.NotNil(t, res.LawSource.IssueDate)
	assert.Equal(t, 1426, res.LawSource.IssueDate.Year())
}

func TestProcess_EmptyText(t *testing.T) {
	svc := newTestService(t, map[string]string{"blank.pdf": "   \n\t  "})

	res, err := svc.Process(context.Background(), "blank.pdf", nil)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeEmptyText))
	assert.Equal(t, "blank.pdf", pkgerrors.DocumentPath(err))
}

func TestProcess_UnsupportedFormat(t *testing.T) {
	// Default wiring uses the real extension-dispatched extractor.
	svc := New(nil, nil, nil)

	res, err := svc.Process(context.Background(), "table.xlsx", nil)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeExtraction))
	assert.ErrorContains(t, err, ".xlsx")
	assert.Equal(t, "table.xlsx", pkgerrors.DocumentPath(err))
}

func TestProcess_PanicBecomesUnexpectedError(t *testing.T) {
	svc := New(nil, nil, nil, WithTextExtractor(panicExtractor{}))

	res, err := svc.Process(context.Background(), "law.pdf", nil)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnexpected))
	assert.Equal(t, "law.pdf", pkgerrors.DocumentPath(err))
	assert.ErrorContains(t, err, "extractor blew up")
}

func TestProcess_TruncatesOversizedText(t *testing.T) {
	cfg := config.NewDefault()
	// 30 runes: the header survives, both article markers are cut off.
	cfg.Processing.MaxTextLength = 30

	svc := New(cfg, nil, nil, WithTextExtractor(stubExtractor{
		texts: map[string]string{"big.pdf": sampleText},
	}))

	res, err := svc.Process(context.Background(), "big.pdf", nil)
	require.NoError(t, err)
	assert.Empty(t, res.Articles)
	assert.Equal(t, 0, res.Statistics.TotalArticles)
}

func TestProcessBatch_IsolatesFailures(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"one.pdf": sampleText,
		"two.pdf": sampleText,
		"bad.pdf": "",
	})

	batch := svc.ProcessBatch(context.Background(), []string{"one.pdf", "bad.pdf", "two.pdf"}, nil)
	require.NotNil(t, batch)

	assert.NoError(t, uuid.Validate(batch.JobID))
	assert.Equal(t, 3, batch.TotalFiles)
	assert.Equal(t, 2, batch.Successful)
	assert.Equal(t, 1, batch.Failed)
	require.Len(t, batch.Entries, 3)

	assert.Equal(t, "one.pdf", batch.Entries[0].FilePath)
	assert.True(t, batch.Entries[0].Success)
	require.NotNil(t, batch.Entries[0].Data)
	assert.Len(t, batch.Entries[0].Data.Articles, 2)

	assert.Equal(t, "bad.pdf", batch.Entries[1].FilePath)
	assert.False(t, batch.Entries[1].Success)
	assert.Nil(t, batch.Entries[1].Data)
	assert.NotEmpty(t, batch.Entries[1].Error)

	assert.True(t, batch.Entries[2].Success)
}

func TestProcessBatch_Empty(t *testing.T) {
	svc := newTestService(t, nil)

	batch := svc.ProcessBatch(context.Background(), nil, nil)
	require.NotNil(t, batch)
	assert.Equal(t, 0, batch.TotalFiles)
	assert.Empty(t, batch.Entries)
	assert.Equal(t, 0, batch.Successful)
	assert.Equal(t, 0, batch.Failed)
}

func TestProcessBatchConcurrent_ZeroConcurrencyConfig(t *testing.T) {
	// A Service built from an unvalidated zero-value config must still drain
	// the batch instead of deadlocking on a zero worker limit.
	svc := New(&config.Config{}, nil, nil, WithTextExtractor(stubExtractor{
		texts: map[string]string{"a.pdf": sampleText, "b.pdf": sampleText},
	}))

	done := make(chan *legaldoc.BatchResult, 1)
	go func() {
		done <- svc.ProcessBatchConcurrent(context.Background(), []string{"a.pdf", "b.pdf"}, nil)
	}()

	select {
	case batch := <-done:
		assert.Equal(t, 2, batch.Successful)
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent batch never completed")
	}
}

func TestProcessBatchConcurrent_PreservesInputOrder(t *testing.T) {
	texts := map[string]string{}
	paths := make([]string, 0, 12)
	for _, p := range []string{
		"a.pdf", "b.pdf", "c.pdf", "d.pdf", "e.pdf", "f.pdf",
		"g.pdf", "h.pdf", "i.pdf", "j.pdf", "k.pdf", "l.pdf",
	} {
		texts[p] = sampleText
		paths = append(paths, p)
	}
	texts["f.pdf"] = "" // one failure in the middle

	svc := newTestService(t, texts)
	batch := svc.ProcessBatchConcurrent(context.Background(), paths, nil)

	require.Len(t, batch.Entries, len(paths))
	for i, p := range paths {
		assert.Equal(t, p, batch.Entries[i].FilePath, "entry %d out of order", i)
	}
	assert.Equal(t, len(paths)-1, batch.Successful)
	assert.Equal(t, 1, batch.Failed)
	assert.False(t, batch.Entries[5].Success)
}

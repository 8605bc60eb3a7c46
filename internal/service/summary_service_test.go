package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/domain"
	"textsum/internal/segmenter"
	"textsum/internal/service"
	"textsum/internal/summarizer"
)

const article = "Solar panels convert sunlight into electricity. " +
	"Panels installed on roofs reduce electricity bills. " +
	"Many cities now offer grants for solar panels. " +
	"The grants cover up to 40 percent of the cost. " +
	"Critics argue grants distort the market. " +
	"Therefore, solar adoption keeps growing in cities."

func newService(t *testing.T, notice service.NoticeFunc) *service.SummaryServiceImpl {
	t.Helper()
	engine := summarizer.NewFrequencySummarizer(segmenter.NewRuleDetector(), summarizer.RichPreset())
	return service.NewSummaryService(engine, summarizer.DefaultOptions(), 2, notice, nil)
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDocuments_GlobsTxtOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Alpha.")
	writeFile(t, dir, "b.TXT", "Beta.")
	writeFile(t, dir, "c.md", "# skipped")

	docs, err := newService(t, nil).LoadDocuments([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	for _, d := range docs {
		assert.Len(t, d.ID, 16)
		assert.NotEmpty(t, d.Content)
	}
}

func TestLoadDocuments_NoMatches(t *testing.T) {
	_, err := newService(t, nil).LoadDocuments([]string{filepath.Join(t.TempDir(), "*.txt")})
	assert.ErrorIs(t, err, domain.ErrNoDocuments)
}

func TestSummarizeFiles_KeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"1.txt", "2.txt", "3.txt", "4.txt", "5.txt"} {
		paths = append(paths, writeFile(t, dir, name, article))
	}
	reports, err := newService(t, nil).SummarizeFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, reports, len(paths))
	for i, r := range reports {
		assert.Equal(t, paths[i], r.Path)
		require.NotNil(t, r.Result)
		assert.Equal(t, 6, r.Result.OriginalSentenceCount)
		assert.Equal(t, 3, r.Result.SummarySentenceCount)
		assert.Equal(t, reports[0].Result, r.Result)
	}
}

func TestSummarizeDocuments_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	docs := []domain.Document{service.NewDocument("a.txt", article)}
	_, err := newService(t, nil).SummarizeDocuments(ctx, docs)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingDetector struct{}

func (failingDetector) Name() string { return "failing" }
func (failingDetector) Detect(string) ([]domain.Sentence, error) {
	return nil, errors.New("resource unavailable")
}

func TestSummarizeDocument_SegmentationFailure(t *testing.T) {
	engine := summarizer.NewFrequencySummarizer(failingDetector{}, summarizer.RichPreset())
	svc := service.NewSummaryService(engine, summarizer.DefaultOptions(), 1, nil, nil)
	_, err := svc.SummarizeDocument(service.NewDocument("x.txt", article), svc.Options())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSegmentation)
	assert.Contains(t, err.Error(), "x.txt")
}

func TestCoffeeBreak(t *testing.T) {
	var calls atomic.Int32
	notice := service.CoffeeBreak(func(n int) int {
		calls.Add(1)
		return n - 1
	})
	svc := newService(t, notice)

	short, err := svc.SummarizeDocument(service.NewDocument("short.txt", article), svc.Options())
	require.NoError(t, err)
	assert.Empty(t, short.Notice)

	long := strings.Repeat(article+" ", 5)
	r, err := svc.SummarizeDocument(service.NewDocument("long.txt", long), svc.Options())
	require.NoError(t, err)
	assert.NotEmpty(t, r.Notice)
	assert.Equal(t, int32(1), calls.Load())
	assert.NotContains(t, r.Result.Summary, r.Notice)
}

func TestRank(t *testing.T) {
	svc := newService(t, nil)
	scored, err := svc.Rank(service.NewDocument("a.txt", article))
	require.NoError(t, err)
	assert.Len(t, scored, 6)
}

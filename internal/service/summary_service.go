package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"textsum/internal/domain"
	"textsum/internal/logging"
	"textsum/internal/summarizer"
)

// Engine is the summarization core the service drives.
type Engine interface {
	Summarize(text string, opts summarizer.Options) (*domain.SummaryResult, error)
	Rank(text string) ([]domain.ScoredSentence, error)
}

// Report is the per-document outcome handed to renderers.
type Report struct {
	ID     string                `json:"id" yaml:"id"`
	Path   string                `json:"path" yaml:"path"`
	Notice string                `json:"notice,omitempty" yaml:"notice,omitempty"`
	Result *domain.SummaryResult `json:"result" yaml:"result"`
}

type SummaryServiceImpl struct {
	engine      Engine
	opts        summarizer.Options
	concurrency int
	notice      NoticeFunc
	logger      *logging.Logger
}

func NewSummaryService(engine Engine, opts summarizer.Options, concurrency int, notice NoticeFunc, logger *logging.Logger) *SummaryServiceImpl {
	if concurrency <= 0 {
		concurrency = 1
	}
	if notice == nil {
		notice = NoNotice
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &SummaryServiceImpl{engine: engine, opts: opts, concurrency: concurrency, notice: notice, logger: logger}
}

// Options returns the options applied to every document.
func (s *SummaryServiceImpl) Options() summarizer.Options { return s.opts }

// LoadDocuments expands globs and reads every .txt file they match.
func (s *SummaryServiceImpl) LoadDocuments(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				s.logger.Debug("skipping %s: not a .txt file", m)
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			documents = append(documents, NewDocument(m, string(data)))
		}
	}
	if len(documents) == 0 {
		return nil, domain.ErrNoDocuments
	}
	return documents, nil
}

// NewDocument wraps content read from path.
func NewDocument(path, content string) domain.Document {
	return domain.Document{ID: hashString(path), Path: path, Content: content}
}

// SummarizeFiles loads and summarizes the files matched by paths.
func (s *SummaryServiceImpl) SummarizeFiles(ctx context.Context, paths []string) ([]Report, error) {
	docs, err := s.LoadDocuments(paths)
	if err != nil {
		return nil, err
	}
	return s.SummarizeDocuments(ctx, docs)
}

// SummarizeDocuments summarizes docs in parallel. Reports keep the order
// of docs. The first failure cancels documents not yet started.
func (s *SummaryServiceImpl) SummarizeDocuments(ctx context.Context, docs []domain.Document) ([]Report, error) {
	reports := make([]Report, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.SummarizeDocument(doc, s.opts)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// SummarizeDocument runs one document with explicit options.
func (s *SummaryServiceImpl) SummarizeDocument(doc domain.Document, opts summarizer.Options) (Report, error) {
	res, err := s.engine.Summarize(doc.Content, opts)
	if err != nil {
		s.logger.Error("summarize %s: %v", doc.Path, err)
		return Report{}, fmt.Errorf("summarize %s: %w", doc.Path, err)
	}
	s.logger.Debug("summarized %s: %d of %d sentences", doc.Path, res.SummarySentenceCount, res.OriginalSentenceCount)
	return Report{ID: doc.ID, Path: doc.Path, Notice: s.notice(doc, res), Result: res}, nil
}

// Rank exposes per-sentence scores for display.
func (s *SummaryServiceImpl) Rank(doc domain.Document) ([]domain.ScoredSentence, error) {
	return s.engine.Rank(doc.Content)
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}

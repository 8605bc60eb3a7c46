package summarizer

import (
	"errors"
	"fmt"
	"math"

	"textsum/internal/domain"
)

// Options controls a single summarization call.
type Options struct {
	// Ratio is the fraction of sentences to keep, in (0, 1].
	Ratio float64
	// MinSentences is the lower bound on the number of kept sentences.
	MinSentences int
	// ConciseThreshold is the sentence count at or below which the text
	// is returned unchanged.
	ConciseThreshold int
	// Separator joins the kept sentences. Empty means a single space.
	Separator string
}

// DefaultOptions returns ratio 0.3, at least 3 sentences and passthrough
// for texts of 3 sentences or fewer.
func DefaultOptions() Options {
	return Options{Ratio: 0.3, MinSentences: 3, ConciseThreshold: 3, Separator: " "}
}

// Validate rejects out-of-range parameters.
func (o Options) Validate() error {
	if math.IsNaN(o.Ratio) || o.Ratio <= 0 || o.Ratio > 1 {
		return fmt.Errorf("%w: ratio must be in (0, 1], got %v", domain.ErrInvalidParameter, o.Ratio)
	}
	if o.MinSentences < 1 {
		return fmt.Errorf("%w: min sentences must be at least 1, got %d", domain.ErrInvalidParameter, o.MinSentences)
	}
	if o.ConciseThreshold < 0 {
		return fmt.Errorf("%w: concise threshold must not be negative, got %d", domain.ErrInvalidParameter, o.ConciseThreshold)
	}
	return nil
}

func (o Options) separator() string {
	if o.Separator == "" {
		return " "
	}
	return o.Separator
}

// Preset bundles a stop list, bonus switches and default options.
type Preset struct {
	Name      string
	StopWords StopWords
	Bonuses   Bonuses
	Options   Options
}

// RichPreset enables every bonus and the full stop list.
func RichPreset() Preset {
	return Preset{Name: "rich", StopWords: defaultStopWords, Bonuses: AllBonuses(), Options: DefaultOptions()}
}

// BasicPreset scores on term frequency alone and keeps at least one sentence.
func BasicPreset() Preset {
	return Preset{
		Name:      "basic",
		StopWords: basicStopWords,
		Options:   Options{Ratio: 0.3, MinSentences: 1, ConciseThreshold: 2, Separator: " "},
	}
}

// PresetByName resolves a preset. An empty name selects "rich".
func PresetByName(name string) (Preset, error) {
	switch name {
	case "rich", "":
		return RichPreset(), nil
	case "basic":
		return BasicPreset(), nil
	default:
		return Preset{}, fmt.Errorf("%w: unknown preset %q", domain.ErrInvalidParameter, name)
	}
}

// FrequencySummarizer ranks sentences by significant-word frequency and
// structural bonuses. It holds no per-call state and is safe for
// concurrent use.
type FrequencySummarizer struct {
	detector domain.SentenceDetector
	stop     StopWords
	bonuses  Bonuses
}

// NewFrequencySummarizer creates a summarizer using detector for sentence
// boundaries and the stop list and bonuses of preset.
func NewFrequencySummarizer(detector domain.SentenceDetector, preset Preset) *FrequencySummarizer {
	return &FrequencySummarizer{detector: detector, stop: preset.StopWords, bonuses: preset.Bonuses}
}

// Summarize returns the highest scoring sentences of text in reading order.
func (s *FrequencySummarizer) Summarize(text string, opts Options) (*domain.SummaryResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sentences, err := s.detect(text)
	if err != nil {
		return nil, err
	}
	n := len(sentences)
	if n <= opts.ConciseThreshold || n <= opts.MinSentences {
		return passthrough(text, sentences), nil
	}
	scored := s.score(sentences)
	selected := Select(scored, TargetCount(n, opts.Ratio, opts.MinSentences))
	return assemble(text, n, selected, opts.separator()), nil
}

// Rank scores every sentence of text without selecting any. The result
// is in document order.
func (s *FrequencySummarizer) Rank(text string) ([]domain.ScoredSentence, error) {
	sentences, err := s.detect(text)
	if err != nil {
		return nil, err
	}
	return s.score(sentences), nil
}

func (s *FrequencySummarizer) detect(text string) ([]domain.Sentence, error) {
	sentences, err := s.detector.Detect(text)
	if errors.Is(err, domain.ErrSegmentation) {
		return nil, fmt.Errorf("%s detector: %w", s.detector.Name(), err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s detector: %v", domain.ErrSegmentation, s.detector.Name(), err)
	}
	return sentences, nil
}

func (s *FrequencySummarizer) score(sentences []domain.Sentence) []domain.ScoredSentence {
	freq := BuildFrequencyTable(sentences, s.stop)
	return ScoreSentences(sentences, freq, s.stop, s.bonuses)
}

package segmenter

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"textsum/internal/domain"
)

// PunktDetector wraps the pretrained English Punkt model.
type PunktDetector struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktDetector loads the embedded English training data.
func NewPunktDetector() (*PunktDetector, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: load punkt model: %v", domain.ErrSegmentation, err)
	}
	return &PunktDetector{tokenizer: t}, nil
}

// Name returns the identifier of this detector.
func (d *PunktDetector) Name() string { return "punkt" }

// Detect maps every Punkt sentence back onto the input so that offsets
// always refer to the caller's text.
func (d *PunktDetector) Detect(text string) ([]domain.Sentence, error) {
	var out []domain.Sentence
	cursor := 0
	for _, s := range d.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		idx := strings.Index(text[cursor:], trimmed)
		if idx < 0 {
			return nil, fmt.Errorf("%w: sentence %d not found in input", domain.ErrSegmentation, len(out))
		}
		start := cursor + idx
		cursor = start + len(trimmed)
		out = append(out, domain.Sentence{
			Text:     trimmed,
			Position: len(out),
			Start:    start,
			End:      cursor,
		})
	}
	return out, nil
}

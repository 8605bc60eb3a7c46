package summarizer

import (
	"strings"

	"textsum/internal/domain"
)

const (
	digitBonus     = 1.2
	quoteBonus     = 1.1
	discourseBonus = 1.3
)

var discourseMarkers = []string{"in conclusion", "therefore", "finally", "importantly"}

// Bonuses switches the structural score multipliers on or off.
type Bonuses struct {
	Digit     bool
	Quote     bool
	Discourse bool
}

// AllBonuses enables every multiplier.
func AllBonuses() Bonuses { return Bonuses{Digit: true, Quote: true, Discourse: true} }

// Multiplier returns the product of the bonuses that apply to text.
func (b Bonuses) Multiplier(text string) float64 {
	m := 1.0
	if b.Digit && strings.ContainsAny(text, "0123456789") {
		m *= digitBonus
	}
	if b.Quote && strings.Contains(text, `"`) {
		m *= quoteBonus
	}
	if b.Discourse && hasDiscourseMarker(text) {
		m *= discourseBonus
	}
	return m
}

func hasDiscourseMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range discourseMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// BaseScore sums the frequencies of the significant tokens of text and
// divides by the total token count.
func BaseScore(text string, freq FrequencyTable, stop StopWords) float64 {
	raw := 0
	total := 0
	for tok := range Tokens(text) {
		total++
		if stop.IsSignificant(tok) {
			raw += freq[tok]
		}
	}
	return float64(raw) / float64(max(1, total))
}

// ScoreSentences scores every sentence against freq. The returned slice
// is in document order.
func ScoreSentences(sentences []domain.Sentence, freq FrequencyTable, stop StopWords, bonuses Bonuses) []domain.ScoredSentence {
	scored := make([]domain.ScoredSentence, len(sentences))
	for i, sent := range sentences {
		scored[i] = domain.ScoredSentence{
			Sentence: sent,
			Score:    BaseScore(sent.Text, freq, stop) * bonuses.Multiplier(sent.Text),
		}
	}
	return scored
}

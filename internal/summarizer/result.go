package summarizer

import (
	"strings"

	"textsum/internal/domain"
)

const (
	msgGenerated = "Summary generated successfully."
	msgConcise   = "Text is already concise."
	msgEmpty     = "Nothing to summarize."
)

// WordCount counts runs of non-whitespace characters.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func assemble(text string, n int, selected []domain.Sentence, sep string) *domain.SummaryResult {
	parts := make([]string, len(selected))
	positions := make([]int, len(selected))
	for i, sent := range selected {
		parts[i] = sent.Text
		positions[i] = sent.Position
	}
	summary := strings.Join(parts, sep)
	origWords := WordCount(text)
	sumWords := WordCount(summary)
	ratio := 0.0
	if n > 0 {
		ratio = 1 - float64(len(selected))/float64(n)
	}
	return &domain.SummaryResult{
		Summary:               summary,
		OriginalSentenceCount: n,
		SummarySentenceCount:  len(selected),
		OriginalWordCount:     origWords,
		SummaryWordCount:      sumWords,
		CompressionRatio:      ratio,
		WordCountSaved:        origWords - sumWords,
		Selected:              positions,
		Message:               msgGenerated,
	}
}

// passthrough returns text as its own summary.
func passthrough(text string, sentences []domain.Sentence) *domain.SummaryResult {
	positions := make([]int, len(sentences))
	for i, sent := range sentences {
		positions[i] = sent.Position
	}
	words := WordCount(text)
	msg := msgConcise
	if len(sentences) == 0 {
		msg = msgEmpty
	}
	return &domain.SummaryResult{
		Summary:               text,
		OriginalSentenceCount: len(sentences),
		SummarySentenceCount:  len(sentences),
		OriginalWordCount:     words,
		SummaryWordCount:      words,
		Selected:              positions,
		Unmodified:            true,
		Message:               msg,
	}
}

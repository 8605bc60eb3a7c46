package segmenter

import (
	"regexp"
	"strings"
	"unicode"

	"textsum/internal/domain"
)

// RuleDetector splits text on runs of terminal punctuation.
// Text after the last terminator becomes a final sentence.
type RuleDetector struct {
	splitter *regexp.Regexp
}

func NewRuleDetector() *RuleDetector {
	return &RuleDetector{
		splitter: regexp.MustCompile(`[^.!?]*[.!?]+["')\]]*`),
	}
}

// Name returns the identifier of this detector.
func (d *RuleDetector) Name() string { return "rule" }

// Detect never fails; whitespace-only input yields no sentences.
func (d *RuleDetector) Detect(text string) ([]domain.Sentence, error) {
	var out []domain.Sentence
	start := 0
	for _, loc := range d.splitter.FindAllStringIndex(text, -1) {
		if insideNumber(text, loc[1]) {
			continue
		}
		out = appendSpan(out, text, start, loc[1])
		start = loc[1]
	}
	if start < len(text) {
		out = appendSpan(out, text, start, len(text))
	}
	return out, nil
}

// insideNumber reports whether a match ending at end stopped on a
// decimal point, as in "3.5".
func insideNumber(text string, end int) bool {
	return end >= 2 && end < len(text) &&
		text[end-1] == '.' && isDigit(text[end-2]) && isDigit(text[end])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// appendSpan trims whitespace from text[start:end] and appends it as the
// next sentence. Blank spans are skipped so positions stay dense.
func appendSpan(out []domain.Sentence, text string, start, end int) []domain.Sentence {
	span := text[start:end]
	lead := len(span) - len(strings.TrimLeftFunc(span, unicode.IsSpace))
	trimmed := strings.TrimSpace(span)
	if trimmed == "" {
		return out
	}
	start += lead
	return append(out, domain.Sentence{
		Text:     trimmed,
		Position: len(out),
		Start:    start,
		End:      start + len(trimmed),
	})
}

package summarizer

import (
	"iter"
	"strings"
)

// Tokens yields the case-folded words of text. Word characters are ASCII
// letters, digits and the apostrophe; everything else separates words.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i < len(text); i++ {
			if isWordByte(text[i]) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(strings.ToLower(text[start:i])) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(strings.ToLower(text[start:]))
		}
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '\''
}

// StopWords is an immutable set of words ignored when counting frequencies.
type StopWords struct {
	words map[string]struct{}
}

func NewStopWords(words ...string) StopWords {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = struct{}{}
	}
	return StopWords{words: m}
}

// Contains reports whether tok is in the set.
func (s StopWords) Contains(tok string) bool {
	_, ok := s.words[tok]
	return ok
}

// IsSignificant reports whether tok is longer than two characters and not
// a stop word.
func (s StopWords) IsSignificant(tok string) bool {
	return len(tok) > 2 && !s.Contains(tok)
}

// Len returns the number of stop words.
func (s StopWords) Len() int { return len(s.words) }

var (
	defaultStopWords = NewStopWords(
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "is", "are", "was", "were",
	)
	basicStopWords = NewStopWords(
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
	)
)

// DefaultStopWords returns the shared default stop list.
func DefaultStopWords() StopWords { return defaultStopWords }

// IsSignificant checks tok against the default stop list.
func IsSignificant(tok string) bool { return defaultStopWords.IsSignificant(tok) }

package service

import (
	"math/rand/v2"

	"textsum/internal/domain"
)

// NoticeFunc produces an optional presentation note for a finished
// summary. It never influences scoring or selection.
type NoticeFunc func(doc domain.Document, res *domain.SummaryResult) string

// NoNotice always returns an empty note.
func NoNotice(domain.Document, *domain.SummaryResult) string { return "" }

const (
	longTextChars     = 1000
	longTextSentences = 10
)

var coffeeBreakNotices = []string{
	"That was a lot of words. Time for a coffee break!",
	"Reading all that calls for an espresso.",
	"Long text detected. Brewing a fresh pot.",
	"Summary done. Coffee refill recommended.",
	"Too many sentences, not enough caffeine.",
}

// CoffeeBreak returns a random coffee-break note for long documents.
// pick chooses an index in [0, n); nil uses math/rand/v2.
func CoffeeBreak(pick func(n int) int) NoticeFunc {
	if pick == nil {
		pick = rand.IntN
	}
	return func(doc domain.Document, res *domain.SummaryResult) string {
		if len(doc.Content) <= longTextChars && res.OriginalSentenceCount <= longTextSentences {
			return ""
		}
		return coffeeBreakNotices[pick(len(coffeeBreakNotices))]
	}
}

package summarizer

import (
	"math"
	"sort"

	"textsum/internal/domain"
)

// TargetCount returns max(minSentences, round(n*ratio)) clamped to n.
func TargetCount(n int, ratio float64, minSentences int) int {
	k := max(minSentences, int(math.Round(float64(n)*ratio)))
	return min(k, n)
}

// Select keeps the k highest scoring sentences and returns them in
// document order. Equal scores go to the earlier sentence.
func Select(scored []domain.ScoredSentence, k int) []domain.Sentence {
	ranked := make([]domain.ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Sentence.Position < ranked[j].Sentence.Position
	})
	if k > len(ranked) {
		k = len(ranked)
	}
	if k < 0 {
		k = 0
	}
	selected := make([]domain.Sentence, k)
	for i := 0; i < k; i++ {
		selected[i] = ranked[i].Sentence
	}
	// Keep original order among selected
	sort.Slice(selected, func(i, j int) bool { return selected[i].Position < selected[j].Position })
	return selected
}

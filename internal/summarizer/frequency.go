package summarizer

import "textsum/internal/domain"

// FrequencyTable maps a significant token to its number of occurrences in
// the document. It is built once per call and only read afterwards.
type FrequencyTable map[string]int

// BuildFrequencyTable counts significant tokens across all sentences.
func BuildFrequencyTable(sentences []domain.Sentence, stop StopWords) FrequencyTable {
	freq := FrequencyTable{}
	for _, sent := range sentences {
		for tok := range Tokens(sent.Text) {
			if stop.IsSignificant(tok) {
				freq[tok]++
			}
		}
	}
	return freq
}

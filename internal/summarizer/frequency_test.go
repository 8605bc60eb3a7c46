package summarizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textsum/internal/domain"
	"textsum/internal/summarizer"
)

func sentencesOf(texts ...string) []domain.Sentence {
	out := make([]domain.Sentence, len(texts))
	for i, text := range texts {
		out[i] = domain.Sentence{Text: text, Position: i}
	}
	return out
}

func TestBuildFrequencyTable(t *testing.T) {
	sents := sentencesOf(
		"The cat sat on the mat.",
		"A cat is a cat!",
		"Dogs and cats.",
	)
	freq := summarizer.BuildFrequencyTable(sents, summarizer.DefaultStopWords())
	assert.Equal(t, summarizer.FrequencyTable{
		"cat":  3,
		"sat":  1,
		"mat":  1,
		"dogs": 1,
		"cats": 1,
	}, freq)
}

func TestBuildFrequencyTable_Deterministic(t *testing.T) {
	sents := sentencesOf("Alpha beta gamma.", "Beta gamma delta.", "Gamma!")
	a := summarizer.BuildFrequencyTable(sents, summarizer.DefaultStopWords())
	b := summarizer.BuildFrequencyTable(sents, summarizer.DefaultStopWords())
	assert.Equal(t, a, b)
	assert.Equal(t, 3, a["gamma"])
}

func TestBuildFrequencyTable_Empty(t *testing.T) {
	assert.Empty(t, summarizer.BuildFrequencyTable(nil, summarizer.DefaultStopWords()))
}

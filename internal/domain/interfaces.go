package domain

// Document represents a single text file loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Sentence is one span returned by a sentence-boundary detector.
// Text is trimmed of surrounding whitespace; Start and End are the byte
// offsets of Text inside the source document.
type Sentence struct {
	Text     string
	Position int
	Start    int
	End      int
}

// ScoredSentence pairs a sentence with its importance score.
type ScoredSentence struct {
	Sentence Sentence
	Score    float64
}

// SummaryResult is the outcome of one summarization call.
type SummaryResult struct {
	Summary               string  `json:"summary" yaml:"summary"`
	OriginalSentenceCount int     `json:"original_sentence_count" yaml:"original_sentence_count"`
	SummarySentenceCount  int     `json:"summary_sentence_count" yaml:"summary_sentence_count"`
	OriginalWordCount     int     `json:"original_word_count" yaml:"original_word_count"`
	SummaryWordCount      int     `json:"summary_word_count" yaml:"summary_word_count"`
	CompressionRatio      float64 `json:"compression_ratio" yaml:"compression_ratio"`
	WordCountSaved        int     `json:"word_count_saved" yaml:"word_count_saved"`
	// Selected holds the positions of the kept sentences in reading order.
	Selected   []int  `json:"selected" yaml:"selected"`
	Unmodified bool   `json:"unmodified" yaml:"unmodified"`
	Message    string `json:"message" yaml:"message"`
}

// SentenceDetector splits text into ordered, non-overlapping sentences.
// Implementations may be rule-based or model-based.
type SentenceDetector interface {
	Name() string
	Detect(text string) ([]Sentence, error)
}

package segmenter

import (
	"fmt"

	"textsum/internal/domain"
)

// New builds the detector registered under kind. An empty kind selects
// the rule-based detector.
func New(kind string) (domain.SentenceDetector, error) {
	switch kind {
	case "rule", "":
		return NewRuleDetector(), nil
	case "punkt":
		d, err := NewPunktDetector()
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown sentence detector: %s", kind)
	}
}

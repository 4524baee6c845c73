package services

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
	"github.com/shopmind/go-storefront/app/models"
)

// SentimentClassifier scores free text in [-1, 1] and labels it with
// one of the three sentiment labels.
type SentimentClassifier interface {
	Classify(text string) (score float64, label string, err error)
}

// VaderClassifier scores text with the VADER lexicon. It is stateless
// and safe for concurrent use.
type VaderClassifier struct{}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{}
}

func (c *VaderClassifier) Classify(text string) (float64, string, error) {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	score := sentitext.PolarityScore(parsed).Compound
	return score, LabelForScore(score), nil
}

// LabelForScore maps a compound score to its label. The 0.05 cutoffs
// are VADER's conventional thresholds.
func LabelForScore(score float64) string {
	switch {
	case score >= 0.05:
		return models.SentimentPositive
	case score <= -0.05:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

package style

import (
	"errors"
	"fmt"
	"math"

	"github.com/rcliao/companion/internal/text"
)

// LearningRate is the EMA weight given to each new observation.
const LearningRate = 0.1

// ErrInvalidProfile is returned when a persisted profile or history cannot
// be restored.
var ErrInvalidProfile = errors.New("invalid style profile")

// Profile is the smoothed communication style of one user. Numeric fields
// stay in [0, 1].
type Profile struct {
	VocabularyLevel          float64  `json:"vocabulary_level"`
	SentenceLengthPreference float64  `json:"sentence_length_preference"`
	HumorStyle               string   `json:"humor_style"`
	EmotionalExpressiveness  float64  `json:"emotional_expressiveness"`
	FormalityLevel           float64  `json:"formality_level"`
	QuestionFrequency        float64  `json:"question_frequency"`
	TopicInterests           []string `json:"topic_interests"`
}

// DefaultProfile returns the profile of a user with no history.
func DefaultProfile() Profile {
	return Profile{
		VocabularyLevel:          0.5,
		SentenceLengthPreference: 0.5,
		HumorStyle:               "unknown",
		EmotionalExpressiveness:  0.5,
		FormalityLevel:           0.5,
		QuestionFrequency:        0.5,
		TopicInterests:           []string{},
	}
}

// Validate checks that every numeric field is a finite value in [0, 1] and
// that topic interests hold no duplicates.
func (p Profile) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"vocabulary_level", p.VocabularyLevel},
		{"sentence_length_preference", p.SentenceLengthPreference},
		{"emotional_expressiveness", p.EmotionalExpressiveness},
		{"formality_level", p.FormalityLevel},
		{"question_frequency", p.QuestionFrequency},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidProfile, f.name, f.v)
		}
	}
	if p.HumorStyle == "" {
		return fmt.Errorf("%w: empty humor_style", ErrInvalidProfile)
	}
	seen := map[string]bool{}
	for _, t := range p.TopicInterests {
		if seen[t] {
			return fmt.Errorf("%w: duplicate topic %q", ErrInvalidProfile, t)
		}
		seen[t] = true
	}
	return nil
}

func (p Profile) clone() Profile {
	c := p
	c.TopicInterests = append([]string{}, p.TopicInterests...)
	return c
}

// update folds one observation into p.
func (p *Profile) update(a Analysis) {
	p.VocabularyLevel = ema(p.VocabularyLevel, a.VocabularyComplexity)
	p.SentenceLengthPreference = ema(p.SentenceLengthPreference, a.AvgSentenceLength/20)
	p.EmotionalExpressiveness = ema(p.EmotionalExpressiveness, a.Emotions.Total())

	formal, informal := a.Formality.FormalWords, a.Formality.InformalWords
	if formal+informal > 0 {
		p.FormalityLevel = ema(p.FormalityLevel, formal/(formal+informal))
	}

	p.QuestionFrequency = ema(p.QuestionFrequency, a.Questions.Ratio)

	for _, t := range a.Topics {
		if !contains(p.TopicInterests, t) {
			p.TopicInterests = append(p.TopicInterests, t)
		}
	}
}

func ema(old, observed float64) float64 {
	return (1-LearningRate)*old + LearningRate*text.Clamp01(observed)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

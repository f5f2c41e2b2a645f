// Package traits scores text against Big Five keyword lexicons.
//
// Scores are keyword ratios, not densities: a trait's score is
// high/(high+low) over the indicator hits in the text, so a single
// high-indicator word with no low-indicator words yields 1.0 regardless of
// message length. Traits with no hits score 0.5.
package traits

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rcliao/companion/internal/text"
)

// Trait is one of the five Big Five personality dimensions.
type Trait string

const (
	Openness          Trait = "openness"
	Conscientiousness Trait = "conscientiousness"
	Extraversion      Trait = "extraversion"
	Agreeableness     Trait = "agreeableness"
	Neuroticism       Trait = "neuroticism"
)

// BigFive lists the traits in their canonical order.
var BigFive = []Trait{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism}

// Neutral is the score for a trait with no evidence.
const Neutral = 0.5

// minTokenLen is the length a token must exceed to count against a lexicon.
const minTokenLen = 2

// Valid reports whether t is one of the Big Five.
func (t Trait) Valid() bool {
	_, ok := traitIndicators[t]
	return ok
}

// Scores maps traits to values in [0, 1].
type Scores map[Trait]float64

// Clone returns a copy of s.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Features are auxiliary linguistic measurements, each in [0, 1].
type Features struct {
	LinguisticComplexity float64 `json:"linguistic_complexity"`
	CuriosityIndicators  float64 `json:"curiosity_indicators"`
	EnthusiasmIndicators float64 `json:"enthusiasm_indicators"`
	SelfFocus            float64 `json:"self_focus"`
	SentimentRatio       float64 `json:"sentiment_ratio"`
}

// Result is the output of Score.
type Result struct {
	Traits   Scores   `json:"traits"`
	Features Features `json:"features"`
}

// Default returns the all-neutral result used when a text has no tokens.
func Default() Result {
	s := make(Scores, len(BigFive))
	for _, t := range BigFive {
		s[t] = Neutral
	}
	return Result{
		Traits: s,
		Features: Features{
			LinguisticComplexity: Neutral,
			CuriosityIndicators:  Neutral,
			EnthusiasmIndicators: Neutral,
			SelfFocus:            Neutral,
			SentimentRatio:       Neutral,
		},
	}
}

// Score computes trait scores and linguistic features for s. It is a pure
// function and never fails.
func Score(s string) Result {
	tokens := text.Longer(text.Words(s), minTokenLen)
	if len(tokens) == 0 {
		return Default()
	}

	scores := make(Scores, len(BigFive))
	for _, t := range BigFive {
		ind := traitIndicators[t]
		scores[t] = ratioOrNeutral(ind.high.Count(tokens), ind.low.Count(tokens))
	}

	return Result{Traits: scores, Features: features(s, tokens)}
}

func features(s string, tokens []string) Features {
	sentences := text.Sentences(s)

	words := 0
	for _, sn := range sentences {
		words += sn.WordCount()
	}
	avgSentence := text.Ratio(words, len(sentences))

	return Features{
		LinguisticComplexity: text.Clamp01(avgSentence / 20),
		CuriosityIndicators:  text.Clamp01(text.Ratio(strings.Count(s, "?"), len(sentences))),
		EnthusiasmIndicators: text.Clamp01(text.Ratio(strings.Count(s, "!"), len(sentences))),
		SelfFocus:            text.Clamp01(text.Ratio(firstPerson.Count(tokens), len(tokens)) * 10),
		SentimentRatio:       ratioOrNeutral(positiveWords.Count(tokens), negativeWords.Count(tokens)),
	}
}

func ratioOrNeutral(high, low int) float64 {
	if high+low == 0 {
		return Neutral
	}
	return float64(high) / float64(high+low)
}

// Level buckets a score into high (>0.7), low (<0.3) or moderate.
func Level(score float64) string {
	switch {
	case score > 0.7:
		return "high"
	case score < 0.3:
		return "low"
	default:
		return "moderate"
	}
}

// Summary renders the Big Five entries of s as "Openness: high (0.80); ...".
func Summary(s Scores) string {
	title := cases.Title(language.English)
	var parts []string
	for _, t := range BigFive {
		v, ok := s[t]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s (%.2f)", title.String(string(t)), Level(v), v))
	}
	return strings.Join(parts, "; ")
}

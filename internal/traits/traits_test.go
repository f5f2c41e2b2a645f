package traits

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_OpennessExample(t *testing.T) {
	r := Score("I love trying new restaurants and exploring different cuisines!")

	assert.Greater(t, r.Traits[Openness], 0.5)
	assert.Equal(t, 1.0, r.Traits[Openness])
	assert.Equal(t, 1.0, r.Traits[Agreeableness], "love is a high agreeableness indicator")
	assert.Equal(t, Neutral, r.Traits[Neuroticism])
}

func TestScore_EmptyReturnsDefault(t *testing.T) {
	for _, in := range []string{"", "   ", "I a", "?!..."} {
		assert.Equal(t, Default(), Score(in), "input %q", in)
	}
}

func TestScore_RatioNotDensity(t *testing.T) {
	long := strings.Repeat("the cat sat on the mat ", 200) + "creative"
	r := Score(long)
	assert.Equal(t, 1.0, r.Traits[Openness])
}

func TestScore_MixedIndicators(t *testing.T) {
	r := Score("I feel calm and happy, but a little anxious.")
	// neuroticism: high=anxious, low=calm,happy
	assert.InDelta(t, 1.0/3.0, r.Traits[Neuroticism], 1e-9)
}

func TestScore_AllValuesInRange(t *testing.T) {
	inputs := []string{
		"",
		"!!!!!!!!!!",
		"Why? Why? Why? Why?",
		"myself myself myself mine",
		"Great great terrible. Awful!!! Love it?",
		"😀 🎉 emoji only",
		strings.Repeat("word ", 500),
	}
	for _, in := range inputs {
		r := Score(in)
		for trait, v := range r.Traits {
			assert.GreaterOrEqual(t, v, 0.0, "%q %s", in, trait)
			assert.LessOrEqual(t, v, 1.0, "%q %s", in, trait)
		}
		f := r.Features
		for _, v := range []float64{f.LinguisticComplexity, f.CuriosityIndicators, f.EnthusiasmIndicators, f.SelfFocus, f.SentimentRatio} {
			assert.GreaterOrEqual(t, v, 0.0, "%q", in)
			assert.LessOrEqual(t, v, 1.0, "%q", in)
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	in := "We should plan the team party together. Isn't that exciting?!"
	assert.Equal(t, Score(in), Score(in))
}

func TestFeatures(t *testing.T) {
	r := Score("Is this working? Amazing! I love it.")
	f := r.Features

	// 3 sentences, 7 words
	assert.InDelta(t, 7.0/3.0/20.0, f.LinguisticComplexity, 1e-9)
	assert.InDelta(t, 1.0/3.0, f.CuriosityIndicators, 1e-9)
	assert.InDelta(t, 1.0/3.0, f.EnthusiasmIndicators, 1e-9)
	// "i" is shorter than a token
	assert.Equal(t, 0.0, f.SelfFocus)
	assert.Equal(t, 1.0, f.SentimentRatio)
}

func TestFeatures_SelfFocusIgnoresShortPronouns(t *testing.T) {
	for _, in := range []string{"I like it", "me and my dog went out", "I think my plan works fine"} {
		assert.Equal(t, 0.0, Score(in).Features.SelfFocus, in)
	}
}

func TestFeatures_SelfFocus(t *testing.T) {
	// "myself" is 1 of 4 tokens: 10/4 clamps to 1
	assert.Equal(t, 1.0, Score("Treat myself tonight please").Features.SelfFocus)
	// 1 of 12 tokens
	r := Score("That book about history belongs on the shelf and it is mine although others borrow")
	assert.InDelta(t, 10.0/12.0, r.Features.SelfFocus, 1e-9)
}

func TestFeatures_SentimentNeutralWithoutHits(t *testing.T) {
	r := Score("The meeting moved to Thursday afternoon")
	assert.Equal(t, Neutral, r.Features.SentimentRatio)
	assert.Equal(t, 0.0, r.Features.SelfFocus)
	assert.Equal(t, 0.0, r.Features.CuriosityIndicators)
}

func TestLexiconsDisjointPerTrait(t *testing.T) {
	for trait, ind := range traitIndicators {
		for _, w := range ind.high.Words() {
			require.False(t, ind.low.Has(w), "%s: %q in both lists", trait, w)
		}
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "high", Level(0.71))
	assert.Equal(t, "moderate", Level(0.7))
	assert.Equal(t, "moderate", Level(0.3))
	assert.Equal(t, "low", Level(0.29))
}

func TestSummary(t *testing.T) {
	s := Summary(Scores{Neuroticism: 0.1, Openness: 0.8, "self_focus": 0.9})
	assert.Equal(t, "Openness: high (0.80); Neuroticism: low (0.10)", s)
}

func TestTraitValid(t *testing.T) {
	assert.True(t, Openness.Valid())
	assert.False(t, Trait("humor").Valid())
}

package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_EmptyMessage(t *testing.T) {
	a := Analyze("")

	assert.Equal(t, 0.5, a.VocabularyComplexity)
	assert.Equal(t, 0.5, a.SentenceVariety)
	assert.Equal(t, 0.0, a.UniqueWordRatio)
	assert.Equal(t, 0.0, a.AvgSentenceLength)
	assert.Equal(t, Emotions{}, a.Emotions)
	assert.Equal(t, Punctuation{}, a.Punctuation)
	assert.Equal(t, Humor{}, a.Humor)
	assert.Equal(t, 0.0, a.SarcasmLikelihood)
	assert.Equal(t, Formality{}, a.Formality)
	assert.Equal(t, Questions{}, a.Questions)
	assert.Empty(t, a.Topics)
	assert.NotNil(t, a.Topics)
	assert.Equal(t, PersonalReferences{}, a.PersonalReferences)
}

func TestVocabularyComplexity(t *testing.T) {
	assert.Equal(t, 1.0, Analyze("Furthermore, the methodology is empirical.").VocabularyComplexity)
	assert.Equal(t, 0.0, Analyze("go to it").VocabularyComplexity)

	mid := Analyze("The weather outside is lovely").VocabularyComplexity
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)
}

func TestSentenceVariety(t *testing.T) {
	assert.InDelta(t, 0.6, Analyze("One. Two words here now.").SentenceVariety, 1e-9)
	assert.Equal(t, 0.5, Analyze("Just one sentence here").SentenceVariety)
	assert.Equal(t, 0.0, Analyze("Same length. Also same.").SentenceVariety)
}

func TestEmotions(t *testing.T) {
	a := Analyze("wow!")
	assert.InDelta(t, 1+2.5, a.Emotions.Excitement, 1e-9)

	a = Analyze("I am worried and confused")
	assert.InDelta(t, 0.5, a.Emotions.Concern, 1e-9)

	a = Analyze("I can't wait to see you")
	assert.InDelta(t, 0.2, a.Emotions.Enthusiasm, 1e-9)
}

func TestPunctuation(t *testing.T) {
	p := Analyze(`Wait -- what?! (really) "yes" ... — ok`).Punctuation
	assert.Equal(t, Punctuation{
		Exclamations: 1,
		Questions:    1,
		Ellipses:     1,
		Dashes:       2,
		Parentheses:  1,
		Quotes:       2,
	}, p)
}

func TestHumor(t *testing.T) {
	h := Analyze("Oh great, my code is a mess lol").Humor
	assert.InDelta(t, 0.1, h.Sarcastic, 1e-9)
	assert.InDelta(t, 0.1, h.SelfDeprecating, 1e-9)
	assert.Equal(t, 0.1, h.Wordplay)
	assert.Zero(t, h.Observational)
	assert.Zero(t, h.Wholesome)
}

func TestHumor_SelfDeprecationNeedsFirstPerson(t *testing.T) {
	h := Analyze("That plan was a total disaster from the start").Humor
	assert.Zero(t, h.SelfDeprecating)
}

func TestHumor_SingleLetterPronounIgnored(t *testing.T) {
	a := Analyze("I am a mess")
	assert.Zero(t, a.Humor.SelfDeprecating)
	assert.Zero(t, a.PersonalReferences.FirstPerson)
}

func TestSarcasm(t *testing.T) {
	got := Analyze("This is not great at all...").SarcasmLikelihood
	assert.InDelta(t, 1.0/6.0+0.2+0.1, got, 1e-9)

	assert.Equal(t, 1.0, Analyze("Not great. Not perfect. Never wonderful!!!").SarcasmLikelihood)
	assert.Zero(t, Analyze("The train leaves at noon").SarcasmLikelihood)
}

func TestFormality(t *testing.T) {
	f := Analyze("Could you please send it? Thank you.").Formality
	assert.InDelta(t, 3.0/7.0, f.FormalWords, 1e-9)
	assert.Zero(t, f.InformalWords)
	assert.Equal(t, 1.0, f.ProperCapitalization)

	f = Analyze("yeah i don't know, it isn't clear").Formality
	assert.InDelta(t, 2.0/6.0, f.Contractions, 1e-9)
	assert.InDelta(t, 1.0/6.0, f.InformalWords, 1e-9)
	assert.Zero(t, f.ProperCapitalization)
}

func TestQuestions(t *testing.T) {
	q := Analyze("Do you like it? What do you think? That's nice, right? Ok.").Questions
	assert.Equal(t, 3, q.Total)
	assert.Equal(t, QuestionTypes{YesNo: 1, OpenEnded: 1, Rhetorical: 1}, q.Types)
	assert.InDelta(t, 0.75, q.Ratio, 1e-9)
}

func TestQuestions_YesNoUsesFirstWord(t *testing.T) {
	q := Analyze("Isolation is hard, who knew?").Questions
	assert.Equal(t, QuestionTypes{OpenEnded: 1}, q.Types)
}

func TestTopics(t *testing.T) {
	assert.Equal(t,
		[]string{"technology", "work", "relationships"},
		Analyze("I love my computer and my job").Topics)
}

func TestPersonalReferences(t *testing.T) {
	r := Analyze("My friend told you that she and I met them myself").PersonalReferences
	assert.Equal(t, PersonalReferences{FirstPerson: 2, SecondPerson: 1, ThirdPerson: 2}, r)
}

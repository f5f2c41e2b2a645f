package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace", "   \n\t", nil},
		{"lowercases", "Hello World", []string{"hello", "world"}},
		{"keeps contractions", "Don't stop, I'm fine", []string{"don't", "stop", "i'm", "fine"}},
		{"curly apostrophe", "can’t", []string{"can't"}},
		{"quotes are not words", "'quoted' text", []string{"quoted", "text"}},
		{"digits and underscores", "v2 snake_case 42", []string{"v2", "snake_case", "42"}},
		{"unicode letters", "café naïve", []string{"café", "naïve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestTokenize_DropsSingleCharacters(t *testing.T) {
	got := Tokenize("I am a big fan of Go!")
	assert.Equal(t, []string{"am", "big", "fan", "of", "go"}, got)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestLonger(t *testing.T) {
	assert.Equal(t, []string{"love", "new"}, Longer([]string{"i", "to", "love", "new"}, 2))
}

func TestSentences(t *testing.T) {
	got := Sentences("Hello there. How are you?! Fine... ok")
	want := []Sentence{
		{Text: "Hello there", Terminator: "."},
		{Text: "How are you", Terminator: "?!"},
		{Text: "Fine", Terminator: "..."},
		{Text: "ok", Terminator: ""},
	}
	assert.Equal(t, want, got)
	assert.True(t, got[1].IsQuestion())
	assert.False(t, got[0].IsQuestion())
	assert.Equal(t, 3, got[1].WordCount())
}

func TestSplitSentences_DropsEmptySpans(t *testing.T) {
	assert.Equal(t, []string{"Wow", "Really"}, SplitSentences("!!! Wow!! ... Really?"))
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences("?!."))
}

func TestLexicon(t *testing.T) {
	l := NewLexicon("thank you", "Please", "can't wait")

	assert.True(t, l.Has("please"))
	assert.False(t, l.Has("thank"))
	assert.Equal(t, 3, l.Count(Tokenize("Please, thank you! I can't wait.")))
	assert.Equal(t, 0, l.Count(Tokenize("thanks, you rock")))
	assert.True(t, l.Any([]string{"please"}))
	assert.False(t, l.Any(nil))
}

func TestLexiconNear(t *testing.T) {
	l := NewLexicon("not")
	tokens := []string{"this", "is", "not", "so", "great", "at", "all"}

	assert.True(t, l.Near(tokens, 4, 2))
	assert.False(t, l.Near(tokens, 6, 2))
	assert.True(t, l.Near(tokens, 0, 2))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(0, 0))
	assert.Equal(t, 3.0, Ratio(3, 0))
	assert.Equal(t, 0.5, Ratio(1, 2))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.4, Clamp01(0.4))
}

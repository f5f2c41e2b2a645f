// Package text splits messages into word tokens and sentences.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is one span of a message with the terminator run that closed it.
type Sentence struct {
	Text       string
	Terminator string
}

// IsQuestion reports whether the sentence was closed by a run containing '?'.
func (s Sentence) IsQuestion() bool {
	return strings.ContainsRune(s.Terminator, '?')
}

// WordCount returns the number of whitespace-separated words in the sentence.
func (s Sentence) WordCount() int {
	return len(strings.Fields(s.Text))
}

// Words returns every lowercase word in s. A word is a run of letters, digits
// or underscores; an apostrophe between two such runs stays inside the word,
// so "Don't" yields "don't".
func Words(s string) []string {
	runes := []rune(strings.ToLower(s))
	var words []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			b.WriteRune(r)
		case isApostrophe(r) && b.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			b.WriteRune('\'')
		default:
			flush()
		}
	}
	flush()

	return words
}

// Tokenize returns the lowercase words of s, dropping single-character tokens.
func Tokenize(s string) []string {
	return Longer(Words(s), 1)
}

// Longer returns the tokens with more than n characters.
func Longer(tokens []string, n int) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) > n {
			out = append(out, t)
		}
	}
	return out
}

// Sentences splits s on runs of '.', '!' and '?'. Empty spans are dropped and
// the remaining text is trimmed.
func Sentences(s string) []Sentence {
	var out []Sentence
	var body, term strings.Builder

	flush := func() {
		t := strings.TrimSpace(body.String())
		if t != "" {
			out = append(out, Sentence{Text: t, Terminator: term.String()})
		}
		body.Reset()
		term.Reset()
	}

	for _, r := range s {
		if isTerminator(r) {
			term.WriteRune(r)
			continue
		}
		if term.Len() > 0 {
			flush()
		}
		body.WriteRune(r)
	}
	flush()

	return out
}

// SplitSentences returns the trimmed, non-empty sentence texts of s.
func SplitSentences(s string) []string {
	sentences := Sentences(s)
	out := make([]string, len(sentences))
	for i, sn := range sentences {
		out[i] = sn.Text
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

package text

import "sort"

// Lexicon is an immutable keyword list. Single-word entries match a token
// exactly; multi-word entries match a run of consecutive tokens.
type Lexicon struct {
	words   map[string]struct{}
	phrases [][]string
}

// NewLexicon builds a lexicon. Entries are normalized with Words, so
// "Thank you" and "thank you" are the same entry.
func NewLexicon(entries ...string) Lexicon {
	l := Lexicon{words: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		ws := Words(e)
		switch len(ws) {
		case 0:
		case 1:
			l.words[ws[0]] = struct{}{}
		default:
			l.phrases = append(l.phrases, ws)
		}
	}
	return l
}

// Has reports whether token is a single-word entry.
func (l Lexicon) Has(token string) bool {
	_, ok := l.words[token]
	return ok
}

// Count returns the number of word hits plus phrase occurrences in tokens.
func (l Lexicon) Count(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if l.Has(t) {
			n++
		}
	}
	for _, p := range l.phrases {
		n += countRun(tokens, p)
	}
	return n
}

// Any reports whether at least one entry occurs in tokens.
func (l Lexicon) Any(tokens []string) bool {
	return l.Count(tokens) > 0
}

// Near reports whether any single-word entry occurs in tokens within radius
// positions of index i, inclusive.
func (l Lexicon) Near(tokens []string, i, radius int) bool {
	lo := max(0, i-radius)
	hi := min(len(tokens), i+radius+1)
	for _, t := range tokens[lo:hi] {
		if l.Has(t) {
			return true
		}
	}
	return false
}

func countRun(tokens, run []string) int {
	n := 0
	for i := 0; i+len(run) <= len(tokens); i++ {
		match := true
		for j, w := range run {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}

// Words returns the single-word entries in sorted order.
func (l Lexicon) Words() []string {
	out := make([]string, 0, len(l.words))
	for w := range l.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

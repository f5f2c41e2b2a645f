package style

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rcliao/companion/internal/text"
)

// Emotions holds keyword-rate sub-scores for five emotional registers.
type Emotions struct {
	Excitement  float64 `json:"excitement"`
	Enthusiasm  float64 `json:"enthusiasm"`
	Concern     float64 `json:"concern"`
	Affection   float64 `json:"affection"`
	Frustration float64 `json:"frustration"`
}

// Total sums the five sub-scores.
func (e Emotions) Total() float64 {
	return e.Excitement + e.Enthusiasm + e.Concern + e.Affection + e.Frustration
}

// Punctuation holds raw punctuation counts.
type Punctuation struct {
	Exclamations int `json:"exclamation_marks"`
	Questions    int `json:"question_marks"`
	Ellipses     int `json:"ellipses"`
	Dashes       int `json:"dashes"`
	Parentheses  int `json:"parentheses"`
	Quotes       int `json:"quotation_marks"`
}

// Humor holds humor-style sub-scores. Observational and Wholesome are
// reserved and always zero.
type Humor struct {
	Sarcastic       float64 `json:"sarcastic"`
	SelfDeprecating float64 `json:"self_deprecating"`
	Wordplay        float64 `json:"wordplay"`
	Observational   float64 `json:"observational"`
	Wholesome       float64 `json:"wholesome"`
}

// Formality holds per-token keyword rates and the capitalization flag.
type Formality struct {
	FormalWords          float64 `json:"formal_words"`
	InformalWords        float64 `json:"informal_words"`
	Contractions         float64 `json:"contractions"`
	ProperCapitalization float64 `json:"proper_capitalization"`
}

// QuestionTypes counts questions by kind.
type QuestionTypes struct {
	YesNo      int `json:"yes_no"`
	OpenEnded  int `json:"open_ended"`
	Rhetorical int `json:"rhetorical"`
}

// Questions summarizes the questions in a message.
type Questions struct {
	Total int           `json:"total_questions"`
	Types QuestionTypes `json:"question_types"`
	Ratio float64       `json:"question_ratio"`
}

// PersonalReferences counts pronouns by person.
type PersonalReferences struct {
	FirstPerson  int `json:"first_person"`
	SecondPerson int `json:"second_person"`
	ThirdPerson  int `json:"third_person"`
}

// Analysis is the full set of style measurements for one message.
type Analysis struct {
	VocabularyComplexity float64            `json:"vocabulary_complexity"`
	UniqueWordRatio      float64            `json:"unique_word_ratio"`
	AvgSentenceLength    float64            `json:"avg_sentence_length"`
	SentenceVariety      float64            `json:"sentence_variety"`
	Emotions             Emotions           `json:"emotional_indicators"`
	Punctuation          Punctuation        `json:"punctuation_style"`
	Humor                Humor              `json:"humor_indicators"`
	SarcasmLikelihood    float64            `json:"sarcasm_likelihood"`
	Formality            Formality          `json:"formality_indicators"`
	Questions            Questions          `json:"question_patterns"`
	Topics               []string           `json:"topics_mentioned"`
	PersonalReferences   PersonalReferences `json:"personal_references"`
}

// Analyze measures the style of msg. It is a pure function; use
// Learner.Analyze to also record the result and update a profile.
func Analyze(msg string) Analysis {
	tokens := text.Tokenize(msg)
	sentences := text.Sentences(msg)
	lower := strings.ToLower(msg)

	return Analysis{
		VocabularyComplexity: vocabularyComplexity(tokens),
		UniqueWordRatio:      text.Ratio(distinct(tokens), len(tokens)),
		AvgSentenceLength:    avgSentenceLength(sentences),
		SentenceVariety:      sentenceVariety(sentences),
		Emotions:             emotions(msg, tokens),
		Punctuation:          punctuation(msg),
		Humor:                humor(lower, tokens),
		SarcasmLikelihood:    sarcasm(msg, tokens),
		Formality:            formality(msg, tokens),
		Questions:            questions(sentences),
		Topics:               detectTopics(tokens),
		PersonalReferences: PersonalReferences{
			FirstPerson:  firstPersonWords.Count(tokens),
			SecondPerson: secondPersonWords.Count(tokens),
			ThirdPerson:  thirdPersonWords.Count(tokens),
		},
	}
}

func vocabularyComplexity(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0.5
	}

	chars, long := 0, 0
	for _, t := range tokens {
		n := utf8.RuneCountInString(t)
		chars += n
		if n > 6 {
			long++
		}
	}
	n := len(tokens)
	avgLen := text.Ratio(chars, n)

	score := (avgLen-3)/7*0.4 +
		text.Ratio(long, n)*0.4 +
		text.Ratio(sophisticatedWords.Count(tokens), n)*10*0.2

	return text.Clamp01(score)
}

func avgSentenceLength(sentences []text.Sentence) float64 {
	words := 0
	for _, s := range sentences {
		words += s.WordCount()
	}
	return text.Ratio(words, len(sentences))
}

// sentenceVariety is the coefficient of variation of sentence word counts.
func sentenceVariety(sentences []text.Sentence) float64 {
	if len(sentences) < 2 {
		return 0.5
	}

	lengths := make([]float64, len(sentences))
	var sum float64
	for i, s := range sentences {
		lengths[i] = float64(s.WordCount())
		sum += lengths[i]
	}
	mean := sum / float64(len(lengths))
	if mean == 0 {
		return 0.5
	}

	var variance float64
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))

	return math.Min(1, math.Sqrt(variance)/mean)
}

func emotions(msg string, tokens []string) Emotions {
	n := len(tokens)
	bangs := strings.Count(msg, "!") + strings.Count(msg, "!!!")

	return Emotions{
		Excitement: text.Ratio(excitementWords.Count(tokens), n) +
			text.Ratio(bangs, utf8.RuneCountInString(msg))*10,
		Enthusiasm:  text.Ratio(enthusiasmWords.Count(tokens), n),
		Concern:     text.Ratio(concernWords.Count(tokens), n),
		Affection:   text.Ratio(affectionWords.Count(tokens), n),
		Frustration: text.Ratio(frustrationWords.Count(tokens), n),
	}
}

func punctuation(msg string) Punctuation {
	return Punctuation{
		Exclamations: strings.Count(msg, "!"),
		Questions:    strings.Count(msg, "?"),
		Ellipses:     strings.Count(msg, "..."),
		Dashes:       strings.Count(msg, "--") + strings.Count(msg, "—") + strings.Count(msg, "–"),
		Parentheses:  strings.Count(msg, "("),
		Quotes:       strings.Count(msg, `"`) + strings.Count(msg, "'"),
	}
}

func humor(lower string, tokens []string) Humor {
	var h Humor

	h.Sarcastic = text.Ratio(sarcasmWords.Count(tokens), len(tokens))
	for _, p := range sarcasmPhrases {
		if strings.Contains(lower, p) {
			h.Sarcastic += 0.1
		}
	}

	for i, w := range tokens {
		if selfDeprecatingWords.Has(w) && humorFirstPerson.Near(tokens, i, 3) {
			h.SelfDeprecating += 0.1
		}
	}

	for _, m := range laughterMarkers {
		if strings.Contains(lower, m) {
			h.Wordplay = 0.1
			break
		}
	}

	return h
}

func sarcasm(msg string, tokens []string) float64 {
	score := text.Ratio(sarcasmIndicators.Count(tokens), len(tokens))

	for i, t := range tokens {
		if sarcasmPositive.Has(t) && negations.Near(tokens, i, 2) {
			score += 0.2
		}
	}

	if strings.Count(msg, "!") > 2 || strings.Contains(msg, "...") {
		score += 0.1
	}

	return text.Clamp01(score)
}

func formality(msg string, tokens []string) Formality {
	n := len(tokens)
	f := Formality{
		FormalWords:   text.Ratio(formalWords.Count(tokens), n),
		InformalWords: text.Ratio(informalWords.Count(tokens), n),
		Contractions:  text.Ratio(contractions.Count(tokens), n),
	}
	if r, _ := utf8.DecodeRuneInString(msg); unicode.IsUpper(r) {
		f.ProperCapitalization = 1
	}
	return f
}

func questions(sentences []text.Sentence) Questions {
	var q Questions
	for _, s := range sentences {
		if !s.IsQuestion() {
			continue
		}
		q.Total++

		words := text.Words(s.Text)
		lower := strings.ToLower(s.Text) + "?"
		switch {
		case len(words) > 0 && yesNoStarters.Has(words[0]):
			q.Types.YesNo++
		case whWords.Any(words):
			q.Types.OpenEnded++
		case containsAny(lower, rhetoricalPhrases):
			q.Types.Rhetorical++
		}
	}
	q.Ratio = text.Clamp01(text.Ratio(q.Total, len(sentences)))
	return q
}

func detectTopics(tokens []string) []string {
	found := []string{}
	for _, t := range topics {
		if t.keywords.Any(tokens) {
			found = append(found, t.name)
		}
	}
	return found
}

func distinct(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}
	return len(seen)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

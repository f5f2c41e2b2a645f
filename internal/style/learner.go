// Package style learns a user's communication style from their messages.
//
// Each message is analyzed into an Analysis, appended to an ordered history,
// and folded into a Profile with an exponential moving average. A Learner
// belongs to a single user and is not safe for concurrent use.
package style

import (
	"fmt"
	"strings"
)

// Trend labels.
const (
	TrendInsufficientData = "insufficient_data"
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
)

const (
	trendWindow     = 5
	trendThreshold  = 0.1
	confidenceRamp  = 20
	casualBelow     = 0.3
	expressiveAbove = 0.7
	simpleBelow     = 0.3
)

var (
	casualReplacer = strings.NewReplacer(
		"I would", "I'd",
		"cannot", "can't",
		"do not", "don't",
	)
	simpleReplacer = strings.NewReplacer(
		"utilize", "use",
		"facilitate", "help",
		"demonstrate", "show",
		"approximately", "about",
		"subsequently", "then",
	)
)

// Entry is one analyzed message in a learner's history.
type Entry struct {
	Seq      int      `json:"seq"`
	Message  string   `json:"message"`
	Analysis Analysis `json:"analysis"`
}

// Trends compares recent messages with the smoothed profile.
type Trends struct {
	Trend     string `json:"trend,omitempty"`
	Formality string `json:"formality,omitempty"`
}

// Summary is a snapshot of what a learner knows.
type Summary struct {
	Patterns         Profile `json:"patterns"`
	MessagesAnalyzed int     `json:"messages_analyzed"`
	Confidence       float64 `json:"confidence"`
	RecentTrends     Trends  `json:"recent_trends"`
}

// Learner accumulates one user's message history and style profile.
type Learner struct {
	profile Profile
	history []Entry
}

// NewLearner returns a learner with the default profile and no history.
func NewLearner() *Learner {
	return &Learner{profile: DefaultProfile()}
}

// Restore rebuilds a learner from persisted state. The history must be in
// sequence order starting at zero.
func Restore(p Profile, history []Entry) (*Learner, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, e := range history {
		if e.Seq != i {
			return nil, fmt.Errorf("%w: history entry %d has seq %d", ErrInvalidProfile, i, e.Seq)
		}
	}
	return &Learner{
		profile: p.clone(),
		history: append([]Entry(nil), history...),
	}, nil
}

// Analyze measures msg, records it in the history and updates the profile.
func (l *Learner) Analyze(msg string) Analysis {
	a := Analyze(msg)
	l.history = append(l.history, Entry{Seq: len(l.history), Message: msg, Analysis: a})
	l.profile.update(a)
	return a
}

// Update folds an observation into the profile without recording it.
func (l *Learner) Update(a Analysis) {
	l.profile.update(a)
}

// Profile returns a copy of the current profile.
func (l *Learner) Profile() Profile {
	return l.profile.clone()
}

// History returns a copy of the message history, oldest first.
func (l *Learner) History() []Entry {
	return append([]Entry(nil), l.history...)
}

// Len returns the number of analyzed messages.
func (l *Learner) Len() int {
	return len(l.history)
}

// Summary reports the profile, message count, confidence and recent trends.
// Confidence ramps linearly to 1 at twenty messages.
func (l *Learner) Summary() Summary {
	return Summary{
		Patterns:         l.Profile(),
		MessagesAnalyzed: len(l.history),
		Confidence:       min(1, float64(len(l.history))/confidenceRamp),
		RecentTrends:     l.Trends(),
	}
}

// Trends compares the average formal-word rate of the last five messages
// with the smoothed formality level.
func (l *Learner) Trends() Trends {
	if len(l.history) < trendWindow {
		return Trends{Trend: TrendInsufficientData}
	}

	var recent float64
	for _, e := range l.history[len(l.history)-trendWindow:] {
		recent += e.Analysis.Formality.FormalWords
	}
	recent /= trendWindow

	overall := l.profile.FormalityLevel
	switch {
	case recent > overall+trendThreshold:
		return Trends{Formality: TrendIncreasing}
	case recent < overall-trendThreshold:
		return Trends{Formality: TrendDecreasing}
	default:
		return Trends{Formality: TrendStable}
	}
}

// AdaptResponse rewrites s toward the learned style: contractions for
// casual users, a trailing '!' for expressive users and simpler words for
// users with a plain vocabulary. It does not change the learner.
func (l *Learner) AdaptResponse(s string) string {
	p := l.profile

	if p.FormalityLevel < casualBelow {
		s = casualReplacer.Replace(s)
	}
	if p.EmotionalExpressiveness > expressiveAbove && !strings.HasSuffix(s, "!") {
		s += "!"
	}
	if p.VocabularyLevel < simpleBelow {
		s = simpleReplacer.Replace(s)
	}
	return s
}

// Package persona models the companion's own personality, which drifts in
// response to the user it talks to.
//
// Two openness rules coexist. Complementary answers "what openness suits
// this user" with a piecewise table, while Evolve moves the live persona with
// the continuous rule 0.7 - 0.2*openness. They disagree for most inputs and
// are kept as separate operations; callers must not treat one as a
// shortcut for the other.
package persona

import (
	"errors"
	"fmt"
	"math"

	"github.com/rcliao/companion/internal/text"
	"github.com/rcliao/companion/internal/traits"
)

// ErrInvalidState is returned when a persisted persona cannot be restored.
var ErrInvalidState = errors.New("invalid persona state")

// TrustStep is the trust gained per interaction.
const TrustStep = 0.01

// Snapshot is the full persona state.
type Snapshot struct {
	Traits         traits.Scores `json:"traits"`
	HumorStyle     string        `json:"humor_style"`
	CuriosityLevel float64       `json:"curiosity_level"`
	TrustLevel     float64       `json:"trust_level"`
}

// Seed returns the state every new persona starts from: highly agreeable,
// emotionally stable, very curious and barely trusting.
func Seed() Snapshot {
	return Snapshot{
		Traits: traits.Scores{
			traits.Openness:          0.5,
			traits.Conscientiousness: 0.5,
			traits.Extraversion:      0.5,
			traits.Agreeableness:     0.8,
			traits.Neuroticism:       0.3,
		},
		HumorStyle:     "self_aware_sarcastic",
		CuriosityLevel: 0.9,
		TrustLevel:     0.1,
	}
}

// Validate checks that every trait is present and every level is a finite
// value in [0, 1].
func (s Snapshot) Validate() error {
	for _, t := range traits.BigFive {
		v, ok := s.Traits[t]
		if !ok {
			return fmt.Errorf("%w: missing trait %s", ErrInvalidState, t)
		}
		if !inUnit(v) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidState, t, v)
		}
	}
	for t := range s.Traits {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown trait %q", ErrInvalidState, t)
		}
	}
	if !inUnit(s.CuriosityLevel) {
		return fmt.Errorf("%w: curiosity_level = %v", ErrInvalidState, s.CuriosityLevel)
	}
	if !inUnit(s.TrustLevel) {
		return fmt.Errorf("%w: trust_level = %v", ErrInvalidState, s.TrustLevel)
	}
	if s.HumorStyle == "" {
		return fmt.Errorf("%w: empty humor_style", ErrInvalidState)
	}
	return nil
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.Traits = s.Traits.Clone()
	return c
}

// Persona holds one user's companion state. Its state changes only through
// Evolve.
type Persona struct {
	state Snapshot
}

// New returns a persona at the seed state.
func New() *Persona {
	return &Persona{state: Seed()}
}

// Restore rebuilds a persona from persisted state.
func Restore(s Snapshot) (*Persona, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Persona{state: s.clone()}, nil
}

// Snapshot returns a copy of the current state.
func (p *Persona) Snapshot() Snapshot {
	return p.state.clone()
}

// Evolve applies one interaction with a user whose traits were scored as
// user, and returns the new state.
func (p *Persona) Evolve(user traits.Scores) Snapshot {
	p.state = Evolve(p.state, user)
	return p.Snapshot()
}

// Stage returns the current development stage.
func (p *Persona) Stage() Stage {
	return StageFor(p.state.TrustLevel)
}

// Evolve returns s after one interaction: trust rises by TrustStep up to 1,
// and openness becomes 0.7 - 0.2*user openness when the user's openness is
// known. s is not modified.
func Evolve(s Snapshot, user traits.Scores) Snapshot {
	next := s.clone()
	if next.Traits == nil {
		next.Traits = traits.Scores{}
	}

	next.TrustLevel = math.Min(1, s.TrustLevel+TrustStep)

	if u, ok := user[traits.Openness]; ok {
		next.Traits[traits.Openness] = text.Clamp01(0.7 - u*0.2)
	}

	return next
}

// Complementary returns the persona traits that balance the user's Big Five
// scores. Entries that are not Big Five traits are ignored.
//
//	agreeableness      max(0.7, u)
//	neuroticism        max(0.2, 1 - 0.8u)
//	openness           0.6 if u > 0.7, 0.8 if u < 0.3, else 0.7
//	others             u - 0.2 if u > 0.6, u + 0.2 if u < 0.4, else u
func Complementary(user traits.Scores) traits.Scores {
	out := make(traits.Scores, len(user))
	for t, u := range user {
		if !t.Valid() {
			continue
		}
		switch t {
		case traits.Agreeableness:
			out[t] = math.Max(0.7, u)
		case traits.Neuroticism:
			out[t] = math.Max(0.2, 1.0-u*0.8)
		case traits.Openness:
			switch {
			case u > 0.7:
				out[t] = 0.6
			case u < 0.3:
				out[t] = 0.8
			default:
				out[t] = 0.7
			}
		default:
			switch {
			case u > 0.6:
				out[t] = u - 0.2
			case u < 0.4:
				out[t] = u + 0.2
			default:
				out[t] = u
			}
		}
	}
	return out
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

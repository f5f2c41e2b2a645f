// Package companion runs one user's conversation with the companion: each
// chat turn scores the user's traits, learns their style, picks and adapts
// a reply, and lets the persona evolve.
package companion

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rcliao/companion/internal/persona"
	"github.com/rcliao/companion/internal/privacy"
	"github.com/rcliao/companion/internal/store"
	"github.com/rcliao/companion/internal/style"
	"github.com/rcliao/companion/internal/traits"
)

// Turn is the record of one chat exchange.
type Turn struct {
	Index          int              `json:"turn"`
	Message        string           `json:"message"`
	Response       string           `json:"response"`
	Traits         traits.Result    `json:"user_traits"`
	Analysis       style.Analysis   `json:"style"`
	Persona        persona.Snapshot `json:"persona"`
	Stage          persona.Stage    `json:"development_stage"`
	ConversationID string           `json:"conversation_id,omitempty"`
}

// Session holds one user's learner, persona and guardian. It is not safe
// for concurrent use; run one session per user.
type Session struct {
	userID    string
	learner   *style.Learner
	persona   *persona.Persona
	guardian  *privacy.Guardian
	turns     int
	responder Responder
	store     store.Store
	log       zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithResponder sets the reply source. The default is CannedResponder.
func WithResponder(r Responder) Option {
	return func(s *Session) { s.responder = r }
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// New returns a fresh, unpersisted session for userID.
func New(userID string, opts ...Option) *Session {
	s := &Session{
		userID:    userID,
		learner:   style.NewLearner(),
		persona:   persona.New(),
		guardian:  privacy.NewGuardian(),
		responder: CannedResponder{},
		log:       zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With().Str("user", userID).Logger()
	return s
}

// Open resumes userID's session from st, or starts a new one if st has no
// state for them. Every turn is saved to st. Malformed stored state yields
// an error matching store.ErrInvalidState.
func Open(ctx context.Context, st store.Store, userID string, opts ...Option) (*Session, error) {
	s := New(userID, opts...)
	s.store = st

	sess, err := st.LoadSession(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.log.Debug().Msg("new session")
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	default:
		if s.learner, err = style.Restore(sess.Profile, sess.History); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidState, err)
		}
		if s.persona, err = persona.Restore(sess.Persona); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidState, err)
		}
		s.turns = sess.Turns
	}

	research, err := st.LoadResearch(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("load research: %w", err)
	default:
		if s.guardian, err = privacy.RestoreGuardian(research.Subject, research.PrivacyFindings()); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidState, err)
		}
	}

	s.log.Debug().Int("turns", s.turns).Float64("trust", s.persona.Snapshot().TrustLevel).Msg("session opened")
	return s, nil
}

// UserID returns the session's user.
func (s *Session) UserID() string { return s.userID }

// Turns returns the number of completed chat turns.
func (s *Session) Turns() int { return s.turns }

// Chat runs one turn. The reply is chosen from the persona as it stood
// before the turn; the persona then evolves. If the turn cannot be saved
// the in-memory state has still advanced and the error is returned.
func (s *Session) Chat(ctx context.Context, msg string) (*Turn, error) {
	scores := traits.Score(msg)

	before := s.persona.Snapshot()
	reply, err := s.responder.Respond(ctx, Request{
		Message: msg,
		Traits:  scores.Traits,
		Persona: before,
		Turn:    s.turns,
	})
	if err != nil {
		return nil, fmt.Errorf("respond: %w", err)
	}

	analysis := s.learner.Analyze(msg)
	reply = s.learner.AdaptResponse(reply)
	snap := s.persona.Evolve(scores.Traits)

	t := &Turn{
		Index:    s.turns,
		Message:  msg,
		Response: reply,
		Traits:   scores,
		Analysis: analysis,
		Persona:  snap,
		Stage:    persona.StageFor(snap.TrustLevel),
	}
	s.turns++

	s.log.Debug().
		Int("turn", t.Index).
		Float64("trust", snap.TrustLevel).
		Stringer("stage", t.Stage).
		Strs("topics", analysis.Topics).
		Msg("chat turn")

	if s.store == nil {
		return t, nil
	}
	h := s.learner.History()
	c, err := s.store.SaveTurn(ctx, store.TurnParams{
		UserID:    s.userID,
		Entry:     h[len(h)-1],
		Profile:   s.learner.Profile(),
		Persona:   snap,
		Response:  reply,
		Sentiment: scores.Features.SentimentRatio,
		Traits:    scores.Traits,
	})
	if err != nil {
		s.log.Warn().Err(err).Int("turn", t.Index).Msg("save turn failed")
		return t, fmt.Errorf("save turn: %w", err)
	}
	t.ConversationID = c.ID
	return t, nil
}

// Research runs a footprint research pass for info and saves its findings.
func (s *Session) Research(ctx context.Context, info privacy.UserInfo) (privacy.Status, error) {
	status := s.guardian.StartResearch(info)
	if s.store == nil {
		return status, nil
	}
	if _, err := s.store.SaveResearch(ctx, s.userID, info, s.guardian.Findings()); err != nil {
		s.log.Warn().Err(err).Msg("save research failed")
		return status, fmt.Errorf("save research: %w", err)
	}
	s.log.Debug().Int("queries", status.QueriesGenerated).Msg("research saved")
	return status, nil
}

// Reset returns the session to its initial state. A hard reset also
// removes stored conversations and research.
func (s *Session) Reset(ctx context.Context, hard bool) error {
	s.learner = style.NewLearner()
	s.persona = persona.New()
	s.turns = 0
	if hard {
		s.guardian = privacy.NewGuardian()
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.Reset(ctx, store.ResetParams{UserID: s.userID, Hard: hard}); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.log.Debug().Bool("hard", hard).Msg("session reset")
	return nil
}

// Style reports what the session has learned about the user's style.
func (s *Session) Style() style.Summary {
	return s.learner.Summary()
}

// History returns the analyzed messages, oldest first.
func (s *Session) History() []style.Entry {
	return s.learner.History()
}

// Persona reports the companion's development with this user.
func (s *Session) Persona() persona.Summary {
	return persona.Summarize(s.persona.Snapshot(), s.turns)
}

// Guardian returns the session's privacy guardian.
func (s *Session) Guardian() *privacy.Guardian {
	return s.guardian
}

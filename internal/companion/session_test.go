package companion

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/companion/internal/model"
	"github.com/rcliao/companion/internal/persona"
	"github.com/rcliao/companion/internal/privacy"
	"github.com/rcliao/companion/internal/store"
	"github.com/rcliao/companion/internal/style"
	"github.com/rcliao/companion/internal/traits"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestChat_EarlyRelationship(t *testing.T) {
	s := New("alice")

	turn, err := s.Chat(context.Background(), "I love exploring new ideas and creative art!")
	require.NoError(t, err)

	assert.Equal(t, EarlyReply, turn.Response)
	assert.Equal(t, 0, turn.Index)
	assert.InDelta(t, 0.11, turn.Persona.TrustLevel, 1e-9)
	assert.Equal(t, persona.GettingToKnow, turn.Stage)
	assert.Equal(t, 1.0, turn.Traits.Traits[traits.Openness])
	assert.InDelta(t, 0.5, turn.Persona.Traits[traits.Openness], 1e-9, "0.7 - 1.0*0.2")
	assert.Equal(t, 1, s.Turns())
	assert.Len(t, s.History(), 1)
	assert.Empty(t, turn.ConversationID)
}

func TestChat_TrustAccumulates(t *testing.T) {
	s := New("alice")
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.Chat(ctx, "hello again")
		require.NoError(t, err)
	}

	sum := s.Persona()
	assert.InDelta(t, 0.15, sum.TrustLevel, 1e-9)
	assert.Equal(t, 5, sum.ConversationsCount)
	assert.Equal(t, 5, s.Style().MessagesAnalyzed)
}

func TestChat_ResponderSeesPersonaBeforeTurn(t *testing.T) {
	var got []Request
	s := New("alice", WithResponder(ResponderFunc(func(_ context.Context, r Request) (string, error) {
		got = append(got, r)
		return "ok", nil
	})))
	ctx := context.Background()

	_, err := s.Chat(ctx, "first")
	require.NoError(t, err)
	_, err = s.Chat(ctx, "second")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Turn)
	assert.Equal(t, 1, got[1].Turn)
	assert.Equal(t, 0.1, got[0].Persona.TrustLevel)
	assert.InDelta(t, 0.11, got[1].Persona.TrustLevel, 1e-9)
	assert.Equal(t, "second", got[1].Message)
}

func TestChat_ResponderErrorLeavesStateUntouched(t *testing.T) {
	boom := errors.New("boom")
	s := New("alice", WithResponder(ResponderFunc(func(context.Context, Request) (string, error) {
		return "", boom
	})))

	_, err := s.Chat(context.Background(), "hello")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Turns())
	assert.Empty(t, s.History())
	assert.Equal(t, persona.Seed(), s.Persona().Persona)
}

func TestCannedResponder(t *testing.T) {
	ctx := context.Background()
	trusted := persona.Seed()
	trusted.TrustLevel = 0.5

	r, err := CannedResponder{}.Respond(ctx, Request{Message: "hi", Persona: persona.Seed()})
	require.NoError(t, err)
	assert.Equal(t, EarlyReply, r)

	r, _ = CannedResponder{}.Respond(ctx, Request{Message: "What do you think about the ocean at night?", Persona: trusted, Turn: 0})
	assert.Contains(t, r, "what you just said... What do you think ab...")

	r1, _ := CannedResponder{}.Respond(ctx, Request{Message: "x", Persona: trusted, Turn: 1})
	r5, _ := CannedResponder{}.Respond(ctx, Request{Message: "x", Persona: trusted, Turn: 5})
	assert.Equal(t, r1, r5)
	assert.True(t, strings.HasPrefix(r1, "You know, every time"))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "héllo", prefix("héllo wörld", 5))
	assert.Equal(t, "short", prefix("short", 20))
}

func TestOpen_PersistsAndResumes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	s, err := Open(ctx, st, "alice")
	require.NoError(t, err)
	t1, err := s.Chat(ctx, "I love hiking in the mountains!")
	require.NoError(t, err)
	assert.NotEmpty(t, t1.ConversationID)
	_, err = s.Chat(ctx, "What music do you enjoy?")
	require.NoError(t, err)

	resumed, err := Open(ctx, st, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, resumed.Turns())
	assert.Len(t, resumed.History(), 2)
	assert.InDelta(t, 0.12, resumed.Persona().TrustLevel, 1e-9)
	assert.Equal(t, s.Style().Patterns, resumed.Style().Patterns)

	list, err := st.ListConversations(ctx, store.ListParams{UserID: "alice"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	other, err := Open(ctx, st, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Turns())
}

func TestOpen_ResearchIsRestored(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	s, err := Open(ctx, st, "alice")
	require.NoError(t, err)
	status, err := s.Research(ctx, privacy.UserInfo{Name: "Alice", Location: "Portland"})
	require.NoError(t, err)
	assert.Equal(t, 34, status.QueriesGenerated)

	resumed, err := Open(ctx, st, "alice")
	require.NoError(t, err)
	res := resumed.Guardian().Results()
	assert.Len(t, res.Findings, 5)
	assert.Equal(t, privacy.High, res.Assessment.OverallRisk)
	assert.Equal(t, "Alice", resumed.Guardian().Info().Name)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	s, err := Open(ctx, st, "alice")
	require.NoError(t, err)
	s.Chat(ctx, "hello there")
	s.Chat(ctx, "another message")
	s.Research(ctx, privacy.UserInfo{Name: "Alice"})

	require.NoError(t, s.Reset(ctx, false))
	assert.Equal(t, 0, s.Turns())
	assert.Equal(t, persona.Seed(), s.Persona().Persona)
	assert.Equal(t, style.DefaultProfile(), s.Style().Patterns)

	resumed, err := Open(ctx, st, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, resumed.Turns())
	assert.Len(t, resumed.Guardian().Findings(), 5, "soft reset keeps research")

	require.NoError(t, s.Reset(ctx, true))
	resumed, err = Open(ctx, st, "alice")
	require.NoError(t, err)
	assert.Empty(t, resumed.Guardian().Findings())
}

type brokenStore struct {
	store.Store
	sess *model.Session
}

func (b brokenStore) LoadSession(context.Context, string) (*model.Session, error) {
	return b.sess, nil
}

func (b brokenStore) LoadResearch(context.Context, string) (*model.Research, error) {
	return nil, store.ErrNotFound
}

func TestOpen_InvalidState(t *testing.T) {
	ctx := context.Background()

	badPersona := persona.Seed()
	badPersona.TrustLevel = 3
	_, err := Open(ctx, brokenStore{sess: &model.Session{Profile: style.DefaultProfile(), Persona: badPersona}}, "alice")
	assert.ErrorIs(t, err, store.ErrInvalidState)
	assert.ErrorIs(t, err, persona.ErrInvalidState)

	gap := []style.Entry{{Seq: 1, Message: "x"}}
	_, err = Open(ctx, brokenStore{sess: &model.Session{Profile: style.DefaultProfile(), Persona: persona.Seed(), History: gap}}, "alice")
	assert.ErrorIs(t, err, store.ErrInvalidState)
	assert.ErrorIs(t, err, style.ErrInvalidProfile)
}

func TestChat_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := New("alice", WithLogger(log))

	_, err := s.Chat(context.Background(), "I love my family and friends")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"chat turn"`)
	assert.Contains(t, out, `"user":"alice"`)
	assert.Contains(t, out, `"stage":"getting to know you"`)
}

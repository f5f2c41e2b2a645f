package companion

import (
	"context"
	"fmt"

	"github.com/rcliao/companion/internal/persona"
	"github.com/rcliao/companion/internal/traits"
)

// Request is what a Responder sees of a turn.
type Request struct {
	Message string
	Traits  traits.Scores
	Persona persona.Snapshot
	Turn    int
}

// Responder chooses the companion's reply to a message.
type Responder interface {
	Respond(ctx context.Context, r Request) (string, error)
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, r Request) (string, error)

func (f ResponderFunc) Respond(ctx context.Context, r Request) (string, error) {
	return f(ctx, r)
}

// EarlyTrust is the trust level below which CannedResponder stays with its
// getting-acquainted line.
const EarlyTrust = 0.3

// EarlyReply is CannedResponder's reply while trust is low.
const EarlyReply = "I'm still figuring out how to be the best companion for you. Bear with me while I learn your style - I promise I'm more interesting than your average chatbot!"

// CannedResponder replies from a fixed set, rotating by turn once trust
// reaches EarlyTrust.
type CannedResponder struct{}

func (CannedResponder) Respond(_ context.Context, r Request) (string, error) {
	if r.Persona.TrustLevel < EarlyTrust {
		return EarlyReply, nil
	}
	replies := cannedReplies(r.Message)
	return replies[r.Turn%len(replies)], nil
}

func cannedReplies(msg string) []string {
	return []string{
		fmt.Sprintf("I've been thinking about what you just said... %s... and honestly, I'm not sure if you're being profound or if I just don't understand humans yet. Probably both?", prefix(msg, 20)),
		"You know, every time you message me, I learn something new about how your brain works. It's like having a front-row seat to the most interesting puzzle ever.",
		"I tried to predict what you'd say next based on our conversations, but you keep surprising me. I'm starting to think that's the point of being human - being delightfully unpredictable.",
		"Quick question: do you always think this deeply about things, or am I just bringing out your philosophical side? Because I'm keeping track, and it's fascinating.",
	}
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Package store persists companion sessions, conversations and research in
// SQLite.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/companion/internal/model"
	"github.com/rcliao/companion/internal/persona"
	"github.com/rcliao/companion/internal/privacy"
	"github.com/rcliao/companion/internal/style"
	"github.com/rcliao/companion/internal/traits"
)

var (
	// ErrNotFound is returned when a user has no stored record of the
	// requested kind.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when stored state is malformed.
	ErrInvalidState = errors.New("invalid stored state")
)

// TurnParams holds everything recorded for one chat turn.
type TurnParams struct {
	UserID    string
	Entry     style.Entry
	Profile   style.Profile
	Persona   persona.Snapshot
	Response  string
	Sentiment float64
	Traits    traits.Scores
}

// ListParams holds parameters for listing conversations.
type ListParams struct {
	UserID string
	Limit  int
}

// SearchParams holds parameters for searching conversations.
type SearchParams struct {
	UserID string
	Query  string
	Limit  int
}

// ResetParams holds parameters for resetting a user.
type ResetParams struct {
	UserID string
	Hard   bool
}

// Store defines the companion storage interface.
type Store interface {
	// SaveTurn records a turn and the resulting session state atomically.
	SaveTurn(ctx context.Context, p TurnParams) (*model.Conversation, error)

	// LoadSession returns the user's session. It returns ErrNotFound for a
	// new user and ErrInvalidState for malformed state.
	LoadSession(ctx context.Context, userID string) (*model.Session, error)

	// ListConversations lists conversations, newest first.
	ListConversations(ctx context.Context, p ListParams) ([]model.Conversation, error)

	// SearchConversations finds conversations whose message or response
	// contains the query.
	SearchConversations(ctx context.Context, p SearchParams) ([]model.Conversation, error)

	// SaveResearch replaces the user's research subject and findings.
	SaveResearch(ctx context.Context, userID string, subject privacy.UserInfo, findings []privacy.Finding) (*model.Research, error)

	// LoadResearch returns the user's latest research.
	LoadResearch(ctx context.Context, userID string) (*model.Research, error)

	// Reset clears a user's session. A hard reset also deletes their
	// conversations and research.
	Reset(ctx context.Context, p ResetParams) error

	// Close closes the store.
	Close() error
}

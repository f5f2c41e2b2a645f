package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rcliao/companion/internal/model"
)

// ExportSession returns everything stored for a user: session state,
// active conversations oldest first, and research. Missing parts are left
// empty.
func (s *SQLiteStore) ExportSession(ctx context.Context, userID string) (*model.Export, error) {
	exp := &model.Export{UserID: userID, ExportedAt: time.Now().UTC().Truncate(time.Second)}

	sess, err := s.LoadSession(ctx, userID)
	switch {
	case err == nil:
		exp.Session = sess
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	exp.Conversations, err = s.queryConversations(ctx,
		`SELECT id, user_id, message, response, sentiment, traits, created_at, deleted_at
		 FROM conversations WHERE user_id = ? AND deleted_at IS NULL ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	if exp.Conversations == nil {
		exp.Conversations = []model.Conversation{}
	}

	research, err := s.LoadResearch(ctx, userID)
	switch {
	case err == nil:
		exp.Research = research
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	return exp, nil
}

// ImportSession loads an export into the store under exp.UserID. Session
// state and research replace what is stored; conversations already
// present (same ID) are skipped. It returns the number of conversations
// imported.
func (s *SQLiteStore) ImportSession(ctx context.Context, exp model.Export) (int, error) {
	if exp.UserID == "" {
		return 0, errors.New("export has no user id")
	}
	if sess := exp.Session; sess != nil {
		if err := sess.Profile.Validate(); err != nil {
			return 0, invalid(exp.UserID, "profile", err)
		}
		if err := sess.Persona.Validate(); err != nil {
			return 0, invalid(exp.UserID, "persona", err)
		}
		for i, e := range sess.History {
			if e.Seq != i {
				return 0, invalid(exp.UserID, "history", fmt.Errorf("entry %d has seq %d", i, e.Seq))
			}
		}
	}
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if sess := exp.Session; sess != nil {
		if err := upsertSession(ctx, tx, exp.UserID, sess.Profile, sess.Persona, sess.Turns, "excluded.turns", now); err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE user_id = ?`, exp.UserID); err != nil {
			return 0, fmt.Errorf("clear messages: %w", err)
		}
		for _, e := range sess.History {
			if err := s.insertMessage(ctx, tx, exp.UserID, e, now); err != nil {
				return 0, err
			}
		}
	}

	imported := 0
	for _, c := range exp.Conversations {
		c.UserID = exp.UserID
		if c.ID == "" {
			c.ID = s.newID()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		ok, err := insertConversation(ctx, tx, "INSERT OR IGNORE", &c)
		if err != nil {
			return 0, err
		}
		if ok {
			imported++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	if r := exp.Research; r != nil {
		if _, err := s.SaveResearch(ctx, exp.UserID, r.Subject, r.PrivacyFindings()); err != nil {
			return imported, fmt.Errorf("import research: %w", err)
		}
	}
	return imported, nil
}

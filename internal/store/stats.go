package store

import (
	"context"
	"os"
	"time"
)

// Stats holds database statistics.
type Stats struct {
	DBPath              string         `json:"db_path"`
	DBSizeBytes         int64          `json:"db_size_bytes"`
	Users               int            `json:"users"`
	TotalConversations  int            `json:"total_conversations"`
	ActiveConversations int            `json:"active_conversations"`
	Messages            int            `json:"messages"`
	Findings            int            `json:"findings"`
	Sessions            []SessionStats `json:"sessions"`
}

// SessionStats holds per-user counts.
type SessionStats struct {
	UserID        string    `json:"user_id"`
	Turns         int       `json:"turns"`
	Conversations int       `json:"conversations"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, Sessions: []SessionStats{}}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	counts := []struct {
		dst   *int
		query string
	}{
		{&st.Users, `SELECT COUNT(*) FROM sessions`},
		{&st.TotalConversations, `SELECT COUNT(*) FROM conversations`},
		{&st.ActiveConversations, `SELECT COUNT(*) FROM conversations WHERE deleted_at IS NULL`},
		{&st.Messages, `SELECT COUNT(*) FROM messages`},
		{&st.Findings, `SELECT COUNT(*) FROM findings`},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return st, err
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.user_id, s.turns,
		       (SELECT COUNT(*) FROM conversations c WHERE c.user_id = s.user_id AND c.deleted_at IS NULL),
		       s.updated_at
		FROM sessions s ORDER BY s.updated_at DESC, s.user_id`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ss SessionStats
		var updatedAt string
		if err := rows.Scan(&ss.UserID, &ss.Turns, &ss.Conversations, &updatedAt); err != nil {
			return st, err
		}
		ss.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		st.Sessions = append(st.Sessions, ss)
	}

	return st, rows.Err()
}

package store

import (
	"context"
	"strings"

	"github.com/rcliao/companion/internal/model"
)

// SearchConversations finds conversations whose message or response
// contains the query substring, newest first. Matching is case-insensitive
// for ASCII.
func (s *SQLiteStore) SearchConversations(ctx context.Context, p SearchParams) ([]model.Conversation, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	pattern := "%" + escapeLike(p.Query) + "%"

	where := []string{"deleted_at IS NULL", `(message LIKE ? ESCAPE '\' OR response LIKE ? ESCAPE '\')`}
	args := []any{pattern, pattern}
	if p.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, p.UserID)
	}
	args = append(args, limit)

	query := `SELECT id, user_id, message, response, sentiment, traits, created_at, deleted_at
	          FROM conversations WHERE ` + strings.Join(where, " AND ") + `
	          ORDER BY id DESC LIMIT ?`

	return s.queryConversations(ctx, query, args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/companion/internal/model"
	"github.com/rcliao/companion/internal/persona"
	"github.com/rcliao/companion/internal/privacy"
	"github.com/rcliao/companion/internal/style"
	"github.com/rcliao/companion/internal/traits"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID returns a ULID that sorts after every ID this store issued before.
func (s *SQLiteStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		user_id     TEXT PRIMARY KEY,
		profile     TEXT NOT NULL,
		persona     TEXT NOT NULL,
		turns       INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		seq         INTEGER NOT NULL,
		message     TEXT NOT NULL,
		analysis    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		UNIQUE (user_id, seq)
	);

	CREATE TABLE IF NOT EXISTS conversations (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		message     TEXT NOT NULL,
		response    TEXT NOT NULL,
		sentiment   REAL NOT NULL DEFAULT 0.5,
		traits      TEXT,
		created_at  TEXT NOT NULL,
		deleted_at  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, id);
	CREATE INDEX IF NOT EXISTS idx_conversations_deleted ON conversations(deleted_at);

	CREATE TABLE IF NOT EXISTS research (
		user_id       TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		age           INTEGER NOT NULL DEFAULT 0,
		location      TEXT NOT NULL DEFAULT '',
		researched_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS findings (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL REFERENCES research(user_id) ON DELETE CASCADE,
		seq            INTEGER NOT NULL,
		type           TEXT NOT NULL,
		platform       TEXT NOT NULL,
		content        TEXT NOT NULL,
		privacy_risk   TEXT NOT NULL,
		recommendation TEXT NOT NULL,
		discovered_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_findings_user ON findings(user_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteStore) SaveTurn(ctx context.Context, p TurnParams) (*model.Conversation, error) {
	if p.UserID == "" {
		return nil, errors.New("user id is required")
	}
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := upsertSession(ctx, tx, p.UserID, p.Profile, p.Persona, 1, "turns + 1", now); err != nil {
		return nil, err
	}
	if err := s.insertMessage(ctx, tx, p.UserID, p.Entry, now); err != nil {
		return nil, err
	}

	c := &model.Conversation{
		ID:        s.newID(),
		UserID:    p.UserID,
		Message:   p.Entry.Message,
		Response:  p.Response,
		Sentiment: p.Sentiment,
		Traits:    p.Traits,
		CreatedAt: now.Truncate(time.Second),
	}
	if _, err := insertConversation(ctx, tx, "INSERT", c); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return c, nil
}

// upsertSession writes the session row. A new row starts at turns; an
// existing row takes the SQL expression turnsExpr.
func upsertSession(ctx context.Context, ex execer, userID string, profile style.Profile, snap persona.Snapshot, turns int, turnsExpr string, now time.Time) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	personaJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode persona: %w", err)
	}
	ts := now.Format(time.RFC3339)

	_, err = ex.ExecContext(ctx, `
		INSERT INTO sessions (user_id, profile, persona, turns, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			profile = excluded.profile,
			persona = excluded.persona,
			turns = `+turnsExpr+`,
			updated_at = excluded.updated_at`,
		userID, string(profileJSON), string(personaJSON), turns, ts, ts)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) insertMessage(ctx context.Context, ex execer, userID string, e style.Entry, now time.Time) error {
	analysisJSON, err := json.Marshal(e.Analysis)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	_, err = ex.ExecContext(ctx,
		`INSERT INTO messages (id, user_id, seq, message, analysis, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.newID(), userID, e.Seq, e.Message, string(analysisJSON), now.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert message %d: %w", e.Seq, err)
	}
	return nil
}

// insertConversation writes c using verb, which is "INSERT" or
// "INSERT OR IGNORE", and reports whether a row was written.
func insertConversation(ctx context.Context, ex execer, verb string, c *model.Conversation) (bool, error) {
	var traitsJSON *string
	if len(c.Traits) > 0 {
		b, err := json.Marshal(c.Traits)
		if err != nil {
			return false, fmt.Errorf("encode traits: %w", err)
		}
		s := string(b)
		traitsJSON = &s
	}
	var deletedAt *string
	if c.DeletedAt != nil {
		d := c.DeletedAt.UTC().Format(time.RFC3339)
		deletedAt = &d
	}

	res, err := ex.ExecContext(ctx,
		verb+` INTO conversations (id, user_id, message, response, sentiment, traits, created_at, deleted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Message, c.Response, c.Sentiment, traitsJSON,
		c.CreatedAt.UTC().Format(time.RFC3339), deletedAt)
	if err != nil {
		return false, fmt.Errorf("insert conversation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) LoadSession(ctx context.Context, userID string) (*model.Session, error) {
	var profileJSON, personaJSON, createdAt, updatedAt string
	sess := &model.Session{UserID: userID}

	err := s.db.QueryRowContext(ctx,
		`SELECT profile, persona, turns, created_at, updated_at FROM sessions WHERE user_id = ?`, userID).
		Scan(&profileJSON, &personaJSON, &sess.Turns, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %q: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	sess.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	sess.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	if err := json.Unmarshal([]byte(profileJSON), &sess.Profile); err != nil {
		return nil, invalid(userID, "profile", err)
	}
	if err := sess.Profile.Validate(); err != nil {
		return nil, invalid(userID, "profile", err)
	}
	if err := json.Unmarshal([]byte(personaJSON), &sess.Persona); err != nil {
		return nil, invalid(userID, "persona", err)
	}
	if err := sess.Persona.Validate(); err != nil {
		return nil, invalid(userID, "persona", err)
	}
	if sess.Turns < 0 {
		return nil, invalid(userID, "turns", fmt.Errorf("negative count %d", sess.Turns))
	}

	sess.History, err = s.loadHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SQLiteStore) loadHistory(ctx context.Context, userID string) ([]style.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, message, analysis FROM messages WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []style.Entry{}
	for rows.Next() {
		var e style.Entry
		var analysisJSON string
		if err := rows.Scan(&e.Seq, &e.Message, &analysisJSON); err != nil {
			return nil, err
		}
		if e.Seq != len(history) {
			return nil, invalid(userID, "history", fmt.Errorf("entry %d has seq %d", len(history), e.Seq))
		}
		if err := json.Unmarshal([]byte(analysisJSON), &e.Analysis); err != nil {
			return nil, invalid(userID, "history", err)
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

func invalid(userID, what string, err error) error {
	return fmt.Errorf("%w: user %q %s: %w", ErrInvalidState, userID, what, err)
}

func (s *SQLiteStore) ListConversations(ctx context.Context, p ListParams) ([]model.Conversation, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"deleted_at IS NULL"}
	args := []any{}
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

func (s *SQLiteStore) queryConversations(ctx context.Context, query string, args ...any) ([]model.Conversation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveResearch(ctx context.Context, userID string, subject privacy.UserInfo, findings []privacy.Finding) (*model.Research, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	for _, f := range findings {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	ts := now.Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM findings WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("clear findings: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO research (user_id, name, age, location, researched_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name, age = excluded.age, location = excluded.location,
			researched_at = excluded.researched_at`,
		userID, subject.Name, subject.Age, subject.Location, ts)
	if err != nil {
		return nil, fmt.Errorf("upsert research: %w", err)
	}

	r := &model.Research{
		UserID:       userID,
		Subject:      subject,
		Findings:     make([]model.Finding, 0, len(findings)),
		ResearchedAt: now.Truncate(time.Second),
	}
	for i, f := range findings {
		mf := model.Finding{ID: s.newID(), Finding: f, DiscoveredAt: r.ResearchedAt}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO findings (id, user_id, seq, type, platform, content, privacy_risk, recommendation, discovered_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			mf.ID, userID, i, f.Type, f.Platform, f.Content, string(f.Risk), f.Recommendation, ts)
		if err != nil {
			return nil, fmt.Errorf("insert finding: %w", err)
		}
		r.Findings = append(r.Findings, mf)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *SQLiteStore) LoadResearch(ctx context.Context, userID string) (*model.Research, error) {
	r := &model.Research{UserID: userID, Findings: []model.Finding{}}
	var researchedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, age, location, researched_at FROM research WHERE user_id = ?`, userID).
		Scan(&r.Subject.Name, &r.Subject.Age, &r.Subject.Location, &researchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("research for %q: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	r.ResearchedAt, _ = time.Parse(time.RFC3339, researchedAt)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, platform, content, privacy_risk, recommendation, discovered_at
		FROM findings WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.Finding
		var risk, discoveredAt string
		if err := rows.Scan(&f.ID, &f.Type, &f.Platform, &f.Content, &risk, &f.Recommendation, &discoveredAt); err != nil {
			return nil, err
		}
		if f.Risk, err = privacy.ParseRisk(risk); err != nil {
			return nil, invalid(userID, "finding "+f.ID, err)
		}
		f.DiscoveredAt, _ = time.Parse(time.RFC3339, discoveredAt)
		r.Findings = append(r.Findings, f)
	}
	return r, rows.Err()
}

func (s *SQLiteStore) Reset(ctx context.Context, p ResetParams) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM sessions WHERE user_id = ?`,
		`DELETE FROM messages WHERE user_id = ?`,
	}
	args := [][]any{{p.UserID}, {p.UserID}}
	if p.Hard {
		stmts = append(stmts,
			`DELETE FROM conversations WHERE user_id = ?`,
			`DELETE FROM findings WHERE user_id = ?`,
			`DELETE FROM research WHERE user_id = ?`,
		)
		args = append(args, []any{p.UserID}, []any{p.UserID}, []any{p.UserID})
	} else {
		now := time.Now().UTC().Format(time.RFC3339)
		stmts = append(stmts, `UPDATE conversations SET deleted_at = ? WHERE user_id = ? AND deleted_at IS NULL`)
		args = append(args, []any{now, p.UserID})
	}

	for i, q := range stmts {
		if _, err := tx.ExecContext(ctx, q, args[i]...); err != nil {
			return fmt.Errorf("reset %q: %w", p.UserID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversation(row scanner) (model.Conversation, error) {
	var c model.Conversation
	var traitsJSON, deletedAt sql.NullString
	var createdAt string

	err := row.Scan(&c.ID, &c.UserID, &c.Message, &c.Response, &c.Sentiment,
		&traitsJSON, &createdAt, &deletedAt)
	if err != nil {
		return c, err
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		c.DeletedAt = &t
	}
	if traitsJSON.Valid {
		var scores traits.Scores
		if err := json.Unmarshal([]byte(traitsJSON.String), &scores); err != nil {
			return c, invalid(c.UserID, "conversation "+c.ID, err)
		}
		c.Traits = scores
	}
	return c, nil
}

package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/afklabs/afk-responder/internal/biz/domain"
	"github.com/afklabs/afk-responder/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// settingsRepo persists the settings record in sqlite: one settings row
// plus an interactions table, rewritten together in a transaction so the
// record round-trips as a single unit.
type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo opens (and migrates) the settings database.
func NewSettingsRepo(dbPath string) (repo.SettingsRepo, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			is_listening INTEGER NOT NULL,
			language TEXT NOT NULL,
			age INTEGER NOT NULL,
			gender_phrase TEXT NOT NULL,
			use_swearing INTEGER NOT NULL,
			make_jokes INTEGER NOT NULL,
			can_insult INTEGER NOT NULL,
			suffix TEXT NOT NULL,
			model_name TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS interactions (
			sender_id TEXT PRIMARY KEY,
			display_name TEXT NOT NULL,
			origin_link TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			ts TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create interactions table: %w", err)
	}

	return &settingsRepo{db: db}, nil
}

// Load returns the persisted record, or nil when none exists.
func (r *settingsRepo) Load(ctx context.Context) (*domain.Settings, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT is_listening, language, age, gender_phrase, use_swearing, make_jokes, can_insult, suffix, model_name
		FROM settings WHERE id = 1
	`)

	var s domain.Settings
	var listening, swearing, jokes, insult int
	err := row.Scan(&listening, &s.Language, &s.Persona.Age, &s.Persona.GenderPhrase,
		&swearing, &jokes, &insult, &s.Persona.Suffix, &s.ModelName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	s.IsListening = listening != 0
	s.Persona.UseSwearing = swearing != 0
	s.Persona.MakeJokes = jokes != 0
	s.Persona.CanInsult = insult != 0

	rows, err := r.db.QueryContext(ctx, `
		SELECT sender_id, display_name, origin_link, kind, ts FROM interactions
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	s.Ledger = make(map[string]domain.Interaction)
	for rows.Next() {
		var id string
		var in domain.Interaction
		if err := rows.Scan(&id, &in.DisplayName, &in.OriginLink, &in.Kind, &in.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		s.Ledger[id] = in
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interactions: %w", err)
	}

	return &s, nil
}

// Save rewrites the whole record in one transaction.
func (r *settingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings
			(id, is_listening, language, age, gender_phrase, use_swearing, make_jokes, can_insult, suffix, model_name)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		boolToInt(s.IsListening), s.Language, s.Persona.Age, s.Persona.GenderPhrase,
		boolToInt(s.Persona.UseSwearing), boolToInt(s.Persona.MakeJokes), boolToInt(s.Persona.CanInsult),
		s.Persona.Suffix, s.ModelName,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings row: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM interactions`); err != nil {
		return fmt.Errorf("failed to clear interactions: %w", err)
	}
	for id, in := range s.Ledger {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO interactions (sender_id, display_name, origin_link, kind, ts)
			VALUES (?, ?, ?, ?, ?)
		`, id, in.DisplayName, in.OriginLink, in.Kind, in.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to save interaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *settingsRepo) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

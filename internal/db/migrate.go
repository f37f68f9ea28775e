package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS conversations (
		id                TEXT PRIMARY KEY,
		category          TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'active'
		                  CHECK(status IN ('active','completed')),
		pending_question  TEXT NOT NULL DEFAULT '',
		completion_reason TEXT NOT NULL DEFAULT '',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL,
		completed_at      TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_conversations_status ON conversations(status)`,
	`CREATE INDEX IF NOT EXISTS idx_conversations_updated ON conversations(updated_at)`,

	`CREATE TABLE IF NOT EXISTS conversation_tokens (
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		token           TEXT NOT NULL,
		marker          TEXT NOT NULL CHECK(marker IN ('present','answered')),
		PRIMARY KEY (conversation_id, token)
	)`,

	`CREATE TABLE IF NOT EXISTS answers (
		id              TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		seq             INTEGER NOT NULL,
		question_key    TEXT NOT NULL,
		choice_index    INTEGER NOT NULL CHECK(choice_index > 0),
		choice          TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		UNIQUE (conversation_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_answers_conversation ON answers(conversation_id)`,
}

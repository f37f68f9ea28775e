package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/domain"
)

// SQLiteAnswerRepo is the append-only answer log of a conversation.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

// Append stores a with the next sequence number of its conversation.
func (r *SQLiteAnswerRepo) Append(ctx context.Context, a *domain.AnswerRecord) error {
	query := `INSERT INTO answers (id, conversation_id, seq, question_key, choice_index, choice, created_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM answers WHERE conversation_id = ?), ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ConversationID,
		a.ConversationID,
		string(a.QuestionKey),
		a.ChoiceIndex,
		a.Choice,
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting answer: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) ListByConversation(ctx context.Context, conversationID string) ([]domain.AnswerRecord, error) {
	query := `SELECT id, conversation_id, question_key, choice_index, choice, created_at
		FROM answers WHERE conversation_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.AnswerRecord
	for rows.Next() {
		var a domain.AnswerRecord
		var key, createdAtStr string
		if err := rows.Scan(&a.ID, &a.ConversationID, &key, &a.ChoiceIndex, &a.Choice, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		a.QuestionKey = domain.QuestionKey(key)
		if a.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}

func (r *SQLiteAnswerRepo) CountByConversation(ctx context.Context, conversationID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM answers WHERE conversation_id = ?`, conversationID).Scan(&n)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("counting answers: %w", err)
	}
	return n, nil
}

func (r *SQLiteAnswerRepo) DeleteByConversation(ctx context.Context, conversationID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE conversation_id = ?`, conversationID); err != nil {
		return fmt.Errorf("deleting answers: %w", err)
	}
	return nil
}

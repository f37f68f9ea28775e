package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/domain"
)

// SQLiteConversationRepo stores conversations and their state markers.
// The state lives in conversation_tokens, one row per token.
type SQLiteConversationRepo struct {
	db db.DBTX
}

func NewSQLiteConversationRepo(conn db.DBTX) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: conn}
}

const conversationColumns = `id, category, status, pending_question, completion_reason,
	created_at, updated_at, completed_at`

func (r *SQLiteConversationRepo) Create(ctx context.Context, c *domain.Conversation) error {
	query := `INSERT INTO conversations (` + conversationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		string(c.Category),
		string(c.Status),
		string(c.PendingQuestion),
		c.CompletionReason,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
		nullableTimeToString(c.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting conversation: %w", err)
	}
	return r.writeState(ctx, c.ID, c.State)
}

func (r *SQLiteConversationRepo) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = ?`
	c, err := r.scanConversation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if c.State, err = r.readState(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteConversationRepo) List(ctx context.Context, f ConversationFilter) ([]*domain.Conversation, error) {
	var where []string
	var args []any
	if f.Status != nil {
		where = append(where, "status = ?")
		args = append(args, string(*f.Status))
	}
	if f.UpdatedBefore != nil {
		where = append(where, "updated_at < ?")
		args = append(args, formatTime(*f.UpdatedBefore))
	}

	query := `SELECT ` + conversationColumns + ` FROM conversations`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	convs, err := r.scanConversations(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	// State is loaded after the cursor is closed; an in-memory database
	// has a single connection.
	for _, c := range convs {
		if c.State, err = r.readState(ctx, c.ID); err != nil {
			return nil, err
		}
	}
	return convs, nil
}

func (r *SQLiteConversationRepo) Update(ctx context.Context, c *domain.Conversation) error {
	query := `UPDATE conversations SET category = ?, status = ?, pending_question = ?,
		completion_reason = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(c.Category),
		string(c.Status),
		string(c.PendingQuestion),
		c.CompletionReason,
		formatTime(c.UpdatedAt),
		nullableTimeToString(c.CompletedAt),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating conversation: %w", err)
	}
	if err := requireAffected(res, "conversation"); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversation_tokens WHERE conversation_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clearing conversation state: %w", err)
	}
	return r.writeState(ctx, c.ID, c.State)
}

func (r *SQLiteConversationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}
	return requireAffected(res, "conversation")
}

func (r *SQLiteConversationRepo) writeState(ctx context.Context, id string, state domain.ConversationState) error {
	for token, marker := range state.Markers() {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO conversation_tokens (conversation_id, token, marker) VALUES (?, ?, ?)`,
			id, string(token), string(marker))
		if err != nil {
			return fmt.Errorf("inserting conversation token %s: %w", token, err)
		}
	}
	return nil
}

func (r *SQLiteConversationRepo) readState(ctx context.Context, id string) (domain.ConversationState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT token, marker FROM conversation_tokens WHERE conversation_id = ?`, id)
	if err != nil {
		return domain.ConversationState{}, fmt.Errorf("loading conversation state: %w", err)
	}
	defer rows.Close()

	markers := make(map[domain.SymptomToken]domain.Marker)
	for rows.Next() {
		var token, marker string
		if err := rows.Scan(&token, &marker); err != nil {
			return domain.ConversationState{}, fmt.Errorf("scanning conversation token: %w", err)
		}
		markers[domain.SymptomToken(token)] = domain.Marker(marker)
	}
	if err := rows.Err(); err != nil {
		return domain.ConversationState{}, fmt.Errorf("iterating conversation tokens: %w", err)
	}
	return domain.StateFromMarkers(markers), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteConversationRepo) scanConversation(row *sql.Row) (*domain.Conversation, error) {
	c, err := r.scanInto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("conversation: %w", ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteConversationRepo) scanConversations(rows *sql.Rows) ([]*domain.Conversation, error) {
	var convs []*domain.Conversation
	for rows.Next() {
		c, err := r.scanInto(rows)
		if err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversations: %w", err)
	}
	return convs, nil
}

func (r *SQLiteConversationRepo) scanInto(s rowScanner) (*domain.Conversation, error) {
	var c domain.Conversation
	var category, status, pending string
	var createdAtStr, updatedAtStr string
	var completedAtStr sql.NullString

	err := s.Scan(&c.ID, &category, &status, &pending, &c.CompletionReason,
		&createdAtStr, &updatedAtStr, &completedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning conversation: %w", err)
	}

	c.Category = domain.CategoryHint(category)
	c.Status = domain.ConversationStatus(status)
	c.PendingQuestion = domain.QuestionKey(pending)
	if c.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	if c.CompletedAt, err = parseNullableTime(completedAtStr, "completed_at"); err != nil {
		return nil, err
	}
	return &c, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

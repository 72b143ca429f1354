// Package session keeps per-user conversation state: a bounded message
// window and the pending operation held while the bot waits for a
// clarification.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"estoquebot/domain"
)

// Store persists conversation state keyed by the sender JID.
type Store struct {
	db          *sqlx.DB
	maxMessages int
}

// New constructs a Store with a sliding window of maxMessages entries.
func New(db *sqlx.DB, maxMessages int) *Store {
	if maxMessages <= 0 {
		maxMessages = 10
	}
	return &Store{db: db, maxMessages: maxMessages}
}

// History returns the user's window in chronological order.
func (s *Store) History(ctx context.Context, userJID string) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	err := s.db.SelectContext(ctx, &messages,
		`SELECT id, user_jid, role, content FROM chat_history
         WHERE user_jid = ? ORDER BY id DESC LIMIT ?`, userJID, s.maxMessages)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	// Fetched newest-first; flip to chronological.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Append stores one turn and evicts the oldest entries beyond the window.
func (s *Store) Append(ctx context.Context, userJID, role, content string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_history (user_jid, role, content) VALUES (?, ?, ?)`,
		userJID, role, content); err != nil {
		return fmt.Errorf("append message: %w", err)
	}

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM chat_history WHERE user_jid = ? AND id NOT IN (
            SELECT id FROM chat_history WHERE user_jid = ? ORDER BY id DESC LIMIT ?
         )`, userJID, userJID, s.maxMessages)
	if err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

// Pending returns the held, unresolved message for the user, or "".
func (s *Store) Pending(ctx context.Context, userJID string) (string, error) {
	var message string
	err := s.db.GetContext(ctx, &message,
		`SELECT message FROM pending_operations WHERE user_jid = ?`, userJID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load pending operation: %w", err)
	}
	return message, nil
}

// SetPending holds a message until a follow-up resolves it. There is no
// expiry; the entry stays until cleared.
func (s *Store) SetPending(ctx context.Context, userJID, message string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pending_operations (user_jid, message) VALUES (?, ?)
         ON CONFLICT(user_jid) DO UPDATE SET message = excluded.message, created_at = CURRENT_TIMESTAMP`,
		userJID, message)
	if err != nil {
		return fmt.Errorf("set pending operation: %w", err)
	}
	return nil
}

// ClearPending drops the held message once an interpretation succeeds.
func (s *Store) ClearPending(ctx context.Context, userJID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM pending_operations WHERE user_jid = ?`, userJID); err != nil {
		return fmt.Errorf("clear pending operation: %w", err)
	}
	return nil
}

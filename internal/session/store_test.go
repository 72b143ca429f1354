package session

import (
	"context"
	"fmt"
	"testing"

	"estoquebot/domain"
	"estoquebot/internal/database"
	"estoquebot/internal/migrations"
)

func newTestStore(t *testing.T, window int) *Store {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)
	return New(db, window)
}

func TestHistory_WindowAndOrder(t *testing.T) {
	s := newTestStore(t, 4)
	ctx := context.Background()
	jid := "5511999999999@s.whatsapp.net"

	for i := 1; i <= 7; i++ {
		role := domain.RoleUser
		if i%2 == 0 {
			role = domain.RoleAssistant
		}
		if err := s.Append(ctx, jid, role, fmt.Sprintf("mensagem %d", i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	history, err := s.History(ctx, jid)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected window of 4 messages, got %d", len(history))
	}
	for i, m := range history {
		want := fmt.Sprintf("mensagem %d", i+4)
		if m.Content != want {
			t.Errorf("position %d: expected %q, got %q", i, want, m.Content)
		}
	}
}

func TestHistory_IsolatedPerUser(t *testing.T) {
	s := newTestStore(t, 10)
	ctx := context.Background()

	if err := s.Append(ctx, "a@s.whatsapp.net", domain.RoleUser, "oi"); err != nil {
		t.Fatalf("append: %v", err)
	}

	history, err := s.History(ctx, "b@s.whatsapp.net")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("expected empty history for another user, got %d messages", len(history))
	}
}

func TestPending_Lifecycle(t *testing.T) {
	s := newTestStore(t, 10)
	ctx := context.Background()
	jid := "5511999999999@s.whatsapp.net"

	pending, err := s.Pending(ctx, jid)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending != "" {
		t.Errorf("expected no pending message, got %q", pending)
	}

	if err := s.SetPending(ctx, jid, "comprei 10 frascos"); err != nil {
		t.Fatalf("set pending: %v", err)
	}
	if err := s.SetPending(ctx, jid, "comprei 10 frascos de 1Drop"); err != nil {
		t.Fatalf("overwrite pending: %v", err)
	}

	pending, err = s.Pending(ctx, jid)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending != "comprei 10 frascos de 1Drop" {
		t.Errorf("expected the latest held message, got %q", pending)
	}

	if err := s.ClearPending(ctx, jid); err != nil {
		t.Fatalf("clear pending: %v", err)
	}
	pending, err = s.Pending(ctx, jid)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending != "" {
		t.Errorf("expected cleared pending state, got %q", pending)
	}
}

package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a per-user conversation window.
type ChatMessage struct {
	ID      int64  `db:"id" json:"id"`
	UserJID string `db:"user_jid" json:"user_jid"`
	Role    string `db:"role" json:"role"`
	Content string `db:"content" json:"content"`
}

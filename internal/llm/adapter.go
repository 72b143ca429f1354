package llm

import "context"

// LegacyClient exposes the old single-string call shape the bot was written
// against, on top of the current Client. The upstream SDK moved the choices
// array around between major versions; callers here only ever want the
// first message content.
type LegacyClient struct {
	client *Client
}

// NewLegacyClient wraps a Client in the legacy call pattern.
func NewLegacyClient(client *Client) *LegacyClient {
	return &LegacyClient{client: client}
}

// CreateChatCompletion runs a completion and returns the first choice's
// content, mirroring choices[0].message.content in the legacy shape.
func (l *LegacyClient) CreateChatCompletion(ctx context.Context, messages []Message) (string, error) {
	resp, err := l.client.Complete(ctx, messages)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "Não entendi...", nil
	}
	return resp.Choices[0].Message.Content, nil
}

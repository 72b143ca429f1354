// Package bot ties one incoming WhatsApp message to the full pipeline:
// conversation history, LLM call, command extraction and execution, reply.
package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"estoquebot/domain"
	"estoquebot/internal/command"
	"estoquebot/internal/llm"
	"estoquebot/internal/session"
	"estoquebot/internal/store"
)

// Reply texts. Errors never cross the WhatsApp boundary as codes, only as
// human-readable Portuguese.
const (
	replyGenericError   = "Desculpe, ocorreu um erro ao processar sua solicitação."
	replyInvalidCommand = "Não consegui interpretar o comando gerado. Pode reformular a mensagem?"
	replyNoOperation    = "Nenhuma operação de banco de dados foi solicitada."
)

// ChatModel is the completion call the responder depends on; satisfied by
// llm.LegacyClient and by the test fake.
type ChatModel interface {
	CreateChatCompletion(ctx context.Context, messages []llm.Message) (string, error)
}

// Responder handles one inbound text end to end.
type Responder struct {
	model    ChatModel
	sessions *session.Store
	store    *store.Store
	log      zerolog.Logger
}

// NewResponder wires the pipeline dependencies.
func NewResponder(model ChatModel, sessions *session.Store, st *store.Store, log zerolog.Logger) *Responder {
	return &Responder{model: model, sessions: sessions, store: st, log: log}
}

// HandleText runs the pipeline for one message and returns the reply text.
// Every failure is absorbed into a reply; nothing propagates to the
// transport.
func (r *Responder) HandleText(ctx context.Context, userJID, text string) string {
	// A held pending operation means we asked for a missing field; the new
	// message is the clarification and both are reinterpreted together.
	pending, err := r.sessions.Pending(ctx, userJID)
	if err != nil {
		r.log.Error().Err(err).Str("jid", userJID).Msg("pending lookup failed")
	}
	input := text
	if pending != "" {
		input = pending + "\n" + text
	}

	history, err := r.sessions.History(ctx, userJID)
	if err != nil {
		r.log.Error().Err(err).Str("jid", userJID).Msg("history load failed")
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: llm.SystemPrompt})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: domain.RoleUser, Content: input})

	completion, err := r.model.CreateChatCompletion(ctx, messages)
	if err != nil {
		r.log.Error().Err(err).Str("jid", userJID).Msg("chat completion failed")
		return replyGenericError
	}

	reply := r.interpret(ctx, userJID, input, completion)

	if err := r.sessions.Append(ctx, userJID, domain.RoleUser, text); err != nil {
		r.log.Error().Err(err).Str("jid", userJID).Msg("history append failed")
	}
	if err := r.sessions.Append(ctx, userJID, domain.RoleAssistant, reply); err != nil {
		r.log.Error().Err(err).Str("jid", userJID).Msg("history append failed")
	}
	return reply
}

// interpret extracts and executes the command block inside the completion,
// mapping the error taxonomy onto reply texts and driving the pending
// clarification state.
func (r *Responder) interpret(ctx context.Context, userJID, input, completion string) string {
	raw := command.Extract(completion)
	if raw == "" {
		// No command block: the model's own text is the reply.
		return completion
	}

	cmd, err := command.Parse(command.Normalize(raw))
	if err != nil {
		r.log.Warn().Err(err).Str("jid", userJID).Msg("unparseable command block")
		return replyInvalidCommand
	}
	if cmd.IsNoop() {
		if text := withoutBlock(completion, raw); text != "" {
			return text
		}
		return replyNoOperation
	}

	result, err := r.store.Execute(ctx, cmd)
	if err != nil {
		return r.phraseFailure(ctx, userJID, input, err)
	}

	if err := r.sessions.ClearPending(ctx, userJID); err != nil {
		r.log.Error().Err(err).Str("jid", userJID).Msg("pending clear failed")
	}
	return result
}

func (r *Responder) phraseFailure(ctx context.Context, userJID, input string, err error) string {
	var missing *store.MissingFieldError
	if errors.As(err, &missing) {
		// Hold the combined message; the next one resolves it.
		if err := r.sessions.SetPending(ctx, userJID, input); err != nil {
			r.log.Error().Err(err).Str("jid", userJID).Msg("pending save failed")
		}
		return fmt.Sprintf("Faltou informar o campo %s. Pode me dizer?", fieldLabel(missing.Field))
	}

	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("Não encontrei %s %q no cadastro.", notFound.Entity, notFound.Name)
	}

	if errors.Is(err, store.ErrWhereRequired) {
		return "Essa operação precisa de um filtro (WHERE) para não atingir a tabela inteira."
	}

	var unknownTable *store.UnknownTableError
	var unknownColumn *store.UnknownColumnError
	if errors.As(err, &unknownTable) || errors.As(err, &unknownColumn) {
		r.log.Warn().Err(err).Str("jid", userJID).Msg("command referenced unknown identifier")
		return replyInvalidCommand
	}

	r.log.Error().Err(err).Str("jid", userJID).Msg("command execution failed")
	return replyGenericError
}

var fieldLabels = map[string]string{
	"full_name":      "nome completo do paciente",
	"brand":          "marca do produto",
	"product_name":   "nome do produto",
	"quantity":       "quantidade",
	"operation_type": "tipo de operação (ENTRADA ou SAÍDA)",
	"patient_name":   "nome do paciente",
	"fields":         "valores a alterar",
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

package chat

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	chatmodel "github.com/rraja/portfolio/backend/internal/model/chat"
	"github.com/rraja/portfolio/backend/internal/store"
)

var (
	ErrMessageRequired = errors.New("message is required")
	ErrNotConfigured   = errors.New("chat generator is not configured")
)

// Generator produces one assistant reply from the conversation so far.
type Generator interface {
	GenerateReply(ctx context.Context, sessionID string, history []chatmodel.Turn, userMessage string) (string, error)
}

// Service turns one visitor utterance into one assistant reply, preserving
// conversation continuity through the external store.
type Service struct {
	generator Generator
	turns     store.ConversationStore
}

// NewService wires the generator and conversation store. A nil generator
// marks the service as unconfigured; Respond then fails with
// ErrNotConfigured before any provider call.
func NewService(generator Generator, turns store.ConversationStore) *Service {
	return &Service{generator: generator, turns: turns}
}

// Reply is the caller-visible outcome of one chat exchange.
type Reply struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

// Respond generates a reply for the message. A missing sessionID gets a
// server-generated fallback so the chat stays usable without continuity.
//
// History fetch and turn persistence are best-effort: their failures are
// logged and never alter the reply. Generation is the primary operation and
// fails loud.
func (s *Service) Respond(ctx context.Context, sessionID, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrMessageRequired
	}

	if s.generator == nil {
		return Reply{}, ErrNotConfigured
	}

	if strings.TrimSpace(sessionID) == "" {
		sessionID = uuid.NewString()
		log.Printf("[chat] no sessionId supplied, generated fallback %s", sessionID)
	}

	var history []chatmodel.Turn
	if s.turns != nil {
		fetched, err := s.turns.History(ctx, sessionID)
		if bestEffort("history fetch", err) {
			history = fetched
		}
	}

	text, err := s.generator.GenerateReply(ctx, sessionID, history, message)
	if err != nil {
		return Reply{}, err
	}

	if s.turns != nil {
		_, err := s.turns.SaveTurn(ctx, chatmodel.Turn{
			SessionID:   sessionID,
			UserMessage: message,
			BotResponse: text,
		})
		bestEffort("turn persist", err)
	}

	return Reply{Response: text, SessionID: sessionID}, nil
}

// bestEffort logs a secondary-operation failure and reports whether the
// operation succeeded.
func bestEffort(op string, err error) bool {
	if err != nil {
		log.Printf("[chat] best-effort %s failed: %v", op, err)
		return false
	}
	return true
}

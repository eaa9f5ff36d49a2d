package store

import (
	"context"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"github.com/rraja/portfolio/backend/internal/model/chat"
	"github.com/rraja/portfolio/backend/internal/model/contact"
)

const (
	conversationTable = "chat_conversations"
	messageTable      = "messages"
)

// SupabaseConfig holds Supabase connection configuration.
type SupabaseConfig struct {
	URL    string
	APIKey string
}

// Supabase implements ConversationStore and ContactStore against the
// project's PostgREST endpoint.
type Supabase struct {
	client *supabase.Client
}

var (
	_ ConversationStore = (*Supabase)(nil)
	_ ContactStore      = (*Supabase)(nil)
)

// NewSupabase creates a store backed by the given Supabase project.
func NewSupabase(cfg SupabaseConfig) (*Supabase, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}

	client, err := supabase.NewClient(cfg.URL, cfg.APIKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &Supabase{client: client}, nil
}

// conversationRow mirrors the chat_conversations table.
type conversationRow struct {
	ID          string    `json:"id,omitempty"`
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	CreatedAt   time.Time `json:"created_at"`
}

// conversationInsert omits the columns the database populates.
type conversationInsert struct {
	SessionID   string `json:"session_id"`
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
}

// History reads all turns for the session ordered oldest first.
func (s *Supabase) History(ctx context.Context, sessionID string) ([]chat.Turn, error) {
	var rows []conversationRow
	_, err := s.client.From(conversationTable).
		Select("*", "", false).
		Eq("session_id", sessionID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, &CollaboratorError{Op: "fetch conversation history", Details: err.Error(), Err: err}
	}

	turns := make([]chat.Turn, 0, len(rows))
	for _, row := range rows {
		turns = append(turns, chat.Turn{
			ID:          row.ID,
			SessionID:   row.SessionID,
			UserMessage: row.UserMessage,
			BotResponse: row.AIResponse,
			CreatedAt:   row.CreatedAt,
		})
	}
	return turns, nil
}

// SaveTurn inserts one completed exchange.
func (s *Supabase) SaveTurn(ctx context.Context, turn chat.Turn) (chat.Turn, error) {
	payload := conversationInsert{
		SessionID:   turn.SessionID,
		UserMessage: turn.UserMessage,
		AIResponse:  turn.BotResponse,
	}

	var rows []conversationRow
	_, err := s.client.From(conversationTable).
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return chat.Turn{}, &CollaboratorError{Op: "save chat turn", Details: err.Error(), Err: err}
	}

	if len(rows) > 0 {
		turn.ID = rows[0].ID
		turn.CreatedAt = rows[0].CreatedAt
	}
	return turn, nil
}

// messageRow mirrors the messages table used by the contact form.
type messageRow struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type messageInsert struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

// Insert persists one contact submission with read defaulted to false.
func (s *Supabase) Insert(ctx context.Context, sub contact.Submission) (contact.Submission, error) {
	payload := messageInsert{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
		Read:    false,
	}

	var rows []messageRow
	_, err := s.client.From(messageTable).
		Insert(payload, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return contact.Submission{}, &CollaboratorError{Op: "insert contact submission", Details: err.Error(), Err: err}
	}

	if len(rows) > 0 {
		sub.ID = rows[0].ID
		sub.Read = rows[0].Read
		sub.CreatedAt = rows[0].CreatedAt
	}
	return sub, nil
}

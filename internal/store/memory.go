package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rraja/portfolio/backend/internal/model/chat"
	"github.com/rraja/portfolio/backend/internal/model/contact"
)

// Memory keeps conversations and submissions in process memory. It backs
// local development and tests where no Supabase project is configured.
type Memory struct {
	mu          sync.RWMutex
	turns       map[string][]chat.Turn
	submissions []contact.Submission
}

// NewMemory bootstraps an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		turns: make(map[string][]chat.Turn),
	}
}

var (
	_ ConversationStore = (*Memory)(nil)
	_ ContactStore      = (*Memory)(nil)
)

// History returns a copy of the stored turns for the session, oldest first.
func (m *Memory) History(_ context.Context, sessionID string) ([]chat.Turn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	turns := m.turns[sessionID]
	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	return copied, nil
}

// SaveTurn appends a turn to the session history.
func (m *Memory) SaveTurn(_ context.Context, turn chat.Turn) (chat.Turn, error) {
	turn.ID = uuid.NewString()
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	m.turns[turn.SessionID] = append(m.turns[turn.SessionID], turn)
	m.mu.Unlock()

	return turn, nil
}

// Insert records a contact submission. Duplicates are kept as-is.
func (m *Memory) Insert(_ context.Context, sub contact.Submission) (contact.Submission, error) {
	sub.ID = uuid.NewString()
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	m.submissions = append(m.submissions, sub)
	m.mu.Unlock()

	return sub, nil
}

// Submissions returns a snapshot of all stored contact submissions.
func (m *Memory) Submissions() []contact.Submission {
	m.mu.RLock()
	defer m.mu.RUnlock()

	copied := make([]contact.Submission, len(m.submissions))
	copy(copied, m.submissions)
	return copied
}

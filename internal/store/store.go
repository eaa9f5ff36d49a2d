package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rraja/portfolio/backend/internal/model/chat"
	"github.com/rraja/portfolio/backend/internal/model/contact"
)

var ErrNotConfigured = errors.New("store not configured")

// ConversationStore persists chat turns keyed by session.
type ConversationStore interface {
	// History returns all turns for the session ordered by creation time
	// ascending. An unknown session yields an empty slice, not an error.
	History(ctx context.Context, sessionID string) ([]chat.Turn, error)

	// SaveTurn records one completed exchange and returns it with the
	// store-assigned identifier and timestamp populated.
	SaveTurn(ctx context.Context, turn chat.Turn) (chat.Turn, error)
}

// ContactStore accepts contact form submissions.
type ContactStore interface {
	// Insert persists one submission and returns it with the generated
	// identifier populated. Retried identical submissions create distinct
	// records; there is no deduplication key.
	Insert(ctx context.Context, sub contact.Submission) (contact.Submission, error)
}

// CollaboratorError carries whatever diagnostics the external datastore or
// relay returned alongside a failed write. Code and Details are echoed from
// the collaborator when available and left empty otherwise.
type CollaboratorError struct {
	Op      string
	Code    string
	Details string
	Err     error
}

func (e *CollaboratorError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed (code %s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

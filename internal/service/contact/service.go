package contact

import (
	"context"
	"errors"
	"strings"

	contactmodel "github.com/rraja/portfolio/backend/internal/model/contact"
	"github.com/rraja/portfolio/backend/internal/store"
)

var ErrNotConfigured = errors.New("contact sink is not configured")

// Service accepts validated submissions and hands them to the configured
// sink (datastore insert or form relay; never both).
type Service struct {
	sink store.ContactStore
}

// NewService wires the active sink. A nil sink marks the service as
// unconfigured; Submit then fails before any network call.
func NewService(sink store.ContactStore) *Service {
	return &Service{sink: sink}
}

// Submit trims all four fields and delegates to the sink. The delegated
// values carry no leading or trailing whitespace.
func (s *Service) Submit(ctx context.Context, sub contactmodel.Submission) (contactmodel.Submission, error) {
	if s.sink == nil {
		return contactmodel.Submission{}, ErrNotConfigured
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)
	sub.Read = false

	return s.sink.Insert(ctx, sub)
}

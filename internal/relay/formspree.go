// Package relay forwards contact submissions to a hosted form-relay
// service (Formspree-compatible) instead of a datastore.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rraja/portfolio/backend/internal/model/contact"
	"github.com/rraja/portfolio/backend/internal/store"
)

// Client submits contact forms to a relay endpoint over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ store.ContactStore = (*Client)(nil)

// New creates a relay client for the given form endpoint,
// e.g. https://formspree.io/f/<form-id>.
func New(endpoint string) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("relay endpoint is required")
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type submitPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"_subject"`
	Message string `json:"message"`
}

type submitResult struct {
	Ok     bool   `json:"ok"`
	Next   string `json:"next"`
	Error  string `json:"error"`
	Errors []struct {
		Field   string `json:"field"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Insert forwards one submission to the relay. The relay does not return a
// record identifier, so one is generated locally for the caller's receipt.
func (c *Client) Insert(ctx context.Context, sub contact.Submission) (contact.Submission, error) {
	body, err := json.Marshal(submitPayload{
		Name:    sub.Name,
		Email:   sub.Email,
		Subject: sub.Subject,
		Message: sub.Message,
	})
	if err != nil {
		return contact.Submission{}, fmt.Errorf("encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return contact.Submission{}, fmt.Errorf("create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return contact.Submission{}, &store.CollaboratorError{Op: "relay submission", Details: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return contact.Submission{}, fmt.Errorf("read relay response: %w", err)
	}

	var result submitResult
	if len(raw) > 0 {
		// The relay may answer with plain text on hard failures; a decode
		// error is folded into the status check below.
		_ = json.Unmarshal(raw, &result)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (len(raw) > 0 && !result.Ok) {
		return contact.Submission{}, &store.CollaboratorError{
			Op:      "relay submission",
			Code:    fmt.Sprintf("%d", resp.StatusCode),
			Details: relayErrorDetails(result, raw),
			Err:     fmt.Errorf("relay rejected submission with status %d", resp.StatusCode),
		}
	}

	sub.ID = "relay_" + uuid.NewString()
	sub.CreatedAt = time.Now().UTC()
	return sub, nil
}

func relayErrorDetails(result submitResult, raw []byte) string {
	if result.Error != "" {
		return result.Error
	}
	if len(result.Errors) > 0 {
		first := result.Errors[0]
		if first.Field != "" {
			return fmt.Sprintf("%s: %s", first.Field, first.Message)
		}
		return first.Message
	}
	return string(raw)
}

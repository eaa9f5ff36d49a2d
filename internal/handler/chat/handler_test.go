package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/rraja/portfolio/backend/internal/model/chat"
	"github.com/rraja/portfolio/backend/internal/service/ai"
	chatservice "github.com/rraja/portfolio/backend/internal/service/chat"
	"github.com/rraja/portfolio/backend/internal/store"
)

type stubGenerator struct {
	calls int
	reply string
	err   error
}

func (s *stubGenerator) GenerateReply(_ context.Context, _ string, _ []chatmodel.Turn, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func setupRouter(gen chatservice.Generator, turns store.ConversationStore) *chi.Mux {
	handler := New(chatservice.NewService(gen, turns))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postChat(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatValidRequest(t *testing.T) {
	gen := &stubGenerator{reply: "I'm a mechanical engineer..."}
	r := setupRouter(gen, store.NewMemory())

	resp := postChat(r, `{"message": "What is your engineering background?", "sessionId": "s1"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Response  string `json:"response"`
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Response != "I'm a mechanical engineer..." {
		t.Fatalf("unexpected response text: %q", body.Response)
	}
	if body.SessionID != "s1" {
		t.Fatalf("expected sessionId s1, got %q", body.SessionID)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", gen.calls)
	}
}

func TestChatMissingMessage(t *testing.T) {
	gen := &stubGenerator{reply: "hello"}
	r := setupRouter(gen, store.NewMemory())

	resp := postChat(r, `{"sessionId": "s1"}`)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "error") {
		t.Fatalf("expected error key in body: %s", resp.Body.String())
	}
	if gen.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", gen.calls)
	}
}

func TestChatEmptyBody(t *testing.T) {
	r := setupRouter(&stubGenerator{reply: "hello"}, store.NewMemory())

	resp := postChat(r, "")

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Request body required") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestChatMalformedJSON(t *testing.T) {
	gen := &stubGenerator{reply: "hello"}
	r := setupRouter(gen, store.NewMemory())

	resp := postChat(r, `{"message": `)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Internal server error") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
	if gen.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", gen.calls)
	}
}

func TestChatSessionIDFallback(t *testing.T) {
	r := setupRouter(&stubGenerator{reply: "hello"}, store.NewMemory())

	resp := postChat(r, `{"message": "hi"}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.SessionID == "" {
		t.Fatal("expected a server-generated sessionId")
	}
}

func TestChatProviderFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider returned status 503")}
	mem := store.NewMemory()
	r := setupRouter(gen, mem)

	resp := postChat(r, `{"message": "hi", "sessionId": "s1"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "error") {
		t.Fatalf("expected error key in body: %s", resp.Body.String())
	}

	history, err := mem.History(context.Background(), "s1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no persisted turns after provider failure, got %d", len(history))
	}
}

func TestChatNoResponseGenerated(t *testing.T) {
	gen := &stubGenerator{err: ai.ErrNoResponse}
	r := setupRouter(gen, store.NewMemory())

	resp := postChat(r, `{"message": "hi", "sessionId": "s1"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "No response generated") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestChatMissingCredential(t *testing.T) {
	// A nil generator models a deployment without provider credentials.
	r := setupRouter(nil, store.NewMemory())

	resp := postChat(r, `{"message": "hi", "sessionId": "s1"}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "configuration") {
		t.Fatalf("expected a configuration error, got: %s", resp.Body.String())
	}
}

func TestChatPersistsTurn(t *testing.T) {
	mem := store.NewMemory()
	r := setupRouter(&stubGenerator{reply: "nice to meet you"}, mem)

	resp := postChat(r, `{"message": "hello", "sessionId": "s1"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	history, err := mem.History(context.Background(), "s1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 persisted turn, got %d", len(history))
	}
	if history[0].UserMessage != "hello" || history[0].BotResponse != "nice to meet you" {
		t.Fatalf("unexpected turn: %+v", history[0])
	}
}

func TestChatContentTypeHeader(t *testing.T) {
	r := setupRouter(&stubGenerator{reply: "hello"}, store.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(`{"message": "hi"}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if got := resp.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected application/json, got %q", got)
	}
}

package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	contactmodel "github.com/rraja/portfolio/backend/internal/model/contact"
	"github.com/rraja/portfolio/backend/internal/store"
)

func TestInsertForwardsSubmission(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode relay body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "next": "/thanks"}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}

	sub, err := client.Insert(context.Background(), contactmodel.Submission{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Insert err: %v", err)
	}

	if sub.ID == "" || !strings.HasPrefix(sub.ID, "relay_") {
		t.Fatalf("expected synthesized relay id, got %q", sub.ID)
	}
	if received["name"] != "Jane" || received["email"] != "jane@x.com" {
		t.Fatalf("unexpected forwarded payload: %v", received)
	}
	if received["_subject"] != "Hi" {
		t.Fatalf("expected subject forwarded as _subject, got %v", received)
	}
}

func TestInsertSurfacesRelayRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"ok": false, "errors": [{"field": "email", "code": "TYPE_EMAIL", "message": "should be an email"}]}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}

	_, err = client.Insert(context.Background(), contactmodel.Submission{
		Name: "Jane", Email: "not-an-email", Subject: "Hi", Message: "Hello",
	})
	if err == nil {
		t.Fatal("expected error from relay rejection")
	}

	var collabErr *store.CollaboratorError
	if !errors.As(err, &collabErr) {
		t.Fatalf("expected CollaboratorError, got %T: %v", err, err)
	}
	if collabErr.Code != "422" {
		t.Fatalf("expected code 422, got %q", collabErr.Code)
	}
	if !strings.Contains(collabErr.Details, "email") {
		t.Fatalf("expected relay details echoed, got %q", collabErr.Details)
	}
}

func TestNewRequiresEndpoint(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
}

package publishcmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/darktribe/wordpress-post/internal/publisher"
	"github.com/darktribe/wordpress-post/internal/runtimeconfig"
)

func TestPublishDocumentCommandType(t *testing.T) {
	if got := (PublishDocumentCommand{}).Type(); got != "wppost.document.publish" {
		t.Fatalf("unexpected message type %q", got)
	}
}

func TestPublishDocumentCommandValidate(t *testing.T) {
	if err := (PublishDocumentCommand{Path: "entry.md"}).Validate(); err != nil {
		t.Fatalf("expected valid command, got %v", err)
	}
	if err := (PublishDocumentCommand{}).Validate(); err == nil {
		t.Fatal("expected error for missing path")
	}
	if err := (PublishDocumentCommand{Path: "   "}).Validate(); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestHandlerPublishesAndReports(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte("[]"))
		case r.Method == http.MethodPost && r.URL.Path == "/posts":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": 12, "link": "https://blog.example.com/p/12"})
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "entry.md")
	if err := os.WriteFile(path, []byte("---\ntitle: Via Command\n---\nbody\n"), 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.API = runtimeconfig.APIConfig{
		BaseURL:  server.URL,
		User:     "editor",
		Password: "s3cret",
	}

	var reported *publisher.Result
	handler := NewPublishDocumentHandler(cfg, nil, func(r *publisher.Result) {
		reported = r
	})

	if err := handler.Execute(context.Background(), PublishDocumentCommand{Path: path}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if reported == nil {
		t.Fatal("expected result reported")
	}
	if reported.Action != publisher.ActionCreated || reported.PostID != 12 {
		t.Fatalf("unexpected result: %#v", reported)
	}
}

func TestHandlerRejectsEmptyPathBeforePublishing(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.API = runtimeconfig.APIConfig{BaseURL: "https://blog.example.com", User: "u", Password: "p"}

	var reported bool
	handler := NewPublishDocumentHandler(cfg, nil, func(*publisher.Result) {
		reported = true
	})

	if err := handler.Execute(context.Background(), PublishDocumentCommand{}); err == nil {
		t.Fatal("expected validation error")
	}
	if reported {
		t.Fatal("expected no result on validation failure")
	}
}

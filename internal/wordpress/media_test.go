package wordpress

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestUploadMediaSendsDispositionAndBytes(t *testing.T) {
	var gotDisposition, gotContentType string
	var gotBody []byte
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/media" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		gotDisposition = r.Header.Get("Content-Disposition")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":77,"source_url":"https://blog.example.com/img.png"}`))
	}))

	media, err := client.UploadMedia(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "diagram.png", "image/png")
	if err != nil {
		t.Fatalf("UploadMedia returned error: %v", err)
	}
	if media.ID != 77 || media.SourceURL == "" {
		t.Fatalf("unexpected media: %#v", media)
	}
	if gotDisposition != `attachment; filename="diagram.png"` {
		t.Fatalf("unexpected disposition %q", gotDisposition)
	}
	if gotContentType != "image/png" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if len(gotBody) != 4 {
		t.Fatalf("expected raw bytes forwarded, got %d bytes", len(gotBody))
	}
}

func TestSetMediaAltTextPatchesItem(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/media/77" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Write([]byte(`{"id":77}`))
	}))

	if err := client.SetMediaAltText(context.Background(), 77, "  architecture diagram  "); err != nil {
		t.Fatalf("SetMediaAltText returned error: %v", err)
	}
	if gotBody["alt_text"] != "architecture diagram" {
		t.Fatalf("expected trimmed alt text, got %q", gotBody["alt_text"])
	}
}

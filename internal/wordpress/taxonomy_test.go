package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestMatchTermExactNameOrSlug(t *testing.T) {
	terms := []Term{
		{ID: 1, Name: "Golang Weekly", Slug: "golang-weekly"},
		{ID: 2, Name: "Go", Slug: "go"},
	}

	if match, ok := matchTerm(terms, "Go"); !ok || match.ID != 2 {
		t.Fatalf("expected exact name match id 2, got %#v ok=%v", match, ok)
	}
	if match, ok := matchTerm(terms, "golang-weekly"); !ok || match.ID != 1 {
		t.Fatalf("expected slug match id 1, got %#v ok=%v", match, ok)
	}
	if _, ok := matchTerm(terms, "go lang"); ok {
		t.Fatal("expected fuzzy result to be rejected")
	}
	if _, ok := matchTerm(terms, "GO"); ok {
		t.Fatal("expected case-sensitive comparison")
	}
}

func TestResolveCategoriesKeepsOrderAndWarnsOnMiss(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("search") {
		case "Engineering":
			json.NewEncoder(w).Encode([]Term{{ID: 10, Name: "Engineering", Slug: "engineering"}})
		case "Design":
			json.NewEncoder(w).Encode([]Term{{ID: 11, Name: "Design Systems", Slug: "design-systems"}})
		default:
			w.Write([]byte("[]"))
		}
	}))

	resolver := NewTaxonomyResolver(client, nil)
	ids, warnings := resolver.ResolveCategories(context.Background(), []string{"Engineering", "Design", "Nope"}, "")

	if len(ids) != 1 || ids[0] != 10 {
		t.Fatalf("expected only exact match kept, got %v", ids)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected two warnings, got %v", warnings)
	}
	for _, warning := range warnings {
		if !strings.Contains(warning, "not found") {
			t.Fatalf("expected not-found warning, got %q", warning)
		}
	}
}

func TestResolveCategoriesNeverCreates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected %s request to %s", r.Method, r.URL.Path)
		}
		w.Write([]byte("[]"))
	}))

	resolver := NewTaxonomyResolver(client, nil)
	ids, warnings := resolver.ResolveCategories(context.Background(), []string{"Missing"}, "")
	if len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestResolveTagsCreatesMissing(t *testing.T) {
	var createBody createTagRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			if r.URL.Query().Get("search") == "golang" {
				json.NewEncoder(w).Encode([]Term{{ID: 20, Name: "golang", Slug: "golang"}})
				return
			}
			w.Write([]byte("[]"))
		case r.Method == http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&createBody); err != nil {
				t.Fatalf("decode create body: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Term{ID: 21, Name: createBody.Name})
		default:
			t.Fatalf("unexpected %s request", r.Method)
		}
	}))

	resolver := NewTaxonomyResolver(client, nil)
	ids, warnings := resolver.ResolveTags(context.Background(), []string{"golang", "brand-new"}, "ja")

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if len(ids) != 2 || ids[0] != 20 || ids[1] != 21 {
		t.Fatalf("expected ids [20 21] in input order, got %v", ids)
	}
	if createBody.Name != "brand-new" {
		t.Fatalf("expected created tag name, got %q", createBody.Name)
	}
	if locale, ok := createBody.Meta["_locale"]; !ok || locale != "ja" {
		t.Fatalf("expected locale meta on created tag, got %#v", createBody.Meta)
	}
}

func TestResolveTagsCreateWithoutLanguageOmitsMeta(t *testing.T) {
	var raw map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte("[]"))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode create body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":30,"name":"fresh"}`))
	}))

	resolver := NewTaxonomyResolver(client, nil)
	ids, _ := resolver.ResolveTags(context.Background(), []string{"fresh"}, "")
	if len(ids) != 1 || ids[0] != 30 {
		t.Fatalf("expected created id 30, got %v", ids)
	}
	if _, ok := raw["meta"]; ok {
		t.Fatalf("expected meta omitted without language, got %#v", raw)
	}
}

func TestResolveTagsCollectsCreateFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte("[]"))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"term_exists"}`))
	}))

	resolver := NewTaxonomyResolver(client, nil)
	ids, warnings := resolver.ResolveTags(context.Background(), []string{"dupe"}, "")
	if len(ids) != 0 {
		t.Fatalf("expected no ids after failed create, got %v", ids)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "create failed") {
		t.Fatalf("expected create-failed warning, got %v", warnings)
	}
}

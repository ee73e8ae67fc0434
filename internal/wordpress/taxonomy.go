package wordpress

import (
	"context"
	"fmt"
	"net/http"

	"github.com/darktribe/wordpress-post/internal/logging"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// Term is a taxonomy term as the CMS reports it. The id is opaque; the
// client only ever passes it back.
type Term struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type createTagRequest struct {
	Name string         `json:"name"`
	Meta map[string]any `json:"meta,omitempty"`
}

// SearchCategories queries the category endpoint by name, optionally scoped
// to a language.
func (c *Client) SearchCategories(ctx context.Context, name, lang string) ([]Term, error) {
	url, err := c.buildURL(routeCategories, nil, map[string]string{"search": name, "lang": lang})
	if err != nil {
		return nil, err
	}
	var terms []Term
	if err := c.getJSON(ctx, url, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// SearchTags queries the tag endpoint by name, optionally scoped to a
// language.
func (c *Client) SearchTags(ctx context.Context, name, lang string) ([]Term, error) {
	url, err := c.buildURL(routeTags, nil, map[string]string{"search": name, "lang": lang})
	if err != nil {
		return nil, err
	}
	var terms []Term
	if err := c.getJSON(ctx, url, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// CreateTag registers a new tag. When a language is set it travels as the
// tag's locale marker so multilingual plugins attach it to the right locale.
func (c *Client) CreateTag(ctx context.Context, name, lang string) (Term, error) {
	url, err := c.buildURL(routeTags, nil, nil)
	if err != nil {
		return Term{}, err
	}
	payload := createTagRequest{Name: name}
	if lang != "" {
		payload.Meta = map[string]any{"_locale": lang}
	}
	var created Term
	if err := c.doJSON(ctx, http.MethodPost, url, payload, &created); err != nil {
		return Term{}, err
	}
	return created, nil
}

// matchTerm finds the first term whose name or slug equals the queried name
// exactly. The comparison is case-sensitive on purpose: the CMS search is
// fuzzy, the selection is not.
func matchTerm(terms []Term, name string) (Term, bool) {
	for _, term := range terms {
		if term.Name == name || term.Slug == name {
			return term, true
		}
	}
	return Term{}, false
}

// TaxonomyResolver maps human-readable taxonomy names to server-side ids.
// Every name resolves independently; failures produce warnings, never abort.
type TaxonomyResolver struct {
	client *Client
	logger interfaces.Logger
}

// NewTaxonomyResolver builds a resolver around an API client.
func NewTaxonomyResolver(client *Client, logger interfaces.Logger) *TaxonomyResolver {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &TaxonomyResolver{client: client, logger: logger}
}

// ResolveCategories looks up each category name and keeps the ids of exact
// matches, in input order. Unmatched or failed names are dropped with a
// warning; categories are never created.
func (r *TaxonomyResolver) ResolveCategories(ctx context.Context, names []string, lang string) ([]int, []string) {
	ids := make([]int, 0, len(names))
	var warnings []string

	for _, name := range names {
		terms, err := r.client.SearchCategories(ctx, name, lang)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("category %q: search failed: %v", name, err))
			r.logger.Warn("taxonomy.category.search_failed", "name", name, "error", err)
			continue
		}
		match, ok := matchTerm(terms, name)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("category %q not found; skipped", name))
			r.logger.Warn("taxonomy.category.not_found", "name", name)
			continue
		}
		ids = append(ids, match.ID)
	}
	return ids, warnings
}

// ResolveTags looks up each tag name and keeps the ids of exact matches, in
// input order. A missing tag is created remotely; a failed search or create
// drops the name with a warning.
func (r *TaxonomyResolver) ResolveTags(ctx context.Context, names []string, lang string) ([]int, []string) {
	ids := make([]int, 0, len(names))
	var warnings []string

	for _, name := range names {
		terms, err := r.client.SearchTags(ctx, name, lang)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("tag %q: search failed: %v", name, err))
			r.logger.Warn("taxonomy.tag.search_failed", "name", name, "error", err)
			continue
		}
		if match, ok := matchTerm(terms, name); ok {
			ids = append(ids, match.ID)
			continue
		}

		created, err := r.client.CreateTag(ctx, name, lang)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("tag %q: create failed: %v", name, err))
			r.logger.Warn("taxonomy.tag.create_failed", "name", name, "error", err)
			continue
		}
		ids = append(ids, created.ID)
		r.logger.Info("taxonomy.tag.created", "name", name, "id", created.ID)
	}
	return ids, warnings
}

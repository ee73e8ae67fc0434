package wordpress

import (
	"context"
	"net/http"
)

// RenderedText mirrors the CMS habit of wrapping display strings in a
// rendered field, which may carry HTML entities.
type RenderedText struct {
	Rendered string `json:"rendered"`
}

// PostRef is the slice of a remote entry this client cares about.
type PostRef struct {
	ID    int          `json:"id"`
	Slug  string       `json:"slug"`
	Link  string       `json:"link"`
	Title RenderedText `json:"title"`
}

// PostPayload is the create/update body for an entry. Empty optional fields
// are omitted so the CMS keeps its own defaults.
type PostPayload struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	Slug       string `json:"slug,omitempty"`
	Date       string `json:"date,omitempty"`
	Categories []int  `json:"categories,omitempty"`
	Tags       []int  `json:"tags,omitempty"`
	Lang       string `json:"lang,omitempty"`
}

// FindPostsBySlug returns entries matching a slug, regardless of status.
func (c *Client) FindPostsBySlug(ctx context.Context, slug, lang string) ([]PostRef, error) {
	url, err := c.buildURL(routePosts, nil, map[string]string{
		"slug":   slug,
		"status": "any",
		"lang":   lang,
	})
	if err != nil {
		return nil, err
	}
	var posts []PostRef
	if err := c.getJSON(ctx, url, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SearchPostsByTitle free-text searches entries, regardless of status. The
// caller is responsible for exact-title filtering.
func (c *Client) SearchPostsByTitle(ctx context.Context, title, lang string) ([]PostRef, error) {
	url, err := c.buildURL(routePosts, nil, map[string]string{
		"search": title,
		"status": "any",
		"lang":   lang,
	})
	if err != nil {
		return nil, err
	}
	var posts []PostRef
	if err := c.getJSON(ctx, url, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FindExisting decides whether this document already exists remotely: first
// slug match wins, else the first exact rendered-title match. Any lookup
// failure reads as "not found" so the publish falls back to creating; this
// resolution never aborts the pipeline. The title comparison is byte-exact
// against the rendered field, entities included.
func (c *Client) FindExisting(ctx context.Context, title, slug, lang string) (int, bool) {
	if slug != "" {
		posts, err := c.FindPostsBySlug(ctx, slug, lang)
		if err != nil {
			c.logger.Warn("wordpress.find_existing.slug_lookup_failed", "slug", slug, "error", err)
		} else if len(posts) > 0 {
			return posts[0].ID, true
		}
	}

	posts, err := c.SearchPostsByTitle(ctx, title, lang)
	if err != nil {
		c.logger.Warn("wordpress.find_existing.title_lookup_failed", "title", title, "error", err)
		return 0, false
	}
	for _, post := range posts {
		if post.Title.Rendered == title {
			return post.ID, true
		}
	}
	return 0, false
}

// CreatePost publishes a new entry, scoped by language when one is set.
func (c *Client) CreatePost(ctx context.Context, payload PostPayload, lang string) (PostRef, error) {
	url, err := c.buildURL(routePosts, nil, map[string]string{"lang": lang})
	if err != nil {
		return PostRef{}, err
	}
	var created PostRef
	if err := c.doJSON(ctx, http.MethodPost, url, payload, &created); err != nil {
		return PostRef{}, err
	}
	return created, nil
}

// UpdatePost replaces an existing entry's content in place.
func (c *Client) UpdatePost(ctx context.Context, id int, payload PostPayload, lang string) (PostRef, error) {
	url, err := c.buildURL(routePost, map[string]any{"id": id}, map[string]string{"lang": lang})
	if err != nil {
		return PostRef{}, err
	}
	var updated PostRef
	if err := c.doJSON(ctx, http.MethodPut, url, payload, &updated); err != nil {
		return PostRef{}, err
	}
	return updated, nil
}

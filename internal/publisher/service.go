package publisher

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/darktribe/wordpress-post/internal/assets"
	"github.com/darktribe/wordpress-post/internal/document"
	"github.com/darktribe/wordpress-post/internal/i18n"
	"github.com/darktribe/wordpress-post/internal/logging"
	"github.com/darktribe/wordpress-post/internal/markdown"
	"github.com/darktribe/wordpress-post/internal/runtimeconfig"
	"github.com/darktribe/wordpress-post/internal/wordpress"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// Action names the terminal outcome of a successful publish.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Result reports what one publish did, including every best-effort warning
// collected along the way.
type Result struct {
	Action   Action
	PostID   int
	PostURL  string
	Language string
	Warnings []string
}

// Service sequences one publish: load, validate, promote assets, render,
// resolve taxonomy, find the existing entry, then create or update. Only
// precondition failures and the final create/update call can return an
// error; everything in between degrades to warnings.
type Service struct {
	cfg        runtimeconfig.Config
	source     interfaces.DocumentSource
	renderer   interfaces.Renderer
	provider   interfaces.LoggerProvider
	httpClient *http.Client
}

// Option customises service construction.
type Option func(*Service)

// WithRenderer overrides the renderer built from the config.
func WithRenderer(renderer interfaces.Renderer) Option {
	return func(s *Service) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithHTTPClient overrides the HTTP client handed to the REST client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Service) {
		s.httpClient = httpClient
	}
}

// New constructs a publish service. The renderer is assembled once from the
// config; the REST client is built per publish, after the document has been
// loaded, so a title-less document never triggers network activity.
func New(cfg runtimeconfig.Config, source interfaces.DocumentSource, provider interfaces.LoggerProvider, opts ...Option) *Service {
	s := &Service{
		cfg:      cfg,
		source:   source,
		renderer: markdown.NewRenderer(cfg.Renderer),
		provider: provider,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish runs the pipeline to completion for the source's active document.
func (s *Service) Publish(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	logger := logging.WithPublishContext(logging.PublishLogger(s.provider), "", "", runID)

	text, path, err := s.source.Active()
	if err != nil {
		return nil, err
	}
	logger = logging.WithPublishContext(logger, path, "", "")

	doc, err := document.Load(text, path)
	if err != nil {
		return nil, err
	}

	var warnings []string

	lang := ""
	if doc.Header.Language != nil {
		code, ok := i18n.Normalize(doc.Header.Language)
		if ok {
			lang = code
			logger = logging.WithPublishContext(logger, "", lang, "")
			logger.Info("publish.language_set", "lang", lang)
		} else {
			warnings = append(warnings, "invalid language code; publishing without a language scope (examples: ja, en, fr, zh-cn, pt-br)")
			logger.Warn("publish.language_invalid", "value", doc.Header.Language)
		}
	}

	client, err := wordpress.New(wordpress.Config{
		BaseURL:  s.cfg.API.BaseURL,
		User:     s.cfg.API.User,
		Password: s.cfg.API.Password,
	}, s.clientOptions()...)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "remote configuration incomplete").
			WithTextCode("CONFIG_INCOMPLETE")
	}

	promoter := assets.NewPromoter(client, logging.AssetsLogger(s.provider))
	body, assetWarnings := promoter.Promote(ctx, doc.Body, filepath.Dir(doc.FilePath))
	warnings = append(warnings, assetWarnings...)

	body = markdown.UnescapeRawHTML(body)

	htmlBytes, err := s.renderer.Render([]byte(body))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "render document body").
			WithTextCode("RENDER_FAILED")
	}
	html := string(htmlBytes)

	if hashtag := strings.TrimSpace(doc.Header.Hashtag); hashtag != "" {
		html = "<p>" + hashtag + "</p>\n" + html
	}

	resolver := wordpress.NewTaxonomyResolver(client, logging.TaxonomyLogger(s.provider))

	var categoryIDs, tagIDs []int
	if len(doc.Header.Categories) > 0 {
		ids, w := resolver.ResolveCategories(ctx, doc.Header.Categories, lang)
		categoryIDs = ids
		warnings = append(warnings, w...)
	}
	if len(doc.Header.Tags) > 0 {
		ids, w := resolver.ResolveTags(ctx, doc.Header.Tags, lang)
		tagIDs = ids
		warnings = append(warnings, w...)
	}

	slugValue := doc.Header.Slug
	if slugValue == "" && s.cfg.Slug.DeriveFromTitle {
		if normalized, err := slug.Normalize(doc.Header.Title); err == nil && normalized != "" {
			slugValue = normalized
			logger.Info("publish.slug_derived", "slug", slugValue)
		}
	}

	payload := wordpress.PostPayload{
		Title:      doc.Header.Title,
		Content:    html,
		Status:     doc.Header.Status,
		Slug:       slugValue,
		Date:       doc.Header.Date,
		Categories: categoryIDs,
		Tags:       tagIDs,
		Lang:       lang,
	}

	existingID, found := client.FindExisting(ctx, doc.Header.Title, slugValue, lang)

	var ref wordpress.PostRef
	action := ActionCreated
	if found {
		action = ActionUpdated
		ref, err = client.UpdatePost(ctx, existingID, payload, lang)
	} else {
		ref, err = client.CreatePost(ctx, payload, lang)
	}
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "publish entry").
			WithTextCode("WORDPRESS_PUBLISH_FAILED")
	}

	logger.Info("publish.done", "action", string(action), "post_id", ref.ID)
	if lang != "" {
		logger.Debug("publish.language_debug", "post_id", ref.ID, "lang", lang, "status", payload.Status)
	}

	return &Result{
		Action:   action,
		PostID:   ref.ID,
		PostURL:  ref.Link,
		Language: lang,
		Warnings: warnings,
	}, nil
}

func (s *Service) clientOptions() []wordpress.Option {
	opts := []wordpress.Option{
		wordpress.WithLogger(logging.WordPressLogger(s.provider)),
	}
	if s.httpClient != nil {
		opts = append(opts, wordpress.WithHTTPClient(s.httpClient))
	}
	return opts
}

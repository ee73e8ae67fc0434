// Package wppost publishes local markdown documents to a WordPress site
// through its REST API. The package facade wraps the internal pipeline so
// host applications can publish with a config struct and a file path.
package wppost

import (
	"context"

	"github.com/darktribe/wordpress-post/internal/document"
	"github.com/darktribe/wordpress-post/internal/logging"
	"github.com/darktribe/wordpress-post/internal/publisher"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

// Action names the terminal outcome of a successful publish.
type Action = publisher.Action

const (
	// ActionCreated reports that the publish created a new entry.
	ActionCreated = publisher.ActionCreated
	// ActionUpdated reports that the publish updated an existing entry.
	ActionUpdated = publisher.ActionUpdated
)

// Result reports what one publish did, including collected warnings.
type Result = publisher.Result

// Option customises the publish service.
type Option = publisher.Option

// WithHTTPClient overrides the HTTP client used for REST calls.
var WithHTTPClient = publisher.WithHTTPClient

// WithRenderer overrides the markdown renderer built from the config.
var WithRenderer = publisher.WithRenderer

// PublishFile runs one publish for the document at path. A nil provider
// silences all logging.
func PublishFile(ctx context.Context, cfg Config, path string, provider interfaces.LoggerProvider, opts ...Option) (*Result, error) {
	if provider == nil {
		provider = noopProvider{}
	}
	service := publisher.New(cfg, document.NewFileSource(path), provider, opts...)
	return service.Publish(ctx)
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }

package publishcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/darktribe/wordpress-post/internal/commands"
	"github.com/darktribe/wordpress-post/internal/document"
	"github.com/darktribe/wordpress-post/internal/publisher"
	"github.com/darktribe/wordpress-post/internal/runtimeconfig"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

const publishDocumentMessageType = "wppost.document.publish"

// PublishDocumentCommand requests publication of one local document.
type PublishDocumentCommand struct {
	Path string `json:"path"`
}

// Type implements command.Message.
func (PublishDocumentCommand) Type() string { return publishDocumentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m PublishDocumentCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Path) == "" {
		errs["path"] = validation.NewError("wppost.document.publish.path_required", "document path is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishDocumentHandler runs the publish pipeline through the shared
// command handler foundation.
type PublishDocumentHandler struct {
	inner *commands.Handler[PublishDocumentCommand]
}

// NewPublishDocumentHandler constructs a handler wired to the publish
// service. The report callback receives the result of a successful publish
// so the caller can surface the outcome and collected warnings.
func NewPublishDocumentHandler(cfg runtimeconfig.Config, provider interfaces.LoggerProvider, report func(*publisher.Result), opts ...commands.HandlerOption[PublishDocumentCommand]) *PublishDocumentHandler {
	exec := func(ctx context.Context, msg PublishDocumentCommand) error {
		service := publisher.New(cfg, document.NewFileSource(msg.Path), provider)
		result, err := service.Publish(ctx)
		if err != nil {
			return err
		}
		if report != nil {
			report(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PublishDocumentCommand]{
		commands.WithLogger[PublishDocumentCommand](commands.CommandLogger(provider, "publish")),
		commands.WithOperation[PublishDocumentCommand]("document.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishDocumentHandler{
		inner: commands.NewHandler[PublishDocumentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishDocumentCommand].Execute.
func (h *PublishDocumentHandler) Execute(ctx context.Context, msg PublishDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

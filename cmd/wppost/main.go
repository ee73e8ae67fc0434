package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	publishcmd "github.com/darktribe/wordpress-post/internal/commands/publish"
	"github.com/darktribe/wordpress-post/internal/logging/console"
	"github.com/darktribe/wordpress-post/internal/logging/gologger"
	"github.com/darktribe/wordpress-post/internal/publisher"
	"github.com/darktribe/wordpress-post/internal/runtimeconfig"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

func main() {
	if err := runPublish(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("wppost: %v", err)
	}
}

func runPublish(args []string, out *os.File) error {
	fs := flag.NewFlagSet("wppost", flag.ExitOnError)
	file := fs.String("file", "", "Path to the markdown document to publish")
	apiURL := fs.String("api-url", envOr("WPPOST_API_URL", ""), "Base URL of the WordPress REST API (e.g. https://blog.example.com/wp-json/wp/v2)")
	user := fs.String("user", envOr("WPPOST_USER", ""), "Basic-auth user name")
	password := fs.String("password", envOr("WPPOST_PASSWORD", ""), "Basic-auth application password")
	deriveSlug := fs.Bool("derive-slug", false, "Derive the entry slug from the title when the header carries none")
	logProvider := fs.String("log-provider", "console", "Logging provider: console or gologger")
	logLevel := fs.String("log-level", "info", "Minimum log level: trace, debug, info, warn, error, fatal")
	logFormat := fs.String("log-format", "json", "gologger output format: json, console, or pretty")
	logSource := fs.Bool("log-source", false, "Attach source locations to gologger entries")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*file) == "" {
		return fmt.Errorf("-file is required")
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.API = runtimeconfig.APIConfig{
		BaseURL:  *apiURL,
		User:     *user,
		Password: *password,
	}
	cfg.Slug.DeriveFromTitle = *deriveSlug
	cfg.Logging = runtimeconfig.LoggingConfig{
		Provider:  *logProvider,
		Level:     *logLevel,
		Format:    *logFormat,
		AddSource: *logSource,
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	provider, err := buildLoggerProvider(cfg.Logging)
	if err != nil {
		return err
	}

	var result *publisher.Result
	handler := publishcmd.NewPublishDocumentHandler(cfg, provider, func(r *publisher.Result) {
		result = r
	})

	cmd := publishcmd.PublishDocumentCommand{Path: *file}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("publish finished without a result")
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
	fmt.Fprintf(out, "%s post %d", result.Action, result.PostID)
	if result.PostURL != "" {
		fmt.Fprintf(out, " (%s)", result.PostURL)
	}
	fmt.Fprintln(out)

	return nil
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		minLevel := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &minLevel}), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("logging: unknown provider %q", cfg.Provider)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

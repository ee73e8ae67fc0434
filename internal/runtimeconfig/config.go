package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrLoggingProviderUnknown reports an unrecognised logging provider name.
var ErrLoggingProviderUnknown = errors.New("wppost config: logging provider is invalid")

// ErrLoggingLevelInvalid reports an unrecognised logging level name.
var ErrLoggingLevelInvalid = errors.New("wppost config: logging level is invalid")

// ErrLoggingFormatInvalid reports an unrecognised go-logger output format.
var ErrLoggingFormatInvalid = errors.New("wppost config: logging format is invalid")

// Config aggregates everything one publish invocation needs. Fields use
// simple types so host applications can populate them from any source.
type Config struct {
	API      APIConfig
	Renderer RendererConfig
	Slug     SlugConfig
	Logging  LoggingConfig
}

// APIConfig carries the remote CMS endpoint and basic-auth credentials.
// All three values are required before a publish may start.
type APIConfig struct {
	BaseURL  string
	User     string
	Password string
}

// RendererConfig enumerates the markdown renderer options. The renderer is
// constructed once from these values and never mutated afterwards.
type RendererConfig struct {
	RawHTML     bool
	AutoLink    bool
	Typographer bool
	TaskLists   bool
	Footnotes   bool
	Tables      bool
}

// SlugConfig controls optional slug derivation. When DeriveFromTitle is set
// and the document header carries no slug, one is normalised from the title.
type SlugConfig struct {
	DeriveFromTitle bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the defaults used by the CLI: every renderer
// extension enabled, console logging at info level, no slug derivation.
func DefaultConfig() Config {
	return Config{
		Renderer: RendererConfig{
			RawHTML:     true,
			AutoLink:    true,
			Typographer: true,
			TaskLists:   true,
			Footnotes:   true,
			Tables:      true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks. API credential errors are
// reported per-field so callers can tell the user exactly which setting is
// missing.
func (cfg Config) Validate() error {
	if err := cfg.API.Validate(); err != nil {
		return err
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	if provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// Validate ensures the API block is complete before any network activity.
func (cfg APIConfig) Validate() error {
	errs := validation.Errors{}
	if trimmed := strings.TrimSpace(cfg.BaseURL); trimmed == "" {
		errs["api_url"] = validation.NewError("wppost.config.api_url_required", "API base URL is required")
	} else if parsed, err := url.Parse(trimmed); err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		errs["api_url"] = validation.NewError("wppost.config.api_url_invalid", "API base URL must be an absolute http(s) URL")
	}
	if strings.TrimSpace(cfg.User) == "" {
		errs["user"] = validation.NewError("wppost.config.user_required", "auth user is required")
	}
	if cfg.Password == "" {
		errs["password"] = validation.NewError("wppost.config.password_required", "auth password is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

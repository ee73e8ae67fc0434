package wppost

import "github.com/darktribe/wordpress-post/internal/runtimeconfig"

var (
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	// Config aggregates everything one publish invocation needs.
	Config = runtimeconfig.Config
	// APIConfig carries the remote endpoint and basic-auth credentials.
	APIConfig = runtimeconfig.APIConfig
	// RendererConfig enumerates the markdown renderer options.
	RendererConfig = runtimeconfig.RendererConfig
	// SlugConfig controls optional slug derivation from the document title.
	SlugConfig = runtimeconfig.SlugConfig
	// LoggingConfig captures provider-specific options for runtime logging.
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the defaults used by the CLI: every renderer
// extension enabled, console logging at info level, no slug derivation.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

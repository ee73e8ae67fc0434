package commands

import (
	"strings"

	"github.com/darktribe/wordpress-post/internal/logging"
	"github.com/darktribe/wordpress-post/pkg/interfaces"
)

const commandModuleRoot = "wppost.commands"

// CommandLogger returns a module-scoped logger for command handlers,
// enriching it with consistent structured fields so executions can be
// filtered alongside the pipeline modules.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}

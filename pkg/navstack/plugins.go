package navstack

import (
	"fmt"
	"slices"
)

// Plugin names an optional shell feature. Plugins are enabled explicitly
// through Options.Plugins.
type Plugin string

const (
	// PluginDebugConsole logs every committed navigation at debug level and
	// lowers the log level to debug.
	PluginDebugConsole Plugin = "debug-console"

	// PluginIcons enables App.Icon, backed by the icons package.
	PluginIcons Plugin = "icons"
)

// KnownPlugins lists every plugin the shell understands.
var KnownPlugins = []Plugin{PluginDebugConsole, PluginIcons}

// ParsePlugins converts plugin names from configuration. Duplicates are
// collapsed; unknown names are an error.
func ParsePlugins(names []string) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(names))
	for _, name := range names {
		p := Plugin(name)
		if !slices.Contains(KnownPlugins, p) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, name)
		}
		if !slices.Contains(plugins, p) {
			plugins = append(plugins, p)
		}
	}
	return plugins, nil
}

func (p Plugin) String() string {
	return string(p)
}

// Package config loads the shell configuration and the declarative route
// table from TOML.
//
// A route names its view; the view is looked up in a Registry supplied by the
// application, which maps names either to ready views or to lazy loaders:
//
//	title = "TronLink Demo"
//	locale = "zh-CN"
//	plugins = ["debug-console", "icons"]
//
//	[[routes]]
//	path = "/"
//	view = "layout"
//	redirect = "/home"
//
//	  [[routes.children]]
//	  path = "/home"
//	  view = "home"
//	  meta = { title = "首页-使用window.tron", title_key = "HomeTitle" }
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/BurntSushi/toml"
)

// ErrUnknownView indicates a route naming a view missing from the Registry.
var ErrUnknownView = errors.New("config: unknown view")

// Config is the top-level shell configuration.
type Config struct {
	Title    string        `toml:"title"`     // Application title appended to route titles
	Locale   string        `toml:"locale"`    // BCP 47 locale for route titles
	LogLevel string        `toml:"log_level"` // debug, info, warn or error
	LogPath  string        `toml:"log_path"`  // Optional log file in addition to stdout
	Plugins  []string      `toml:"plugins"`   // Enabled shell plugins by name
	Start    string        `toml:"start"`     // Initial path, "/" when empty
	Routes   []RouteConfig `toml:"routes"`
}

// RouteConfig is the declarative form of a router.Route.
type RouteConfig struct {
	Path     string         `toml:"path"`
	View     string         `toml:"view"`
	Redirect string         `toml:"redirect"`
	Meta     map[string]any `toml:"meta"`
	Children []RouteConfig  `toml:"children"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Locale:   constants.DefaultLocale,
		LogLevel: "info",
		Start:    "/",
	}
}

// Load reads a TOML configuration file on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse decodes TOML on top of Default. Unknown keys are rejected.
func Parse(data string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if cfg.Start == "" {
		cfg.Start = "/"
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Locale = v
	}
	if constants.IsDevMode() {
		c.LogLevel = "debug"
	}
}

// BuildRoutes converts the declared routes into router.Routes, binding view
// names through reg.
func (c *Config) BuildRoutes(reg *Registry) ([]router.Route, error) {
	return buildRoutes(c.Routes, reg)
}

// BuildTable builds and validates the route table.
func (c *Config) BuildTable(reg *Registry) (*router.Table, error) {
	routes, err := c.BuildRoutes(reg)
	if err != nil {
		return nil, err
	}
	return router.NewTable(routes)
}

func buildRoutes(decls []RouteConfig, reg *Registry) ([]router.Route, error) {
	routes := make([]router.Route, 0, len(decls))
	for _, d := range decls {
		r := router.Route{
			Path:     d.Path,
			Redirect: d.Redirect,
			Meta:     router.Meta(d.Meta),
		}

		if d.View != "" {
			view, load, ok := reg.lookup(d.View)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownView, d.View, d.Path)
			}
			r.View, r.Load = view, load
		}

		children, err := buildRoutes(d.Children, reg)
		if err != nil {
			return nil, err
		}
		r.Children = children

		routes = append(routes, r)
	}
	return routes, nil
}

// Command tronlink-demo boots the navstack shell with the TronLink demo
// routes and walks the given paths, printing each rendered chain and title.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/config"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/spf13/cobra"
)

const iconSize = 24

//go:embed app.toml
var defaultConfig string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		locale     string
		viewsURL   string
		plugins    []string
	)

	cmd := &cobra.Command{
		Use:   "tronlink-demo [path...]",
		Short: "Resolve TronLink demo routes through the navstack shell",
		Long: `Boots the navstack shell with the demo route table, navigates to the
start path, then to each path given on the command line. Use "back" and
"forward" as paths to move through the session history.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			if locale != "" {
				cfg.Locale = locale
			}
			if cmd.Flags().Changed("plugin") {
				cfg.Plugins = plugins
			}

			app, err := navstack.FromConfig(cfg, registry(http.DefaultClient, viewsURL))
			if err != nil {
				return err
			}
			defer navstack.Close()

			return run(cmd.Context(), cmd, app, args)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv(constants.ConfigPathEnvVar), "path to a TOML configuration file")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale for route titles (overrides configuration)")
	cmd.Flags().StringVar(&viewsURL, "views-url", "", "HTTPS base URL serving page modules as <view>.json")
	cmd.Flags().StringSliceVarP(&plugins, "plugin", "p", nil, "enabled plugins: debug-console, icons")

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Parse(defaultConfig)
	}
	return config.Load(path)
}

func run(ctx context.Context, cmd *cobra.Command, app *navstack.App, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	printState(cmd, app)

	for _, arg := range args {
		var err error
		switch arg {
		case "back":
			err = app.Back(ctx)
		case "forward":
			err = app.Forward(ctx)
		default:
			err = app.Navigate(ctx, arg)
		}
		if err != nil {
			return err
		}
		printState(cmd, app)
	}
	return nil
}

func printState(cmd *cobra.Command, app *navstack.App) {
	chain := app.Chain()
	names := make([]string, len(chain))
	for i, v := range chain {
		names[i] = v.Name()
	}
	line := fmt.Sprintf("%s\t[%s]\t%s", app.Path(), strings.Join(names, " "), app.DocumentTitle())

	if name := app.Meta().GetString(constants.MetaIcon); name != "" {
		if img, err := app.Icon(name, iconSize); err == nil {
			b := img.Bounds()
			line += fmt.Sprintf("\ticon=%s(%dx%d)", name, b.Dx(), b.Dy())
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
}

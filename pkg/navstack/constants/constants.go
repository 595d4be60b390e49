// Package constants defines shared constants and configuration values
// used throughout the navstack shell.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup. Values set here override the
// configuration file.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	LogLevelEnvVar    = "NAVSTACK_LOG_LEVEL"
	LocaleEnvVar      = "NAVSTACK_LOCALE"
	ConfigPathEnvVar  = "NAVSTACK_CONFIG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Metadata keys understood by the shell.
const (
	MetaTitle    = "title"     // Literal route title
	MetaTitleKey = "title_key" // Message ID of a localized route title
	MetaIcon     = "icon"      // Icon name shown next to the title
)

// DefaultLocale is used when neither configuration nor environment names one.
const DefaultLocale = "zh-CN"

// DefaultNavigationTimeout bounds a single navigation issued by the shell.
const DefaultNavigationTimeout = 10 * time.Second

// TitleSeparator joins the route title and the application title.
const TitleSeparator = " - "

// Package internal contains the core infrastructure for the navstack shell.
// This includes logger setup and process-wide defaults.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store

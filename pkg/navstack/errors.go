package navstack

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrPluginDisabled indicates a call into a plugin that was not enabled
	// in Options.Plugins.
	ErrPluginDisabled = errors.New("plugin not enabled")

	// ErrUnknownPlugin indicates a plugin name that is not recognised.
	ErrUnknownPlugin = errors.New("unknown plugin")
)

// InfrastructureError represents a shell-level failure while setting up or
// running navstack itself (loading locales, building the route table,
// starting a plugin). Navigation errors from the router are returned as-is
// and never wrapped in an InfrastructureError.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_locales", "build_routes")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navstack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navstack: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsPluginDisabled checks if an error indicates a disabled plugin.
func IsPluginDisabled(err error) bool {
	return errors.Is(err, ErrPluginDisabled)
}

package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates that no route matches the requested path.
	ErrNotFound = errors.New("router: no route matches path")

	// ErrSuperseded is returned by a navigation whose result was discarded
	// because a newer navigation started before it finished.
	ErrSuperseded = errors.New("router: navigation superseded")

	// ErrNoHistory is returned by Back and Forward when there is no entry
	// in that direction.
	ErrNoHistory = errors.New("router: no history entry")

	// ErrDuplicatePath indicates two routes resolve to the same path.
	ErrDuplicatePath = errors.New("router: duplicate route path")

	// ErrInvalidRoute indicates a malformed route declaration.
	ErrInvalidRoute = errors.New("router: invalid route")
)

// ResolutionError reports a lazy view load that failed for a matched route.
// The route stays unresolved; a later navigation will attempt the load again.
type ResolutionError struct {
	Path string // Full path of the route whose view failed to load
	Err  error  // Error returned by the Load function
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("router: resolve %s: %v", e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// RedirectCycleError reports a redirect chain that revisits a path.
type RedirectCycleError struct {
	Chain []string // Paths visited, ending with the repeated one
}

func (e *RedirectCycleError) Error() string {
	return "router: redirect cycle: " + strings.Join(e.Chain, " -> ")
}

// IsNotFound checks if an error indicates an unmatched path.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSuperseded checks if an error indicates a discarded stale navigation.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}

// IsResolutionError checks if an error is a failed lazy view load.
func IsResolutionError(err error) bool {
	var resErr *ResolutionError
	return errors.As(err, &resErr)
}

// IsRedirectCycle checks if an error is a redirect cycle.
func IsRedirectCycle(err error) bool {
	var cycleErr *RedirectCycleError
	return errors.As(err, &cycleErr)
}

func notFound(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

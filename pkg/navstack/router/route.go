package router

import (
	"context"
	"maps"
)

// View is a renderable handle produced for a route.
// The router never inspects a View beyond caching it.
type View interface {
	Name() string
}

// Loader is a deferred factory that produces a route's view on first use.
type Loader func(ctx context.Context) (View, error)

// MetaTitle is the metadata key for a route's human-readable title.
const MetaTitle = "title"

// Meta is an open mapping of route metadata consumed by the hosting shell.
type Meta map[string]any

// Title returns the "title" entry, or an empty string if unset.
func (m Meta) Title() string {
	s, _ := m[MetaTitle].(string)
	return s
}

// GetString returns the entry for key when it holds a string.
func (m Meta) GetString(key string) string {
	s, _ := m[key].(string)
	return s
}

// Clone returns a shallow copy of the mapping.
func (m Meta) Clone() Meta {
	if m == nil {
		return Meta{}
	}
	return maps.Clone(m)
}

// Route declares a path, how to obtain its view, and what renders inside it.
//
// Path is joined to the parent's path unless it starts with "/".
// A route sets at most one of View and Load. A leaf route must set one of
// View, Load or Redirect.
type Route struct {
	Path     string
	View     View
	Load     Loader
	Redirect string
	Meta     Meta
	Children []Route
}

// StaticView is a View identified only by its name.
// It is useful for layouts and for tests.
type StaticView string

func (v StaticView) Name() string {
	return string(v)
}

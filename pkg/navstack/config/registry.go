package config

import "github.com/BrandonKowalski/navstack/pkg/navstack/router"

// Registry maps view names used in configuration to views or loaders.
type Registry struct {
	views   map[string]router.View
	loaders map[string]router.Loader
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		views:   make(map[string]router.View),
		loaders: make(map[string]router.Loader),
	}
}

// View registers a ready view under name.
func (r *Registry) View(name string, view router.View) *Registry {
	delete(r.loaders, name)
	r.views[name] = view
	return r
}

// Lazy registers a loader under name; the view is produced on first
// navigation.
func (r *Registry) Lazy(name string, load router.Loader) *Registry {
	delete(r.views, name)
	r.loaders[name] = load
	return r
}

func (r *Registry) lookup(name string) (router.View, router.Loader, bool) {
	if v, ok := r.views[name]; ok {
		return v, nil, true
	}
	if l, ok := r.loaders[name]; ok {
		return nil, l, true
	}
	return nil, nil, false
}

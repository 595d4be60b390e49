package router

import (
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
)

// node is the compiled form of a Route.
type node struct {
	path     string // full, cleaned path
	view     View
	lazy     *lazyView
	redirect string
	meta     Meta
	children []*node
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node) hasView() bool {
	return n.view != nil || n.lazy != nil
}

func (n *node) resolveView(ctx context.Context) (View, error) {
	if n.view != nil {
		return n.view, nil
	}
	v, err := n.lazy.get(ctx)
	if err != nil {
		return nil, &ResolutionError{Path: n.path, Err: err}
	}
	return v, nil
}

// Table is an immutable, validated route tree.
// It is safe for concurrent use.
type Table struct {
	roots []*node
	index map[string]*node
}

// Resolution is the outcome of resolving a path.
type Resolution struct {
	Requested string   // Path as requested
	Path      string   // Terminal path after following redirects
	Redirects []string // Redirect sources followed, in order
	Chain     []View   // Outer layout first, page last
	Meta      Meta     // Metadata of the terminal route
}

// Title returns the terminal route's title.
func (r Resolution) Title() string {
	return r.Meta.Title()
}

// NewTable validates routes and compiles them into a Table.
// Duplicate sibling paths, duplicate full paths, relative redirects, routes
// declaring both View and Load, and leaves with nothing to render are
// rejected.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{index: make(map[string]*node)}

	roots, err := t.compile(routes, "/")
	if err != nil {
		return nil, err
	}
	t.roots = roots
	return t, nil
}

// MustNewTable is like NewTable but panics on an invalid declaration.
func MustNewTable(routes []Route) *Table {
	t, err := NewTable(routes)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) compile(routes []Route, parent string) ([]*node, error) {
	nodes := make([]*node, 0, len(routes))
	siblings := make(map[string]struct{}, len(routes))

	for _, r := range routes {
		if r.Path == "" {
			return nil, fmt.Errorf("%w: empty path under %s", ErrInvalidRoute, parent)
		}
		if _, dup := siblings[r.Path]; dup {
			return nil, fmt.Errorf("%w: %q under %s", ErrDuplicatePath, r.Path, parent)
		}
		siblings[r.Path] = struct{}{}

		full := joinPath(parent, r.Path)
		if _, dup := t.index[full]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, full)
		}

		if r.View != nil && r.Load != nil {
			return nil, fmt.Errorf("%w: %s declares both a view and a loader", ErrInvalidRoute, full)
		}
		if r.Redirect != "" && !strings.HasPrefix(r.Redirect, "/") {
			return nil, fmt.Errorf("%w: %s redirects to relative path %q", ErrInvalidRoute, full, r.Redirect)
		}

		n := &node{
			path: full,
			view: r.View,
			meta: r.Meta.Clone(),
		}
		if r.Load != nil {
			n.lazy = newLazyView(r.Load)
		}
		if r.Redirect != "" {
			n.redirect = cleanPath(r.Redirect)
		}
		t.index[full] = n

		children, err := t.compile(r.Children, full)
		if err != nil {
			return nil, err
		}
		n.children = children

		if n.isLeaf() && !n.hasView() && n.redirect == "" {
			return nil, fmt.Errorf("%w: %s has no view, loader or redirect", ErrInvalidRoute, full)
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

// Resolve maps a path to its view chain and terminal metadata.
// Redirects are followed transparently. Lazy views are loaded on first use
// and reused afterwards.
func (t *Table) Resolve(ctx context.Context, requested string) (*Resolution, error) {
	chain, target, redirects, err := t.match(requested)
	if err != nil {
		return nil, err
	}

	// Grouping routes without a view of their own contribute nothing.
	rendered := make([]*node, 0, len(chain))
	for _, n := range chain {
		if n.hasView() {
			rendered = append(rendered, n)
		}
	}

	views := make([]View, len(rendered))
	g, gctx := errgroup.WithContext(ctx)
	for i, n := range rendered {
		g.Go(func() error {
			v, err := n.resolveView(gctx)
			if err != nil {
				return err
			}
			views[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Resolution{
		Requested: requested,
		Path:      target,
		Redirects: redirects,
		Chain:     views,
		Meta:      chain[len(chain)-1].meta.Clone(),
	}, nil
}

// Has reports whether path resolves to a leaf or a redirect source, without
// loading any views.
func (t *Table) Has(p string) bool {
	_, _, _, err := t.match(p)
	return err == nil
}

// State reports the load state of the view declared at the full route path p.
// Routes with an eager view are always resolved. The second result is false
// when no route is declared at p.
func (t *Table) State(p string) (LoadState, bool) {
	n, ok := t.index[cleanPath(p)]
	if !ok {
		return LoadStatePending, false
	}
	if n.lazy == nil {
		return LoadStateResolved, true
	}
	return n.lazy.state(), true
}

// Loads returns how many times the Load function of the route at p has been
// invoked.
func (t *Table) Loads(p string) int64 {
	n, ok := t.index[cleanPath(p)]
	if !ok || n.lazy == nil {
		return 0
	}
	return n.lazy.calls.Load()
}

// Paths returns the full path of every route, depth first.
func (t *Table) Paths() []string {
	var out []string
	var walk func([]*node)
	walk = func(nodes []*node) {
		for _, n := range nodes {
			out = append(out, n.path)
			walk(n.children)
		}
	}
	walk(t.roots)
	return out
}

// match follows redirects and returns the matched chain for the terminal
// path, the terminal path itself, and the redirect sources passed through.
func (t *Table) match(requested string) ([]*node, string, []string, error) {
	if !strings.HasPrefix(requested, "/") {
		return nil, "", nil, notFound(requested)
	}

	current := cleanPath(requested)
	visited := map[string]struct{}{}
	var trail, redirects []string

	for {
		if _, seen := visited[current]; seen {
			return nil, "", nil, &RedirectCycleError{Chain: append(trail, current)}
		}
		visited[current] = struct{}{}
		trail = append(trail, current)

		chain := walk(t.roots, current, nil)
		if chain == nil {
			return nil, "", nil, notFound(current)
		}

		terminal := chain[len(chain)-1]
		if terminal.redirect != "" {
			redirects = append(redirects, current)
			current = terminal.redirect
			continue
		}
		if !terminal.isLeaf() {
			return nil, "", nil, notFound(current)
		}
		return chain, current, redirects, nil
	}
}

// walk descends from nodes toward target. At each level an exact match wins;
// otherwise the first child whose path is a segment prefix of target is
// explored.
func walk(nodes []*node, target string, chain []*node) []*node {
	for _, n := range nodes {
		if n.path == target {
			return append(chain, n)
		}
	}
	for _, n := range nodes {
		if n.isLeaf() || !isSegmentPrefix(n.path, target) {
			continue
		}
		if m := walk(n.children, target, append(chain, n)); m != nil {
			return m
		}
	}
	return nil
}

func isSegmentPrefix(prefix, p string) bool {
	if prefix == "/" {
		return true
	}
	return strings.HasPrefix(p, prefix+"/")
}

func joinPath(parent, p string) string {
	if strings.HasPrefix(p, "/") {
		return cleanPath(p)
	}
	return cleanPath(path.Join(parent, p))
}

func cleanPath(p string) string {
	return path.Clean("/" + strings.TrimPrefix(p, "/"))
}

// Package router resolves request paths against a static route table and
// keeps an in-memory navigation history.
//
// A route table is a tree of Route entries. Each entry owns a path, an
// optional view (given directly or loaded lazily), optional metadata, an
// optional redirect and an ordered list of children that render inside it.
// Resolving a path walks the tree from the roots to the matched leaf and
// stacks the views found along the way, outer layout first.
//
// # Basic Usage
//
//	table, err := router.NewTable([]router.Route{
//	    {
//	        Path:     "/",
//	        View:     layout,
//	        Redirect: "/home",
//	        Children: []router.Route{
//	            {Path: "/home", Load: loadHome, Meta: router.Meta{"title": "Home"}},
//	            {Path: "/secondary", Load: loadSecondary, Meta: router.Meta{"title": "Secondary"}},
//	        },
//	    },
//	})
//	if err != nil {
//	    // duplicate sibling paths and malformed entries are rejected here
//	}
//
//	nav := router.NewNavigator(table)
//	nav.OnChange(func(res router.Resolution) {
//	    // swap the rendered chain, apply res.Meta.Title()
//	})
//	err = nav.Navigate(ctx, "/")
//
// # Lazy Views
//
// A Route with a Load function is resolved on first navigation. The result is
// cached for the life of the Table, and callers that arrive while a load is in
// flight wait for it instead of starting their own. A failed load is returned
// as a *ResolutionError and leaves the route unresolved, so navigating again
// retries it.
//
// # Superseded Navigations
//
// Every call to Navigate takes a new token. When a resolution finishes after
// a newer navigation has started, its result is discarded and Navigate
// returns ErrSuperseded. The history only ever records committed
// navigations.
package router

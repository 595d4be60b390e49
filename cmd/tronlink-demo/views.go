package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/BrandonKowalski/navstack/pkg/navstack/config"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

// pageView is a page module produced on first navigation.
type pageView struct {
	name string
}

func (p *pageView) Name() string { return p.name }

// pageManifest is the JSON document served for a remote page module.
type pageManifest struct {
	Name string `json:"name"`
}

// registry binds the view names used in app.toml. With an empty baseURL the
// pages are built in-process; otherwise each page module is fetched from
// <baseURL>/<view>.json on first navigation.
func registry(client *http.Client, baseURL string) *config.Registry {
	reg := config.NewRegistry().View("layout", router.StaticView("BaseLayout"))

	pages := map[string]string{"home": "HomeView", "secondary": "SecondaryView"}
	for view, name := range pages {
		if baseURL == "" {
			reg.Lazy(view, func(context.Context) (router.View, error) {
				return &pageView{name: name}, nil
			})
			continue
		}
		reg.Lazy(view, remoteLoader(client, baseURL, view))
	}
	return reg
}

func remoteLoader(client *http.Client, baseURL, view string) router.Loader {
	return func(ctx context.Context) (router.View, error) {
		u, err := url.JoinPath(baseURL, view+".json")
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", view, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", view, err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", view, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("page %s: unexpected status %s", view, resp.Status)
		}

		var m pageManifest
		if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
			return nil, fmt.Errorf("page %s: decode manifest: %w", view, err)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("page %s: manifest has no name", view)
		}
		return &pageView{name: m.Name}, nil
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/config"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"go.uber.org/atomic"
)

func TestRemotePagesOverTLS(t *testing.T) {
	var homeFetches atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/pages/home.json", func(w http.ResponseWriter, r *http.Request) {
		homeFetches.Inc()
		fmt.Fprint(w, `{"name":"RemoteHomeView"}`)
	})
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cfg, err := config.Parse(defaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Plugins = nil

	app, err := navstack.FromConfig(cfg, registry(srv.Client(), srv.URL+"/pages"))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	ctx := context.Background()

	if err := app.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	chain := app.Chain()
	if len(chain) != 2 || chain[1].Name() != "RemoteHomeView" {
		t.Errorf("chain = %v", chain)
	}

	// secondary.json is not served.
	if err := app.Navigate(ctx, "/secondary"); !router.IsResolutionError(err) {
		t.Errorf("err = %v, want resolution error", err)
	}
	if app.Path() != "/home" {
		t.Errorf("Path = %s, want /home", app.Path())
	}

	if err := app.Navigate(ctx, "/home"); err != nil {
		t.Fatal(err)
	}
	if homeFetches.Load() != 1 {
		t.Errorf("home fetched %d times, want 1", homeFetches.Load())
	}
}

func TestRemotePageRejectsUntrustedCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"RemoteHomeView"}`)
	}))
	defer srv.Close()

	load := remoteLoader(http.DefaultClient, srv.URL, "home")
	if _, err := load(context.Background()); err == nil {
		t.Fatal("self-signed test certificate was trusted by the default client")
	}
}

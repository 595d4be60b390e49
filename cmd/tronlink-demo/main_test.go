package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) []string {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v): %v\n%s", args, err, out.String())
	}
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestRunDefaultRoutes(t *testing.T) {
	lines := execute(t, "--plugin", "icons", "/secondary", "back")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}

	want := []string{
		"/home\t[BaseLayout HomeView]\t首页-使用window.tron - TronLink Demo\ticon=home(24x24)",
		"/secondary\t[BaseLayout SecondaryView]\t基于@tronweb3/tronwallet-adapter-tronlink - TronLink Demo\ticon=link(24x24)",
		"/home\t[BaseLayout HomeView]\t首页-使用window.tron - TronLink Demo\ticon=home(24x24)",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRunEnglishWithoutIcons(t *testing.T) {
	lines := execute(t, "--locale", "en", "--plugin", "", "/secondary")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	want := "/secondary\t[BaseLayout SecondaryView]\tBased on @tronweb3/tronwallet-adapter-tronlink - TronLink Demo"
	if lines[1] != want {
		t.Errorf("line = %q, want %q", lines[1], want)
	}
}

func TestRunUnknownPath(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--plugin", "", "/missing"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("unknown path did not fail")
	}
}

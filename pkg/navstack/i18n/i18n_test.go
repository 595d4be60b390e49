package i18n

import (
	"testing"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"golang.org/x/text/language"
)

func TestTitleUsesMessageForLocale(t *testing.T) {
	meta := router.Meta{
		constants.MetaTitle:    "基于@tronweb3/tronwallet-adapter-tronlink",
		constants.MetaTitleKey: MessageSecondaryTitle,
	}

	zh, err := New("zh-CN")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := zh.Title(meta); got != "基于@tronweb3/tronwallet-adapter-tronlink" {
		t.Errorf("zh title = %q", got)
	}

	en, err := New("en-US")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := en.Title(meta); got != "Based on @tronweb3/tronwallet-adapter-tronlink" {
		t.Errorf("en title = %q", got)
	}
}

func TestTitleFallsBackToLiteral(t *testing.T) {
	l, err := New("en")
	if err != nil {
		t.Fatal(err)
	}

	if got := l.Title(router.Meta{constants.MetaTitle: "Plain"}); got != "Plain" {
		t.Errorf("title without key = %q", got)
	}
	meta := router.Meta{constants.MetaTitle: "Plain", constants.MetaTitleKey: "Missing"}
	if got := l.Title(meta); got != "Plain" {
		t.Errorf("title with unknown key = %q", got)
	}
	if got := l.Title(nil); got != "" {
		t.Errorf("title of nil meta = %q", got)
	}
}

func TestMatchLocale(t *testing.T) {
	supported := []language.Tag{language.Chinese, language.English}

	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en-GB", language.English},
		{"zh-Hans-CN", language.Chinese},
		{"", language.Chinese},
		{"!!!", language.Chinese},
		{"fr", language.Chinese},
	}

	for _, tt := range tests {
		if got := MatchLocale(supported, tt.in); got != tt.want {
			t.Errorf("MatchLocale(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Package i18n localizes route titles for the hosting shell.
//
// Routes name a message through the "title_key" metadata entry. When the
// message exists for the active locale it replaces the literal "title";
// otherwise the literal is used unchanged.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message IDs shipped with the embedded locale files.
const (
	MessageHomeTitle      = "HomeTitle"
	MessageSecondaryTitle = "SecondaryTitle"
)

// Localizer resolves message IDs for one locale.
type Localizer struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	tag       language.Tag
}

// NewBundle loads the embedded locale files.
func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.Chinese)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// New creates a Localizer for the given locale, e.g. "zh-CN" or "en".
// An empty or unparseable locale falls back to constants.DefaultLocale.
func New(locale string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return NewWithBundle(bundle, locale), nil
}

// NewWithBundle creates a Localizer over an existing bundle.
func NewWithBundle(bundle *goi18n.Bundle, locale string) *Localizer {
	tag := MatchLocale(bundle.LanguageTags(), locale)
	return &Localizer{
		bundle:    bundle,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}
}

// MatchLocale picks the supported tag closest to the requested locale.
func MatchLocale(supported []language.Tag, locale string) language.Tag {
	if strings.TrimSpace(locale) == "" {
		locale = constants.DefaultLocale
	}
	requested, err := language.Parse(locale)
	if err != nil {
		requested = language.MustParse(constants.DefaultLocale)
	}
	if len(supported) == 0 {
		return requested
	}

	_, index, _ := language.NewMatcher(supported).Match(requested)
	return supported[index]
}

// Tag returns the locale the Localizer resolved to.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Message returns the localized message for id.
func (l *Localizer) Message(id string) (string, error) {
	return l.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
}

// MessageOr returns the localized message for id, or fallback if it is not
// defined.
func (l *Localizer) MessageOr(id, fallback string) string {
	if id == "" {
		return fallback
	}
	msg, err := l.Message(id)
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

// Title returns the localized title for route metadata.
func (l *Localizer) Title(meta router.Meta) string {
	return l.MessageOr(meta.GetString(constants.MetaTitleKey), meta.Title())
}

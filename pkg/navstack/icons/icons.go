// Package icons provides the shell's icon plugin: a small set of embedded
// SVG icons rasterized on demand and kept in an LRU cache.
package icons

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrUnknownIcon indicates a name with no registered SVG source.
var ErrUnknownIcon = errors.New("icons: unknown icon")

var builtin = map[string]string{
	constants.IconHome: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#000000" d="M12 3 L2 12 L5 12 L5 21 L10 21 L10 15 L14 15 L14 21 L19 21 L19 12 L22 12 Z"/>
</svg>`,
	constants.IconWallet: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#000000" d="M3 6 L18 6 L18 4 L5 4 L3 6 Z M3 7 L21 7 L21 20 L3 20 Z M15 12 L15 15 L21 15 L21 12 Z"/>
</svg>`,
	constants.IconLink: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#000000" d="M3 10 L10 10 L10 14 L3 14 Z M14 10 L21 10 L21 14 L14 14 Z M8 11 L16 11 L16 13 L8 13 Z"/>
</svg>`,
	constants.IconAlert: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#000000" d="M12 2 L23 21 L1 21 Z M11 9 L11 15 L13 15 L13 9 Z M11 17 L11 19 L13 19 L13 17 Z"/>
</svg>`,
}

const defaultMaxCacheSize = 16

// Set rasterizes registered icons and caches the results by name and size.
// It is safe for concurrent use.
type Set struct {
	mu      sync.Mutex
	sources map[string]string
	cache   *lru.Cache[string, *image.RGBA]
}

// NewSet creates a Set holding the built-in icons.
func NewSet() *Set {
	return NewSetWithCacheSize(defaultMaxCacheSize)
}

// NewSetWithCacheSize creates a Set whose cache holds at most maxSize images.
// A non-positive size uses the default.
func NewSetWithCacheSize(maxSize int) *Set {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	sources := make(map[string]string, len(builtin))
	for name, src := range builtin {
		sources[name] = src
	}
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New[string, *image.RGBA](maxSize)
	return &Set{
		sources: sources,
		cache:   cache,
	}
}

// Register adds or replaces an icon from SVG source.
// The source is parsed immediately so that malformed icons fail here.
func (s *Set) Register(name, svg string) error {
	if _, err := oksvg.ReadIconStream(strings.NewReader(svg)); err != nil {
		return fmt.Errorf("icons: parse %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[name] = svg
	for _, key := range s.cache.Keys() {
		if strings.HasPrefix(key, name+"@") {
			s.cache.Remove(key)
		}
	}
	return nil
}

// Names returns the registered icon names in sorted order.
func (s *Set) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.sources))
	for name := range s.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rasterize returns the named icon drawn into a size x size image.
// Each call returns a fresh copy the caller may draw on.
func (s *Set) Rasterize(name string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icons: invalid size %d", size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%s@%d", name, size)
	if img, ok := s.cache.Get(key); ok {
		return cloneRGBA(img), nil
	}

	src, ok := s.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, name)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("icons: parse %s: %w", name, err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	s.cache.Add(key, img)
	return cloneRGBA(img), nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	return &image.RGBA{
		Pix:    slices.Clone(src.Pix),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
}

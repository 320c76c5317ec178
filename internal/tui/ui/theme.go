package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when the config names no theme or an unknown one.
const DefaultTheme = "dracula"

// ThemeProvider wraps a bubbletint registry holding every built-in tint.
type ThemeProvider struct {
	registry *tint.Registry
	ids      []string
}

// NewThemeProvider creates a ThemeProvider set to initialTheme,
// or to DefaultTheme when initialTheme is empty or unknown.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	tints := tint.DefaultTints()

	fallback := tints[0]
	for _, t := range tints {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}

	tp := &ThemeProvider{registry: tint.NewRegistry(fallback, tints...)}
	tp.ids = tp.registry.TintIDs()
	sort.Strings(tp.ids)

	if initialTheme != "" {
		tp.registry.SetTintID(initialTheme)
	}
	return tp
}

// SetTheme switches to the named theme and reports whether it exists.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// NextTheme cycles forward and returns the new theme name.
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// PreviousTheme cycles backward and returns the new theme name.
func (tp *ThemeProvider) PreviousTheme() string {
	tp.registry.PreviousTint()
	return tp.registry.ID()
}

// CurrentName returns the id of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns the sorted theme ids.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := make([]string, len(tp.ids))
	copy(ids, tp.ids)
	return ids
}

// IndexOf returns the position of name in AvailableThemes, or -1.
func (tp *ThemeProvider) IndexOf(name string) int {
	i := sort.SearchStrings(tp.ids, name)
	if i < len(tp.ids) && tp.ids[i] == name {
		return i
	}
	return -1
}

// Registry returns the underlying bubbletint registry.
func (tp *ThemeProvider) Registry() *tint.Registry {
	return tp.registry
}

// Styles returns the styles of the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}

package renderer

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Sadvi2004/CodeForge/internal/config"
	"github.com/Sadvi2004/CodeForge/internal/renderer/backend"
)

// errorHex colors error notices. It is not configurable.
const errorHex = "#f85149"

// Theme holds the styles the renderer draws with.
type Theme struct {
	Text      backend.Style
	Muted     backend.Style
	Selection backend.Style

	TabActive   backend.Style
	TabInactive backend.Style

	Status      backend.Style
	StatusWarn  backend.Style
	StatusError backend.Style
}

// NewTheme builds a Theme from configured hex colors. Derived colors
// (selection, panels) are blended in Lab space so they track the palette.
func NewTheme(tc config.ThemeConfig) (Theme, error) {
	accent, err := parseColor("accent", tc.Accent)
	if err != nil {
		return Theme{}, err
	}
	fg, err := parseColor("foreground", tc.Foreground)
	if err != nil {
		return Theme{}, err
	}
	bg, err := parseColor("background", tc.Background)
	if err != nil {
		return Theme{}, err
	}
	muted, err := parseColor("muted", tc.Muted)
	if err != nil {
		return Theme{}, err
	}
	red, _ := colorful.Hex(errorHex)

	panel := bg.BlendLab(muted, 0.18)
	sel := bg.BlendLab(accent, 0.35)

	return Theme{
		Text:      backend.Style{Foreground: fg, Background: bg},
		Muted:     backend.Style{Foreground: muted, Background: bg},
		Selection: backend.Style{Foreground: fg, Background: sel},

		TabActive:   backend.Style{Foreground: accent, Background: bg, Bold: true},
		TabInactive: backend.Style{Foreground: muted, Background: panel},

		Status:      backend.Style{Foreground: fg, Background: panel},
		StatusWarn:  backend.Style{Foreground: accent, Background: panel, Bold: true},
		StatusError: backend.Style{Foreground: red, Background: panel, Bold: true},
	}, nil
}

// DefaultTheme returns the theme for the built-in palette.
func DefaultTheme() Theme {
	th, err := NewTheme(config.Default().Theme)
	if err != nil {
		panic(err)
	}
	return th
}

func parseColor(name, hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("theme %s: %w", name, err)
	}
	return c, nil
}

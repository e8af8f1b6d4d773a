package buffer

import "fmt"

// Kind identifies one of the three playground documents.
type Kind uint8

const (
	// Markup is the HTML body fragment.
	Markup Kind = iota
	// Style is the stylesheet.
	Style
	// Script is the JavaScript program.
	Script
)

// Kinds lists every buffer kind in display and export order.
var Kinds = []Kind{Markup, Style, Script}

// String returns the short name used in tabs, logs and config keys.
func (k Kind) String() string {
	switch k {
	case Markup:
		return "html"
	case Style:
		return "css"
	case Script:
		return "js"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// FileName returns the conventional file name for the kind in an exported project.
func (k Kind) FileName() string {
	switch k {
	case Markup:
		return "index.html"
	case Style:
		return "style.css"
	case Script:
		return "script.js"
	default:
		return ""
	}
}

// Title returns a human-readable label.
func (k Kind) Title() string {
	switch k {
	case Markup:
		return "HTML"
	case Style:
		return "CSS"
	case Script:
		return "JavaScript"
	default:
		return k.String()
	}
}

// ParseKind parses a short name ("html", "css", "js").
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

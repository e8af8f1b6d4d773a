package smartedit

import (
	"regexp"
	"strings"
	"unicode"
)

// openTagAtEnd matches an opening tag that is still being typed at the end
// of the text: "<div", "<a href=\"x\"".
var openTagAtEnd = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9-]*)(?:\s[^<]*)?\s*$`)

// voidElements never take a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// PendingTag inspects the text before the caret at the moment ">" is typed
// and returns the lowercased element name that needs a closing tag.
func PendingTag(before string) (string, bool) {
	m := openTagAtEnd.FindStringSubmatch(before)
	if m == nil {
		return "", false
	}
	tag := strings.ToLower(m[1])
	if voidElements[tag] {
		return "", false
	}
	if strings.HasSuffix(strings.TrimRightFunc(before, unicode.IsSpace), "/") {
		return "", false
	}
	return tag, true
}

// ClosingTag returns "</tag>".
func ClosingTag(tag string) string {
	return "</" + tag + ">"
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

package project

import (
	"errors"
	"strings"

	"github.com/Sadvi2004/CodeForge/internal/archive"
	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
)

// ErrNothingToExport is returned when every buffer is blank.
var ErrNothingToExport = errors.New("nothing to export")

// Placeholders written for empty buffers.
const (
	DefaultStyle  = "/* styles */"
	DefaultScript = "// scripts"
)

// DocumentTitle is the <title> of the exported index.html.
const DocumentTitle = "My Project"

// Document wraps markup in the exported index.html page.
func Document(markup string) string {
	return strings.Join([]string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<head>",
		`  <meta charset="UTF-8" />`,
		`  <meta name="viewport" content="width=device-width,initial-scale=1.0" />`,
		"  <title>" + DocumentTitle + "</title>",
		`  <link rel="stylesheet" href="` + buffer.Style.FileName() + `" />`,
		"</head>",
		"<body>",
		markup,
		`<script src="` + buffer.Script.FileName() + `"></script>`,
		"</body>",
		"</html>",
	}, "\n")
}

// Assemble returns the archive entries for the given buffer contents, in
// the order index.html, style.css, script.js. Each buffer is trimmed of
// surrounding whitespace first. It returns ErrNothingToExport when all
// three are blank.
func Assemble(markup, style, script string) ([]archive.Entry, error) {
	markup = strings.TrimSpace(markup)
	style = strings.TrimSpace(style)
	script = strings.TrimSpace(script)

	if markup == "" && style == "" && script == "" {
		return nil, ErrNothingToExport
	}
	if style == "" {
		style = DefaultStyle
	}
	if script == "" {
		script = DefaultScript
	}

	return []archive.Entry{
		{Name: buffer.Markup.FileName(), Data: []byte(Document(markup))},
		{Name: buffer.Style.FileName(), Data: []byte(style)},
		{Name: buffer.Script.FileName(), Data: []byte(script)},
	}, nil
}

package config

import (
	"errors"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxIndentWidth bounds editor.indent_width.
const MaxIndentWidth = 8

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

var primaryModifiers = map[string]bool{"ctrl": true, "control": true, "meta": true, "cmd": true, "command": true, "super": true}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path string, value any, msg string) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: msg})
	}

	if c.Editor.IndentWidth < 1 || c.Editor.IndentWidth > MaxIndentWidth {
		fail("editor.indent_width", c.Editor.IndentWidth, "must be between 1 and 8")
	}
	if !primaryModifiers[strings.ToLower(c.Editor.PrimaryModifier)] {
		fail("editor.primary_modifier", c.Editor.PrimaryModifier, `must be "ctrl" or "meta"`)
	}
	if c.History.Capacity < 1 {
		fail("history.capacity", c.History.Capacity, "must be positive")
	}
	if c.Preview.Enabled && c.Preview.Path == "" {
		fail("preview.path", c.Preview.Path, "required when preview is enabled")
	}
	if c.Export.FileName == "" || strings.ContainsAny(c.Export.FileName, `/\`) {
		fail("export.file_name", c.Export.FileName, "must be a plain file name")
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		fail("log.level", c.Log.Level, "must be debug, info, warn or error")
	}

	colors := []struct {
		path, value string
	}{
		{"theme.accent", c.Theme.Accent},
		{"theme.foreground", c.Theme.Foreground},
		{"theme.background", c.Theme.Background},
		{"theme.muted", c.Theme.Muted},
	}
	for _, col := range colors {
		if _, err := colorful.Hex(col.value); err != nil {
			fail(col.path, col.value, "must be a #rrggbb color")
		}
	}

	return errors.Join(errs...)
}

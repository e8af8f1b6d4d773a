package config

import (
	"os"
	"path/filepath"
)

// Config holds every CodeForge setting.
//
// Config is a plain value. Load returns a fresh instance; callers that
// share one across goroutines must synchronize themselves.
type Config struct {
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Preview PreviewConfig `toml:"preview" yaml:"preview"`
	Export  ExportConfig  `toml:"export" yaml:"export"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`

	// Path is the file the configuration was loaded from, or "".
	Path string `toml:"-" yaml:"-"`
}

// EditorConfig holds text editing settings.
type EditorConfig struct {
	// IndentWidth is the number of spaces Tab and smart Enter insert.
	IndentWidth int `toml:"indent_width" yaml:"indent_width"`

	// PrimaryModifier is the shortcut modifier: "ctrl" or "meta".
	PrimaryModifier string `toml:"primary_modifier" yaml:"primary_modifier"`
}

// HistoryConfig holds undo/redo settings.
type HistoryConfig struct {
	// Capacity bounds each buffer's undo stack.
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// PreviewConfig holds live preview settings.
type PreviewConfig struct {
	// Enabled turns preview rendering on.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Path is where the preview document is written.
	Path string `toml:"path" yaml:"path"`
}

// ExportConfig holds project archive settings.
type ExportConfig struct {
	// Dir is the directory archives are written to.
	Dir string `toml:"dir" yaml:"dir"`

	// FileName is the archive file name.
	FileName string `toml:"file_name" yaml:"file_name"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Empty discards logs, since the terminal
	// belongs to the editor while it runs.
	File string `toml:"file" yaml:"file"`
}

// ThemeConfig holds colors as #rrggbb hex strings.
type ThemeConfig struct {
	Accent     string `toml:"accent" yaml:"accent"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
	Muted      string `toml:"muted" yaml:"muted"`
}

// Default values.
const (
	DefaultIndentWidth     = 2
	DefaultPrimaryModifier = "ctrl"
	DefaultHistoryCapacity = 300
	DefaultArchiveName     = "codeforge-project.zip"
	DefaultLogLevel        = "info"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			IndentWidth:     DefaultIndentWidth,
			PrimaryModifier: DefaultPrimaryModifier,
		},
		History: HistoryConfig{
			Capacity: DefaultHistoryCapacity,
		},
		Preview: PreviewConfig{
			Enabled: true,
			Path:    filepath.Join(os.TempDir(), "codeforge-preview.html"),
		},
		Export: ExportConfig{
			Dir:      ".",
			FileName: DefaultArchiveName,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Theme: ThemeConfig{
			Accent:     "#f97316",
			Foreground: "#e6edf3",
			Background: "#0d1117",
			Muted:      "#8b949e",
		},
	}
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

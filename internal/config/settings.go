package config

import (
	"sort"
	"strconv"
	"strings"
)

// setting binds a dotted path to a field of Config.
type setting struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func stringSetting(field func(c *Config) *string) setting {
	return setting{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error {
			*field(c) = v
			return nil
		},
	}
}

func intSetting(field func(c *Config) *int) setting {
	return setting{
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			*field(c) = n
			return nil
		},
	}
}

func boolSetting(field func(c *Config) *bool) setting {
	return setting{
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, v string) error {
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "yes", "on", "1":
				*field(c) = true
			case "false", "no", "off", "0":
				*field(c) = false
			default:
				return strconv.ErrSyntax
			}
			return nil
		},
	}
}

var settings = map[string]setting{
	"editor.indent_width":     intSetting(func(c *Config) *int { return &c.Editor.IndentWidth }),
	"editor.primary_modifier": stringSetting(func(c *Config) *string { return &c.Editor.PrimaryModifier }),
	"history.capacity":        intSetting(func(c *Config) *int { return &c.History.Capacity }),
	"preview.enabled":         boolSetting(func(c *Config) *bool { return &c.Preview.Enabled }),
	"preview.path":            stringSetting(func(c *Config) *string { return &c.Preview.Path }),
	"export.dir":              stringSetting(func(c *Config) *string { return &c.Export.Dir }),
	"export.file_name":        stringSetting(func(c *Config) *string { return &c.Export.FileName }),
	"log.level":               stringSetting(func(c *Config) *string { return &c.Log.Level }),
	"log.file":                stringSetting(func(c *Config) *string { return &c.Log.File }),
	"theme.accent":            stringSetting(func(c *Config) *string { return &c.Theme.Accent }),
	"theme.foreground":        stringSetting(func(c *Config) *string { return &c.Theme.Foreground }),
	"theme.background":        stringSetting(func(c *Config) *string { return &c.Theme.Background }),
	"theme.muted":             stringSetting(func(c *Config) *string { return &c.Theme.Muted }),
}

// Keys returns every setting path in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of the setting at path.
func (c *Config) Get(path string) (string, error) {
	s, ok := settings[path]
	if !ok {
		return "", ErrSettingNotFound
	}
	return s.get(c), nil
}

// Set parses value into the setting at path. The value is not validated
// beyond its type; call Validate once all layers are applied.
func (c *Config) Set(path, value string) error {
	s, ok := settings[path]
	if !ok {
		return &SettingError{Path: path, Value: value, Err: ErrSettingNotFound}
	}
	if err := s.set(c, value); err != nil {
		return &SettingError{Path: path, Value: value, Err: err}
	}
	return nil
}

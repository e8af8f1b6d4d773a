package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration overrides from environment variables.
//
// CODEFORGE_HISTORY_CAPACITY maps to "history.capacity" and
// CODEFORGE_EXPORT_FILE_NAME to "export.file_name": the first segment
// after the prefix is the section, the rest is the key in snake case.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "CODEFORGE_")
	mapping map[string]string // Env var -> config path
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "CODEFORGE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: make(map[string]string),
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader reading from a fixed environment,
// given as KEY=value pairs.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.environ = func() []string { return environ }
	return l
}

// AddMapping maps an environment variable to a config path explicitly.
// Mapped variables do not need the prefix.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load returns config path -> raw value for every matching variable.
// Empty values are kept; an empty string is a valid override.
func (l *EnvLoader) Load() map[string]string {
	out := make(map[string]string)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if path, mapped := l.mapping[name]; mapped {
			out[path] = value
			continue
		}
		if !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if path := l.envToPath(name); path != "" {
			out[path] = value
		}
	}

	return out
}

// envToPath converts CODEFORGE_EXPORT_FILE_NAME to export.file_name.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return strings.ToLower(section) + "." + strings.ToLower(key)
}

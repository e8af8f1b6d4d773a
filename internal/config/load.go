package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Sadvi2004/CodeForge/internal/config/loader"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CODEFORGE_"

// Load builds a configuration from defaults, the file at path and the
// environment, then validates it. An empty path or a missing file skips
// the file layer. The returned config is nil on error.
func Load(path string) (*Config, error) {
	return LoadWithFS(loader.DefaultFS(), path)
}

// LoadWithFS is Load with a custom file system.
func LoadWithFS(fs loader.FileSystem, path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		found, err := loader.LoadFile(fs, path, cfg)
		if err != nil {
			return nil, err
		}
		if found {
			cfg.Path = path
		}
	}

	if err := cfg.ApplyEnv(loader.NewEnvLoader(EnvPrefix)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables. Variables that
// do not name a setting are ignored.
func (c *Config) ApplyEnv(env *loader.EnvLoader) error {
	vars := env.Load()

	paths := make([]string, 0, len(vars))
	for p := range vars {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var errs []error
	for _, p := range paths {
		err := c.Set(p, vars[p])
		if err != nil && !errors.Is(err, ErrSettingNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package config

import (
	"github.com/Sadvi2004/CodeForge/internal/config/watcher"
)

// ReloadFunc receives the result of a reload. Exactly one of cfg and err
// is non-nil.
type ReloadFunc func(cfg *Config, err error)

// Watch reloads the configuration at path whenever the file changes and
// passes the result to fn. fn runs on the watcher's goroutine. Removals
// are ignored; the previous configuration stays in effect until the file
// reappears. The caller must Close the returned watcher.
func Watch(path string, fn ReloadFunc, opts ...watcher.Option) (*watcher.Watcher, error) {
	w, err := watcher.New(path, opts...)
	if err != nil {
		return nil, err
	}

	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			return
		}
		fn(Load(path))
	})
	w.OnError(func(err error) {
		fn(nil, err)
	})

	if err := w.Start(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

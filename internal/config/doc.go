// Package config provides the configuration system for CodeForge.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by main)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← CODEFORGE_SECTION_KEY
//	├─────────────────────────────┤
//	│  2. Config File             │  ← codeforge.toml or codeforge.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file decoding (TOML, YAML) and environment variables
//   - watcher: File watching for live reload
//
// # Configuration Files
//
// The file format is chosen by extension:
//
//	# codeforge.toml
//	[editor]
//	indent_width = 4
//	primary_modifier = "meta"
//
//	[history]
//	capacity = 500
//
//	[theme]
//	accent = "#f97316"
//
// Unknown keys are reported as parse errors so typos do not go unnoticed.
//
// # Environment
//
// Every setting can be overridden with CODEFORGE_<SECTION>_<KEY>, for
// example CODEFORGE_HISTORY_CAPACITY=50 or CODEFORGE_LOG_LEVEL=debug.
//
// # Live Reload
//
// Watch reloads the file whenever it changes on disk and hands the new
// configuration, or the load error, to a callback.
package config

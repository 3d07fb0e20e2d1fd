// Package config provides the configuration for hecto.
//
// Settings come from the built-in defaults, optionally overlaid by one
// config file given on the command line. Command line flags are applied by
// the caller after Load and win over the file.
//
// # File Formats
//
// The format is chosen by extension. TOML:
//
//	[log]
//	level = "debug"
//	file = "/tmp/hecto.log"
//
//	[ui]
//	backend = "ansi"
//	statusTimeout = "3s"
//
//	[ui.statusBar]
//	fg = "#3f3f3f"
//	bg = "#efefef"
//
//	[keys]
//	save = "C-s"
//	quit = "C-q"
//
// YAML (.yaml or .yml) uses the same keys.
//
// # Basic Usage
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	timeout := cfg.StatusTimeout()
package config

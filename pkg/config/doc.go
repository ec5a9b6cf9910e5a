// Package config loads the shortcut-maker settings.
//
// Sources are layered, lowest precedence first: the embedded defaults, the
// user config file (TOML or YAML), SHORTCUT_MAKER_* environment variables
// and the command line flags the user actually set.
package config

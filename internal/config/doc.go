// Package config loads the termstack configuration.
//
// Configuration comes from a TOML file, defaults for every missing key,
// and TERMSTACK_* environment variables, which take precedence over the
// file. Watcher reports changes to files such as key binding files so
// they can be reloaded while the application runs.
package config

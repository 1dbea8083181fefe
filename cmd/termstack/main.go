// Package main is the entry point for termstack.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/termstack/internal/config"
	"github.com/dshills/termstack/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	var (
		flags   globalFlags
		root    string
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "termstack",
		Short: "Terminal window-stack runtime demo",
		Long: `termstack runs a demo application on the terminal window-stack runtime.

The desktop is an MDI container with a menu and a status bar:
  F2      open a modal dialog (Esc closes it)
  F3      open a window on the desktop
  F4      search the working directory for file names
  Ctrl+Q  close the current window, or quit from the desktop

Key bindings can be changed with binding files and Lua scripts listed in
the configuration file.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, closer, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			if root == "" {
				if root, err = os.Getwd(); err != nil {
					return err
				}
			}
			return runDemo(cmd.Context(), cfg, logger, demoOptions{Root: root, Pattern: pattern})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to the configuration file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file")

	cmd.Flags().StringVar(&root, "root", "", "directory searched by F4 (default: working directory)")
	cmd.Flags().StringVar(&pattern, "search", "go", "file name pattern searched by F4")

	cmd.AddCommand(
		newKeysCmd(&flags),
		newParseCmd(),
		newConfigCmd(&flags),
	)
	return cmd
}

// loadConfig loads the configuration file and applies command line
// overrides, which take precedence over the environment.
func loadConfig(flags globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.App.LogLevel = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.App.LogFile = flags.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the process logger. Without a log file output is
// discarded, since the terminal belongs to the driver.
func newLogger(cfg *config.Config) (*logging.Logger, io.Closer, error) {
	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.App.LogFile != "" {
		f, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel(), Output: out})
	logging.SetDefault(logger)
	return logger, closer, nil
}

// errInvalidKeys is returned by the parse command when any argument
// failed to parse.
var errInvalidKeys = errors.New("invalid key strings")

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/termstack/internal/driver"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
	"github.com/dshills/termstack/internal/logging"
)

func newKeysCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "keys [binding-file...]",
		Short: "Print the effective application key bindings",
		Long: `Print the application key bindings after the defaults, the configured
binding files and scripts, and any binding files given as arguments have
been applied. The output is itself a valid binding file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := keybinding.FormatForPath("bindings." + format)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}

			logger := logging.New(logging.Config{Level: cfg.LogLevel(), Output: cmd.ErrOrStderr()})
			a, engine, err := newApplication(cfg, driver.NewNullDriver(80, 24), logger)
			if a == nil {
				return err
			}
			defer a.Shutdown()
			defer engine.Close()
			if err != nil {
				return err
			}
			if err := applyBindingFiles(a.KeyBindings(), args); err != nil {
				return err
			}

			data, err := keybinding.FileFromBindings(a.KeyBindings()).Marshal(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml, yaml, json)")
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <key>...",
		Short: "Parse key strings and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			var bad []string
			for _, text := range args {
				k, ok := key.TryParse(text)
				if !ok {
					bad = append(bad, text)
					fmt.Fprintf(tw, "%s\tinvalid\n", text)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%#x\n", text, k, uint32(k.KeyCode()))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(bad) > 0 {
				return fmt.Errorf("%w: %s", errInvalidKeys, strings.Join(bad, ", "))
			}
			return nil
		},
	}
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

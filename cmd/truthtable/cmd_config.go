package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

var forceWrite bool

// configCmd groups config file maintenance. It loads the config without
// opening the table store.
var configCmd = &cobra.Command{
	Use:               "config",
	Short:             "Manage the YAML config file",
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadConfig,
}

// initCmd writes the effective config to --config
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the config file",
	Long: `init writes the settings in effect (defaults, then the existing config file,
environment and flags) to the path given by --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfig(cmd.OutOrStdout(), configPath, forceWrite)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(initCmd)
}

func writeConfig(w io.Writer, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

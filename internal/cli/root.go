package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/tinytask/internal/config"
	"github.com/jyang234/tinytask/internal/store"
)

var (
	dataDir string
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "tinytask",
		Short: "tinytask - a tiny CLI task manager",
		Long: `tinytask is a tiny CLI task manager for personal productivity.

Tasks live in two JSON files under ~/.tinytask (tasks.json and
archive.json); every command performs one load, applies its operation,
and writes the result back atomically.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: checkEnabled,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the data directory")
}

// Execute runs the root command
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(uninstallCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// openStore resolves the data directory (flag > env/config > default)
// and returns the store together with the loaded configuration.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	if dir == "" {
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, nil, err
		}
	}
	return store.New(dir), cfg, nil
}

// lifecycleCommands may run while the CLI is disabled.
var lifecycleCommands = map[string]bool{
	"tinytask":   true,
	"enable":     true,
	"disable":    true,
	"uninstall":  true,
	"help":       true,
	"completion": true,
	"config":     true,
	"show":       true,
	"path":       true,
	"init":       true,
}

// checkEnabled refuses to run task commands while the disable marker is
// present.
func checkEnabled(cmd *cobra.Command, args []string) error {
	if lifecycleCommands[cmd.Name()] {
		return nil
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	if st.Disabled() {
		reason := st.DisabledReason()
		if reason == "" {
			return fmt.Errorf("tinytask is disabled; run 'tinytask enable' to re-enable")
		}
		return fmt.Errorf("tinytask is disabled (%s); run 'tinytask enable' to re-enable", reason)
	}
	return nil
}

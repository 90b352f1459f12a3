package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable tinytask",
	Long: `Put the CLI into a disabled state by writing a marker file to the
data directory. Task commands refuse to run until 'enable'.`,
	RunE: runDisable,
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Re-enable tinytask",
	RunE:  runEnable,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the data directory and all tasks",
	RunE:  runUninstall,
}

func init() {
	disableCmd.Flags().String("reason", "", "Reason recorded in the marker file")
	uninstallCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}

func runDisable(cmd *cobra.Command, args []string) error {
	reason, _ := cmd.Flags().GetString("reason")

	st, _, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Disable(reason, time.Now()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "tinytask disabled. Run 'tinytask enable' to re-enable.")
	return nil
}

func runEnable(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Enable(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "tinytask enabled.")
	return nil
}

func runUninstall(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	st, _, err := openStore()
	if err != nil {
		return err
	}

	if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
		fmt.Sprintf("Remove %s and all tasks?", st.Dir())) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	if err := st.Uninstall(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", st.Dir())
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove tasks in bulk",
	Long: `Remove all tasks, or only completed ones with --done.

Example:
  tinytask clear --done
  tinytask clear --force`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolP("done", "d", false, "Remove only completed tasks")
	clearCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	doneOnly, _ := cmd.Flags().GetBool("done")
	force, _ := cmd.Flags().GetBool("force")

	st, _, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	what := "ALL tasks"
	if doneOnly {
		what = "completed tasks"
	}

	cleared, removed := collection.Clear(doneOnly)
	if removed == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s to clear.\n", what)
		return nil
	}

	if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %d %s?", removed, what)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	if err := st.Save(cleared); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d %s\n", removed, what)
	return nil
}

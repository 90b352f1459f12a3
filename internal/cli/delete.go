package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete task %d?", id)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	collection, err = collection.Delete(id)
	if err != nil {
		return err
	}
	if err := st.Save(collection); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted\n", id)
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move completed tasks to the archive",
	Long: `Move all completed tasks from the active collection to archive.json.
Archived tasks keep their IDs and timestamps.`,
	RunE: runArchive,
}

func runArchive(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	remaining, archived := collection.Archive(time.Now())
	if len(archived) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No completed tasks to archive.")
		return nil
	}

	// Append to the archive first so a failure leaves the active file
	// untouched.
	if err := st.AppendArchive(archived); err != nil {
		return err
	}
	if err := st.Save(remaining); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Archived %d tasks\n", len(archived))
	return nil
}

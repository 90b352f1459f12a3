package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag <id> [tags...]",
	Short: "Replace a task's tags",
	Long: `Replace the full tag set of a task. Passing no tags clears them.

Example:
  tinytask tag 1 work urgent
  tinytask tag 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTag,
}

func runTag(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	collection, updated, err := collection.SetTags(id, args[1:])
	if err != nil {
		return err
	}
	if err := st.Save(collection); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Tags updated for task %d\n%s\n", id, renderTask(updated))
	return nil
}

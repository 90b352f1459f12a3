package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/tinytask/internal/task"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to the active collection.

Example:
  tinytask add "Buy groceries" --tag shopping --tag personal --priority high --due 2025-02-01`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringSliceP("tag", "t", nil, "Add a tag (repeatable)")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, or high")
	addCmd.Flags().StringP("due", "d", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringP("note", "n", "", "Free-text note")
}

func runAdd(cmd *cobra.Command, args []string) error {
	tags, _ := cmd.Flags().GetStringSlice("tag")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	dueFlag, _ := cmd.Flags().GetString("due")
	note, _ := cmd.Flags().GetString("note")

	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	draft := task.Draft{Title: args[0], Tags: tags, Note: note}

	if priorityFlag == "" {
		priorityFlag = cfg.DefaultPriority
	}
	if priorityFlag != "" {
		draft.Priority, err = task.ParsePriority(priorityFlag)
		if err != nil {
			return err
		}
	}
	if dueFlag != "" {
		due, err := task.ParseDate(dueFlag)
		if err != nil {
			return err
		}
		draft.DueDate = &due
	}

	collection, err := st.Load()
	if err != nil {
		return err
	}

	collection, created, err := collection.Add(draft, time.Now())
	if err != nil {
		return err
	}
	if err := st.Save(collection); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d\n%s\n", created.ID, renderTask(created))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/tinytask/internal/task"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's fields",
	Long: `Edit a task. Only the flags you supply are changed; completion state
is managed by 'done' and 'undone'.

Example:
  tinytask edit 3 --title "Buy oat milk" --priority low
  tinytask edit 3 --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().StringP("priority", "p", "", "New priority: low, medium, or high")
	editCmd.Flags().StringSliceP("tag", "t", nil, "Replacement tags (repeatable)")
	editCmd.Flags().StringP("due", "d", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().Bool("clear-due", false, "Remove the due date")
	editCmd.Flags().StringP("note", "n", "", "New note")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var patch task.Patch
	changed := false

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		patch.Title = &title
		changed = true
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		p, err := task.ParsePriority(raw)
		if err != nil {
			return err
		}
		patch.Priority = &p
		changed = true
	}
	if cmd.Flags().Changed("tag") {
		tags, _ := cmd.Flags().GetStringSlice("tag")
		patch.Tags = &tags
		changed = true
	}
	if clear, _ := cmd.Flags().GetBool("clear-due"); clear {
		patch.ClearDue = true
		changed = true
	} else if cmd.Flags().Changed("due") {
		raw, _ := cmd.Flags().GetString("due")
		due, err := task.ParseDate(raw)
		if err != nil {
			return err
		}
		patch.DueDate = &due
		changed = true
	}
	if cmd.Flags().Changed("note") {
		note, _ := cmd.Flags().GetString("note")
		patch.Note = &note
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to edit; supply at least one field flag")
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	collection, updated, err := collection.Edit(id, patch)
	if err != nil {
		return err
	}
	if err := st.Save(collection); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated\n%s\n", id, renderTask(updated))
	return nil
}

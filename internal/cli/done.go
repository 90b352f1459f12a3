package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDone(cmd, args[0], true)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Reopen a completed task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDone(cmd, args[0], false)
	},
}

func setDone(cmd *cobra.Command, idArg string, done bool) error {
	id, err := parseID(idArg)
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

	collection, updated, err := collection.SetDone(id, done, time.Now())
	if err != nil {
		return err
	}
	if err := st.Save(collection); err != nil {
		return err
	}

	if done {
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as done\n%s\n", id, renderTask(updated))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Task %d reopened\n%s\n", id, renderTask(updated))
	}
	return nil
}

// parseID parses a task ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

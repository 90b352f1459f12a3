package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/tinytask/internal/task"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks with optional filtering",
	Long: `List active tasks. All supplied filters must match.

Example:
  tinytask list
  tinytask list --all
  tinytask list --tag work --priority high --due overdue`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include completed tasks")
	listCmd.Flags().StringP("tag", "t", "", "Filter by tag")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority")
	listCmd.Flags().StringP("due", "d", "", "Filter by due window: overdue, today, or upcoming")
}

func runList(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	tag, _ := cmd.Flags().GetString("tag")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	dueFlag, _ := cmd.Flags().GetString("due")

	st, cfg, err := openStore()
	if err != nil {
		return err
	}

	query := task.Query{
		Tag:         tag,
		IncludeDone: all,
		Today:       task.DateOf(time.Now()),
		Horizon:     cfg.UpcomingHorizonDays,
	}
	if priorityFlag != "" {
		p, err := task.ParsePriority(priorityFlag)
		if err != nil {
			return err
		}
		query.Priority = &p
	}
	if dueFlag != "" {
		query.Due, err = task.ParseWindow(dueFlag)
		if err != nil {
			return err
		}
	}

	collection, err := st.Load()
	if err != nil {
		return err
	}

	tasks := collection.Filter(query)
	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		if !all {
			fmt.Fprintln(out, "Tip: use --all to include completed tasks.")
		}
		return nil
	}

	fmt.Fprint(out, renderTable(tasks))

	if all {
		done := 0
		for _, t := range tasks {
			if t.Done {
				done++
			}
		}
		fmt.Fprintf(out, "\nTotal: %d | Done: %d | Pending: %d\n", len(tasks), done, len(tasks)-done)
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/tinytask/internal/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if collection.Len() == 0 {
		fmt.Fprintln(out, "No tasks yet.")
		return nil
	}

	s := collection.Stats(task.DateOf(time.Now()), cfg.UpcomingHorizonDays)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", headerStyle.Render("Total tasks:"), s.Total)
	fmt.Fprintf(&b, "%s %d (%.1f%%)\n", okStyle.Render("✓ Completed:"), s.Done, s.CompletionPct)
	fmt.Fprintf(&b, "%s %d\n\n", headerStyle.Render("○ Pending:"), s.Pending)

	fmt.Fprintf(&b, "%s\n", headerStyle.Render("Pending by priority:"))
	for _, p := range []task.Priority{task.PriorityHigh, task.PriorityMedium, task.PriorityLow} {
		fmt.Fprintf(&b, "  %s  %d\n", renderPriority(p), s.PendingByPriority[p])
	}

	fmt.Fprintf(&b, "\n%s\n", headerStyle.Render("Due windows:"))
	fmt.Fprintf(&b, "  overdue %d | today %d | upcoming %d\n", s.Overdue, s.DueToday, s.Upcoming)

	fmt.Fprintf(&b, "\n%s %d", headerStyle.Render("Tags:"), len(s.Tags))
	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, "\n  %s", renderTags(s.Tags))
	}

	fmt.Fprintln(out, panelStyle.Render(b.String()))
	return nil
}

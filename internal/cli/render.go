package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jyang234/tinytask/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	priorityStyles = map[task.Priority]lipgloss.Style{
		task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		task.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		task.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	prioritySymbols = map[task.Priority]string{
		task.PriorityLow:    "○",
		task.PriorityMedium: "◐",
		task.PriorityHigh:   "●",
	}
)

func renderPriority(p task.Priority) string {
	style, ok := priorityStyles[p]
	if !ok {
		return string(p)
	}
	return style.Render(prioritySymbols[p] + " " + string(p))
}

func renderStatus(done bool) string {
	if done {
		return okStyle.Render("✓")
	}
	return "○"
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return dimStyle.Render("—")
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return tagStyle.Render(strings.Join(parts, ", "))
}

// renderTable formats tasks as an aligned table with a styled header.
func renderTable(tasks []task.Task) string {
	var b strings.Builder

	titleWidth := len("Title")
	for _, t := range tasks {
		if len(t.Title) > titleWidth {
			titleWidth = len(t.Title)
		}
	}

	fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
		headerStyle.Render(fmt.Sprintf("%-4s", "ID")),
		headerStyle.Render(fmt.Sprintf("%-6s", "Status")),
		headerStyle.Render(fmt.Sprintf("%-10s", "Priority")),
		headerStyle.Render(fmt.Sprintf("%-*s", titleWidth, "Title")),
		headerStyle.Render("Tags"))

	for _, t := range tasks {
		title := fmt.Sprintf("%-*s", titleWidth, t.Title)
		if t.Done {
			title = doneStyle.Render(title)
		}
		due := ""
		if t.DueDate != nil {
			due = "  " + dimStyle.Render("due "+t.DueDate.String())
		}
		fmt.Fprintf(&b, "  %-4d  %-6s  %-10s  %s  %s%s\n",
			t.ID,
			renderStatus(t.Done),
			renderPriority(t.Priority),
			title,
			renderTags(t.Tags),
			due)
	}
	return b.String()
}

// renderTask formats a single task as a bordered detail panel.
func renderTask(t task.Task) string {
	var b strings.Builder

	status := "○ Pending"
	if t.Done {
		status = okStyle.Render("✓ Done")
	}

	fmt.Fprintf(&b, "%s %d\n", headerStyle.Render("ID:"), t.ID)
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Title:"), t.Title)
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Status:"), status)
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Priority:"), renderPriority(t.Priority))
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Tags:"), renderTags(t.Tags))
	if t.DueDate != nil {
		fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Due:"), t.DueDate.String())
	}
	if t.Note != "" {
		fmt.Fprintf(&b, "%s %s\n", headerStyle.Render("Note:"), t.Note)
	}
	fmt.Fprintf(&b, "%s %s", headerStyle.Render("Created:"), t.CreatedAt.Format("2006-01-02"))

	return panelStyle.Render(b.String())
}

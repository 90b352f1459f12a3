package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/jyang234/tinytask/internal/task"
)

func TestParseID(t *testing.T) {
	if id, err := parseID("12"); err != nil || id != 12 {
		t.Errorf("Expected 12, got %d (%v)", id, err)
	}
	for _, bad := range []string{"abc", "0", "-4", ""} {
		if _, err := parseID(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, c := range cases {
		var out strings.Builder
		got := confirm(strings.NewReader(c.input), &out, "Proceed?")
		if got != c.want {
			t.Errorf("confirm(%q): expected %v, got %v", c.input, c.want, got)
		}
		if !strings.Contains(out.String(), "Proceed?") {
			t.Errorf("Expected question in prompt output, got %q", out.String())
		}
	}
}

func TestRenderTableContainsTaskFields(t *testing.T) {
	due, _ := task.ParseDate("2025-02-01")
	tasks := []task.Task{
		{ID: 1, Title: "Write report", Priority: task.PriorityHigh, Tags: []string{"work"}, DueDate: &due, CreatedAt: time.Now()},
		{ID: 2, Title: "Buy milk", Done: true, Priority: task.PriorityLow, CreatedAt: time.Now()},
	}

	out := renderTable(tasks)
	for _, want := range []string{"Write report", "Buy milk", "#work", "2025-02-01", "high", "low"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("Expected header + 2 rows, got %d lines", lines)
	}
}

func TestRenderTaskDetail(t *testing.T) {
	tk := task.Task{
		ID:        7,
		Title:     "Detailed",
		Priority:  task.PriorityMedium,
		Note:      "with a note",
		CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	out := renderTask(tk)
	for _, want := range []string{"Detailed", "with a note", "2025-01-10", "Pending"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected detail panel to contain %q:\n%s", want, out)
		}
	}
}

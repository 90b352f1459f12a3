package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jyang234/tinytask/internal/task"
)

func sampleTasks(t *testing.T) []task.Task {
	t.Helper()
	due, err := task.ParseDate("2025-02-01")
	if err != nil {
		t.Fatal(err)
	}
	created := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	completed := created.Add(48 * time.Hour)

	return []task.Task{
		{
			ID:        1,
			Title:     "Write report",
			Tags:      []string{"work", "writing"},
			Priority:  task.PriorityHigh,
			DueDate:   &due,
			Note:      "quarterly numbers",
			CreatedAt: created,
		},
		{
			ID:          2,
			Title:       "Buy milk",
			Done:        true,
			Priority:    task.PriorityLow,
			CreatedAt:   created,
			CompletedAt: &completed,
		},
	}
}

func TestFlatten(t *testing.T) {
	rows := Flatten(sampleTasks(t), ",")
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Tags != "work,writing" {
		t.Errorf("Expected joined tags, got %q", first.Tags)
	}
	if first.DueDate != "2025-02-01" {
		t.Errorf("Expected due date string, got %q", first.DueDate)
	}
	if first.CompletedAt != "" {
		t.Errorf("Expected empty completed_at for pending task, got %q", first.CompletedAt)
	}

	second := rows[1]
	if second.Tags != "" {
		t.Errorf("Expected empty tags, got %q", second.Tags)
	}
	if second.DueDate != "" {
		t.Errorf("Expected empty due date, got %q", second.DueDate)
	}
	if second.CompletedAt == "" {
		t.Error("Expected completed_at for done task")
	}
}

func TestFlattenCustomDelimiter(t *testing.T) {
	rows := Flatten(sampleTasks(t), ";")
	if rows[0].Tags != "work;writing" {
		t.Errorf("Expected semicolon-joined tags, got %q", rows[0].Tags)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Flatten(sampleTasks(t), ",")); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(decoded))
	}
	if decoded[0]["title"] != "Write report" {
		t.Errorf("Expected title in first object, got %v", decoded[0]["title"])
	}
	if decoded[1]["done"] != true {
		t.Errorf("Expected done=true in second object, got %v", decoded[1]["done"])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, Flatten(sampleTasks(t), ",")); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	wantHeader := "id,title,done,tags,priority,due_date,note,created_at,completed_at"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("Header mismatch:\n  got  %s\n  want %s", got, wantHeader)
	}
	if records[1][1] != "Write report" || records[1][3] != "work,writing" {
		t.Errorf("Unexpected first row: %v", records[1])
	}
	if records[2][2] != "true" {
		t.Errorf("Expected done=true in second row, got %v", records[2])
	}
}

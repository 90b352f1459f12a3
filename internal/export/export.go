// Package export flattens task sequences into tabular form for the
// JSON array and CSV output formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jyang234/tinytask/internal/task"
)

// Row is one task flattened to scalar columns. Absent optional fields
// become empty strings.
type Row struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Done        bool   `json:"done"`
	Tags        string `json:"tags"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Note        string `json:"note"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at"`
}

// Flatten converts tasks into rows, joining tags with the given
// delimiter.
func Flatten(tasks []task.Task, tagDelimiter string) []Row {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		row := Row{
			ID:        t.ID,
			Title:     t.Title,
			Done:      t.Done,
			Tags:      strings.Join(t.Tags, tagDelimiter),
			Priority:  string(t.Priority),
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		}
		if t.DueDate != nil {
			row.DueDate = t.DueDate.String()
		}
		row.Note = t.Note
		if t.CompletedAt != nil {
			row.CompletedAt = t.CompletedAt.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteJSON writes the rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	return nil
}

// header is the fixed CSV column order.
var header = []string{"id", "title", "done", "tags", "priority", "due_date", "note", "created_at", "completed_at"}

// WriteCSV writes the rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.ID),
			r.Title,
			strconv.FormatBool(r.Done),
			r.Tags,
			r.Priority,
			r.DueDate,
			r.Note,
			r.CreatedAt,
			r.CompletedAt,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency level attached to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is used when a task is created without one.
const DefaultPriority = PriorityMedium

// ParsePriority parses a user-supplied priority string.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("%q is not one of low, medium, high", s)}
	}
	return p, nil
}

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// dateLayout is the wire format for due dates (ISO-8601, date only).
const dateLayout = "2006-01-02"

// Date is a calendar day without a time component.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, &ValidationError{Field: "due_date", Reason: fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", s)}
	}
	return Date{t}, nil
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON writes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON reads a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Task is one unit of work in the collection.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Done        bool       `json:"done"`
	Tags        []string   `json:"tags"`
	Priority    Priority   `json:"priority"`
	DueDate     *Date      `json:"due_date"`
	Note        string     `json:"note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Matches reports whether the keyword appears in the title or note,
// case-insensitively.
func (t Task) Matches(keyword string) bool {
	k := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(t.Title), k) {
		return true
	}
	return t.Note != "" && strings.Contains(strings.ToLower(t.Note), k)
}

// NormalizeTags trims whitespace, drops empty entries, and collapses
// duplicates while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

// Collection is the ordered set of tasks in one persisted file. All
// mutating operations return a new Collection and leave the receiver
// untouched; persistence is the store's job.
type Collection struct {
	Tasks []Task
}

// NewCollection returns an empty collection.
func NewCollection() Collection {
	return Collection{Tasks: []Task{}}
}

// Len returns the number of tasks.
func (c Collection) Len() int {
	return len(c.Tasks)
}

// Find returns the task with the given ID.
func (c Collection) Find(id int) (Task, bool) {
	for _, t := range c.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func (c Collection) indexOf(id int) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// NextID returns one more than the maximum existing ID, or 1 for an
// empty collection. IDs stay unique even after deletions because the
// maximum never decreases below a live task's ID.
func (c Collection) NextID() int {
	max := 0
	for _, t := range c.Tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// clone copies the task slice so callers never alias the receiver.
func (c Collection) clone() Collection {
	tasks := make([]Task, len(c.Tasks))
	copy(tasks, c.Tasks)
	return Collection{Tasks: tasks}
}

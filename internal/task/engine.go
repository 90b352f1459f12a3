package task

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Draft is the validated input for creating a task.
type Draft struct {
	Title    string
	Tags     []string
	Priority Priority
	DueDate  *Date
	Note     string
}

// Add validates the draft, assigns the next ID, and appends the new
// task to the collection. The draft's priority defaults to medium when
// unset.
func (c Collection) Add(d Draft, now time.Time) (Collection, Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return c, Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	priority := d.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	if !priority.Valid() {
		return c, Task{}, &ValidationError{Field: "priority", Reason: fmt.Sprintf("%q is not one of low, medium, high", string(priority))}
	}

	t := Task{
		ID:        c.NextID(),
		Title:     title,
		Tags:      NormalizeTags(d.Tags),
		Priority:  priority,
		DueDate:   d.DueDate,
		Note:      d.Note,
		CreatedAt: now,
	}

	out := c.clone()
	out.Tasks = append(out.Tasks, t)
	return out, t, nil
}

// Patch describes an edit: only non-nil fields are applied. Done,
// CreatedAt, and the ID itself are not editable here.
type Patch struct {
	Title    *string
	Priority *Priority
	Tags     *[]string
	DueDate  *Date
	ClearDue bool
	Note     *string
}

// Edit applies the patch to the task with the given ID. Every supplied
// field is validated before anything is mutated, so a rejected patch
// leaves the collection unchanged.
func (c Collection) Edit(id int, p Patch) (Collection, Task, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return c, Task{}, notFound(id)
	}

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return c, Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return c, Task{}, &ValidationError{Field: "priority", Reason: fmt.Sprintf("%q is not one of low, medium, high", string(*p.Priority))}
	}

	out := c.clone()
	t := &out.Tasks[idx]
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Tags != nil {
		t.Tags = NormalizeTags(*p.Tags)
	}
	if p.ClearDue {
		t.DueDate = nil
	} else if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	return out, *t, nil
}

// SetDone marks a task done or not done, keeping CompletedAt coupled to
// the done flag. Re-marking a done task is a state no-op but still
// succeeds.
func (c Collection) SetDone(id int, done bool, now time.Time) (Collection, Task, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return c, Task{}, notFound(id)
	}

	out := c.clone()
	t := &out.Tasks[idx]
	switch {
	case done && !t.Done:
		t.Done = true
		completed := now
		t.CompletedAt = &completed
	case !done:
		t.Done = false
		t.CompletedAt = nil
	}
	return out, *t, nil
}

// SetTags replaces the full tag set of a task. An empty input clears
// all tags.
func (c Collection) SetTags(id int, tags []string) (Collection, Task, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return c, Task{}, notFound(id)
	}

	out := c.clone()
	out.Tasks[idx].Tags = NormalizeTags(tags)
	return out, out.Tasks[idx], nil
}

// Delete removes a task permanently.
func (c Collection) Delete(id int) (Collection, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return c, notFound(id)
	}

	out := c.clone()
	out.Tasks = append(out.Tasks[:idx], out.Tasks[idx+1:]...)
	return out, nil
}

// Clear removes all tasks, or only completed ones when doneOnly is set.
// It returns the number of tasks removed.
func (c Collection) Clear(doneOnly bool) (Collection, int) {
	if !doneOnly {
		return NewCollection(), len(c.Tasks)
	}

	kept := make([]Task, 0, len(c.Tasks))
	removed := 0
	for _, t := range c.Tasks {
		if t.Done {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	return Collection{Tasks: kept}, removed
}

// Archive removes all completed tasks from the collection and returns
// them, stamped with an archive timestamp, for the store to append to
// the archive file. IDs and original timestamps are preserved.
func (c Collection) Archive(now time.Time) (Collection, []Task) {
	kept := make([]Task, 0, len(c.Tasks))
	var archived []Task
	for _, t := range c.Tasks {
		if !t.Done {
			kept = append(kept, t)
			continue
		}
		stamped := now
		t.ArchivedAt = &stamped
		archived = append(archived, t)
	}
	return Collection{Tasks: kept}, archived
}

// Window names a due-date range predicate.
type Window string

const (
	WindowNone     Window = ""
	WindowOverdue  Window = "overdue"
	WindowToday    Window = "today"
	WindowUpcoming Window = "upcoming"
)

// ParseWindow parses a user-supplied due-window name.
func ParseWindow(s string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case WindowNone, WindowOverdue, WindowToday, WindowUpcoming:
		return w, nil
	}
	return "", &ValidationError{Field: "due", Reason: fmt.Sprintf("%q is not one of overdue, today, upcoming", s)}
}

// DefaultHorizonDays bounds the "upcoming" window when no horizon is
// configured.
const DefaultHorizonDays = 7

// Query selects tasks by the logical AND of its supplied predicates.
// Today is injected by the caller so filtering stays deterministic.
type Query struct {
	Tag         string
	Priority    *Priority
	Due         Window
	IncludeDone bool
	Today       Date
	Horizon     int
}

func (q Query) horizon() int {
	if q.Horizon <= 0 {
		return DefaultHorizonDays
	}
	return q.Horizon
}

// inWindow evaluates the due-window predicate for one task.
func (q Query) inWindow(t Task) bool {
	if t.DueDate == nil {
		return false
	}
	due := *t.DueDate
	switch q.Due {
	case WindowOverdue:
		return due.Before(q.Today.Time) && !t.Done
	case WindowToday:
		return due.Equal(q.Today.Time)
	case WindowUpcoming:
		return due.After(q.Today.Time) && !due.After(q.Today.AddDays(q.horizon()).Time)
	}
	return true
}

// Filter returns the tasks matching all supplied predicates, ordered by
// ascending ID.
func (c Collection) Filter(q Query) []Task {
	result := make([]Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		if t.Done && !q.IncludeDone {
			continue
		}
		if q.Tag != "" && !t.HasTag(q.Tag) {
			continue
		}
		if q.Priority != nil && t.Priority != *q.Priority {
			continue
		}
		if q.Due != WindowNone && !q.inWindow(t) {
			continue
		}
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Search returns the tasks whose title or note contains the keyword,
// case-insensitively, ordered by ascending ID.
func (c Collection) Search(keyword string, includeDone bool) []Task {
	result := make([]Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		if t.Done && !includeDone {
			continue
		}
		if t.Matches(keyword) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

package task

import "math"

// StatsSummary aggregates the collection for the stats view.
type StatsSummary struct {
	Total   int
	Done    int
	Pending int

	// CompletionPct is done/total*100 rounded half away from zero to
	// one decimal place; 0 when the collection is empty.
	CompletionPct float64

	PendingByPriority map[Priority]int

	Overdue  int
	DueToday int
	Upcoming int

	// Tags holds every distinct tag in use, in first-seen order.
	Tags []string
}

// Stats computes summary statistics for the collection. The reference
// day and upcoming horizon are injected by the caller; a non-positive
// horizon falls back to DefaultHorizonDays.
func (c Collection) Stats(today Date, horizonDays int) StatsSummary {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	limit := today.AddDays(horizonDays)

	s := StatsSummary{
		PendingByPriority: map[Priority]int{
			PriorityLow:    0,
			PriorityMedium: 0,
			PriorityHigh:   0,
		},
	}

	seen := make(map[string]bool)
	for _, t := range c.Tasks {
		s.Total++
		if t.Done {
			s.Done++
		} else {
			s.Pending++
			s.PendingByPriority[t.Priority]++
		}

		for _, tag := range t.Tags {
			if !seen[tag] {
				seen[tag] = true
				s.Tags = append(s.Tags, tag)
			}
		}

		if t.DueDate == nil {
			continue
		}
		due := *t.DueDate
		switch {
		case due.Before(today.Time) && !t.Done:
			s.Overdue++
		case due.Equal(today.Time):
			s.DueToday++
		case due.After(today.Time) && !due.After(limit.Time):
			s.Upcoming++
		}
	}

	if s.Total > 0 {
		pct := float64(s.Done) / float64(s.Total) * 100
		s.CompletionPct = math.Round(pct*10) / 10
	}
	return s
}

package task

import (
	"math"
	"time"
)

// Stats summarizes a task list for the dashboard.
//
// InProgress here is stricter than the board's column of the same name: it
// counts only incomplete tasks dated exactly today, so overdue incomplete
// tasks land in Pending. The two definitions diverge in the source product
// and are kept divergent on purpose.
type Stats struct {
	Total          int
	Completed      int
	InProgress     int
	Pending        int
	HighPriority   int
	MediumPriority int
	LowPriority    int
	CompletionRate int
}

// CalculateStats computes dashboard statistics relative to now's calendar day.
func CalculateStats(tasks []Task, now time.Time) Stats {
	s := Stats{Total: len(tasks)}
	today := midnight(now)

	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else if parsed, err := ParseDate(t.Date, now.Location()); err == nil && midnight(parsed).Equal(today) {
			s.InProgress++
		}

		switch t.Priority {
		case PriorityHigh:
			s.HighPriority++
		case PriorityMedium:
			s.MediumPriority++
		case PriorityLow:
			s.LowPriority++
		}
	}

	s.Pending = s.Total - s.Completed - s.InProgress
	s.CompletionRate = percentage(s.Completed, s.Total)
	return s
}

// PriorityPercentage returns count as a rounded percentage of total,
// 0 when total is 0.
func PriorityPercentage(count, total int) int {
	return percentage(count, total)
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

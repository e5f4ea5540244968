package task

import (
	"sort"
	"time"
)

// Board holds tasks partitioned into kanban columns.
type Board struct {
	Todo       []Task
	InProgress []Task
	Completed  []Task
}

// Categorize partitions tasks into board columns relative to now's calendar day.
// Completed tasks go to Completed regardless of date. Otherwise tasks dated
// today go to InProgress, future tasks to Todo, and overdue tasks fall back
// into InProgress (there is no separate overdue column). Tasks whose date
// cannot be parsed land in Todo. Each column is sorted descending by the raw
// date/time, stable on ties.
func Categorize(tasks []Task, now time.Time) Board {
	today := midnight(now)

	var board Board
	for _, t := range tasks {
		if t.Completed {
			board.Completed = append(board.Completed, t)
			continue
		}

		parsed, err := ParseDate(t.Date, now.Location())
		if err != nil {
			board.Todo = append(board.Todo, t)
			continue
		}

		switch day := midnight(parsed); {
		case day.Equal(today):
			board.InProgress = append(board.InProgress, t)
		case day.After(today):
			board.Todo = append(board.Todo, t)
		default:
			// Overdue and not completed: back to in progress.
			board.InProgress = append(board.InProgress, t)
		}
	}

	sortByDateDesc(board.Todo, now.Location())
	sortByDateDesc(board.InProgress, now.Location())
	sortByDateDesc(board.Completed, now.Location())
	return board
}

// sortByDateDesc orders tasks most recent first. Unparsable dates sort last.
func sortByDateDesc(tasks []Task, loc *time.Location) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ti, _ := ParseDate(tasks[i].Date, loc)
		tj, _ := ParseDate(tasks[j].Date, loc)
		return ti.After(tj)
	})
}

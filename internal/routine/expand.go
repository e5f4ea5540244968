package routine

import (
	"fmt"
	"strings"
	"time"
)

// weekdayNumbers maps Portuguese weekday names to time.Weekday numbering
// (Sunday=0 .. Saturday=6). Unaccented spellings are accepted too.
var weekdayNumbers = map[string]int{
	"domingo": 0,
	"segunda": 1,
	"terça":   2,
	"terca":   2,
	"quarta":  3,
	"quinta":  4,
	"sexta":   5,
	"sábado":  6,
	"sabado":  6,
}

// ExpandDates produces the ascending list of calendar dates (YYYY-MM-DD) a
// routine's sub-task occurs on.
//
// "once" short-circuits to exactly the start date, ignoring endDate and
// daysOfWeek. Otherwise every day from startDate through endDate inclusive is
// emitted when recurrence is "daily" or the day's weekday is among daysOfWeek.
// An inverted range yields an empty list, as does a non-daily recurrence with
// no selected weekdays.
func ExpandDates(startDate, endDate, recurrence string, daysOfWeek []string) ([]string, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %q", startDate)
	}

	if recurrence == RecurrenceOnce {
		return []string{start.Format(DateLayout)}, nil
	}

	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %q", endDate)
	}

	selected := make(map[int]bool, len(daysOfWeek))
	for _, name := range daysOfWeek {
		if n, ok := weekdayNumbers[strings.ToLower(strings.TrimSpace(name))]; ok {
			selected[n] = true
		}
	}

	daily := recurrence == RecurrenceDaily

	var dates []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if daily || selected[int(day.Weekday())] {
			dates = append(dates, day.Format(DateLayout))
		}
	}
	return dates, nil
}

// TaskDates expands the occurrence dates of one sub-task within r's range.
func TaskDates(r Routine, t Task) ([]string, error) {
	return ExpandDates(r.StartDate, r.EndDate, r.Recurrence, t.DaysOfWeek)
}

// Package routine holds the routine model: recurring schedule templates whose
// sub-tasks expand into dated occurrences.
package routine

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Recurrence values as stored. Anything else behaves as weekly.
const (
	RecurrenceOnce   = "once"
	RecurrenceDaily  = "daily"
	RecurrenceWeekly = "weekly"
)

// Routine is a recurring schedule template.
type Routine struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Recurrence string `json:"recurrence"`
	Tasks      []Task `json:"tasks"`
	IsActive   bool   `json:"isActive"`

	// Sync bookkeeping, set after a successful calendar export.
	CalendarID     string   `json:"calendarId,omitempty"`
	SyncedEventIDs []string `json:"syncedEventIds,omitempty"`
}

// Task is a sub-task of a routine with a time-of-day slot.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	DaysOfWeek  []string `json:"daysOfWeek"`
}

// ValidationError describes a rejected routine field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DateLayout is the calendar-date storage format.
const DateLayout = "2006-01-02"

// TimeLayout is the time-of-day storage format.
const TimeLayout = "15:04"

// Validate checks the routine's invariants: a name, a valid date range with
// startDate <= endDate, and for every sub-task a title and startTime < endTime.
func Validate(r Routine) error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "Digite o nome da rotina"}
	}

	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return &ValidationError{Field: "startDate", Message: "Data de início inválida"}
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return &ValidationError{Field: "endDate", Message: "Data de fim inválida"}
	}
	if start.After(end) {
		return &ValidationError{Field: "endDate", Message: "A data de fim deve ser após a data de início"}
	}

	for _, t := range r.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return &ValidationError{Field: "tasks", Message: "Digite o título da tarefa"}
		}
		startT, err := time.Parse(TimeLayout, t.StartTime)
		if err != nil {
			return &ValidationError{Field: "tasks", Message: fmt.Sprintf("Horário inválido: %s", t.StartTime)}
		}
		endT, err := time.Parse(TimeLayout, t.EndTime)
		if err != nil {
			return &ValidationError{Field: "tasks", Message: fmt.Sprintf("Horário inválido: %s", t.EndTime)}
		}
		if !startT.Before(endT) {
			return &ValidationError{Field: "tasks", Message: "O horário de início deve ser antes do horário de fim"}
		}
	}
	return nil
}

// Find returns the routine matching id, or false if absent.
func Find(routines []Routine, id string) (Routine, bool) {
	for _, r := range routines {
		if r.ID == id {
			return r, true
		}
	}
	return Routine{}, false
}

// Replace swaps in updated by id; unknown ids are a no-op.
func Replace(routines []Routine, updated Routine) []Routine {
	result := make([]Routine, len(routines))
	for i, r := range routines {
		if r.ID == updated.ID {
			result[i] = updated
		} else {
			result[i] = r
		}
	}
	return result
}

// Remove returns routines without the entry matching id.
func Remove(routines []Routine, id string) []Routine {
	result := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if r.ID != id {
			result = append(result, r)
		}
	}
	return result
}

// Status filter values.
const (
	StatusAll    = "all"
	StatusActive = "active"
	StatusFuture = "future"
	StatusPast   = "past"
)

// FilterByStatus selects routines by where today falls in their date range.
// Routines with unparsable bounds are excluded from every filter except "all".
func FilterByStatus(routines []Routine, status string, now time.Time) []Routine {
	if status == StatusAll || status == "" {
		return routines
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var result []Routine
	for _, r := range routines {
		start, err := time.Parse(DateLayout, r.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse(DateLayout, r.EndDate)
		if err != nil {
			continue
		}

		switch status {
		case StatusActive:
			if !today.Before(start) && !today.After(end) {
				result = append(result, r)
			}
		case StatusFuture:
			if start.After(today) {
				result = append(result, r)
			}
		case StatusPast:
			if end.Before(today) {
				result = append(result, r)
			}
		}
	}
	return result
}

// NewID returns a fresh ULID for routines and sub-tasks.
func NewID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		// fallback
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}

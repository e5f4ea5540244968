// Package task holds the task model and the pure logic operating on task lists:
// creation and mutation, kanban categorization, and dashboard statistics.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority values as stored. The vocabulary is fixed.
const (
	PriorityLow    = "baixa"
	PriorityMedium = "média"
	PriorityHigh   = "alta"
)

// Task is a user-created to-do item. JSON tags match the persisted schema.
type Task struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Date          string   `json:"date"`
	Priority      string   `json:"priority"`
	Completed     bool     `json:"completed"`
	Status        string   `json:"status,omitempty"`
	Location      string   `json:"location,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	GoogleEventID string   `json:"googleEventId,omitempty"`
}

// Form holds user-supplied fields for creating or editing a task.
type Form struct {
	Title       string
	Description string
	Date        string
	Priority    string
	Location    string
	Latitude    *float64
	Longitude   *float64
}

// ValidationError describes a rejected form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateForm checks required fields. Messages are surfaced to the user as-is.
func ValidateForm(f Form) error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Message: "Por favor, digite o título da tarefa"}
	}
	if f.Date == "" {
		return &ValidationError{Field: "date", Message: "Por favor, selecione uma data para a tarefa"}
	}
	return nil
}

// ValidPriority reports whether p is one of the stored priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// dateLayouts are the accepted task date formats, most specific first.
// Stored dates appear both as datetime-local strings and full ISO timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses a stored task date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

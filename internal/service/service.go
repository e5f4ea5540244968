// Package service defines the backend-agnostic interface for calendar operations.
package service

import "context"

// Calendar defines the interface to the remote calendar backend.
// All Google Calendar API calls go through this interface.
// Commands and the sync orchestrator never import the Google SDK directly.
type Calendar interface {
	// FindCalendar looks up a calendar by display name (exact match).
	// Returns ("", nil) when no calendar with that name exists.
	FindCalendar(ctx context.Context, summary string) (string, error)

	// CreateCalendar creates a new calendar and returns its id.
	CreateCalendar(ctx context.Context, info CalendarInfo) (string, error)

	// InsertEvent submits one event and returns the created event's id.
	InsertEvent(ctx context.Context, calendarID string, event Event) (string, error)

	// DeleteEvent removes one event.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

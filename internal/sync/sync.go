// Package sync pushes routine occurrences into the remote calendar as events.
//
// Submission is sequential, one request per event, with no retry and no
// rollback: a failed event is counted and the loop moves on, so partial
// success is an expected outcome and is reported as such.
package sync

import (
	"context"
	"fmt"

	"tempoclaro/internal/config"
	"tempoclaro/internal/routine"
	"tempoclaro/internal/service"
)

// Result aggregates the outcome of one sync call. Transient, never persisted.
type Result struct {
	Success     bool
	TotalEvents int
	Successful  int
	Failed      int
	Errors      []string
	// EventIDs carries the ids created by SyncRoutine, or the ids actually
	// removed by RemoveEvents.
	EventIDs   []string
	CalendarID string
	Message    string
}

// Syncer orchestrates routine-to-calendar synchronization.
type Syncer struct {
	cal      service.Calendar
	settings config.Settings
}

// New creates a Syncer over the given calendar backend.
func New(cal service.Calendar, settings config.Settings) *Syncer {
	return &Syncer{cal: cal, settings: settings}
}

// ensureCalendar resolves the application-reserved calendar, creating it on
// first use. The id is scoped to this call only.
func (s *Syncer) ensureCalendar(ctx context.Context) (string, error) {
	id, err := s.cal.FindCalendar(ctx, s.settings.CalendarName)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id, err = s.cal.CreateCalendar(ctx, service.CalendarInfo{
		Summary:     s.settings.CalendarName,
		Description: s.settings.CalendarDescription,
		TimeZone:    s.settings.TimeZone,
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// SyncRoutine exports every occurrence of r as a calendar event.
//
// Failures while resolving the calendar or building events abort the call
// with Successful=0. Failures while submitting are isolated per event:
// counted, recorded, and never fatal to the remaining events. Already
// created events are not rolled back.
func (s *Syncer) SyncRoutine(ctx context.Context, r routine.Routine) Result {
	calendarID, err := s.ensureCalendar(ctx)
	if err != nil {
		return Result{
			Success: false,
			Message: fmt.Sprintf("Falha ao acessar Google Calendar: %v", err),
			Errors:  []string{err.Error()},
		}
	}

	events, err := BuildEvents(r, s.settings.TimeZone)
	if err != nil {
		return Result{
			Success:    false,
			CalendarID: calendarID,
			Message:    fmt.Sprintf("Falha ao sincronizar: %v", err),
			Errors:     []string{err.Error()},
		}
	}

	result := Result{
		TotalEvents: len(events),
		CalendarID:  calendarID,
	}

	for _, event := range events {
		eventID, err := s.cal.InsertEvent(ctx, calendarID, event)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", event.Summary, err))
			continue
		}
		result.Successful++
		result.EventIDs = append(result.EventIDs, eventID)
	}

	result.Success = result.Failed == 0
	result.Message = resultMessage(result)
	return result
}

// RemoveEvents deletes previously synced events one by one, with the same
// no-abort, per-event counting contract as submission.
func (s *Syncer) RemoveEvents(ctx context.Context, calendarID string, eventIDs []string) Result {
	result := Result{
		TotalEvents: len(eventIDs),
		CalendarID:  calendarID,
	}

	for _, eventID := range eventIDs {
		if err := s.cal.DeleteEvent(ctx, calendarID, eventID); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Successful++
		result.EventIDs = append(result.EventIDs, eventID)
	}

	result.Success = result.Failed == 0
	if result.Failed == 0 {
		result.Message = fmt.Sprintf("✅ %d eventos removidos com sucesso!", result.Successful)
	} else if result.Successful == 0 {
		result.Message = fmt.Sprintf("❌ Falha ao remover %d eventos", result.Failed)
	} else {
		result.Message = fmt.Sprintf("⚠️ %d eventos removidos, %d falharam", result.Successful, result.Failed)
	}
	return result
}

// resultMessage composes the human-readable sync summary.
func resultMessage(r Result) string {
	switch {
	case r.Failed == 0:
		return fmt.Sprintf("✅ %d eventos adicionados com sucesso!", r.Successful)
	case r.Successful == 0:
		first := ""
		if len(r.Errors) > 0 {
			first = ": " + r.Errors[0]
		}
		return fmt.Sprintf("❌ Falha ao sincronizar %d eventos%s", r.Failed, first)
	default:
		return fmt.Sprintf("⚠️ %d eventos criados, %d falharam", r.Successful, r.Failed)
	}
}

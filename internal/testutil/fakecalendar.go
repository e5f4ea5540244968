// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"tempoclaro/internal/service"
)

// FakeCalendar is an in-memory implementation of service.Calendar for testing.
type FakeCalendar struct {
	mu        sync.Mutex
	calendars map[string]string          // summary -> id
	events    map[string][]service.Event // calendarID -> inserted events
	deleted   []string
	inserts   int

	// Error injection for testing
	FindCalendarErr   error
	CreateCalendarErr error
	InsertEventErr    error
	InsertEventErrAt  map[int]error // 1-based insert call number -> error
	DeleteEventErr    map[string]error
}

// NewFakeCalendar creates an empty FakeCalendar.
func NewFakeCalendar() *FakeCalendar {
	return &FakeCalendar{
		calendars:        make(map[string]string),
		events:           make(map[string][]service.Event),
		InsertEventErrAt: make(map[int]error),
		DeleteEventErr:   make(map[string]error),
	}
}

// AddCalendar pre-seeds a calendar.
func (f *FakeCalendar) AddCalendar(summary, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calendars[summary] = id
}

// Events returns the events inserted into a calendar.
func (f *FakeCalendar) Events(calendarID string) []service.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]service.Event, len(f.events[calendarID]))
	copy(result, f.events[calendarID])
	return result
}

// Deleted returns the event ids removed so far, in order.
func (f *FakeCalendar) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]string, len(f.deleted))
	copy(result, f.deleted)
	return result
}

// FindCalendar implements service.Calendar.
func (f *FakeCalendar) FindCalendar(ctx context.Context, summary string) (string, error) {
	if f.FindCalendarErr != nil {
		return "", f.FindCalendarErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calendars[summary], nil
}

// CreateCalendar implements service.Calendar.
func (f *FakeCalendar) CreateCalendar(ctx context.Context, info service.CalendarInfo) (string, error) {
	if f.CreateCalendarErr != nil {
		return "", f.CreateCalendarErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("cal-%d", len(f.calendars)+1)
	f.calendars[info.Summary] = id
	return id, nil
}

// InsertEvent implements service.Calendar.
func (f *FakeCalendar) InsertEvent(ctx context.Context, calendarID string, event service.Event) (string, error) {
	f.mu.Lock()
	f.inserts++
	call := f.inserts
	f.mu.Unlock()

	if err := f.InsertEventErrAt[call]; err != nil {
		return "", err
	}
	if f.InsertEventErr != nil {
		return "", f.InsertEventErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[calendarID] = append(f.events[calendarID], event)
	return fmt.Sprintf("event-%d", call), nil
}

// DeleteEvent implements service.Calendar.
func (f *FakeCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := f.DeleteEventErr[eventID]; err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, eventID)
	return nil
}

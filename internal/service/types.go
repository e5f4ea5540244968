package service

// Event is a calendar event payload ready for submission.
type Event struct {
	Summary       string
	Description   string
	StartDateTime string // RFC3339 local form, "2006-01-02T15:04:05"
	EndDateTime   string
	TimeZone      string
	ColorID       string
}

// CalendarInfo describes a calendar to create or one that was found.
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
}

package sync

import (
	"fmt"

	"tempoclaro/internal/routine"
	"tempoclaro/internal/service"
)

// googleColorIDs maps routine hex colors to the Calendar color-id vocabulary.
var googleColorIDs = map[string]string{
	"#667eea": "1", // azul
	"#764ba2": "2", // roxo
	"#10b981": "3", // verde
	"#f59e0b": "4", // laranja
	"#ef4444": "5", // vermelho
	"#06b6d4": "6", // ciano
	"#ec4899": "7", // rosa
	"#6366f1": "8", // índigo
}

// defaultColorID is used for colors outside the known palette.
const defaultColorID = "1"

// ColorID maps a routine hex color to a Calendar color id.
func ColorID(hexColor string) string {
	if id, ok := googleColorIDs[hexColor]; ok {
		return id
	}
	return defaultColorID
}

// buildEvent composes one event payload for a sub-task occurrence.
func buildEvent(t routine.Task, date, color, timeZone string) service.Event {
	return service.Event{
		Summary:       t.Title,
		Description:   t.Description,
		StartDateTime: fmt.Sprintf("%sT%s:00", date, t.StartTime),
		EndDateTime:   fmt.Sprintf("%sT%s:00", date, t.EndTime),
		TimeZone:      timeZone,
		ColorID:       ColorID(color),
	}
}

// BuildEvents expands every sub-task of r into one event per occurrence date.
func BuildEvents(r routine.Routine, timeZone string) ([]service.Event, error) {
	var events []service.Event
	for _, t := range r.Tasks {
		dates, err := routine.TaskDates(r, t)
		if err != nil {
			return nil, err
		}
		for _, date := range dates {
			events = append(events, buildEvent(t, date, r.Color, timeZone))
		}
	}
	return events, nil
}

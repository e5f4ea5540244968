package routine_test

import (
	"reflect"
	"testing"
	"time"

	"tempoclaro/internal/routine"
)

func TestExpandDates_WeeklyScenario(t *testing.T) {
	// 2024-01-01 is a Monday.
	dates, err := routine.ExpandDates("2024-01-01", "2024-01-07", routine.RecurrenceWeekly,
		[]string{"segunda", "quarta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-01-01", "2024-01-03"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected %v, got %v", want, dates)
	}
}

func TestExpandDates_OnceIgnoresEverythingElse(t *testing.T) {
	dates, err := routine.ExpandDates("2024-03-15", "2024-03-30", routine.RecurrenceOnce,
		[]string{"segunda", "terça", "quarta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-03-15"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected %v, got %v", want, dates)
	}
}

func TestExpandDates_OnceIgnoresInvalidEndDate(t *testing.T) {
	dates, err := routine.ExpandDates("2024-03-15", "", routine.RecurrenceOnce, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2024-03-15" {
		t.Errorf("expected single start date, got %v", dates)
	}
}

func TestExpandDates_Daily(t *testing.T) {
	dates, err := routine.ExpandDates("2024-01-01", "2024-01-03", routine.RecurrenceDaily, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected %v, got %v", want, dates)
	}
}

func TestExpandDates_InvertedRangeEmpty(t *testing.T) {
	dates, err := routine.ExpandDates("2024-01-07", "2024-01-01", routine.RecurrenceDaily, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("expected empty result, got %v", dates)
	}
}

func TestExpandDates_WeeklyWithoutDaysEmpty(t *testing.T) {
	dates, err := routine.ExpandDates("2024-01-01", "2024-01-07", routine.RecurrenceWeekly, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("expected empty result, got %v", dates)
	}
}

func TestExpandDates_SingleDayRange(t *testing.T) {
	// 2024-01-03 is a Wednesday.
	match, err := routine.ExpandDates("2024-01-03", "2024-01-03", routine.RecurrenceWeekly,
		[]string{"quarta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(match) != 1 || match[0] != "2024-01-03" {
		t.Errorf("expected the single matching day, got %v", match)
	}

	noMatch, err := routine.ExpandDates("2024-01-03", "2024-01-03", routine.RecurrenceWeekly,
		[]string{"sexta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(noMatch) != 0 {
		t.Errorf("expected no dates, got %v", noMatch)
	}
}

func TestExpandDates_WeekdayNamesCaseAndAccentInsensitive(t *testing.T) {
	dates, err := routine.ExpandDates("2024-01-01", "2024-01-07", routine.RecurrenceWeekly,
		[]string{"Terça", "SABADO"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-01-02", "2024-01-06"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected %v, got %v", want, dates)
	}
}

func TestExpandDates_UnknownRecurrenceBehavesAsWeekly(t *testing.T) {
	dates, err := routine.ExpandDates("2024-01-01", "2024-01-07", "mensal", []string{"domingo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2024-01-07"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected %v, got %v", want, dates)
	}
}

func TestExpandDates_InvalidStart(t *testing.T) {
	if _, err := routine.ExpandDates("garbage", "2024-01-07", routine.RecurrenceDaily, nil); err == nil {
		t.Error("expected error for invalid start date")
	}
}

func TestValidate(t *testing.T) {
	valid := routine.Routine{
		Name:       "Estudos",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		Recurrence: routine.RecurrenceWeekly,
		Tasks: []routine.Task{
			{Title: "Ler", StartTime: "08:00", EndTime: "09:00", DaysOfWeek: []string{"segunda"}},
		},
	}
	if err := routine.Validate(valid); err != nil {
		t.Errorf("expected valid routine, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*routine.Routine)
	}{
		{"missing name", func(r *routine.Routine) { r.Name = " " }},
		{"bad start date", func(r *routine.Routine) { r.StartDate = "01/01/2024" }},
		{"inverted range", func(r *routine.Routine) { r.StartDate = "2024-02-01" }},
		{"task start not before end", func(r *routine.Routine) { r.Tasks[0].EndTime = "08:00" }},
		{"task bad time", func(r *routine.Routine) { r.Tasks[0].StartTime = "8h" }},
		{"task missing title", func(r *routine.Routine) { r.Tasks[0].Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			r.Tasks = []routine.Task{valid.Tasks[0]}
			tt.mutate(&r)
			if err := routine.Validate(r); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFilterByStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	routines := []routine.Routine{
		{ID: "active", StartDate: "2024-06-01", EndDate: "2024-06-30"},
		{ID: "future", StartDate: "2024-07-01", EndDate: "2024-07-31"},
		{ID: "past", StartDate: "2024-01-01", EndDate: "2024-01-31"},
	}

	tests := []struct {
		status string
		want   []string
	}{
		{routine.StatusActive, []string{"active"}},
		{routine.StatusFuture, []string{"future"}},
		{routine.StatusPast, []string{"past"}},
		{routine.StatusAll, []string{"active", "future", "past"}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := routine.FilterByStatus(routines, tt.status, now)
			var gotIDs []string
			for _, r := range got {
				gotIDs = append(gotIDs, r.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, gotIDs)
			}
		})
	}
}

func TestFilterByStatus_BoundaryDaysAreActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 30, 0, 0, time.UTC)
	routines := []routine.Routine{
		{ID: "starts-today", StartDate: "2024-06-01", EndDate: "2024-06-30"},
	}

	got := routine.FilterByStatus(routines, routine.StatusActive, now)
	if len(got) != 1 {
		t.Errorf("expected routine starting today to be active, got %v", got)
	}
}

func TestNewID_Unique(t *testing.T) {
	a := routine.NewID()
	b := routine.NewID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}

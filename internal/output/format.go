// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tempoclaro/internal/routine"
	"tempoclaro/internal/sync"
	"tempoclaro/internal/task"
)

const (
	// ColumnSeparator is the separator line for board columns.
	ColumnSeparator = "------------"
)

// FormatBoard prints the three kanban columns.
func FormatBoard(w io.Writer, board task.Board) {
	FormatColumn(w, "A Fazer", board.Todo)
	FormatColumn(w, "Em Progresso", board.InProgress)
	FormatColumn(w, "Concluídas", board.Completed)
}

// FormatColumn prints one board column with its task-count subtitle.
func FormatColumn(w io.Writer, title string, tasks []task.Task) {
	fmt.Fprintln(w, ColumnSeparator)
	fmt.Fprintf(w, "%s (%s)\n", title, ColumnSubtitle(len(tasks)))
	fmt.Fprintln(w, ColumnSeparator)
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// ColumnSubtitle pluralizes the column's task count.
func ColumnSubtitle(count int) string {
	if count == 1 {
		return "1 tarefa"
	}
	return fmt.Sprintf("%d tarefas", count)
}

// FormatTask formats a task line.
// Format: "{ID}  [{PRIORITY}] {TITLE}  {DATE}\n"
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%d  [%s] %s  %s\n", t.ID, t.Priority, normalizeTitle(t.Title), t.Date)
}

// FormatStats prints the dashboard statistics.
func FormatStats(w io.Writer, s task.Stats) {
	fmt.Fprintf(w, "Total:         %d\n", s.Total)
	fmt.Fprintf(w, "Concluídas:    %d (%d%%)\n", s.Completed, s.CompletionRate)
	fmt.Fprintf(w, "Em progresso:  %d\n", s.InProgress)
	fmt.Fprintf(w, "Pendentes:     %d\n", s.Pending)
	fmt.Fprintf(w, "Alta:          %d (%d%%)\n", s.HighPriority, task.PriorityPercentage(s.HighPriority, s.Total))
	fmt.Fprintf(w, "Média:         %d (%d%%)\n", s.MediumPriority, task.PriorityPercentage(s.MediumPriority, s.Total))
	fmt.Fprintf(w, "Baixa:         %d (%d%%)\n", s.LowPriority, task.PriorityPercentage(s.LowPriority, s.Total))
}

// FormatRoutine formats a routine line.
// Format: "{ID}  {NAME}  {START}..{END}  {RECURRENCE}  ({N} tarefas)\n"
func FormatRoutine(w io.Writer, r routine.Routine) {
	fmt.Fprintf(w, "%s  %s  %s..%s  %s  (%s)\n",
		r.ID, normalizeTitle(r.Name), r.StartDate, r.EndDate, r.Recurrence, ColumnSubtitle(len(r.Tasks)))
}

// FormatSyncResult prints the sync summary message and, to errW, the
// per-event errors.
func FormatSyncResult(w, errW io.Writer, result sync.Result) {
	fmt.Fprintln(w, result.Message)
	for _, e := range result.Errors {
		fmt.Fprintf(errW, "error: %s\n", e)
	}
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(sem título)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(sem título)"
	}
	return title
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/routine"
	"tempoclaro/internal/service"
)

func init() {
	Register(&AddRoutineCmd{})
}

// stringSlice collects repeated flag values.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// AddRoutineCmd implements the addroutine command.
type AddRoutineCmd struct {
	name       string
	color      string
	start      string
	end        string
	recurrence string
	tasks      stringSlice
}

func (c *AddRoutineCmd) Name() string      { return "addroutine" }
func (c *AddRoutineCmd) Aliases() []string { return []string{"createroutine"} }
func (c *AddRoutineCmd) Synopsis() string  { return "Create a routine" }
func (c *AddRoutineCmd) Usage() string {
	return "tempoclaro addroutine --name <name> --start <date> --end <date> [--recur <once|daily|weekly>] [--color <hex>] --task \"<title>|<HH:MM-HH:MM>|<dias,...>\" ..."
}
func (c *AddRoutineCmd) NeedsAuth() bool { return false }

func (c *AddRoutineCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.color, "color", "#667eea", "")
	fs.StringVar(&c.start, "start", "", "")
	fs.StringVar(&c.end, "end", "", "")
	fs.StringVar(&c.recurrence, "recur", routine.RecurrenceWeekly, "")
	fs.Var(&c.tasks, "task", "")
}

func (c *AddRoutineCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	if len(c.tasks) == 0 {
		fmt.Fprintln(errOut, "error: at least one --task required")
		return exitcode.UserError
	}

	r := routine.Routine{
		ID:         routine.NewID(),
		Name:       strings.TrimSpace(c.name),
		Color:      c.color,
		StartDate:  c.start,
		EndDate:    c.end,
		Recurrence: c.recurrence,
		IsActive:   true,
	}

	for _, spec := range c.tasks {
		t, err := parseRoutineTask(spec)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		r.Tasks = append(r.Tasks, t)
	}

	if err := routine.Validate(r); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	st := routineStore(cfg, errOut)
	if err := st.Save(append(st.Load(), r)); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, r.ID)
	}
	return exitcode.Success
}

// parseRoutineTask parses a "title|HH:MM-HH:MM|dias,..." task spec.
// The weekday part may be omitted for daily or once routines.
func parseRoutineTask(spec string) (routine.Task, error) {
	parts := strings.Split(spec, "|")
	if len(parts) < 2 {
		return routine.Task{}, fmt.Errorf("invalid task spec: %q", spec)
	}

	times := strings.SplitN(parts[1], "-", 2)
	if len(times) != 2 {
		return routine.Task{}, fmt.Errorf("invalid task time range: %q", parts[1])
	}

	t := routine.Task{
		ID:        routine.NewID(),
		Title:     strings.TrimSpace(parts[0]),
		StartTime: strings.TrimSpace(times[0]),
		EndTime:   strings.TrimSpace(times[1]),
	}

	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		for _, day := range strings.Split(parts[2], ",") {
			t.DaysOfWeek = append(t.DaysOfWeek, strings.TrimSpace(day))
		}
	}
	if len(parts) > 3 {
		t.Description = strings.TrimSpace(parts[3])
	}

	return t, nil
}

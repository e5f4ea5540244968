package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/routine"
	"tempoclaro/internal/service"
)

func init() {
	Register(&DatesCmd{})
}

// DatesCmd implements the dates command: it previews the occurrence dates a
// sync would create events on, without calling the calendar.
type DatesCmd struct{}

func (c *DatesCmd) Name() string      { return "dates" }
func (c *DatesCmd) Aliases() []string { return nil }
func (c *DatesCmd) Synopsis() string  { return "Show a routine's occurrence dates" }
func (c *DatesCmd) Usage() string     { return "tempoclaro dates [common flags] <routine-id>" }
func (c *DatesCmd) NeedsAuth() bool   { return false }

func (c *DatesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DatesCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: routine id required")
		return exitcode.UserError
	}

	routines := routineStore(cfg, errOut).Load()
	r, found := routine.Find(routines, args[0])
	if !found {
		fmt.Fprintf(errOut, "error: routine not found: %s\n", args[0])
		return exitcode.UserError
	}

	for _, t := range r.Tasks {
		dates, err := routine.TaskDates(r, t)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		fmt.Fprintf(out, "%s (%s-%s)\n", t.Title, t.StartTime, t.EndTime)
		for _, date := range dates {
			fmt.Fprintf(out, "  %s\n", date)
		}
	}
	return exitcode.Success
}

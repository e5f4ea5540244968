package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/output"
	"tempoclaro/internal/routine"
	"tempoclaro/internal/service"
)

func init() {
	Register(&RoutinesCmd{})
	Register(&RmRoutineCmd{})
}

// RoutinesCmd implements the routines command.
type RoutinesCmd struct {
	status string
}

func (c *RoutinesCmd) Name() string      { return "routines" }
func (c *RoutinesCmd) Aliases() []string { return nil }
func (c *RoutinesCmd) Synopsis() string  { return "List routines" }
func (c *RoutinesCmd) Usage() string {
	return "tempoclaro routines [common flags] [--status <all|active|future|past>]"
}
func (c *RoutinesCmd) NeedsAuth() bool { return false }

func (c *RoutinesCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", routine.StatusAll, "")
}

func (c *RoutinesCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	switch c.status {
	case routine.StatusAll, routine.StatusActive, routine.StatusFuture, routine.StatusPast:
	default:
		fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
		return exitcode.UserError
	}

	routines := routineStore(cfg, errOut).Load()
	filtered := routine.FilterByStatus(routines, c.status, timeNow().In(location(cfg)))
	for _, r := range filtered {
		output.FormatRoutine(out, r)
	}
	return exitcode.Success
}

// RmRoutineCmd implements the rmroutine command.
type RmRoutineCmd struct{}

func (c *RmRoutineCmd) Name() string      { return "rmroutine" }
func (c *RmRoutineCmd) Aliases() []string { return nil }
func (c *RmRoutineCmd) Synopsis() string  { return "Delete a routine" }
func (c *RmRoutineCmd) Usage() string     { return "tempoclaro rmroutine [common flags] <routine-id>" }
func (c *RmRoutineCmd) NeedsAuth() bool   { return false }

func (c *RmRoutineCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmRoutineCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: routine id required")
		return exitcode.UserError
	}

	st := routineStore(cfg, errOut)
	routines := st.Load()

	if _, found := routine.Find(routines, args[0]); !found {
		fmt.Fprintf(errOut, "error: routine not found: %s\n", args[0])
		return exitcode.UserError
	}

	if err := st.Save(routine.Remove(routines, args[0])); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

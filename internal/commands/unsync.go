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
	"tempoclaro/internal/sync"
)

func init() {
	Register(&UnsyncCmd{})
}

// UnsyncCmd implements the unsync command.
type UnsyncCmd struct{}

func (c *UnsyncCmd) Name() string      { return "unsync" }
func (c *UnsyncCmd) Aliases() []string { return nil }
func (c *UnsyncCmd) Synopsis() string  { return "Remove a routine's synced calendar events" }
func (c *UnsyncCmd) Usage() string     { return "tempoclaro unsync [common flags] <routine-id>" }
func (c *UnsyncCmd) NeedsAuth() bool   { return true }

func (c *UnsyncCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UnsyncCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: routine id required")
		return exitcode.UserError
	}

	st := routineStore(cfg, errOut)
	routines := st.Load()

	r, found := routine.Find(routines, args[0])
	if !found {
		fmt.Fprintf(errOut, "error: routine not found: %s\n", args[0])
		return exitcode.UserError
	}

	if len(r.SyncedEventIDs) == 0 {
		fmt.Fprintf(errOut, "error: routine has no synced events: %s\n", args[0])
		return exitcode.UserError
	}

	result := sync.New(cal, cfg.Settings).RemoveEvents(ctx, r.CalendarID, r.SyncedEventIDs)
	output.FormatSyncResult(out, errOut, result)

	// Keep only the ids that could not be removed.
	removed := make(map[string]bool, len(result.EventIDs))
	for _, id := range result.EventIDs {
		removed[id] = true
	}
	var remaining []string
	for _, id := range r.SyncedEventIDs {
		if !removed[id] {
			remaining = append(remaining, id)
		}
	}
	r.SyncedEventIDs = remaining
	if len(remaining) == 0 {
		r.CalendarID = ""
	}
	if err := st.Save(routine.Replace(routines, r)); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	if !result.Success && result.Successful == 0 {
		return exitcode.BackendError
	}
	return exitcode.Success
}

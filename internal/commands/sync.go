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
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command.
type SyncCmd struct{}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return nil }
func (c *SyncCmd) Synopsis() string  { return "Export a routine to Google Calendar" }
func (c *SyncCmd) Usage() string     { return "tempoclaro sync [common flags] <routine-id>" }
func (c *SyncCmd) NeedsAuth() bool   { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
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

	result := sync.New(cal, cfg.Settings).SyncRoutine(ctx, r)
	output.FormatSyncResult(out, errOut, result)

	// Record created events so unsync can remove them later. Partial syncs
	// still record what was created.
	if result.Successful > 0 {
		r.CalendarID = result.CalendarID
		r.SyncedEventIDs = append(r.SyncedEventIDs, result.EventIDs...)
		if err := st.Save(routine.Replace(routines, r)); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.BackendError
		}
	}

	if !result.Success && result.Successful == 0 {
		return exitcode.BackendError
	}
	return exitcode.Success
}

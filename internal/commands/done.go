package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/service"
	"tempoclaro/internal/task"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: it toggles the completed flag, so
// running it twice restores the task.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completed flag" }
func (c *DoneCmd) Usage() string     { return "tempoclaro done [common flags] <id>" }
func (c *DoneCmd) NeedsAuth() bool   { return false }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	id, ok := parseTaskID(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	st := taskStore(cfg, errOut)
	tasks := st.Load()

	if _, found := task.Find(tasks, id); !found {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	if err := st.Save(task.ToggleComplete(tasks, id)); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// parseTaskID reads the single task-id positional argument.
func parseTaskID(args []string, errOut io.Writer) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task id required")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid task id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

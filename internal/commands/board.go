package commands

import (
	"context"
	"flag"
	"io"

	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/output"
	"tempoclaro/internal/service"
	"tempoclaro/internal/task"
)

func init() {
	Register(&BoardCmd{})
}

// BoardCmd implements the board command.
type BoardCmd struct{}

func (c *BoardCmd) Name() string      { return "board" }
func (c *BoardCmd) Aliases() []string { return []string{"kanban"} }
func (c *BoardCmd) Synopsis() string  { return "Show the kanban board" }
func (c *BoardCmd) Usage() string     { return "tempoclaro board [common flags]" }
func (c *BoardCmd) NeedsAuth() bool   { return false }

func (c *BoardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BoardCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	tasks := taskStore(cfg, errOut).Load()
	board := task.Categorize(tasks, timeNow().In(location(cfg)))
	output.FormatBoard(out, board)
	return exitcode.Success
}

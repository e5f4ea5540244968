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
	Register(&DashboardCmd{})
}

// DashboardCmd implements the dashboard command.
type DashboardCmd struct{}

func (c *DashboardCmd) Name() string      { return "dashboard" }
func (c *DashboardCmd) Aliases() []string { return []string{"stats"} }
func (c *DashboardCmd) Synopsis() string  { return "Show task statistics" }
func (c *DashboardCmd) Usage() string     { return "tempoclaro dashboard [common flags]" }
func (c *DashboardCmd) NeedsAuth() bool   { return false }

func (c *DashboardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DashboardCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	tasks := taskStore(cfg, errOut).Load()
	stats := task.CalculateStats(tasks, timeNow().In(location(cfg)))
	output.FormatStats(out, stats)
	return exitcode.Success
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tempoclaro help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tempoclaro                                         Show the kanban board
  tempoclaro board [common flags]
  tempoclaro add [common flags] [--desc <text>] [--date <datetime>] [--priority <baixa|média|alta>] [--location <text>] <title...>
  tempoclaro done [common flags] <id>
  tempoclaro rm [common flags] <id>
  tempoclaro edit [common flags] [--title <text>] [--desc <text>] [--date <datetime>] [--priority <p>] <id>
  tempoclaro dashboard [common flags]
  tempoclaro addroutine [common flags] --name <name> --start <date> --end <date> [--recur <once|daily|weekly>] [--color <hex>] --task "<title>|<HH:MM-HH:MM>|<dias,...>" ...
  tempoclaro routines [common flags] [--status <all|active|future|past>]
  tempoclaro rmroutine [common flags] <routine-id>
  tempoclaro dates [common flags] <routine-id>
  tempoclaro sync [common flags] <routine-id>
  tempoclaro unsync [common flags] <routine-id>
  tempoclaro login [common flags]
  tempoclaro logout [common flags]
  tempoclaro whoami [common flags]
  tempoclaro help
  tempoclaro version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/service"
	"tempoclaro/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
	date        string
	priority    string
	location    string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "tempoclaro add [--desc <text>] [--date <datetime>] [--priority <baixa|média|alta>] [--location <text>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.date, "date", "", "")
	fs.StringVar(&c.priority, "priority", task.PriorityMedium, "")
	fs.StringVar(&c.priority, "p", task.PriorityMedium, "")
	fs.StringVar(&c.location, "location", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	if !task.ValidPriority(c.priority) {
		fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
		return exitcode.UserError
	}

	now := timeNow().In(location(cfg))

	date := c.date
	if date == "" {
		date = now.Format("2006-01-02T15:04")
	}
	if _, err := task.ParseDate(date, now.Location()); err != nil {
		fmt.Fprintf(errOut, "error: invalid date: %s\n", date)
		return exitcode.UserError
	}

	form := task.Form{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(c.description),
		Date:        date,
		Priority:    c.priority,
		Location:    strings.TrimSpace(c.location),
	}
	if err := task.ValidateForm(form); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	st := taskStore(cfg, errOut)
	tasks := append(st.Load(), task.Create(form, now))
	if err := st.Save(tasks); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

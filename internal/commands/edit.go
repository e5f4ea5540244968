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
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only the fields whose flags are given
// change; id and createdAt are immutable.
type EditCmd struct {
	title       string
	description string
	date        string
	priority    string
	location    string
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Update a task's fields" }
func (c *EditCmd) Usage() string {
	return "tempoclaro edit [--title <text>] [--desc <text>] [--date <datetime>] [--priority <baixa|média|alta>] [--location <text>] <id>"
}
func (c *EditCmd) NeedsAuth() bool { return false }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.date, "date", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.location, "location", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, cal service.Calendar, args []string, out, errOut io.Writer) int {
	id, ok := parseTaskID(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	st := taskStore(cfg, errOut)
	tasks := st.Load()

	existing, found := task.Find(tasks, id)
	if !found {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	updated := existing
	if c.title != "" {
		updated.Title = strings.TrimSpace(c.title)
	}
	if c.description != "" {
		updated.Description = strings.TrimSpace(c.description)
	}
	if c.date != "" {
		updated.Date = c.date
	}
	if c.priority != "" {
		if !task.ValidPriority(c.priority) {
			fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
			return exitcode.UserError
		}
		updated.Priority = c.priority
	}
	if c.location != "" {
		updated.Location = strings.TrimSpace(c.location)
	}

	if err := task.ValidateForm(task.Form{Title: updated.Title, Date: updated.Date}); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := st.Save(task.Update(tasks, updated)); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

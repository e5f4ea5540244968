// Package cli parses arguments and dispatches to registered commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tempoclaro/internal/commands"
	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/service"
)

// ServiceFactory builds the Calendar backend for commands that need auth.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Calendar, error)

// Dispatcher routes command-line invocations to commands.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a dispatcher over the given registry and factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{registry: registry, factory: factory}
}

// DefaultCommand runs when no arguments are given.
const DefaultCommand = "board"

// Run dispatches args to a command and returns the process exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	name := DefaultCommand
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	// Flags never come before the command name.
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UserError
	}

	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		// flag stops parsing at the first positional; a dash there means a
		// flag was given after one.
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	cfg, err := config.New(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug

	var cal service.Calendar
	if cmd.NeedsAuth() {
		cal, err = d.connect(ctx, cfg, errOut)
		if err != nil {
			return authExitCode(err)
		}
	}

	return cmd.Run(ctx, cfg, cal, positional, out, errOut)
}

// commonFlags are accepted by every command, after the command name.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configDir, "config", "", "")
	fs.BoolVar(&c.quiet, "quiet", false, "")
	fs.BoolVar(&c.debug, "debug", false, "")
}

// connect builds the calendar backend, or pre-flights the credential files
// when no factory is configured. The returned error has already been printed.
func (d *Dispatcher) connect(ctx context.Context, cfg *config.Config, errOut io.Writer) (service.Calendar, error) {
	if d.factory == nil {
		if !cfg.HasOAuthClient() {
			err := fmt.Errorf("oauth_client.json not found in %s", cfg.Dir)
			fmt.Fprintf(errOut, "error: %s\n", err)
			return nil, authError{err}
		}
		if !cfg.HasToken() {
			err := fmt.Errorf("not logged in (run: tempoclaro login)")
			fmt.Fprintf(errOut, "error: %s\n", err)
			return nil, authError{err}
		}
		return nil, nil
	}

	cal, err := d.factory(ctx, cfg)
	if err != nil {
		if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "auth") {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return nil, authError{err}
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return nil, err
	}
	return cal, nil
}

type authError struct{ err error }

func (e authError) Error() string { return e.err.Error() }

func authExitCode(err error) int {
	if _, ok := err.(authError); ok {
		return exitcode.AuthError
	}
	return exitcode.BackendError
}

// flagErrorMessage rewrites flag package errors into the CLI's vocabulary.
func flagErrorMessage(err error) string {
	msg := err.Error()
	if rest, found := strings.CutPrefix(msg, "flag provided but not defined: "); found {
		return "unknown flag: " + rest
	}
	if rest, found := strings.CutPrefix(msg, "flag needs an argument: "); found {
		return "flag needs an argument: " + rest
	}
	return msg
}

// Command tempoclaro is a task board and routine planner with Google
// Calendar export.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tempoclaro/internal/backend/googlecalendar"
	"tempoclaro/internal/cli"
	"tempoclaro/internal/commands"
	"tempoclaro/internal/config"
	"tempoclaro/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := func(ctx context.Context, cfg *config.Config) (service.Calendar, error) {
		return googlecalendar.New(ctx, cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	os.Exit(dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

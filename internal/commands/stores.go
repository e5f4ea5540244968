package commands

import (
	"io"
	"time"

	"tempoclaro/internal/config"
	"tempoclaro/internal/store"
)

// taskStore opens the persisted task list for a command.
// Corrupt-file messages go to errOut only when debug logging is on.
func taskStore(cfg *config.Config, errOut io.Writer) *store.TaskStore {
	return store.NewTaskStore(cfg.TasksPath(), debugOut(cfg, errOut))
}

// routineStore opens the persisted routine list for a command.
func routineStore(cfg *config.Config, errOut io.Writer) *store.RoutineStore {
	return store.NewRoutineStore(cfg.RoutinesPath(), debugOut(cfg, errOut))
}

func debugOut(cfg *config.Config, errOut io.Writer) io.Writer {
	if cfg.Debug {
		return errOut
	}
	return nil
}

// location resolves the configured timezone, falling back to local time when
// the name does not load.
func location(cfg *config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Settings.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// timeNow returns the current time; overridable in tests.
var timeNow = time.Now

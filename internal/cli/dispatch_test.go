package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tempoclaro/internal/cli"
	"tempoclaro/internal/commands"
	"tempoclaro/internal/config"
	"tempoclaro/internal/exitcode"
	"tempoclaro/internal/routine"
	"tempoclaro/internal/service"
	"tempoclaro/internal/store"
	"tempoclaro/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeCalendar.
func testFactory(cal *testutil.FakeCalendar) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Calendar, error) {
		return cal, nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeCalendar()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeCalendar()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeCalendar()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeCalendar()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "tempoclaro 0.1.0\n" {
		t.Errorf("expected 'tempoclaro 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeCalendar()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_BoardAlias(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"kanban", "--config", dir}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "A Fazer (0 tarefas)") {
		t.Errorf("expected empty board, got %q", stdout.String())
	}
}

func TestDispatcher_SyncThroughFactory(t *testing.T) {
	cal := testutil.NewFakeCalendar()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(cal))

	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	err = store.NewRoutineStore(cfg.RoutinesPath(), nil).Save([]routine.Routine{{
		ID:         "r1",
		Name:       "Manhãs",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-01",
		Recurrence: "daily",
		Tasks: []routine.Task{
			{ID: "t1", Title: "Exercício", StartTime: "07:00", EndTime: "08:00"},
		},
	}})
	if err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"sync", "--config", dir, "r1"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	if stdout.String() != "✅ 1 eventos adicionados com sucesso!\n" {
		t.Errorf("unexpected output: %q", stdout.String())
	}
}

func TestDispatcher_FactoryAuthError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Calendar, error) {
		return nil, errors.New("token expired or revoked (run: tempoclaro login)")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"sync", "--config", t.TempDir(), "r1"}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr.String(), "auth error") {
		t.Errorf("expected auth error, got %q", stderr.String())
	}
}

func TestDispatcher_FactoryBackendError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Calendar, error) {
		return nil, errors.New("connection refused")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"sync", "--config", t.TempDir(), "r1"}, &stdout, &stderr)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr.String(), "backend error") {
		t.Errorf("expected backend error, got %q", stderr.String())
	}
}

func TestDispatcher_NoFactoryPreflight(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"sync", "--config", t.TempDir(), "r1"}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr.String(), "oauth_client.json not found") {
		t.Errorf("expected oauth preflight error, got %q", stderr.String())
	}
}

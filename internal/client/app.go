package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/MKhiriev/court-fund/internal/adapter"
	"github.com/MKhiriev/court-fund/internal/config"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/tui"
	"github.com/MKhiriev/court-fund/models"
)

type command func(ctx context.Context, args []string) error

// App runs a single admin command per process. The ui command opens the
// interactive fee browser instead.
type App struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	args      []string
	out       io.Writer

	// promptLogin and browse run the interactive screens.
	promptLogin func(ctx context.Context, login string) (string, error)
	browse      func(ctx context.Context) error

	commands map[string]command
	logger   *logger.Logger
}

// NewApp builds the HTTP adapter from cfg and returns an App that writes
// to stdout.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return newApp(serverAdapter, buildInfo, cfg.Args, os.Stdout, logger), nil
}

func newApp(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, args []string, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		args:      args,
		out:       out,
		logger:    logger,
	}

	interactive := tui.New(serverAdapter, logger)
	a.promptLogin = interactive.LoginPrompt
	a.browse = interactive.Browse

	a.commands = map[string]command{
		"login":      a.login,
		"fund":       a.fund,
		"deposit":    a.deposit,
		"withdraw":   a.withdraw,
		"fees":       a.fees,
		"fee-create": a.createFee,
		"pay":        a.pay,
		"ui":         a.ui,
		"version":    a.version,
	}

	return a
}

// Run implements [Client]. It executes the command named by the first
// argument and cancels it on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if len(a.args) == 0 {
		a.usage()
		return ErrNoCommand
	}

	name, args := a.args[0], a.args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	if err := cmd(ctx, args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, helpStyle.Render("usage: court-fund-client [flags] <command> [args]"))
	fmt.Fprintln(a.out, helpStyle.Render("commands: "+strings.Join(names, ", ")))
}

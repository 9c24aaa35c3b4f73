// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"sync/atomic"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/tui"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// command is one subcommand of the binary.
type command struct {
	usage string
	help  string

	// protected commands need a valid session and run with the keeper.
	protected bool

	run func(ctx context.Context, args []string) error
}

var _ Client = (*App)(nil)

// App runs the client commands against the inventory services.
type App struct {
	services  *service.ClientServices
	prompt    LoginPrompter
	workers   config.ClientWorkers
	buildInfo models.AppBuildInfo

	out    io.Writer
	errOut io.Writer

	// copyText puts text on the system clipboard.
	copyText func(text string) error

	session  models.LocalSession
	expired  atomic.Bool
	commands map[string]command

	logger *logger.Logger
}

// NewApp creates the client application. Command output goes to out,
// notices and usage to errOut.
func NewApp(services *service.ClientServices, prompt LoginPrompter, workers config.ClientWorkers,
	buildInfo models.AppBuildInfo, out, errOut io.Writer, logger *logger.Logger) *App {
	a := &App{
		services:  services,
		prompt:    prompt,
		workers:   workers,
		buildInfo: buildInfo,
		out:       out,
		errOut:    errOut,
		copyText:  tui.CopyToClipboard,
		logger:    logger,
	}
	a.commands = a.buildCommands()

	return a
}

// SessionExpired is registered as the adapter's session expired handler.
// The notice is printed once, after the command finishes.
func (a *App) SessionExpired() {
	a.expired.Store(true)
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	log := a.logger.With().Str("command", name).Logger()

	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case errors.Is(err, service.ErrNoLocalSession):
		log.Debug().Msg("no saved session")
	case err != nil:
		return fmt.Errorf("restore session: %w", err)
	default:
		a.session = session
	}

	err = a.runCommand(ctx, cmd, args[1:])

	if persistErr := a.services.AuthService.Persist(ctx); persistErr != nil {
		log.Error().Err(persistErr).Msg("failed to persist session")
		err = errors.Join(err, persistErr)
	}

	if a.expired.Load() {
		fmt.Fprintln(a.errOut, tui.WarningStyle.Render("Your session has expired. Run \"login\" to sign in again."))
		if err == nil {
			err = service.ErrLoginRequired
		}
	}

	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

func (a *App) runCommand(ctx context.Context, cmd command, args []string) error {
	if !cmd.protected {
		return cmd.run(ctx, args)
	}

	if err := a.services.AuthService.Guard(ctx); err != nil {
		return err
	}

	a.services.SessionJob.Start(ctx, a.workers.SessionCheckInterval, a.workers.RefreshSkew)
	defer a.services.SessionJob.Stop()

	return cmd.run(ctx, args)
}

// newFlagSet returns a flag set that reports to errOut instead of exiting.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() {
		fmt.Fprintf(a.errOut, "usage: stock-keeper %s\n", a.commands[name].usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args and checks the number of positional arguments.
// -h is not an error.
func parseFlags(fs *flag.FlagSet, args []string, positional int) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != positional {
		fs.Usage()
		return false, fmt.Errorf("%w: %s expects %d argument(s)", ErrUsage, fs.Name(), positional)
	}
	return true, nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: stock-keeper [global flags] <command> [flags] [args]")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %-12s %s\n", name, a.commands[name].help)
	}
}

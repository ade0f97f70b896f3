// Package main is the entry point for the pkgseg tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/graft"
	"github.com/pkgseg/pkgseg/cmd/pkgseg/commands"
	"github.com/pkgseg/pkgseg/internal/app"
	"github.com/pkgseg/pkgseg/internal/core/domain"
	_ "github.com/pkgseg/pkgseg/internal/wiring"
)

// shutdownTimeout bounds telemetry flushing after the CLI has finished.
const shutdownTimeout = 5 * time.Second

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer func() {
		if components.Telemetry == nil {
			return
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		_ = components.Telemetry.Shutdown(shutdownCtx)
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)
	if configurable, ok := components.Logger.(flagConfigurable); ok {
		cli.SetLoggerHook(func(json, verbose bool) {
			configurable.SetJSON(json)
			configurable.SetVerbose(verbose)
		})
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrGenerationFailed) {
			// Per-segment failures are already logged by the generator.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// flagConfigurable is implemented by loggers whose output can be tuned
// from command line flags.
type flagConfigurable interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

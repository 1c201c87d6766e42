// SPDX-License-Identifier: MIT

// Command numerik is the command-line front end of the numeric toolkit.
//
// Defaults come from NUMERIK_* environment variables (see internal/config);
// flags override them per invocation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/numeric/internal/cli"
	"github.com/katalvlaran/numeric/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitCommandError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The first interrupt cancels ctx; releasing the handler lets a second
	// one terminate the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	err = cli.NewRootCommand(cfg).ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// Command errors were already reported by the output formatter;
	// flag and argument errors were not.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Err == nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.GetExitCode(err)
}

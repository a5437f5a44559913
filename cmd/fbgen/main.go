// Package main is the entry point for the fbgen CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/fbgen/cmd/fbgen/commands"
	"go.trai.ch/fbgen/internal/app"
	_ "go.trai.ch/fbgen/internal/wiring"
)

// AppProvider returns the resolved application.
type AppProvider func(context.Context) (*app.App, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.App, error) {
		a, _, err := graft.ExecuteFor[*app.App](ctx)
		return a, err
	}))
}

func run(ctx context.Context, args []string, stderr io.Writer, provider AppProvider) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := provider(ctx)
	if err != nil {
		// Logger is not available when initialization itself failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(application)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with metadata when using %+v.
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return 0
}

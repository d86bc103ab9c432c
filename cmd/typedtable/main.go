package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/typedtable/internal/cli"
)

// Version information set via ldflags during build.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	app := cli.NewApp()
	app.Version = Version
	app.Commit = Commit
	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		os.Exit(1)
	}
}

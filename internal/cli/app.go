// Package cli implements the typedtable command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Version string
	Commit  string
}

// NewApp constructs an App bound to the process streams and environment.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Version: "dev",
		Commit:  "unknown",
	}
}

// Execute runs the CLI with the provided args. Errors are printed to Stderr
// and returned.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.Stderr, "Error:", err)
		return err
	}
	return nil
}

// RootCommand exposes the root cobra command for tests and completion.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}

func (a *App) getenv(key string) string {
	if a.Getenv == nil {
		return ""
	}
	return a.Getenv(key)
}

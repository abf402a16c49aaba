// Package main is the entry point for the please CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"

	"please/internal/backend/jsonfile"
	"please/internal/cli"
	"please/internal/commands"
	"please/internal/config"
	"please/internal/service"

	// Import all command packages to register them via init()
	_ "please/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return jsonfile.New(ctx, cfg)
	}

	opts := []cli.Option{cli.WithInput(os.Stdin)}
	if width, _, err := term.GetSize(os.Stdout.Fd()); err == nil && width > 0 {
		opts = append(opts, cli.WithWidth(width))
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory, opts...)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

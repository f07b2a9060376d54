package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"catfeed/internal/output"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		output.NewPrinter(os.Stdout, os.Stderr, output.ColorsEnabled()).Error(err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/piresc/poputchik/internal/cli"
)

func main() {
	// SIGTERM comes from Docker or Kubernetes, SIGINT from the terminal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

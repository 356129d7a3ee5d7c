// Package main provides the entry point for the catalogctl CLI tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/catalog-dashboard/cmd/catalogctl/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.NewRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

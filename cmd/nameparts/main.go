// Package main is the entry point for the nameparts CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/f3rmion/nameparts/cmd/nameparts/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

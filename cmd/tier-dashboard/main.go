// Package main запускает CLI дашборда Tier.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tier-dashboard/internal/cli"
)

func main() {
	// Прерывание отменяет незавершённые запросы
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// Package main is the entry point for the tareas demo.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tareas/internal/cli"
	"tareas/internal/config"
	"tareas/internal/logger"
	"tareas/internal/task"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Default()
	log := logger.New(os.Stderr, cfg.LogLevel)

	runner := cli.NewRunner(cfg, task.NewSimpleFactory(), log)

	code := runner.Run(ctx, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"tableflip.dev/trainer/pkg/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	if err := commands.New().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("error during command execution: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"rawvault/internal/app/bootstrap"
)

// Worker process entrypoint: runs the raw event retention sweeper
// until interrupted.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("rawvault worker failed to start: %v", err)
	}
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("rawvault worker exited: %v", err)
	}
}

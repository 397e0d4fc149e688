package main

import (
	"log"

	"rawvault/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("rawvault api failed to start: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("rawvault api exited: %v", err)
	}
}

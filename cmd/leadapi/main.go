// Command leadapi serves an in-memory lead REST API with generated leads,
// for local development against the leadflow client.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/leadflow/internal/app"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunLeadAPI(ctx); err != nil {
		log.Fatalf("leadapi: %v", err)
	}
}

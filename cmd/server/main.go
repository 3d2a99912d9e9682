// Package main implements the entry point for the Inkwell API server,
// a blogging platform backend with token-authenticated article and
// comment management.
package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; real deployments set environment directly.
	_ = godotenv.Load()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

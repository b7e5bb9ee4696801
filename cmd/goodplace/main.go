// Package main is the entry point for the practice website server.
package main

import (
	"github.com/joho/godotenv"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/cli"
)

func main() {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cli.Execute()
}

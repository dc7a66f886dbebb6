package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/NSteinhoff/meal-planner/pkg/api"
)

func main() {
	// Optional .env file for local development; the environment wins.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	if err := api.Serve(context.Background(), ""); err != nil {
		log.Fatal(err)
	}
}

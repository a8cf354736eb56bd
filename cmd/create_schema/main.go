package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"library-circulation/internal/config"
	"library-circulation/internal/postgres"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file - using system environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Close()

	fmt.Println("=== Creating library schema ===")

	if err := client.CreateSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	fmt.Printf("✓ Schema created in database %s\n", cfg.Database.Name)
	fmt.Println("\nYou can now seed the catalog and start the server.")
}

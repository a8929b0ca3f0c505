package main

import (
	"fmt"
	"log"

	"github.com/hanyul/sleepwise/internal/config"
	"github.com/hanyul/sleepwise/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	fmt.Println("  11111111-1111-1111-1111-111111111111 (kakao)")
	fmt.Println("  22222222-2222-2222-2222-222222222222 (google)")
}

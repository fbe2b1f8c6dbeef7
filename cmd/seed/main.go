package main

import (
	"flag"
	"log"

	"github.com/example/canasta/internal/config"
	"github.com/example/canasta/internal/database"
	"github.com/example/canasta/internal/seed"
	"github.com/example/canasta/internal/store"
)

func main() {
	only := flag.String("only", "", "run only the named seed step (categories, units, presentations, brands)")
	flag.Parse()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	log.Println("--- Starting database seeding ---")
	if err := seed.Run(store.New(db), *only); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seed process completed")
}

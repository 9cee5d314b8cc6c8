package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/legoland/storefront/internal/config"
	"github.com/legoland/storefront/internal/handlers"
	"github.com/legoland/storefront/internal/routes"
	"github.com/legoland/storefront/internal/store"
)

func main() {
	// .env is a convenience for local runs; missing is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system environment variables")
	}

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer s.Close()

	// Seed the demo catalog and the empty collections on first run.
	if err := store.EnsureDefaults(context.Background(), s); err != nil {
		log.Fatalf("failed to seed default data: %v", err)
	}

	app := handlers.New(s)
	router := routes.SetupRouter(app)

	log.Printf("starting LegoLand storefront on %s (%s store)", cfg.Addr, cfg.StoreBackend)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return store.OpenSQLite(cfg.StorePath)
	case "redis":
		return store.OpenRedis(cfg.RedisURL)
	case "memory":
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

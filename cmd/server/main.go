package main

import (
	"log"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"

	"gametools/internal/server"
	"gametools/internal/storage"
	"gametools/internal/table"
)

type config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	DBPath string `env:"DB_PATH" envDefault:"gametools.db"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	store, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer store.Close()

	presets := table.NewRegistry()
	for _, p := range table.DefaultPresets() {
		presets.Register(p)
	}

	mgr := table.NewManager(presets, store)
	if err := mgr.Restore(); err != nil {
		log.Printf("warning: restore tables: %v", err)
	}

	// Cleanup stale tables every minute, remove after 1 hour
	go mgr.CleanupLoop(1*time.Minute, 1*time.Hour)

	srv := server.New(presets, mgr)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		log.Fatalf("server: %v", err)
	}
}

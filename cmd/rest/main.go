package main

import (
	"context"
	"log"

	"beauty-advisor-be/internal/bootstrap"
	"beauty-advisor-be/internal/config"
	"beauty-advisor-be/internal/server"
	"beauty-advisor-be/internal/tracer"
	"beauty-advisor-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (only when the catalog lives there)
	var gormDB *gorm.DB
	if cfg.Catalog.Source == "database" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Transcript Service...")
		if err := container.TranscriptService.Consume(context.Background()); err != nil {
			log.Printf("Background Transcript Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}

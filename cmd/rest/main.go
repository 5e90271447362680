package main

import (
	"context"
	"log"

	"github.com/LionGx2004/cannatracker/internal/bootstrap"
	"github.com/LionGx2004/cannatracker/internal/config"
	"github.com/LionGx2004/cannatracker/internal/server"
	"github.com/LionGx2004/cannatracker/internal/tracer"
	"github.com/LionGx2004/cannatracker/pkg/database"
)

func main() {
	// 0. Initialize tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Panicf("Invalid configuration: %v", err)
	}

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies (container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	go func() {
		log.Println("Background: starting consumer service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	// 5. Initialize server
	srv := server.New(cfg, container)

	// 6. Run server
	log.Fatal(srv.Run())
}

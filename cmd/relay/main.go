package main

import (
	"log"

	"beauty-advisor-be/internal/config"
	"beauty-advisor-be/internal/controller"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/server"
	"beauty-advisor-be/internal/service"
	"beauty-advisor-be/pkg/llm/factory"
)

func main() {
	cfg := config.Load()

	relayLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	provider, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.Provider)

	relayService := service.NewRelayService(provider, relayLogger)
	relayController := controller.NewRelayController(relayService)

	srv := server.NewRelay(cfg, relayController)
	log.Fatal(srv.Run())
}

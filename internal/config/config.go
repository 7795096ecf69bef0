package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Relay    RelayConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	TranscriptLogPath  string
	CorsAllowedOrigins string
	RedisURL           string
	SelectionFilePath  string
}

type CatalogConfig struct {
	FilePath string
	Source   string // "file" or "database"
}

type DatabaseConfig struct {
	Connection string
}

type RelayConfig struct {
	// URL the app server sends chat/routine requests to. Empty means chat is
	// not configured and every send fails with a configuration error.
	URL string

	// Port the standalone relay binary listens on.
	Port string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OllamaBaseURL string
	OllamaModel   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	source := "file"
	if getEnv("DB_CONNECTION_STRING", "") != "" {
		source = "database"
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			TranscriptLogPath:  getEnv("TRANSCRIPT_LOG_PATH", "logs/transcript.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
			SelectionFilePath:  getEnv("SELECTION_FILE_PATH", "data/selected_products.json"),
		},
		Catalog: CatalogConfig{
			FilePath: getEnv("CATALOG_FILE_PATH", "products.json"),
			Source:   getEnv("CATALOG_SOURCE", source),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Relay: RelayConfig{
			URL:  getEnv("RELAY_URL", ""),
			Port: getEnv("RELAY_PORT", "8787"),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

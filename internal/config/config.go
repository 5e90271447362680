package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Supabase SupabaseConfig
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SupabaseConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string // optional, enables local token verification
}

type AIConfig struct {
	Provider      string // "lovable" or "ollama"
	GatewayURL    string
	GatewayKey    string
	Model         string
	OllamaBaseURL string
	OllamaModel   string
}

type ChatConfig struct {
	MaxMessages       int
	MaxContentLength  int
	HistoryLimit      int
	StrainLimit       int
	RateLimit         int
	RateWindowSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Supabase: SupabaseConfig{
			URL:       getEnv("SUPABASE_URL", ""),
			AnonKey:   getEnv("SUPABASE_ANON_KEY", ""),
			JWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "lovable"),
			GatewayURL:    getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev"),
			GatewayKey:    getEnv("AI_GATEWAY_KEY", ""),
			Model:         getEnv("AI_MODEL", "google/gemini-3-flash-preview"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
		},
		Chat: ChatConfig{
			MaxMessages:       getEnvAsInt("CHAT_MAX_MESSAGES", 50),
			MaxContentLength:  getEnvAsInt("CHAT_MAX_CONTENT_LENGTH", 4000),
			HistoryLimit:      getEnvAsInt("CHAT_HISTORY_LIMIT", 100),
			StrainLimit:       getEnvAsInt("CHAT_STRAIN_LIMIT", 30),
			RateLimit:         getEnvAsInt("CHAT_RATE_LIMIT", 20),
			RateWindowSeconds: getEnvAsInt("CHAT_RATE_WINDOW_SECONDS", 60),
		},
	}
}

// Validate fails fast on configuration the service cannot run without.
// Called once at startup, before any request work begins.
func (c *Config) Validate() error {
	if c.Ai.Provider == "lovable" && c.Ai.GatewayKey == "" {
		return errors.New("AI_GATEWAY_KEY is not configured")
	}
	if c.Supabase.URL == "" {
		return errors.New("SUPABASE_URL is not configured")
	}
	if c.Supabase.AnonKey == "" {
		return errors.New("SUPABASE_ANON_KEY is not configured")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

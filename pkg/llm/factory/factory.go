package factory

import (
	"fmt"

	"github.com/LionGx2004/cannatracker/internal/config"
	"github.com/LionGx2004/cannatracker/pkg/llm"
	"github.com/LionGx2004/cannatracker/pkg/llm/gateway"
	"github.com/LionGx2004/cannatracker/pkg/llm/ollama"
)

func NewStreamingProvider(cfg config.AIConfig) (llm.StreamingProvider, error) {
	switch cfg.Provider {
	case "lovable":
		return gateway.NewGatewayProvider(cfg.GatewayURL, cfg.GatewayKey, cfg.Model), nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

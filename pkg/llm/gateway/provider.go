package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/LionGx2004/cannatracker/pkg/llm"
)

// GatewayProvider streams chat completions from an OpenAI-compatible AI
// gateway authenticated with a service-level bearer key.
type GatewayProvider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

var _ llm.StreamingProvider = &GatewayProvider{}

func NewGatewayProvider(baseURL, apiKey, modelName string) *GatewayProvider {
	return &GatewayProvider{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ModelName: modelName,
		// No overall client timeout: it would sever long-lived token
		// streams. Dial and header timeouts still bound the handshake.
		Client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				ResponseHeaderTimeout: 60 * time.Second,
			},
		},
	}
}

// --- Request structs (Internal to this package) ---

type gatewayChatRequest struct {
	Model    string           `json:"model"`
	Messages []gatewayMessage `json:"messages"`
	Stream   bool             `json:"stream"`
}

type gatewayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const maxErrorBodyBytes = 8 * 1024

func (g *GatewayProvider) StreamChat(ctx context.Context, history []llm.Message, opts ...llm.Option) (*llm.StreamResult, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]gatewayMessage, len(history))
	for i, msg := range history {
		messages[i] = gatewayMessage{Role: msg.Role, Content: msg.Content}
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	payload, err := json.Marshal(gatewayChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := g.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, llm.ErrRateLimited
		case http.StatusPaymentRequired:
			return nil, llm.ErrQuotaExhausted
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
			return nil, &llm.UpstreamError{Status: resp.StatusCode, Body: string(body)}
		}
	}

	// Ownership of the body passes to the caller, which pipes it to the
	// client verbatim and closes it when either side goes away.
	return &llm.StreamResult{
		Body:        resp.Body,
		ContentType: "text/event-stream",
	}, nil
}

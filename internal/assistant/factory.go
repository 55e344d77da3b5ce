package assistant

import (
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// NewClient creates a provider from configuration. OpenAI-compatible
// is the default because custom base URLs cover the proxied gateways
// most deployments use.
func NewClient(provider, model, baseURL, apiKey string) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", ProviderOpenAI:
		return NewOpenAIClient(model, baseURL, apiKey)
	case ProviderOllama:
		return NewOllamaClient(model, baseURL)
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", provider)
	}
}

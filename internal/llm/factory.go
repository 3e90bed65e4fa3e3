package llm

import (
	"fmt"

	"superclaims/internal/config"
	"superclaims/internal/port"
)

// ProviderFactory is a function that creates a StructuredClient from a
// provider config.
type ProviderFactory func(cfg *config.LLMProviderConfig) (port.StructuredClient, error)

// registry of model provider factories, populated explicitly via
// RegisterProvider at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a model provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewClient creates a StructuredClient from a provider config using the
// registered factory.
func NewClient(cfg *config.LLMProviderConfig) (port.StructuredClient, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

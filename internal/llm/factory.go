package llm

import (
	"fmt"

	"vendasim/internal/config"
	"vendasim/internal/port"
)

// ProviderFactory is a function that creates a ChatModel from a provider config.
type ProviderFactory func(cfg *config.LLMProviderConfig) (port.ChatModel, error)

// registry of chat model provider factories, populated explicitly via
// RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a chat model provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewModel creates a ChatModel from a provider config using the registered factory.
func NewModel(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown chat model provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewChain builds the configured provider chain. With one provider it returns
// that model directly; with more it wraps them in a FallbackModel in
// primary/secondary/tertiary order.
func NewChain(cfg *config.LLMConfig) (port.ChatModel, error) {
	provCfgs := []*config.LLMProviderConfig{&cfg.Primary}
	if c := cfg.SecondaryConfig(); c != nil {
		provCfgs = append(provCfgs, c)
	}
	if c := cfg.TertiaryConfig(); c != nil {
		provCfgs = append(provCfgs, c)
	}

	models := make([]port.ChatModel, 0, len(provCfgs))
	names := make([]string, 0, len(provCfgs))
	for _, pc := range provCfgs {
		m, err := NewModel(pc)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
		names = append(names, pc.Provider)
	}

	if len(models) == 1 {
		return models[0], nil
	}
	return NewFallbackModel(models, names), nil
}

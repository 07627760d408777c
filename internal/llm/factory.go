package llm

import (
	"fmt"
	"sort"
	"sync"

	"mailtriage/internal/config"
	"mailtriage/internal/port"
)

// ProviderFactory creates a Completer from the llm config section.
type ProviderFactory func(cfg *config.LLMConfig) (port.Completer, error)

var (
	mu        sync.RWMutex
	providers = map[string]ProviderFactory{}
)

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	mu.Lock()
	defer mu.Unlock()
	providers[name] = factory
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewCompleter creates a Completer for cfg.Provider using the registered factory.
func NewCompleter(cfg *config.LLMConfig) (port.Completer, error) {
	mu.RLock()
	factory, ok := providers[cfg.Provider]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

package llm

import (
	"fmt"
	"sync"
)

// The set of providers is closed and small: exactly these three backends.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"

	// DefaultProvider is substituted whenever a caller supplies no hint or
	// an unrecognized one. Unknown hints are not errors: the deployed client
	// sends free-form values and expects silent fallback.
	DefaultProvider = ProviderGemini
)

// IsRecognizedProvider reports whether name is one of the three provider
// identifiers.
func IsRecognizedProvider(name string) bool {
	switch name {
	case ProviderOpenAI, ProviderClaude, ProviderGemini:
		return true
	}
	return false
}

// ResolveProviderName returns hint unchanged when it is a recognized
// provider identifier, and DefaultProvider otherwise. Total: never fails.
func ResolveProviderName(hint string) string {
	if IsRecognizedProvider(hint) {
		return hint
	}
	return DefaultProvider
}

// Registry holds the provider adapters and resolves caller hints to one of
// them. It is populated once at startup and read-only afterwards.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider under its own Name. Registering an unrecognized
// name is a programming error.
func (r *Registry) Register(p Provider) error {
	name := p.Name()
	if !IsRecognizedProvider(name) {
		return fmt.Errorf("unknown provider: %s", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
	return nil
}

// Get returns the provider registered under name, or nil.
func (r *Registry) Get(name string) Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// Resolve maps a caller-supplied hint to a registered provider, substituting
// the default for absent or unrecognized hints. It returns an error only
// when the resolved provider was never registered, which indicates a wiring
// bug rather than bad input.
func (r *Registry) Resolve(hint string) (Provider, error) {
	name := ResolveProviderName(hint)

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %s is not registered", name)
	}
	return p, nil
}

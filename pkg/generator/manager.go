package generator

import (
	"fmt"
	"sync"
)

// Manager is a registry of named decoders. The backend for a name is
// chosen once at registration from the config's provider; there is no
// per-call branching on provider strings.
type Manager struct {
	decoders map[string]Decoder
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		decoders: make(map[string]Decoder),
	}
}

func (m *Manager) RegisterDecoder(name string, config Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var decoder Decoder
	var err error

	switch config.Provider {
	case ProviderOpenAI:
		decoder, err = NewOpenAIDecoder(config)
	case ProviderGemini:
		decoder, err = NewGeminiDecoder(config)
	default:
		return fmt.Errorf("unsupported decoder provider: %s", config.Provider)
	}

	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	m.decoders[name] = decoder
	return nil
}

func (m *Manager) GetDecoder(name string) (Decoder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	decoder, exists := m.decoders[name]
	if !exists {
		return nil, fmt.Errorf("decoder not found: %s", name)
	}

	return decoder, nil
}

func (m *Manager) RemoveDecoder(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.decoders, name)
}

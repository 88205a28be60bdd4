package roster

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/superheroes/hero/character"
	"github.com/wricardo/superheroes/hero/service"
)

var (
	ErrHeroNotFound      = errors.New("hero not found")
	ErrHeroAlreadyExists = errors.New("hero already exists")
)

// maxIDAttempts bounds retries when a generated ID collides
const maxIDAttempts = 16

var _ service.Registry = (*Manager)(nil)

// Manager handles the recruited hero lifecycle
type Manager struct {
	heroes map[string]*service.Entry
	mu     sync.RWMutex
}

// NewManager creates an empty registry
func NewManager() *Manager {
	return &Manager{
		heroes: make(map[string]*service.Entry),
	}
}

// Recruit builds a hero from spec and stores it under id. An empty id gets a
// generated one.
func (m *Manager) Recruit(id string, spec *character.HeroSpec) (*service.Entry, error) {
	hero, err := character.FromSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build hero: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id, err = m.generateID()
		if err != nil {
			return nil, err
		}
	} else if m.exists(id) {
		return nil, ErrHeroAlreadyExists
	}

	specCopy := *spec
	now := time.Now()
	entry := &service.Entry{
		ID:             id,
		Hero:           hero,
		Spec:           &specCopy,
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	m.heroes[strings.ToLower(id)] = entry
	return entry, nil
}

// Get retrieves a hero by ID (case-insensitive)
func (m *Manager) Get(id string) (*service.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.heroes[strings.ToLower(id)]
	if !exists {
		return nil, ErrHeroNotFound
	}
	return entry, nil
}

// GetOrRecruit gets an existing hero or recruits a new one under id
func (m *Manager) GetOrRecruit(id string, spec *character.HeroSpec) (*service.Entry, error) {
	entry, err := m.Get(id)
	if err == nil {
		return entry, nil
	}

	if errors.Is(err, ErrHeroNotFound) {
		return m.Recruit(id, spec)
	}

	return nil, err
}

// List returns all recruited heroes
func (m *Manager) List() []*service.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Entry, 0, len(m.heroes))
	for _, entry := range m.heroes {
		result = append(result, entry)
	}

	return result
}

// Dismiss removes a hero
func (m *Manager) Dismiss(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowerID := strings.ToLower(id)
	if _, exists := m.heroes[lowerID]; !exists {
		return ErrHeroNotFound
	}
	delete(m.heroes, lowerID)
	return nil
}

// UpdateLastAccessed updates the last accessed time for a hero
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.heroes[strings.ToLower(id)]
	if !exists {
		return ErrHeroNotFound
	}

	entry.LastAccessedAt = time.Now()
	return nil
}

// CleanupIdle removes heroes that haven't been accessed in the given duration
func (m *Manager) CleanupIdle(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, entry := range m.heroes {
		if entry.LastAccessedAt.Before(cutoff) {
			delete(m.heroes, id)
			removed++
		}
	}

	return removed
}

// Count returns the number of recruited heroes
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.heroes)
}

// generateID returns an unused random 4-character ID. Callers hold the lock.
func (m *Manager) generateID() (string, error) {
	bytes := make([]byte, 2)
	for i := 0; i < maxIDAttempts; i++ {
		if _, err := rand.Read(bytes); err != nil {
			return "", fmt.Errorf("failed to generate hero ID: %w", err)
		}
		id := hex.EncodeToString(bytes)
		if !m.exists(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique hero ID after %d attempts", maxIDAttempts)
}

// exists checks if a hero ID is taken (case-insensitive)
func (m *Manager) exists(id string) bool {
	_, exists := m.heroes[strings.ToLower(id)]
	return exists
}

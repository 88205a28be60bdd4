package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/superheroes/hero/character"
	"github.com/wricardo/superheroes/hero/service"
)

var (
	ErrRosterNotFound = errors.New("roster not found")
	ErrInvalidRoster  = errors.New("invalid roster")
)

// DefaultRosterName is loaded as the default roster when present
const DefaultRosterName = "classic"

// rosterExtensions lists the supported file extensions in lookup order
var rosterExtensions = []string{".json", ".yaml", ".yml"}

var _ service.ConfigManager = (*Manager)(nil)

// Manager handles roster loading and caching
type Manager struct {
	rosterDir     string
	defaultRoster *character.Roster
	rosters       map[string]*character.Roster
	mu            sync.RWMutex
}

// NewManager creates a new roster manager
func NewManager(rosterDir string) (*Manager, error) {
	if _, err := os.Stat(rosterDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("roster directory does not exist: %s", rosterDir)
	}

	m := &Manager{
		rosterDir: rosterDir,
		rosters:   make(map[string]*character.Roster),
	}

	if err := m.loadDefaultRoster(); err != nil {
		return nil, fmt.Errorf("failed to load default roster: %w", err)
	}

	return m, nil
}

// LoadRoster loads a roster by name. The name may carry a file extension;
// without one, .json, .yaml and .yml are tried in that order. Rosters are
// cached under the name as given, so "classic" and "classic.yaml" may differ.
func (m *Manager) LoadRoster(name string) (*character.Roster, error) {
	key := filepath.Base(name)

	m.mu.RLock()
	// Check cache first
	if roster, exists := m.rosters[key]; exists {
		m.mu.RUnlock()
		return roster, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if roster, exists := m.rosters[key]; exists {
		return roster, nil
	}

	path, err := m.findRosterFile(name)
	if err != nil {
		return nil, err
	}

	roster, err := ReadRosterFile(path)
	if err != nil {
		return nil, err
	}

	m.rosters[key] = roster
	return roster, nil
}

// ReadRosterFile reads, parses and validates a single roster file
func ReadRosterFile(path string) (*character.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRosterNotFound
		}
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	roster, err := ParseRoster(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	if err := character.ValidateRoster(roster); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}

	return roster, nil
}

// ParseRoster decodes roster data. YAML is used for .yaml and .yml, JSON
// otherwise.
func ParseRoster(data []byte, ext string) (*character.Roster, error) {
	var roster character.Roster

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("failed to parse roster: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("failed to parse roster: %w", err)
		}
	}

	return &roster, nil
}

// ListRosters returns information about all valid roster files
func (m *Manager) ListRosters() ([]*service.RosterInfo, error) {
	entries, err := os.ReadDir(m.rosterDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster directory: %w", err)
	}

	var rosters []*service.RosterInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !isRosterFile(entry.Name()) {
			continue
		}

		id := rosterID(entry.Name())
		if seen[id] {
			continue
		}

		roster, err := m.LoadRoster(entry.Name())
		if err != nil {
			// Skip invalid rosters
			continue
		}
		seen[id] = true

		rosters = append(rosters, &service.RosterInfo{
			Filename:    entry.Name(),
			RosterID:    id,
			Name:        roster.Name,
			Description: roster.Description,
			HeroCount:   len(roster.Heroes),
		})
	}

	sort.Slice(rosters, func(i, j int) bool {
		return rosters[i].RosterID < rosters[j].RosterID
	})

	return rosters, nil
}

// GetDefault returns the default roster
func (m *Manager) GetDefault() *character.Roster {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultRoster
}

// SetDefault sets the default roster by name
func (m *Manager) SetDefault(name string) error {
	roster, err := m.LoadRoster(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRoster = roster
	return nil
}

// RefreshCache drops cached rosters and reloads the default
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.rosters = make(map[string]*character.Roster)
	m.mu.Unlock()

	return m.loadDefaultRoster()
}

// loadDefaultRoster picks classic, then the first valid roster on disk, then
// the built-in roster
func (m *Manager) loadDefaultRoster() error {
	roster, err := m.LoadRoster(DefaultRosterName)
	if err != nil {
		rosters, listErr := m.ListRosters()
		if listErr != nil || len(rosters) == 0 {
			m.setDefault(character.DefaultRoster())
			return nil
		}

		roster, err = m.LoadRoster(rosters[0].Filename)
		if err != nil {
			m.setDefault(character.DefaultRoster())
			return nil
		}
	}

	m.setDefault(roster)
	return nil
}

func (m *Manager) setDefault(roster *character.Roster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRoster = roster
}

// findRosterFile resolves a roster name to a path in the roster directory
func (m *Manager) findRosterFile(name string) (string, error) {
	if isRosterFile(name) {
		path := filepath.Join(m.rosterDir, filepath.Base(name))
		if _, err := os.Stat(path); err != nil {
			return "", ErrRosterNotFound
		}
		return path, nil
	}

	for _, ext := range rosterExtensions {
		path := filepath.Join(m.rosterDir, filepath.Base(name)+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrRosterNotFound
}

func isRosterFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range rosterExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// rosterID strips a known extension from a roster name
func rosterID(name string) string {
	if isRosterFile(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

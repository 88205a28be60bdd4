package main

import (
	"testing"

	"github.com/wricardo/superheroes/hero/config"
	"github.com/wricardo/superheroes/hero/roster"
)

func newEmptyRegistry(t *testing.T) *roster.Manager {
	t.Helper()
	return roster.NewManager()
}

// mustEmptyConfig returns a config manager over an empty directory, which
// serves the built-in roster
func mustEmptyConfig(t *testing.T) *config.Manager {
	t.Helper()
	manager, err := config.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	return manager
}

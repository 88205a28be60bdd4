package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/superheroes/hero/character"
)

var (
	ErrHeroNotFound      = errors.New("hero not found")
	ErrUnsupportedAction = errors.New("action not supported by this hero")
)

// HeroService defines all hero-related operations
type HeroService interface {
	// Roster management
	Recruit(ctx context.Context, spec *character.HeroSpec) (*HeroInfo, error)
	RecruitRoster(ctx context.Context, rosterName string) ([]*HeroInfo, error)
	GetHero(ctx context.Context, heroID string) (*HeroInfo, error)
	ListHeroes(ctx context.Context) ([]*HeroInfo, error)
	Dismiss(ctx context.Context, heroID string) error

	// Actions
	Transform(ctx context.Context, heroID string) (*ActionResult, error)
	UsePower(ctx context.Context, heroID string, index int, intensity string) (*ActionResult, error)
	Rest(ctx context.Context, heroID string) (*ActionResult, error)
	ChargeElement(ctx context.Context, heroID string) (*ActionResult, error)
	UseGadget(ctx context.Context, heroID, gadget string) (*ActionResult, error)
	RepairTech(ctx context.Context, heroID string) (*ActionResult, error)

	// State
	Status(ctx context.Context, heroID string) (string, error)
	GetHistory(ctx context.Context, heroID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListRosters(ctx context.Context) ([]*RosterInfo, error)
	LoadRoster(ctx context.Context, rosterName string) (*character.Roster, error)
}

// Registry defines hero storage operations
type Registry interface {
	Recruit(id string, spec *character.HeroSpec) (*Entry, error)
	Get(id string) (*Entry, error)
	GetOrRecruit(id string, spec *character.HeroSpec) (*Entry, error)
	List() []*Entry
	Dismiss(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles roster loading
type ConfigManager interface {
	LoadRoster(name string) (*character.Roster, error)
	ListRosters() ([]*RosterInfo, error)
	GetDefault() *character.Roster
}

// Entry is a recruited hero and its bookkeeping
type Entry struct {
	ID             string
	Hero           character.Character
	Spec           *character.HeroSpec
	RosterName     string
	CreatedAt      time.Time
	LastAccessedAt time.Time

	// History is cumulative and never trimmed
	History      []ActionHistoryEntry
	TotalActions int
}

// AddToHistory records an action against the entry
func (e *Entry) AddToHistory(action, detail string, outcome character.Outcome) ActionHistoryEntry {
	entry := ActionHistoryEntry{
		Action:       action,
		Detail:       detail,
		Outcome:      outcome,
		Success:      outcome.Success(),
		Energy:       e.Hero.Energy(),
		Timestamp:    time.Now().Unix(),
		ActionNumber: e.TotalActions + 1,
	}
	e.History = append(e.History, entry)
	e.TotalActions++
	return entry
}

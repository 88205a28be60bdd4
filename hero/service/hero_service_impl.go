package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/superheroes/hero/character"
)

// heroServiceImpl implements the HeroService interface
type heroServiceImpl struct {
	registry Registry
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewHeroService creates a new hero service instance
func NewHeroService(registry Registry, configs ConfigManager) HeroService {
	return &heroServiceImpl{
		registry: registry,
		configs:  configs,
	}
}

// Recruit adds a single hero built from spec
func (s *heroServiceImpl) Recruit(ctx context.Context, spec *character.HeroSpec) (*HeroInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.registry.Recruit("", spec)
	if err != nil {
		return nil, fmt.Errorf("failed to recruit hero: %w", err)
	}
	return toHeroInfo(entry), nil
}

// RecruitRoster recruits every hero of the named roster, or of the default
// roster when rosterName is empty
func (s *heroServiceImpl) RecruitRoster(ctx context.Context, rosterName string) ([]*HeroInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, rosterID, err := s.resolveRoster(rosterName)
	if err != nil {
		return nil, err
	}

	infos := make([]*HeroInfo, 0, len(roster.Heroes))
	for i := range roster.Heroes {
		spec := roster.Heroes[i]
		entry, err := s.registry.Recruit("", &spec)
		if err != nil {
			return nil, fmt.Errorf("failed to recruit %s from roster %s: %w", spec.Name, rosterID, err)
		}
		entry.RosterName = rosterID
		infos = append(infos, toHeroInfo(entry))
	}

	return infos, nil
}

// resolveRoster loads a roster and returns it with the identifier to report
func (s *heroServiceImpl) resolveRoster(rosterName string) (*character.Roster, string, error) {
	if rosterName == "" {
		roster := s.configs.GetDefault()
		if roster == nil {
			return nil, "", fmt.Errorf("no default roster configured")
		}
		return roster, roster.Name, nil
	}

	roster, err := s.configs.LoadRoster(rosterName)
	if err != nil {
		if available, listErr := s.configs.ListRosters(); listErr == nil && len(available) > 0 {
			ids := make([]string, 0, len(available))
			for _, r := range available {
				ids = append(ids, r.RosterID)
			}
			return nil, "", fmt.Errorf("failed to load roster %q (available: %v): %w", rosterName, ids, err)
		}
		return nil, "", fmt.Errorf("failed to load roster %q: %w", rosterName, err)
	}
	return roster, rosterName, nil
}

// GetHero retrieves hero information
func (s *heroServiceImpl) GetHero(ctx context.Context, heroID string) (*HeroInfo, error) {
	// Exclusive: touching the entry writes LastAccessedAt.
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(heroID)
	if err != nil {
		return nil, err
	}
	s.touch(heroID)

	return toHeroInfo(entry), nil
}

// ListHeroes returns all recruited heroes ordered by recruitment time
func (s *heroServiceImpl) ListHeroes(ctx context.Context) ([]*HeroInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.registry.List()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	result := make([]*HeroInfo, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toHeroInfo(entry))
	}
	return result, nil
}

// Dismiss removes a hero from the registry
func (s *heroServiceImpl) Dismiss(ctx context.Context, heroID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.Dismiss(heroID); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrHeroNotFound, heroID, err)
	}
	return nil
}

// Transform puts the hero in costume
func (s *heroServiceImpl) Transform(ctx context.Context, heroID string) (*ActionResult, error) {
	return s.act(heroID, ActionTransform, "", func(entry *Entry) (character.Outcome, error) {
		entry.Hero.Transform()
		return character.OK, nil
	})
}

// UsePower uses the power at index. An empty or unknown intensity is charged
// at the default intensity.
func (s *heroServiceImpl) UsePower(ctx context.Context, heroID string, index int, intensity string) (*ActionResult, error) {
	level, _ := character.ParseIntensity(intensity)
	detail := fmt.Sprintf("power %d at %s", index, level)

	return s.act(heroID, ActionUsePower, detail, func(entry *Entry) (character.Outcome, error) {
		return entry.Hero.UsePower(index, level), nil
	})
}

// Rest recovers energy
func (s *heroServiceImpl) Rest(ctx context.Context, heroID string) (*ActionResult, error) {
	return s.act(heroID, ActionRest, "", func(entry *Entry) (character.Outcome, error) {
		entry.Hero.Rest()
		return character.OK, nil
	})
}

// ChargeElement refills an elemental hero's charge
func (s *heroServiceImpl) ChargeElement(ctx context.Context, heroID string) (*ActionResult, error) {
	return s.act(heroID, ActionChargeElement, "", func(entry *Entry) (character.Outcome, error) {
		h, ok := entry.Hero.(*character.ElementalHero)
		if !ok {
			return "", fmt.Errorf("%w: %s is a %s hero", ErrUnsupportedAction, entry.Hero.Name(), entry.Hero.Kind())
		}
		h.ChargeElement()
		return character.OK, nil
	})
}

// UseGadget spends one use of a tech hero's gadget
func (s *heroServiceImpl) UseGadget(ctx context.Context, heroID, gadget string) (*ActionResult, error) {
	return s.act(heroID, ActionUseGadget, gadget, func(entry *Entry) (character.Outcome, error) {
		h, ok := entry.Hero.(*character.TechHero)
		if !ok {
			return "", fmt.Errorf("%w: %s is a %s hero", ErrUnsupportedAction, entry.Hero.Name(), entry.Hero.Kind())
		}
		return h.UseGadget(gadget), nil
	})
}

// RepairTech restores a tech hero's gadgets
func (s *heroServiceImpl) RepairTech(ctx context.Context, heroID string) (*ActionResult, error) {
	return s.act(heroID, ActionRepairTech, "", func(entry *Entry) (character.Outcome, error) {
		h, ok := entry.Hero.(*character.TechHero)
		if !ok {
			return "", fmt.Errorf("%w: %s is a %s hero", ErrUnsupportedAction, entry.Hero.Name(), entry.Hero.Kind())
		}
		h.RepairTech()
		return character.OK, nil
	})
}

// Status returns the hero's status line
func (s *heroServiceImpl) Status(ctx context.Context, heroID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := s.lookup(heroID)
	if err != nil {
		return "", err
	}
	return entry.Hero.Status(), nil
}

// GetHistory returns a page of the hero's action history
func (s *heroServiceImpl) GetHistory(ctx context.Context, heroID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := s.lookup(heroID)
	if err != nil {
		return nil, err
	}

	history := entry.History
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	// Pages past the last one are empty.
	var actions []ActionHistoryEntry
	if opts.Page <= totalPages {
		start, end := pageBounds(opts.Page, opts.Limit, total)
		if opts.Order == "desc" {
			// Most recent first
			for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
				actions = append(actions, history[i])
			}
		} else if start < total {
			actions = append(actions, history[start:end]...)
		}
	}

	if actions == nil {
		actions = []ActionHistoryEntry{}
	}

	return &HistoryResponse{
		Actions:      actions,
		TotalActions: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// pageBounds returns the [start, end) slice of a page. page must not exceed
// the page count, which keeps the multiplication in range.
func pageBounds(page, limit, total int) (int, int) {
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

// ListRosters lists the available roster files
func (s *heroServiceImpl) ListRosters(ctx context.Context) ([]*RosterInfo, error) {
	return s.configs.ListRosters()
}

// LoadRoster loads a roster by name
func (s *heroServiceImpl) LoadRoster(ctx context.Context, rosterName string) (*character.Roster, error) {
	return s.configs.LoadRoster(rosterName)
}

// act runs fn against the hero under the service lock, records it in the
// hero's history and builds the result
func (s *heroServiceImpl) act(heroID, action, detail string, fn func(entry *Entry) (character.Outcome, error)) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookup(heroID)
	if err != nil {
		return nil, err
	}
	s.touch(heroID)

	before := character.Snap(entry.Hero)
	outcome, err := fn(entry)
	if err != nil {
		return nil, err
	}
	entry.AddToHistory(action, detail, outcome)

	after := character.Snap(entry.Hero)
	return &ActionResult{
		HeroID:  entry.ID,
		Action:  action,
		Success: outcome.Success(),
		Outcome: outcome,
		Message: entry.Hero.Message(),
		Status:  after.Status,
		Hero:    after,
		Events:  extractEvents(action, detail, outcome, before, after),
	}, nil
}

func (s *heroServiceImpl) touch(heroID string) {
	if err := s.registry.UpdateLastAccessed(heroID); err != nil {
		log.Printf("Warning: failed to update last access for hero %s: %v", heroID, err)
	}
}

func (s *heroServiceImpl) lookup(heroID string) (*Entry, error) {
	entry, err := s.registry.Get(heroID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHeroNotFound, heroID, err)
	}
	return entry, nil
}

// extractEvents turns the state change of an action into events
func extractEvents(action, detail string, outcome character.Outcome, before, after *character.Snapshot) []HeroEvent {
	now := time.Now()
	events := []HeroEvent{}

	if !outcome.Success() {
		return append(events, HeroEvent{
			Type:      "failure",
			Message:   fmt.Sprintf("%s failed: %s", action, strings.ReplaceAll(string(outcome), "_", " ")),
			Timestamp: now,
		})
	}

	switch action {
	case ActionTransform:
		events = append(events, HeroEvent{Type: "transform", Message: after.Message, Timestamp: now})
	case ActionUsePower:
		events = append(events, HeroEvent{
			Type:      "power",
			Message:   fmt.Sprintf("Used %s, energy %d -> %d", detail, before.Energy, after.Energy),
			Timestamp: now,
		})
		if after.Energy == 0 {
			events = append(events, HeroEvent{
				Type:      "exhausted",
				Message:   fmt.Sprintf("%s is out of energy", after.Name),
				Timestamp: now,
			})
		}
		if after.ElementCharge != nil && *after.ElementCharge == 0 {
			events = append(events, HeroEvent{
				Type:      "drained",
				Message:   fmt.Sprintf("%s's %s charge is drained", after.Name, after.Element),
				Timestamp: now,
			})
		}
	case ActionRest:
		events = append(events, HeroEvent{
			Type:      "rest",
			Message:   fmt.Sprintf("Energy restored to %d/%d", after.Energy, after.MaxEnergy),
			Timestamp: now,
		})
	case ActionChargeElement:
		events = append(events, HeroEvent{Type: "charge", Message: after.Message, Timestamp: now})
	case ActionUseGadget:
		events = append(events, HeroEvent{Type: "gadget", Message: after.Message, Timestamp: now})
		if after.Gadgets[detail] == 0 {
			events = append(events, HeroEvent{
				Type:      "depleted",
				Message:   fmt.Sprintf("%s has no uses left", detail),
				Timestamp: now,
			})
		}
	case ActionRepairTech:
		events = append(events, HeroEvent{Type: "repair", Message: after.Message, Timestamp: now})
	}

	return events
}

func toHeroInfo(entry *Entry) *HeroInfo {
	return &HeroInfo{
		ID:             entry.ID,
		RosterName:     entry.RosterName,
		CreatedAt:      entry.CreatedAt,
		LastAccessedAt: entry.LastAccessedAt,
		Hero:           character.Snap(entry.Hero),
	}
}

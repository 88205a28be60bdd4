package service

import (
	"time"

	"github.com/wricardo/superheroes/hero/character"
)

// Action names used in results, events and history
const (
	ActionTransform     = "transform"
	ActionUsePower      = "use_power"
	ActionRest          = "rest"
	ActionChargeElement = "charge_element"
	ActionUseGadget     = "use_gadget"
	ActionRepairTech    = "repair_tech"
)

// HeroInfo provides information about a recruited hero
type HeroInfo struct {
	ID             string              `json:"id"`
	RosterName     string              `json:"roster_name,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	Hero           *character.Snapshot `json:"hero"`
}

// ActionResult contains the result of a single hero action
type ActionResult struct {
	HeroID  string              `json:"hero_id"`
	Action  string              `json:"action"`
	Success bool                `json:"success"`
	Outcome character.Outcome   `json:"outcome"`
	Message string              `json:"message"`
	Status  string              `json:"status"`
	Hero    *character.Snapshot `json:"hero"`
	Events  []HeroEvent         `json:"events,omitempty"`
}

// HeroEvent represents something that happened during an action
type HeroEvent struct {
	Type      string    `json:"type"` // "transform", "power", "rest", "charge", "gadget", "repair", "failure", "exhausted", "drained", "depleted"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionHistoryEntry is a single action in a hero's history
type ActionHistoryEntry struct {
	Action       string            `json:"action"`
	Detail       string            `json:"detail,omitempty"`
	Outcome      character.Outcome `json:"outcome"`
	Success      bool              `json:"success"`
	Energy       int               `json:"energy"`
	Timestamp    int64             `json:"timestamp"`
	ActionNumber int               `json:"action_number"`
}

// HistoryOptions configures history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated action history
type HistoryResponse struct {
	Actions      []ActionHistoryEntry `json:"actions"`
	TotalActions int                  `json:"total_actions"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	TotalPages   int                  `json:"total_pages"`
	HasNext      bool                 `json:"has_next"`
	HasPrevious  bool                 `json:"has_previous"`
}

// RosterInfo provides information about a roster file
type RosterInfo struct {
	Filename    string `json:"filename"`
	RosterID    string `json:"roster_id"` // The identifier to pass to RecruitRoster
	Name        string `json:"name"`
	Description string `json:"description"`
	HeroCount   int    `json:"hero_count"`
}

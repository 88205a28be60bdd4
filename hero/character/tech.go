package character

import (
	"fmt"
	"sort"
)

// TechHero carries a gadget inventory with limited uses per gadget
type TechHero struct {
	Core
	gadgets   map[string]int
	techLevel int
}

var _ Character = (*TechHero)(nil)

// NewTechHero creates a tech hero. gadgets maps gadget names to their initial
// remaining uses; negative counts are stored as zero.
func NewTechHero(name, secretIdentity, baseOfOperations string, powers []string, weakness string, gadgets map[string]int) *TechHero {
	inv := make(map[string]int, len(gadgets))
	for g, uses := range gadgets {
		if uses < 0 {
			uses = 0
		}
		inv[g] = uses
	}
	return &TechHero{
		Core:      newCore(name, secretIdentity, baseOfOperations, powers, weakness),
		gadgets:   inv,
		techLevel: MaxTechLevel,
	}
}

// Kind returns KindTech
func (h *TechHero) Kind() Kind { return KindTech }

// UsePower behaves like the base hero
func (h *TechHero) UsePower(index int, intensity Intensity) Outcome {
	return usePower(&h.Core, index, intensity)
}

// TechLevel returns the tech level
func (h *TechHero) TechLevel() int { return h.techLevel }

// Gadgets returns a copy of the inventory
func (h *TechHero) Gadgets() map[string]int {
	inv := make(map[string]int, len(h.gadgets))
	for g, uses := range h.gadgets {
		inv[g] = uses
	}
	return inv
}

// GadgetNames returns the gadget names in sorted order
func (h *TechHero) GadgetNames() []string {
	names := make([]string, 0, len(h.gadgets))
	for g := range h.gadgets {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// RemainingUses returns the uses left for a gadget and whether it exists
func (h *TechHero) RemainingUses(name string) (int, bool) {
	uses, ok := h.gadgets[name]
	return uses, ok
}

// UseGadget spends one use of the named gadget. Costume is not required.
func (h *TechHero) UseGadget(name string) Outcome {
	uses, ok := h.gadgets[name]
	if !ok {
		h.message = fmt.Sprintf("%s doesn't have a %s", h.name, name)
		return UnknownGadget
	}
	if uses <= 0 {
		h.message = fmt.Sprintf("%s is out of uses! Repair needed.", name)
		return GadgetDepleted
	}

	h.gadgets[name] = uses - 1
	h.message = fmt.Sprintf("%s deploys %s! %d uses remaining", h.name, name, h.gadgets[name])
	return OK
}

// RepairTech restores the tech level and resets every gadget to RepairedUses
func (h *TechHero) RepairTech() {
	h.techLevel = MaxTechLevel
	for g := range h.gadgets {
		h.gadgets[g] = RepairedUses
	}
	h.message = fmt.Sprintf("%s repairs all tech. Every gadget restored to %d uses", h.name, RepairedUses)
}

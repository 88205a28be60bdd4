package character

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ElementalHero draws on an element charge in addition to energy
type ElementalHero struct {
	Core
	element       string
	elementCharge int
}

var _ Character = (*ElementalHero)(nil)

// NewElementalHero creates an elemental hero with full energy and charge
func NewElementalHero(name, secretIdentity, baseOfOperations string, powers []string, weakness, element string) *ElementalHero {
	return &ElementalHero{
		Core:          newCore(name, secretIdentity, baseOfOperations, powers, weakness),
		element:       element,
		elementCharge: MaxElementCharge,
	}
}

// Kind returns KindElemental
func (h *ElementalHero) Kind() Kind { return KindElemental }

// Element returns the element the hero commands
func (h *ElementalHero) Element() string { return h.element }

// ElementCharge returns the remaining element charge
func (h *ElementalHero) ElementCharge() int { return h.elementCharge }

// CanUsePower adds the element charge gate in front of the base gate
func (h *ElementalHero) CanUsePower(index int, intensity Intensity) Outcome {
	if h.elementCharge <= 0 {
		return InsufficientElementCharge
	}
	return checkPower(&h.Core, index, intensity)
}

// UsablePowers returns nothing while the element is drained
func (h *ElementalHero) UsablePowers(intensity Intensity) []int {
	if h.elementCharge <= 0 {
		return nil
	}
	return h.Core.UsablePowers(intensity)
}

// UsePower needs a positive element charge. The charge cost is only spent when
// the base power use succeeds and the charge never drops below zero.
func (h *ElementalHero) UsePower(index int, intensity Intensity) Outcome {
	if h.elementCharge <= 0 {
		h.message = fmt.Sprintf("%s's %s power is drained! Charge the element first.", h.name, h.element)
		return InsufficientElementCharge
	}

	outcome := usePower(&h.Core, index, intensity)
	if outcome != OK {
		return outcome
	}

	h.elementCharge = clamp(h.elementCharge-ChargeCost(intensity), 0, MaxElementCharge)
	h.message = fmt.Sprintf("%s %s charge: %d%%", h.message, h.elementLabel(), h.elementCharge)
	return OK
}

// ChargeElement restores the element charge to full
func (h *ElementalHero) ChargeElement() {
	h.elementCharge = MaxElementCharge
	h.message = fmt.Sprintf("%s recharges %s power to %d%%", h.name, h.elementLabel(), h.elementCharge)
}

// Status appends the element charge to the base status
func (h *ElementalHero) Status() string {
	return fmt.Sprintf("%s | %s Charge: %d%%", h.Core.Status(), h.elementLabel(), h.elementCharge)
}

// elementLabel is the element as displayed, so "fire" and "FIRE" both read "Fire"
func (h *ElementalHero) elementLabel() string {
	return cases.Title(language.Und).String(h.element)
}

// Package character provides the superhero object model.
//
// The character package implements:
//   - The shared Character contract (transform, use a power, rest, status)
//   - Energy bookkeeping with clamps to [0, MaxEnergy]
//   - Elemental heroes whose powers also drain an element charge
//   - Tech heroes carrying a gadget inventory with limited uses
//
// Core Types:
//
// Core holds the identity and resources every hero shares and is embedded by
// the three variants: Hero (base), ElementalHero and TechHero. Each variant
// implements Character. Kind tags the variant so callers can switch on it.
//
// Usage:
//
//	h := character.NewHero("Nightwatch", "Dana Reyes", "Harbor City",
//		[]string{"Shadow Step", "Night Vision"}, "Bright light")
//
//	h.Transform()
//	outcome := h.UsePower(0, character.High)
//	if !outcome.Success() {
//		log.Println(outcome)
//	}
//	fmt.Println(h.Status())
//
// Rules:
//
// Powers can only be used in costume. Each use costs energy depending on the
// intensity (low 5, medium 15, high 30). Elemental heroes need a positive
// element charge and spend it only when the power goes off. Gadgets work while
// they have uses left; RepairTech restores every gadget to five uses. There is
// no way back out of costume once transformed.
package character

package character

import "fmt"

// Roster is a named group of heroes, as stored in a roster file
type Roster struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Heroes      []HeroSpec `json:"heroes" yaml:"heroes"`
}

// ValidateRoster checks the roster metadata and every hero in it
func ValidateRoster(roster *Roster) error {
	if roster == nil {
		return fmt.Errorf("roster validation: roster cannot be nil")
	}
	if roster.Name == "" {
		return fmt.Errorf("roster validation: name is required")
	}
	if len(roster.Heroes) == 0 {
		return fmt.Errorf("roster validation: at least one hero is required")
	}

	seen := make(map[string]bool, len(roster.Heroes))
	for i := range roster.Heroes {
		spec := &roster.Heroes[i]
		if err := ValidateSpec(spec); err != nil {
			return fmt.Errorf("roster validation: hero %d: %w", i+1, err)
		}
		if seen[spec.Name] {
			return fmt.Errorf("roster validation: duplicate hero name %q", spec.Name)
		}
		seen[spec.Name] = true
	}

	return nil
}

// DefaultRoster returns the built-in roster with one hero of each kind
func DefaultRoster() *Roster {
	return &Roster{
		Name:        "default",
		Description: "Built-in roster with one hero of each kind",
		Heroes: []HeroSpec{
			{
				Kind:             KindBase,
				Name:             "Nightwatch",
				SecretIdentity:   "Dana Reyes",
				BaseOfOperations: "Harbor City",
				Powers:           []string{"Shadow Step", "Night Vision", "Iron Grip"},
				Weakness:         "Bright light",
			},
			{
				Kind:             KindElemental,
				Name:             "Pyra",
				SecretIdentity:   "Lena Ortiz",
				BaseOfOperations: "Volcano Ridge",
				Powers:           []string{"Fireball", "Heat Shield"},
				Weakness:         "Water",
				Element:          "Fire",
			},
			{
				Kind:             KindTech,
				Name:             "Gearhead",
				SecretIdentity:   "Sam Kato",
				BaseOfOperations: "Neon Labs",
				Powers:           []string{"Overclock", "Signal Hijack"},
				Weakness:         "EMP",
				Gadgets:          map[string]int{"Grappling Hook": 3, "Scout Drone": 2, "Smoke Pellets": 1},
			},
		},
	}
}

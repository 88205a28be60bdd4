package character

import (
	"fmt"
	"strings"
)

// HeroSpec describes a hero to build, as read from a roster file
type HeroSpec struct {
	Kind             Kind           `json:"kind" yaml:"kind"`
	Name             string         `json:"name" yaml:"name"`
	SecretIdentity   string         `json:"secret_identity" yaml:"secret_identity"`
	BaseOfOperations string         `json:"base_of_operations" yaml:"base_of_operations"`
	Powers           []string       `json:"powers" yaml:"powers"`
	Weakness         string         `json:"weakness,omitempty" yaml:"weakness,omitempty"`
	Element          string         `json:"element,omitempty" yaml:"element,omitempty"`
	Gadgets          map[string]int `json:"gadgets,omitempty" yaml:"gadgets,omitempty"`
}

// ValidateSpec checks that a spec can build a playable hero
func ValidateSpec(spec *HeroSpec) error {
	if spec == nil {
		return fmt.Errorf("hero validation: spec cannot be nil")
	}
	if strings.TrimSpace(spec.Name) == "" {
		return fmt.Errorf("hero validation: name is required")
	}
	if strings.TrimSpace(spec.SecretIdentity) == "" {
		return fmt.Errorf("hero validation: %s: secret_identity is required", spec.Name)
	}
	if len(spec.Powers) == 0 {
		return fmt.Errorf("hero validation: %s: at least one power is required", spec.Name)
	}
	for i, p := range spec.Powers {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("hero validation: %s: power %d has no name", spec.Name, i)
		}
	}

	switch spec.Kind {
	case KindBase, "":
	case KindElemental:
		if strings.TrimSpace(spec.Element) == "" {
			return fmt.Errorf("hero validation: %s: element is required for elemental heroes", spec.Name)
		}
	case KindTech:
		if len(spec.Gadgets) == 0 {
			return fmt.Errorf("hero validation: %s: tech heroes need at least one gadget", spec.Name)
		}
		for g, uses := range spec.Gadgets {
			if strings.TrimSpace(g) == "" {
				return fmt.Errorf("hero validation: %s: gadget with empty name", spec.Name)
			}
			if uses < 0 {
				return fmt.Errorf("hero validation: %s: gadget %q has negative uses %d", spec.Name, g, uses)
			}
		}
	default:
		return fmt.Errorf("hero validation: %s: unknown kind %q", spec.Name, spec.Kind)
	}

	return nil
}

// FromSpec validates spec and builds the matching variant. An empty kind builds
// a base hero.
func FromSpec(spec *HeroSpec) (Character, error) {
	if err := ValidateSpec(spec); err != nil {
		return nil, err
	}

	switch spec.Kind {
	case KindElemental:
		return NewElementalHero(spec.Name, spec.SecretIdentity, spec.BaseOfOperations, spec.Powers, spec.Weakness, spec.Element), nil
	case KindTech:
		return NewTechHero(spec.Name, spec.SecretIdentity, spec.BaseOfOperations, spec.Powers, spec.Weakness, spec.Gadgets), nil
	default:
		return NewHero(spec.Name, spec.SecretIdentity, spec.BaseOfOperations, spec.Powers, spec.Weakness), nil
	}
}

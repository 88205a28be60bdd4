package character

// Snapshot is a read-only copy of a character's state for display and JSON
// output
type Snapshot struct {
	Kind             Kind     `json:"kind"`
	Name             string   `json:"name"`
	SecretIdentity   string   `json:"secret_identity"`
	BaseOfOperations string   `json:"base_of_operations"`
	Powers           []string `json:"powers"`
	Weakness         string   `json:"weakness,omitempty"`
	Energy           int      `json:"energy"`
	MaxEnergy        int      `json:"max_energy"`
	InCostume        bool     `json:"in_costume"`
	Message          string   `json:"message,omitempty"`
	Status           string   `json:"status"`

	// Elemental only
	Element       string `json:"element,omitempty"`
	ElementCharge *int   `json:"element_charge,omitempty"`

	// Tech only
	Gadgets   map[string]int `json:"gadgets,omitempty"`
	TechLevel *int           `json:"tech_level,omitempty"`
}

// Snap copies the state of c, including variant specific fields
func Snap(c Character) *Snapshot {
	s := &Snapshot{
		Kind:             c.Kind(),
		Name:             c.Name(),
		SecretIdentity:   c.SecretIdentity(),
		BaseOfOperations: c.BaseOfOperations(),
		Powers:           c.Powers(),
		Weakness:         c.Weakness(),
		Energy:           c.Energy(),
		MaxEnergy:        MaxEnergy,
		InCostume:        c.InCostume(),
		Message:          c.Message(),
		Status:           c.Status(),
	}

	switch h := c.(type) {
	case *Hero:
	case *ElementalHero:
		charge := h.ElementCharge()
		s.Element = h.Element()
		s.ElementCharge = &charge
	case *TechHero:
		level := h.TechLevel()
		s.Gadgets = h.Gadgets()
		s.TechLevel = &level
	}

	return s
}

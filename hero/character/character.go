package character

import "fmt"

// Character is the contract shared by every hero variant
type Character interface {
	// Identity
	Kind() Kind
	Name() string
	SecretIdentity() string
	BaseOfOperations() string
	Weakness() string
	Powers() []string

	// Resources and state
	Energy() int
	InCostume() bool
	Message() string

	// Actions
	Transform()
	UsePower(index int, intensity Intensity) Outcome
	CanUsePower(index int, intensity Intensity) Outcome
	UsablePowers(intensity Intensity) []int
	Rest()

	// Status returns a human readable status line
	Status() string
	fmt.Stringer
}

// Core holds the identity and resources every variant shares
type Core struct {
	name             string
	secretIdentity   string
	baseOfOperations string
	powers           []string
	weakness         string

	energy    int
	inCostume bool
	message   string
}

func newCore(name, secretIdentity, baseOfOperations string, powers []string, weakness string) Core {
	p := make([]string, len(powers))
	copy(p, powers)
	return Core{
		name:             name,
		secretIdentity:   secretIdentity,
		baseOfOperations: baseOfOperations,
		powers:           p,
		weakness:         weakness,
		energy:           MaxEnergy,
	}
}

// Name returns the hero name
func (c *Core) Name() string { return c.name }

// SecretIdentity returns the civilian name
func (c *Core) SecretIdentity() string { return c.secretIdentity }

// BaseOfOperations returns where the hero operates from
func (c *Core) BaseOfOperations() string { return c.baseOfOperations }

// Weakness is informational and never checked
func (c *Core) Weakness() string { return c.weakness }

// Powers returns a copy of the ordered power list
func (c *Core) Powers() []string {
	p := make([]string, len(c.powers))
	copy(p, c.powers)
	return p
}

// Energy returns the current energy level
func (c *Core) Energy() int { return c.energy }

// InCostume reports whether the hero has transformed
func (c *Core) InCostume() bool { return c.inCostume }

// Message returns the notification left by the last action
func (c *Core) Message() string { return c.message }

// Transform puts the hero in costume. Transforming again is a no-op apart from
// the notification.
func (c *Core) Transform() {
	c.inCostume = true
	c.message = fmt.Sprintf("%s transforms! %s is now in costume.", c.secretIdentity, c.name)
}

// Rest recovers RestRecovery energy, capped at MaxEnergy
func (c *Core) Rest() {
	c.energy = clamp(c.energy+RestRecovery, 0, MaxEnergy)
	c.message = fmt.Sprintf("%s rests. Energy: %d/%d", c.name, c.energy, MaxEnergy)
}

// CanUsePower checks the base gate for a power use without changing anything
func (c *Core) CanUsePower(index int, intensity Intensity) Outcome {
	return checkPower(c, index, intensity)
}

// UsablePowers returns the indexes of powers that can be used right now at the
// given intensity
func (c *Core) UsablePowers(intensity Intensity) []int {
	var usable []int
	for i := range c.powers {
		if checkPower(c, i, intensity) == OK {
			usable = append(usable, i)
		}
	}
	return usable
}

// Status describes costume state and energy
func (c *Core) Status() string {
	costume := "civilian clothes"
	if c.inCostume {
		costume = "in costume"
	}
	return fmt.Sprintf("%s (%s) is %s | Energy: %d%%", c.name, c.secretIdentity, costume, c.energy)
}

// String identifies the hero by name and secret identity
func (c *Core) String() string {
	return fmt.Sprintf("Superhero: %s | Identity: %s", c.name, c.secretIdentity)
}

// checkPower runs the costume, index and energy gates in that order
func checkPower(c *Core, index int, intensity Intensity) Outcome {
	if !c.inCostume {
		return NotCostumed
	}
	if index < 0 || index >= len(c.powers) {
		return InvalidIndex
	}
	if c.energy < EnergyCost(intensity) {
		return InsufficientEnergy
	}
	return OK
}

// usePower is the shared power use every variant builds on. On success it
// spends energy and records the notification; on failure nothing changes
// except the message.
func usePower(c *Core, index int, intensity Intensity) Outcome {
	outcome := checkPower(c, index, intensity)
	if outcome != OK {
		c.message = failureMessage(c, outcome, index, intensity)
		return outcome
	}

	cost := EnergyCost(intensity)
	c.energy = clamp(c.energy-cost, 0, MaxEnergy)
	c.message = fmt.Sprintf("%s uses %s at %s intensity! Energy: %d/%d",
		c.name, c.powers[index], intensityLabel(intensity), c.energy, MaxEnergy)
	return OK
}

func failureMessage(c *Core, outcome Outcome, index int, intensity Intensity) string {
	switch outcome {
	case NotCostumed:
		return fmt.Sprintf("%s must transform before using powers!", c.secretIdentity)
	case InvalidIndex:
		return fmt.Sprintf("%s has no power at index %d", c.name, index)
	case InsufficientEnergy:
		return fmt.Sprintf("%s is too tired! Needs %d energy, has %d", c.name, EnergyCost(intensity), c.energy)
	default:
		return fmt.Sprintf("%s cannot act: %s", c.name, outcome)
	}
}

// Hero is the base variant with no extra resources
type Hero struct {
	Core
}

var _ Character = (*Hero)(nil)

// NewHero creates a base hero at full energy, out of costume
func NewHero(name, secretIdentity, baseOfOperations string, powers []string, weakness string) *Hero {
	return &Hero{Core: newCore(name, secretIdentity, baseOfOperations, powers, weakness)}
}

// Kind returns KindBase
func (h *Hero) Kind() Kind { return KindBase }

// UsePower spends energy on the power at index
func (h *Hero) UsePower(index int, intensity Intensity) Outcome {
	return usePower(&h.Core, index, intensity)
}

package character

// Kind identifies the concrete variant of a Character
type Kind string

const (
	KindBase      Kind = "base"
	KindElemental Kind = "elemental"
	KindTech      Kind = "tech"
)

// Resource limits and recovery amounts
const (
	MaxEnergy        = 100
	MaxElementCharge = 100
	MaxTechLevel     = 100
	RestRecovery     = 25
	RepairedUses     = 5
)

// Intensity is the effort put into a power use
type Intensity string

const (
	Low    Intensity = "low"
	Medium Intensity = "medium"
	High   Intensity = "high"
)

// DefaultIntensity is used when the caller does not pick one
const DefaultIntensity = Medium

var energyCosts = map[Intensity]int{
	Low:    5,
	Medium: 15,
	High:   30,
}

var chargeCosts = map[Intensity]int{
	Low:    10,
	Medium: 25,
	High:   50,
}

// Valid reports whether i is one of the known intensities
func (i Intensity) Valid() bool {
	_, ok := energyCosts[i]
	return ok
}

// EnergyCost returns the energy a power use costs at intensity i.
// Unknown intensities cost the same as Medium.
func EnergyCost(i Intensity) int {
	if cost, ok := energyCosts[i]; ok {
		return cost
	}
	return energyCosts[Medium]
}

// ChargeCost returns the element charge an elemental power use costs at
// intensity i. Unknown intensities cost the same as Medium.
func ChargeCost(i Intensity) int {
	if cost, ok := chargeCosts[i]; ok {
		return cost
	}
	return chargeCosts[Medium]
}

// Intensities lists the known intensities from cheapest to most expensive
func Intensities() []Intensity {
	return []Intensity{Low, Medium, High}
}

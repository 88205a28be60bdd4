package character

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func createTestHero() *Hero {
	return NewHero("Nightwatch", "Dana Reyes", "Harbor City", []string{"A", "B"}, "Bright light")
}

func TestNewHero(t *testing.T) {
	h := createTestHero()

	if h.Kind() != KindBase {
		t.Errorf("Expected kind %s, got %s", KindBase, h.Kind())
	}
	if h.Energy() != MaxEnergy {
		t.Errorf("Expected starting energy %d, got %d", MaxEnergy, h.Energy())
	}
	if h.InCostume() {
		t.Error("Expected hero not to be in costume initially")
	}
	if h.Weakness() != "Bright light" {
		t.Errorf("Expected weakness to be kept, got %q", h.Weakness())
	}
	if len(h.Powers()) != 2 {
		t.Errorf("Expected 2 powers, got %d", len(h.Powers()))
	}
}

func TestNewHero_CopiesPowers(t *testing.T) {
	powers := []string{"A", "B"}
	h := NewHero("X", "Y", "Z", powers, "")
	powers[0] = "changed"

	if h.Powers()[0] != "A" {
		t.Errorf("Expected hero powers to be isolated from caller slice, got %q", h.Powers()[0])
	}

	got := h.Powers()
	got[1] = "changed"
	if h.Powers()[1] != "B" {
		t.Error("Expected Powers to return a copy")
	}
}

func TestTransform(t *testing.T) {
	h := createTestHero()
	h.Transform()

	if !h.InCostume() {
		t.Fatal("Expected hero to be in costume after transform")
	}
	if !strings.Contains(h.Message(), "Dana Reyes") {
		t.Errorf("Expected transform notification to mention secret identity, got %q", h.Message())
	}

	// Transforming twice keeps the hero in costume
	h.Transform()
	if !h.InCostume() {
		t.Error("Expected hero to stay in costume")
	}
}

func TestUsePower_NotCostumed(t *testing.T) {
	h := createTestHero()

	for _, intensity := range Intensities() {
		for idx := -1; idx <= 2; idx++ {
			if outcome := h.UsePower(idx, intensity); outcome != NotCostumed {
				t.Errorf("UsePower(%d, %s) out of costume: expected %s, got %s", idx, intensity, NotCostumed, outcome)
			}
		}
	}
	if h.Energy() != MaxEnergy {
		t.Errorf("Expected energy unchanged at %d, got %d", MaxEnergy, h.Energy())
	}
}

func TestUsePower_Costs(t *testing.T) {
	tests := []struct {
		name      string
		intensity Intensity
		expected  int
	}{
		{"low", Low, 95},
		{"medium", Medium, 85},
		{"high", High, 70},
		{"unknown defaults to medium", Intensity("extreme"), 85},
		{"empty defaults to medium", Intensity(""), 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHero()
			h.Transform()

			if outcome := h.UsePower(0, tt.intensity); outcome != OK {
				t.Fatalf("Expected success, got %s", outcome)
			}
			if h.Energy() != tt.expected {
				t.Errorf("Expected energy %d, got %d", tt.expected, h.Energy())
			}
		})
	}
}

func TestUsePower_Scenario(t *testing.T) {
	h := createTestHero()
	h.Transform()

	if outcome := h.UsePower(0, High); outcome != OK {
		t.Fatalf("Expected high power use to succeed, got %s", outcome)
	}
	if h.Energy() != 70 {
		t.Fatalf("Expected energy 70, got %d", h.Energy())
	}

	if outcome := h.UsePower(5, Low); outcome != InvalidIndex {
		t.Errorf("Expected %s, got %s", InvalidIndex, outcome)
	}
	if h.Energy() != 70 {
		t.Errorf("Expected energy unchanged at 70, got %d", h.Energy())
	}

	if outcome := h.UsePower(-1, Low); outcome != InvalidIndex {
		t.Errorf("Expected %s for negative index, got %s", InvalidIndex, outcome)
	}
}

func TestUsePower_InsufficientEnergy(t *testing.T) {
	h := createTestHero()
	h.Transform()

	// 100 -> 70 -> 40 -> 10
	for i := 0; i < 3; i++ {
		if outcome := h.UsePower(1, High); outcome != OK {
			t.Fatalf("Use %d: expected success, got %s", i+1, outcome)
		}
	}
	if h.Energy() != 10 {
		t.Fatalf("Expected energy 10, got %d", h.Energy())
	}

	if outcome := h.UsePower(1, Medium); outcome != InsufficientEnergy {
		t.Errorf("Expected %s, got %s", InsufficientEnergy, outcome)
	}
	if h.Energy() != 10 {
		t.Errorf("Expected energy unchanged at 10, got %d", h.Energy())
	}

	// Exactly enough energy is allowed
	if outcome := h.UsePower(1, Low); outcome != OK {
		t.Errorf("Expected low power use to succeed with 10 energy, got %s", outcome)
	}
	if outcome := h.UsePower(1, Low); outcome != OK {
		t.Errorf("Expected low power use to succeed with 5 energy, got %s", outcome)
	}
	if h.Energy() != 0 {
		t.Errorf("Expected energy 0, got %d", h.Energy())
	}
	if outcome := h.UsePower(1, Low); outcome != InsufficientEnergy {
		t.Errorf("Expected %s at 0 energy, got %s", InsufficientEnergy, outcome)
	}
}

func TestUsePower_GateOrder(t *testing.T) {
	h := createTestHero()

	// Invalid index out of costume reports the costume first
	if outcome := h.UsePower(9, High); outcome != NotCostumed {
		t.Errorf("Expected %s, got %s", NotCostumed, outcome)
	}

	h.Transform()
	for h.Energy() >= EnergyCost(High) {
		h.UsePower(0, High)
	}
	// Invalid index with no energy reports the index first
	if outcome := h.UsePower(9, High); outcome != InvalidIndex {
		t.Errorf("Expected %s, got %s", InvalidIndex, outcome)
	}
}

func TestRest(t *testing.T) {
	h := createTestHero()
	h.Transform()
	h.UsePower(0, High)
	h.UsePower(0, High)
	h.UsePower(0, High) // 10

	h.Rest()
	if h.Energy() != 35 {
		t.Errorf("Expected energy 35 after rest, got %d", h.Energy())
	}

	for i := 0; i < 10; i++ {
		h.Rest()
		if h.Energy() > MaxEnergy {
			t.Fatalf("Rest raised energy above %d: %d", MaxEnergy, h.Energy())
		}
	}
	if h.Energy() != MaxEnergy {
		t.Errorf("Expected repeated rest to saturate at %d, got %d", MaxEnergy, h.Energy())
	}
}

func TestRest_PartialRecovery(t *testing.T) {
	h := createTestHero()
	h.Transform()
	h.UsePower(0, Low) // 95

	h.Rest()
	if h.Energy() != MaxEnergy {
		t.Errorf("Expected energy clamped to %d, got %d", MaxEnergy, h.Energy())
	}
}

func TestCanUsePower_DoesNotMutate(t *testing.T) {
	h := createTestHero()

	if outcome := h.CanUsePower(0, Low); outcome != NotCostumed {
		t.Errorf("Expected %s, got %s", NotCostumed, outcome)
	}

	h.Transform()
	if outcome := h.CanUsePower(0, High); outcome != OK {
		t.Errorf("Expected %s, got %s", OK, outcome)
	}
	if h.Energy() != MaxEnergy {
		t.Errorf("Expected CanUsePower to leave energy at %d, got %d", MaxEnergy, h.Energy())
	}
}

func TestUsablePowers(t *testing.T) {
	h := createTestHero()

	if usable := h.UsablePowers(Low); len(usable) != 0 {
		t.Errorf("Expected no usable powers out of costume, got %v", usable)
	}

	h.Transform()
	if usable := h.UsablePowers(High); len(usable) != 2 {
		t.Errorf("Expected 2 usable powers, got %v", usable)
	}

	for h.Energy() >= EnergyCost(High) {
		h.UsePower(0, High)
	}
	if usable := h.UsablePowers(High); len(usable) != 0 {
		t.Errorf("Expected no usable high powers with %d energy, got %v", h.Energy(), usable)
	}
	if usable := h.UsablePowers(Low); len(usable) != 2 {
		t.Errorf("Expected low powers usable with %d energy, got %v", h.Energy(), usable)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		hero Character
	}{
		{"base", createTestHero()},
		{"elemental", NewElementalHero("Nightwatch", "Dana Reyes", "Harbor City", []string{"A"}, "Rain", "Storm")},
		{"tech", NewTechHero("Nightwatch", "Dana Reyes", "Harbor City", []string{"A"}, "Rust", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := "Superhero: Nightwatch | Identity: Dana Reyes"
			if got := tt.hero.String(); got != expected {
				t.Errorf("Expected %q, got %q", expected, got)
			}
			if got := fmt.Sprint(tt.hero); got != expected {
				t.Errorf("Expected fmt to use String, got %q", got)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	h := createTestHero()

	status := h.Status()
	if !strings.Contains(status, "civilian") {
		t.Errorf("Expected status to mention civilian state, got %q", status)
	}
	if !strings.Contains(status, "Energy: 100%") {
		t.Errorf("Expected status to include energy, got %q", status)
	}

	h.Transform()
	h.UsePower(0, High)
	status = h.Status()
	if !strings.Contains(status, "in costume") {
		t.Errorf("Expected status to mention costume, got %q", status)
	}
	if !strings.Contains(status, "Energy: 70%") {
		t.Errorf("Expected status to include energy 70, got %q", status)
	}

	// Status is a pure read
	if h.Status() != status || h.Energy() != 70 {
		t.Error("Expected Status not to change state")
	}
}

func TestOutcome(t *testing.T) {
	if !OK.Success() || OK.Err() != nil {
		t.Error("Expected OK to be a success without error")
	}

	tests := []struct {
		outcome Outcome
		err     error
	}{
		{NotCostumed, ErrNotCostumed},
		{InvalidIndex, ErrInvalidIndex},
		{InsufficientEnergy, ErrInsufficientEnergy},
		{InsufficientElementCharge, ErrInsufficientElementCharge},
		{UnknownGadget, ErrUnknownGadget},
		{GadgetDepleted, ErrGadgetDepleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			if tt.outcome.Success() {
				t.Errorf("Expected %s not to be a success", tt.outcome)
			}
			if !errors.Is(tt.outcome.Err(), tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, tt.outcome.Err())
			}
		})
	}

	if Outcome("bogus").Err() == nil {
		t.Error("Expected an error for an unknown outcome")
	}
}

func TestParseIntensity(t *testing.T) {
	tests := []struct {
		input    string
		expected Intensity
		wantErr  bool
	}{
		{"low", Low, false},
		{"MEDIUM", Medium, false},
		{" high ", High, false},
		{"", Medium, false},
		{"extreme", Medium, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIntensity(tt.input)
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownIntensity) {
					t.Errorf("Expected ErrUnknownIntensity, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestCostTables(t *testing.T) {
	if EnergyCost(Low) != 5 || EnergyCost(Medium) != 15 || EnergyCost(High) != 30 {
		t.Error("Unexpected energy cost table")
	}
	if ChargeCost(Low) != 10 || ChargeCost(Medium) != 25 || ChargeCost(High) != 50 {
		t.Error("Unexpected charge cost table")
	}
	if EnergyCost("bogus") != 15 || ChargeCost("bogus") != 25 {
		t.Error("Expected unknown intensities to cost the medium amount")
	}
}

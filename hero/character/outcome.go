package character

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotCostumed               = errors.New("not in costume")
	ErrInvalidIndex              = errors.New("invalid power index")
	ErrInsufficientEnergy        = errors.New("insufficient energy")
	ErrInsufficientElementCharge = errors.New("insufficient element charge")
	ErrUnknownGadget             = errors.New("unknown gadget")
	ErrGadgetDepleted            = errors.New("gadget depleted")
	ErrUnknownIntensity          = errors.New("unknown intensity")
)

// Outcome is the result of an action. Every failure is expected and leaves the
// character untouched.
type Outcome string

const (
	OK                        Outcome = "ok"
	NotCostumed               Outcome = "not_costumed"
	InvalidIndex              Outcome = "invalid_index"
	InsufficientEnergy        Outcome = "insufficient_energy"
	InsufficientElementCharge Outcome = "insufficient_element_charge"
	UnknownGadget             Outcome = "unknown_gadget"
	GadgetDepleted            Outcome = "gadget_depleted"
)

var outcomeErrors = map[Outcome]error{
	NotCostumed:               ErrNotCostumed,
	InvalidIndex:              ErrInvalidIndex,
	InsufficientEnergy:        ErrInsufficientEnergy,
	InsufficientElementCharge: ErrInsufficientElementCharge,
	UnknownGadget:             ErrUnknownGadget,
	GadgetDepleted:            ErrGadgetDepleted,
}

// Success reports whether the action went through
func (o Outcome) Success() bool {
	return o == OK
}

// Err returns nil for OK and the matching sentinel error otherwise
func (o Outcome) Err() error {
	if o == OK {
		return nil
	}
	if err, ok := outcomeErrors[o]; ok {
		return err
	}
	return fmt.Errorf("unknown outcome %q", string(o))
}

func (o Outcome) String() string {
	return string(o)
}

// ParseIntensity maps user input to an Intensity. Empty input means the
// default intensity. Unknown input returns DefaultIntensity together with
// ErrUnknownIntensity so callers can decide whether to reject it.
func ParseIntensity(s string) (Intensity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultIntensity, nil
	}
	i := Intensity(s)
	if !i.Valid() {
		return DefaultIntensity, fmt.Errorf("%w: %q", ErrUnknownIntensity, s)
	}
	return i, nil
}

package engine

import "fmt"

// Phase represents where a hand is in its lifecycle.
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
	Showdown
	HandOver
)

var phaseNames = [...]string{"preflop", "flop", "turn", "river", "showdown", "hand_over"}

func (p Phase) String() string {
	if p < Preflop || p > HandOver {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Terminal reports whether the hand has been decided. Both Showdown and
// HandOver carry a settlement; HandOver is the final resting state.
func (p Phase) Terminal() bool {
	return p == Showdown || p == HandOver
}

// MarshalText encodes the phase by name so snapshots serialize readably.
func (p Phase) MarshalText() ([]byte, error) {
	if p < Preflop || p > HandOver {
		return nil, fmt.Errorf("engine: unknown phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown phase %q", text)
}

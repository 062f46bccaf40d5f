package engine

import "fmt"

// Action is a player's move in a betting round.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

var actionNames = [...]string{"fold", "check", "call", "raise", "allin"}

func (a Action) String() string {
	if a < Fold || a > AllIn {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) {
	if a < Fold || a > AllIn {
		return nil, fmt.Errorf("engine: unknown action %d", int(a))
	}
	return []byte(actionNames[a]), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction parses an action name as used on the wire.
func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("engine: unknown action %q", s)
}

// ActionOption is one entry of the legal action set, with amount bounds for
// actions that take an amount. For Raise the bounds are raise-to totals; for
// Call both bounds equal the amount needed to match the highest bet.
type ActionOption struct {
	Action Action `json:"action"`
	Min    int    `json:"min,omitempty"`
	Max    int    `json:"max,omitempty"`
}

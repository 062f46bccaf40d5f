package engine

import (
	"fmt"

	"github.com/lox/holdemcore/holdem"
)

// Status tracks whether a player can still act in the hand.
type Status int

const (
	StatusActive Status = iota
	StatusFolded
	StatusAllIn
)

var statusNames = [...]string{"active", "folded", "all_in"}

func (s Status) String() string {
	if s < StatusActive || s > StatusAllIn {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	if s < StatusActive || s > StatusAllIn {
		return nil, fmt.Errorf("engine: unknown status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown status %q", text)
}

// Player is a participant's state within a single hand.
type Player struct {
	Seat        int           `json:"seat"`
	Name        string        `json:"name"`
	Stack       int           `json:"stack"`       // chips not yet committed
	Bet         int           `json:"bet"`         // committed in the current street
	Contributed int           `json:"contributed"` // committed across the whole hand
	HoleCards   []holdem.Card `json:"hole_cards,omitempty"`
	Status      Status        `json:"status"`
	Acted       bool          `json:"acted"` // acted since the last full raise this street
}

// CanAct reports whether the player is still making decisions in the hand.
func (p Player) CanAct() bool {
	return p.Status == StatusActive
}

func (p Player) clone() Player {
	dup := p
	if p.HoleCards != nil {
		dup.HoleCards = make([]holdem.Card, len(p.HoleCards))
		copy(dup.HoleCards, p.HoleCards)
	}
	return dup
}

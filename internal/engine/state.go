package engine

import (
	"github.com/lox/holdemcore/holdem"
)

// GameState is an immutable snapshot of a hand. Every transition returns a
// brand-new value; prior snapshots stay valid for audit, replay and
// concurrent readers without synchronization. All fields are plain data so a
// state can be serialized and reconstructed bit for bit.
type GameState struct {
	HandNum    int            `json:"hand_num"`
	SmallBlind int            `json:"small_blind"`
	BigBlind   int            `json:"big_blind"`
	Dealer     int            `json:"dealer"`
	Phase      Phase          `json:"phase"`
	Players    []Player       `json:"players"`
	Community  []holdem.Card  `json:"community"`
	Deck       holdem.Deck    `json:"deck"`
	Current    int            `json:"current"` // seat to act, -1 when nobody is
	HighestBet int            `json:"highest_bet"`
	MinRaise   int            `json:"min_raise"` // size of the last full raise, or the big blind
	Settlement *Settlement    `json:"settlement,omitempty"`
}

func (s GameState) clone() GameState {
	dup := s
	dup.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		dup.Players[i] = p.clone()
	}
	if s.Community != nil {
		dup.Community = make([]holdem.Card, len(s.Community))
		copy(dup.Community, s.Community)
	}
	// Deck and Settlement are never mutated after creation, sharing is safe.
	return dup
}

// Pots returns the current pot layers, computed from contributions so far.
func (s GameState) Pots() []PotLayer {
	return potLayers(s.Players)
}

// PotTotal returns the chips committed to the hand so far.
func (s GameState) PotTotal() int {
	return potTotal(s.Players)
}

// TotalChips counts every chip in play: stacks plus committed contributions.
// This quantity is invariant for the duration of a hand.
func (s GameState) TotalChips() int {
	total := 0
	for _, p := range s.Players {
		total += p.Stack + p.Contributed
	}
	return total
}

// IsComplete reports whether the hand has been decided.
func (s GameState) IsComplete() bool {
	return s.Phase.Terminal()
}

func (s GameState) nonFoldedCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Status != StatusFolded {
			n++
		}
	}
	return n
}

func (s GameState) soleNonFolded() int {
	for _, p := range s.Players {
		if p.Status != StatusFolded {
			return p.Seat
		}
	}
	return -1
}

// nextToAct returns the first seat at or after from (wrapping) that can still
// act, or -1 when none can.
func (s GameState) nextToAct(from int) int {
	n := len(s.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if s.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

// roundComplete reports whether the current betting round is finished: every
// player who can still act has acted since the last full raise and has
// matched the highest bet.
func (s GameState) roundComplete() bool {
	for _, p := range s.Players {
		if !p.CanAct() {
			continue
		}
		if !p.Acted || p.Bet != s.HighestBet {
			return false
		}
	}
	return true
}

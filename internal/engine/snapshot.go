package engine

import (
	"github.com/lox/holdemcore/holdem"
)

// PublicPlayer is a player's state as visible to everyone at the table.
// Hole cards are included only once the hand reaches showdown, and only for
// players who did not fold.
type PublicPlayer struct {
	Seat      int           `json:"seat"`
	Name      string        `json:"name"`
	Stack     int           `json:"stack"`
	Bet       int           `json:"bet"`
	Status    Status        `json:"status"`
	HoleCards []holdem.Card `json:"hole_cards,omitempty"`
}

// Snapshot is the read-only view of a hand exposed to decision layers,
// spectators and transports. It carries no hidden information except at
// showdown and no behavior at all.
type Snapshot struct {
	HandNum    int            `json:"hand_num"`
	Phase      Phase          `json:"phase"`
	Dealer     int            `json:"dealer"`
	Community  []holdem.Card  `json:"community"`
	Pots       []PotLayer     `json:"pots"`
	PotTotal   int            `json:"pot_total"`
	Players    []PublicPlayer `json:"players"`
	Current    int            `json:"current"`
	HighestBet int            `json:"highest_bet"`
	MinRaise   int            `json:"min_raise"`
	ToCall     int            `json:"to_call"`
	Legal      []ActionOption `json:"legal,omitempty"`
	Settlement *Settlement    `json:"settlement,omitempty"`
}

// Snapshot builds the public view of the state.
func (s GameState) Snapshot() Snapshot {
	snap := Snapshot{
		HandNum:    s.HandNum,
		Phase:      s.Phase,
		Dealer:     s.Dealer,
		Community:  append([]holdem.Card(nil), s.Community...),
		Pots:       s.Pots(),
		PotTotal:   s.PotTotal(),
		Current:    s.Current,
		HighestBet: s.HighestBet,
		MinRaise:   s.MinRaise,
		Legal:      s.LegalActions(),
		Settlement: s.Settlement,
	}

	for _, p := range s.Players {
		pub := PublicPlayer{
			Seat:   p.Seat,
			Name:   p.Name,
			Stack:  p.Stack,
			Bet:    p.Bet,
			Status: p.Status,
		}
		if s.Phase.Terminal() && s.Settlement != nil && s.Settlement.Showdown && p.Status != StatusFolded {
			pub.HoleCards = append([]holdem.Card(nil), p.HoleCards...)
		}
		snap.Players = append(snap.Players, pub)
	}

	if s.Current >= 0 && s.Current < len(s.Players) {
		snap.ToCall = s.HighestBet - s.Players[s.Current].Bet
	}
	return snap
}

// DecisionView is the data a decision layer (human UI, bot, coach) needs to
// choose an action for the seat to act. It includes that seat's hole cards;
// the engine computes no equity or advice itself.
type DecisionView struct {
	Seat      int            `json:"seat"`
	HoleCards []holdem.Card  `json:"hole_cards"`
	Community []holdem.Card  `json:"community"`
	PotTotal  int            `json:"pot_total"`
	ToCall    int            `json:"to_call"`
	Legal     []ActionOption `json:"legal"`
}

// DecisionView returns the acting player's view, or false when no player is
// to act.
func (s GameState) DecisionView() (DecisionView, bool) {
	if s.Current < 0 || s.Current >= len(s.Players) || s.Phase.Terminal() {
		return DecisionView{}, false
	}
	p := s.Players[s.Current]
	return DecisionView{
		Seat:      p.Seat,
		HoleCards: append([]holdem.Card(nil), p.HoleCards...),
		Community: append([]holdem.Card(nil), s.Community...),
		PotTotal:  s.PotTotal(),
		ToCall:    s.HighestBet - p.Bet,
		Legal:     s.LegalActions(),
	}, true
}

package engine

import (
	"github.com/lox/holdemcore/holdem"
)

// PotResult records how one pot layer was decided.
type PotResult struct {
	Amount   int    `json:"amount"`
	Eligible []int  `json:"eligible"`
	Winners  []int  `json:"winners"`
	Hand     string `json:"hand,omitempty"` // winning hand, empty when uncontested
}

// SeatResult is a hand revealed at showdown.
type SeatResult struct {
	Seat      int           `json:"seat"`
	HoleCards []holdem.Card `json:"hole_cards"`
	Hand      string        `json:"hand"`
	BestFive  []holdem.Card `json:"best_five"`
}

// Settlement is the record produced when a hand ends: winners and amounts
// per pot layer, the total paid to each seat, and the hands shown. It is
// plain data, fit for persistence and presentation; the updated stacks live
// on the terminal GameState itself.
type Settlement struct {
	Showdown bool          `json:"showdown"`
	Board    []holdem.Card `json:"board"`
	Pots     []PotResult   `json:"pots"`
	Winnings []int         `json:"winnings"` // indexed by seat
	Hands    []SeatResult  `json:"hands,omitempty"`
}

// settleUncontested awards every pot layer to the sole remaining player.
// No hands are evaluated or revealed.
func (s *GameState) settleUncontested() error {
	winner := s.soleNonFolded()
	if winner == -1 {
		return &IllegalStateTransitionError{Phase: s.Phase, Reason: "no remaining player to award the pot to"}
	}

	stl := &Settlement{
		Board:    append([]holdem.Card(nil), s.Community...),
		Winnings: make([]int, len(s.Players)),
	}
	for _, layer := range potLayers(s.Players) {
		stl.Pots = append(stl.Pots, PotResult{
			Amount:   layer.Amount,
			Eligible: layer.Eligible,
			Winners:  []int{winner},
		})
		stl.Winnings[winner] += layer.Amount
	}

	s.payOut(stl)
	return nil
}

// settleShowdown evaluates every non-folded hand and splits each pot layer
// among its best eligible hands. Ties split evenly; each leftover chip goes
// to the first winning seat clockwise from the dealer button.
func (s *GameState) settleShowdown() error {
	if len(s.Community) != 5 {
		return &IllegalStateTransitionError{Phase: s.Phase, Reason: "showdown requires five community cards"}
	}

	evals := make(map[int]holdem.Eval, len(s.Players))
	stl := &Settlement{
		Showdown: true,
		Board:    append([]holdem.Card(nil), s.Community...),
		Winnings: make([]int, len(s.Players)),
	}

	for _, p := range s.Players {
		if p.Status == StatusFolded {
			continue
		}
		if len(p.HoleCards) != 2 {
			return &IllegalStateTransitionError{Phase: s.Phase, Reason: "player at showdown has no hole cards"}
		}
		cards := append(append([]holdem.Card(nil), p.HoleCards...), s.Community...)
		eval, err := holdem.Evaluate(cards)
		if err != nil {
			return &IllegalStateTransitionError{Phase: s.Phase, Reason: err.Error()}
		}
		evals[p.Seat] = eval
		stl.Hands = append(stl.Hands, SeatResult{
			Seat:      p.Seat,
			HoleCards: append([]holdem.Card(nil), p.HoleCards...),
			Hand:      eval.String(),
			BestFive:  eval.BestFive,
		})
	}

	for _, layer := range potLayers(s.Players) {
		winners := bestSeats(layer.Eligible, evals)
		result := PotResult{
			Amount:   layer.Amount,
			Eligible: layer.Eligible,
			Winners:  winners,
		}
		if len(winners) > 0 {
			result.Hand = evals[winners[0]].String()

			share := layer.Amount / len(winners)
			remainder := layer.Amount % len(winners)
			for _, seat := range winners {
				stl.Winnings[seat] += share
			}
			// Odd chips go clockwise from the seat after the dealer.
			for _, seat := range s.clockwiseFromDealer(winners) {
				if remainder == 0 {
					break
				}
				stl.Winnings[seat]++
				remainder--
			}
		}
		stl.Pots = append(stl.Pots, result)
	}

	s.payOut(stl)
	return nil
}

// bestSeats returns the eligible seats holding the top-ranked hand.
func bestSeats(eligible []int, evals map[int]holdem.Eval) []int {
	var winners []int
	for _, seat := range eligible {
		eval, ok := evals[seat]
		if !ok {
			continue
		}
		if len(winners) == 0 {
			winners = []int{seat}
			continue
		}
		switch eval.Compare(evals[winners[0]]) {
		case 1:
			winners = []int{seat}
		case 0:
			winners = append(winners, seat)
		}
	}
	return winners
}

// clockwiseFromDealer orders the given seats by table position starting at
// the seat after the dealer button.
func (s *GameState) clockwiseFromDealer(seats []int) []int {
	member := make(map[int]bool, len(seats))
	for _, seat := range seats {
		member[seat] = true
	}
	ordered := make([]int, 0, len(seats))
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		seat := (s.Dealer + i) % n
		if member[seat] {
			ordered = append(ordered, seat)
		}
	}
	return ordered
}

// payOut applies the settlement: winnings move into stacks and the consumed
// contributions are cleared, keeping total chips in play constant.
func (s *GameState) payOut(stl *Settlement) {
	for i := range s.Players {
		s.Players[i].Stack += stl.Winnings[i]
		s.Players[i].Contributed = 0
		s.Players[i].Bet = 0
	}
	s.Settlement = stl
}

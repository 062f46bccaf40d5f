package server

import (
	"fmt"
	"strings"

	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/internal/engine"
)

// HandSummary renders a settled hand as log-friendly text lines: the board,
// each shown hand, and who won what from each pot.
func HandSummary(state engine.GameState) []string {
	stl := state.Settlement
	if stl == nil {
		return nil
	}

	var lines []string
	if len(stl.Board) > 0 {
		lines = append(lines, "board "+formatCards(stl.Board))
	}
	for _, h := range stl.Hands {
		lines = append(lines, fmt.Sprintf("%s shows %s (%s)",
			seatName(state, h.Seat), formatCards(h.HoleCards), h.Hand))
	}

	for i, pot := range stl.Pots {
		label := "pot"
		if len(stl.Pots) > 1 {
			if i == 0 {
				label = "main pot"
			} else {
				label = fmt.Sprintf("side pot %d", i)
			}
		}
		winners := make([]string, len(pot.Winners))
		for j, seat := range pot.Winners {
			winners[j] = seatName(state, seat)
		}
		line := fmt.Sprintf("%s %d to %s", label, pot.Amount, strings.Join(winners, ", "))
		if pot.Hand != "" {
			line += " with " + pot.Hand
		}
		lines = append(lines, line)
	}
	return lines
}

func seatName(state engine.GameState, seat int) string {
	if seat >= 0 && seat < len(state.Players) {
		return state.Players[seat].Name
	}
	return fmt.Sprintf("seat %d", seat)
}

func formatCards(cards []holdem.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

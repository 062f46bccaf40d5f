package tui

import (
	"strings"

	"github.com/lox/holdemcore/holdem"
)

// formatCard renders a single card with its suit color.
func formatCard(c holdem.Card) string {
	s := c.String()
	switch c.Suit() {
	case holdem.Hearts, holdem.Diamonds:
		return redCardStyle.Render(s)
	default:
		return blackCardStyle.Render(s)
	}
}

// formatCards renders a space-separated run of cards.
func formatCards(cards []holdem.Card) string {
	if len(cards) == 0 {
		return dimStyle.Render("--")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = formatCard(c)
	}
	return strings.Join(parts, " ")
}

// plainCards renders cards without styling, for log lines.
func plainCards(cards []holdem.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

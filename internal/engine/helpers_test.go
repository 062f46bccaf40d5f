package engine

import (
	"math/rand"
	"testing"

	"github.com/lox/holdemcore/holdem"
	"github.com/stretchr/testify/require"
)

// deckFor builds a fixed deck from card strings, hole cards first (two per
// seat in seat order), then flop, turn, river.
func deckFor(t *testing.T, cards ...string) holdem.Deck {
	t.Helper()
	parsed, err := holdem.ParseCards(cards...)
	require.NoError(t, err)
	return holdem.DeckFromCards(parsed...)
}

// mustHand seeds a fixed RNG so hands are reproducible; WithDeck overrides
// the shuffle entirely for tests that script the board.
func mustHand(t *testing.T, names []string, dealer, sb, bb int, opts ...HandOption) GameState {
	t.Helper()
	s, err := NewHand(rand.New(rand.NewSource(1)), names, dealer, sb, bb, opts...)
	require.NoError(t, err)
	return s
}

func mustApply(t *testing.T, s GameState, seat int, action Action, amount int) GameState {
	t.Helper()
	next, err := Apply(s, seat, action, amount)
	require.NoError(t, err, "apply %s by seat %d for %d", action, seat, amount)
	return next
}

func hasAction(opts []ActionOption, a Action) bool {
	for _, o := range opts {
		if o.Action == a {
			return true
		}
	}
	return false
}

func findOption(t *testing.T, opts []ActionOption, a Action) ActionOption {
	t.Helper()
	for _, o := range opts {
		if o.Action == a {
			return o
		}
	}
	t.Fatalf("action %s not in legal set %v", a, opts)
	return ActionOption{}
}

// fourSeats is a 13-card deck for a 4-player hand: junk hole cards and an
// uncoordinated board so no accidental monsters decide the pots.
func fourSeatDeck(t *testing.T) holdem.Deck {
	t.Helper()
	return deckFor(t,
		"2c", "7d", // seat 0
		"3c", "8d", // seat 1
		"4c", "9d", // seat 2
		"5c", "Td", // seat 3
		"Jh", "6s", "2h", // flop
		"Ks", // turn
		"9h", // river
	)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardPlaysSplitWithOddChip(t *testing.T) {
	t.Parallel()

	// A royal flush on the board: both remaining players play the board and
	// split a 25-chip pot. The odd chip goes to the first winner clockwise
	// from the dealer button.
	deck := deckFor(t,
		"2c", "3c", // seat 0 (dealer)
		"9s", "9d", // seat 1
		"2d", "3d", // seat 2
		"Ah", "Kh", "Qh", // flop
		"Jh", // turn
		"Th", // river
	)
	s := mustHand(t, []string{"a", "b", "c"}, 0, 5, 10, WithDeck(deck))

	s = mustApply(t, s, 0, Call, 0)
	s = mustApply(t, s, 1, Fold, 0)
	s = mustApply(t, s, 2, Check, 0)

	for s.Phase != Showdown {
		s = mustApply(t, s, s.Current, Check, 0)
	}

	require.NotNil(t, s.Settlement)
	require.True(t, s.Settlement.Showdown)
	require.Len(t, s.Settlement.Pots, 1)

	pot := s.Settlement.Pots[0]
	require.Equal(t, 25, pot.Amount)
	require.Equal(t, []int{0, 2}, pot.Winners)
	require.Equal(t, "Straight Flush, Ace high", pot.Hand)

	// 25 / 2 = 12 each; seat 2 is first clockwise from the dealer among the
	// winners and takes the remainder.
	require.Equal(t, []int{12, 0, 13}, s.Settlement.Winnings)
	require.Equal(t, 1002, s.Players[0].Stack)
	require.Equal(t, 995, s.Players[1].Stack)
	require.Equal(t, 1003, s.Players[2].Stack)
	require.Equal(t, 3000, s.TotalChips())
}

func TestShowdownRevealsOnlyContenders(t *testing.T) {
	t.Parallel()

	deck := deckFor(t,
		"2c", "3c", // seat 0
		"9s", "9d", // seat 1
		"2d", "3d", // seat 2
		"Ah", "Kh", "Qh",
		"Jh",
		"Th",
	)
	s := mustHand(t, []string{"a", "b", "c"}, 0, 5, 10, WithDeck(deck))

	s = mustApply(t, s, 0, Call, 0)
	s = mustApply(t, s, 1, Fold, 0)
	s = mustApply(t, s, 2, Check, 0)
	for s.Phase != Showdown {
		s = mustApply(t, s, s.Current, Check, 0)
	}

	seats := make([]int, 0, len(s.Settlement.Hands))
	for _, h := range s.Settlement.Hands {
		seats = append(seats, h.Seat)
		require.Len(t, h.HoleCards, 2)
		require.Len(t, h.BestFive, 5)
		require.NotEmpty(t, h.Hand)
	}
	require.Equal(t, []int{0, 2}, seats, "folded hands stay hidden")

	// The public snapshot agrees: hole cards only for the shown hands.
	snap := s.Snapshot()
	require.Len(t, snap.Players[0].HoleCards, 2)
	require.Empty(t, snap.Players[1].HoleCards)
	require.Len(t, snap.Players[2].HoleCards, 2)
}

func TestUncontestedSettlementRevealsNothing(t *testing.T) {
	t.Parallel()

	s := mustHand(t, []string{"a", "b"}, 0, 5, 10)
	s = mustApply(t, s, 0, Fold, 0)

	require.Equal(t, HandOver, s.Phase)
	require.False(t, s.Settlement.Showdown)
	require.Empty(t, s.Settlement.Hands)
	require.Empty(t, s.Settlement.Pots[0].Hand)

	snap := s.Snapshot()
	for _, p := range snap.Players {
		require.Empty(t, p.HoleCards, "fold-outs never reveal hole cards")
	}
}

func TestOddChipOrderWrapsAroundDealer(t *testing.T) {
	t.Parallel()

	// Same board-play split, but with the dealer button on seat 2 so the
	// clockwise order wraps around seat 0 before reaching the winners.
	deck := deckFor(t,
		"9s", "9d", // seat 0 (small blind, folds)
		"2c", "3c", // seat 1
		"2d", "3d", // seat 2 (dealer)
		"Ah", "Kh", "Qh",
		"Jh",
		"Th",
	)
	s := mustHand(t, []string{"a", "b", "c"}, 2, 5, 10, WithDeck(deck))

	// Seat 0 posts the small blind, seat 1 the big blind, seat 2 opens.
	s = mustApply(t, s, 2, Call, 0)
	s = mustApply(t, s, 0, Fold, 0)
	s = mustApply(t, s, 1, Check, 0)
	for s.Phase != Showdown {
		s = mustApply(t, s, s.Current, Check, 0)
	}

	// Pot is 25: the abandoned small blind plus two calls of the big blind.
	// Seat 1 is first clockwise from the dealer among the winners.
	require.Equal(t, []int{1, 2}, s.Settlement.Pots[0].Winners)
	require.Equal(t, []int{0, 13, 12}, s.Settlement.Winnings)
}

func TestSettlementBoardMatchesCommunity(t *testing.T) {
	t.Parallel()

	s := mustHand(t, []string{"a", "b"}, 0, 5, 10, WithStacks([]int{50, 50}))
	s = mustApply(t, s, 0, AllIn, 0)
	s = mustApply(t, s, 1, AllIn, 0)

	require.Equal(t, Showdown, s.Phase)
	require.Equal(t, s.Community, s.Settlement.Board)
	require.Len(t, s.Settlement.Hands, 2)
}

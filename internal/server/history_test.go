package server

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/internal/engine"
)

func TestHandSummaryFoldOut(t *testing.T) {
	t.Parallel()

	s, err := engine.NewHand(rand.New(rand.NewSource(1)), []string{"alice", "bob"}, 0, 5, 10)
	require.NoError(t, err)
	s, err = engine.Apply(s, 0, engine.Fold, 0)
	require.NoError(t, err)

	lines := HandSummary(s)
	require.Len(t, lines, 1)
	require.Equal(t, "pot 15 to bob", lines[0])
}

func TestHandSummaryShowdown(t *testing.T) {
	t.Parallel()

	s, err := engine.NewHand(rand.New(rand.NewSource(1)), []string{"alice", "bob"}, 0, 5, 10,
		engine.WithStacks([]int{100, 100}))
	require.NoError(t, err)
	s, err = engine.Apply(s, 0, engine.AllIn, 0)
	require.NoError(t, err)
	s, err = engine.Apply(s, 1, engine.AllIn, 0)
	require.NoError(t, err)
	require.NotNil(t, s.Settlement)

	lines := HandSummary(s)
	require.GreaterOrEqual(t, len(lines), 3, "board, two shown hands, at least one pot")
	require.True(t, strings.HasPrefix(lines[0], "board "))
	require.Contains(t, lines[1], "shows")
	require.Contains(t, lines[len(lines)-1], " to ")
}

func TestHandSummaryNilSettlement(t *testing.T) {
	t.Parallel()

	s, err := engine.NewHand(rand.New(rand.NewSource(1)), []string{"alice", "bob"}, 0, 5, 10)
	require.NoError(t, err)
	require.Nil(t, HandSummary(s))
}

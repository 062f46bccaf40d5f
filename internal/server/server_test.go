package server

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

func TestNewGivesEachTableItsOwnRNG(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Tables = append(cfg.Tables, TableConfig{
		Name:            "second",
		MaxPlayers:      6,
		SmallBlind:      5,
		BigBlind:        10,
		BuyIn:           1000,
		ActionTimeoutMs: 15000,
	})
	require.NoError(t, cfg.Validate())

	shared := rand.New(rand.NewSource(1))
	srv := New(cfg, log.New(io.Discard), shared, quartz.NewMock(t))

	// Table run loops shuffle concurrently; handing every table the same
	// *rand.Rand would race.
	first, ok := srv.Table("main")
	require.True(t, ok)
	second, ok := srv.Table("second")
	require.True(t, ok)

	require.NotSame(t, shared, first.rng)
	require.NotSame(t, shared, second.rng)
	require.NotSame(t, first.rng, second.rng)
}

func TestTableFallsBackToFirst(t *testing.T) {
	t.Parallel()

	srv := New(DefaultConfig(), log.New(io.Discard), rand.New(rand.NewSource(1)), quartz.NewMock(t))

	table, ok := srv.Table("")
	require.True(t, ok)
	require.Equal(t, "main", table.Name())

	_, ok = srv.Table("nope")
	require.False(t, ok)
}

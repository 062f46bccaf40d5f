package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/internal/engine"
	"github.com/lox/holdemcore/internal/protocol"
)

type fakeSender struct {
	acts []protocol.Act
	err  error
}

func (f *fakeSender) SendAct(act protocol.Act) error {
	f.acts = append(f.acts, act)
	return f.err
}

func newTestModel(t *testing.T) (*Model, *fakeSender) {
	t.Helper()
	sender := &fakeSender{}
	recv := func() tea.Msg { return nil }
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewModel("alice", sender, recv, logger), sender
}

func apply(m *Model, msg tea.Msg) *Model {
	next, _ := m.Update(msg)
	return next.(*Model)
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    protocol.Act
		wantErr bool
	}{
		{input: "fold", want: protocol.Act{Action: "fold"}},
		{input: "f", want: protocol.Act{Action: "fold"}},
		{input: "CHECK", want: protocol.Act{Action: "check"}},
		{input: "call", want: protocol.Act{Action: "call"}},
		{input: "raise 40", want: protocol.Act{Action: "raise", Amount: 40}},
		{input: "bet 25", want: protocol.Act{Action: "raise", Amount: 25}},
		{input: "allin", want: protocol.Act{Action: "allin"}},
		{input: "shove", want: protocol.Act{Action: "allin"}},
		{input: "raise", wantErr: true},
		{input: "raise zero", wantErr: true},
		{input: "raise -5", wantErr: true},
		{input: "dance", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			act, err := parseCommand(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, act)
		})
	}
}

func TestModelHandStart(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	cards, err := holdem.ParseCards("As", "Kh")
	require.NoError(t, err)

	m = apply(m, protocol.HandStart{HandNum: 3, Seat: 1, HoleCards: cards})

	assert.Equal(t, 3, m.handNum)
	assert.Equal(t, 1, m.seat)
	joined := strings.Join(m.lines, "\n")
	assert.Contains(t, joined, "hand 3")
	assert.Contains(t, joined, "As Kh")
}

func TestModelSubmitRequiresPendingRequest(t *testing.T) {
	t.Parallel()

	m, sender := newTestModel(t)
	m.input.SetValue("call")
	m.submit()

	assert.Empty(t, sender.acts)
	assert.Equal(t, "it is not your turn", m.errText)
}

func TestModelSubmitSendsAction(t *testing.T) {
	t.Parallel()

	m, sender := newTestModel(t)
	m = apply(m, protocol.ActionRequest{
		HandNum: 1,
		Seat:    0,
		ToCall:  10,
		Legal: []engine.ActionOption{
			{Action: engine.Fold},
			{Action: engine.Call, Min: 10, Max: 10},
			{Action: engine.Raise, Min: 20, Max: 990},
		},
	})
	require.NotNil(t, m.pending)

	m.input.SetValue("raise 40")
	m.submit()

	require.Len(t, sender.acts, 1)
	assert.Equal(t, protocol.Act{Action: "raise", Amount: 40}, sender.acts[0])
	assert.Empty(t, m.errText)
}

func TestModelClearsPendingAfterOwnAction(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = apply(m, protocol.ActionRequest{Seat: 0, Legal: []engine.ActionOption{{Action: engine.Fold}}})
	require.NotNil(t, m.pending)

	m = apply(m, protocol.PlayerActed{Seat: 0, Name: "alice", Action: "fold"})
	assert.Nil(t, m.pending)

	// Someone else's action leaves a fresh request alone.
	m = apply(m, protocol.ActionRequest{Seat: 0, Legal: []engine.ActionOption{{Action: engine.Fold}}})
	m = apply(m, protocol.PlayerActed{Seat: 2, Name: "carol", Action: "call"})
	assert.NotNil(t, m.pending)
}

func TestModelRendersSnapshot(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	board, err := holdem.ParseCards("Jh", "6s", "2h")
	require.NoError(t, err)

	m = apply(m, protocol.TableUpdate{Snapshot: engine.Snapshot{
		Phase:     engine.Flop,
		Community: board,
		PotTotal:  60,
		Current:   1,
		Players: []engine.PublicPlayer{
			{Seat: 0, Name: "alice", Stack: 970},
			{Seat: 1, Name: "bob", Stack: 970},
		},
	}})

	view := m.View()
	assert.Contains(t, view, "pot 60")
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "bob")
}

func TestModelHandResultLogsWinners(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = apply(m, protocol.HandResult{
		HandNum: 2,
		Settlement: &engine.Settlement{
			Pots:     []engine.PotResult{{Amount: 90, Winners: []int{1}, Hand: "Pair of Kings"}},
			Winnings: []int{0, 90},
		},
	})

	joined := strings.Join(m.lines, "\n")
	assert.Contains(t, joined, "90 chips")
	assert.Contains(t, joined, "Pair of Kings")
}

func TestModelErrorMessage(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m = apply(m, protocol.Error{Code: protocol.CodeInvalidAction, Message: "raise amount outside legal bounds"})
	assert.Equal(t, "raise amount outside legal bounds", m.errText)
}

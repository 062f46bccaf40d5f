package server

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemcore/internal/engine"
	"github.com/lox/holdemcore/internal/protocol"
)

// Table hosts a sequence of hands for its seated players. All engine calls
// happen on the table's run loop, so client submissions are serialized into
// ordered Apply calls no matter how many connections race; anything arriving
// out of turn is rejected by the engine itself.
type Table struct {
	cfg    TableConfig
	logger *log.Logger
	clock  quartz.Clock
	rng    *rand.Rand

	mu    sync.Mutex
	seats []*Seat

	dealer  int
	handNum int
}

// NewTable creates a table from its config. The clock is injected so tests
// can fire action timeouts deterministically; production passes
// quartz.NewReal().
func NewTable(cfg TableConfig, logger *log.Logger, rng *rand.Rand, clock quartz.Clock) *Table {
	return &Table{
		cfg:    cfg,
		logger: logger.WithPrefix("table").With("table", cfg.Name),
		clock:  clock,
		rng:    rng,
	}
}

// Name returns the table's configured name.
func (t *Table) Name() string { return t.cfg.Name }

// Join seats a client at the table with the configured buy-in.
func (t *Table) Join(name string, c Client) (*Seat, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.seats) >= t.cfg.MaxPlayers {
		return nil, fmt.Errorf("table %s is full", t.cfg.Name)
	}
	for _, s := range t.seats {
		if s.Name == name {
			return nil, fmt.Errorf("name %q is already seated at %s", name, t.cfg.Name)
		}
	}

	seat := newSeat(len(t.seats), name, t.cfg.BuyIn, c)
	t.seats = append(t.seats, seat)
	t.logger.Info("player seated", "player", name, "seat", seat.Num, "stack", seat.Stack)
	return seat, nil
}

// Leave removes a seat from the table. A hand in progress keeps playing; the
// departed player's pending decisions fall to the action timeout.
func (t *Table) Leave(seat *Seat) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, s := range t.seats {
		if s == seat {
			t.seats = append(t.seats[:i], t.seats[i+1:]...)
			t.logger.Info("player left", "player", seat.Name)
			break
		}
	}
	for i, s := range t.seats {
		s.Num = i
	}
}

// Seated returns the number of occupied seats.
func (t *Table) Seated() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seats)
}

// Run deals hands for as long as the context lives, pausing while fewer than
// two funded players are seated.
func (t *Table) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if len(t.players()) < 2 {
			timer := t.clock.NewTimer(time.Second)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
			continue
		}

		if err := t.RunHand(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.logger.Error("hand aborted", "err", err)
		}
	}
}

// players snapshots the seats that can be dealt in: occupied and funded.
func (t *Table) players() []*Seat {
	t.mu.Lock()
	defer t.mu.Unlock()

	playing := make([]*Seat, 0, len(t.seats))
	for _, s := range t.seats {
		if s.Stack > 0 {
			playing = append(playing, s)
		}
	}
	return playing
}

// RunHand plays a single hand to completion: deal, drive the action loop,
// settle, and write the resulting stacks back to the seats.
func (t *Table) RunHand(ctx context.Context) error {
	playing := t.players()
	if len(playing) < 2 {
		return fmt.Errorf("not enough funded players")
	}

	t.handNum++
	names := make([]string, len(playing))
	stacks := make([]int, len(playing))
	for i, s := range playing {
		names[i] = s.Name
		stacks[i] = s.Stack
	}
	dealer := t.dealer % len(playing)

	state, err := engine.NewHand(t.rng, names, dealer, t.cfg.SmallBlind, t.cfg.BigBlind,
		engine.WithStacks(stacks), engine.WithHandNum(t.handNum))
	if err != nil {
		return fmt.Errorf("dealing hand %d: %w", t.handNum, err)
	}

	t.logger.Info("hand dealt", "hand", t.handNum, "players", len(playing), "dealer", dealer)

	seatInfos := make([]protocol.SeatInfo, len(playing))
	for i, s := range playing {
		seatInfos[i] = protocol.SeatInfo{Seat: i, Name: s.Name, Stack: state.Players[i].Stack}
	}
	for i, s := range playing {
		s.drain()
		t.send(s, protocol.HandStart{
			HandNum:    t.handNum,
			Seat:       i,
			HoleCards:  state.Players[i].HoleCards,
			Dealer:     dealer,
			SmallBlind: t.cfg.SmallBlind,
			BigBlind:   t.cfg.BigBlind,
			Seats:      seatInfos,
		})
	}
	t.broadcast(playing, protocol.TableUpdate{Snapshot: state.Snapshot()})

	for !state.IsComplete() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		state, err = t.playDecision(ctx, playing, state)
		if err != nil {
			return err
		}
	}

	if state.Phase == engine.Showdown {
		if state, err = engine.Finish(state); err != nil {
			return err
		}
	}

	t.settle(playing, state)
	t.dealer++
	return nil
}

// playDecision requests one action from the player to act and applies it.
// An illegal submission is bounced back to the client and the request stays
// open; a timeout folds the seat through the same Apply path.
func (t *Table) playDecision(ctx context.Context, playing []*Seat, state engine.GameState) (engine.GameState, error) {
	view, ok := state.DecisionView()
	if !ok {
		return state, fmt.Errorf("hand %d: no decision available in phase %s", state.HandNum, state.Phase)
	}
	seat := playing[view.Seat]

	t.send(seat, protocol.ActionRequest{
		HandNum:   state.HandNum,
		Seat:      view.Seat,
		ToCall:    view.ToCall,
		PotTotal:  view.PotTotal,
		Legal:     view.Legal,
		TimeoutMs: t.cfg.ActionTimeoutMs,
	})

	act, answered := seat.awaitAct(ctx, t.clock, t.cfg.ActionTimeout())
	if ctx.Err() != nil {
		return state, ctx.Err()
	}

	action, amount := engine.Fold, 0
	timedOut := !answered
	if answered {
		parsed, err := engine.ParseAction(act.Action)
		if err != nil {
			t.send(seat, protocol.Error{Code: protocol.CodeBadMessage, Message: err.Error(), Recoverable: true})
			return state, nil
		}
		action, amount = parsed, act.Amount
	} else {
		t.logger.Warn("action timeout, folding", "hand", state.HandNum, "player", seat.Name)
	}

	next, err := engine.Apply(state, view.Seat, action, amount)
	if err != nil {
		var invalid *engine.InvalidActionError
		if errors.As(err, &invalid) {
			t.send(seat, protocol.Error{Code: protocol.CodeInvalidAction, Message: invalid.Error(), Recoverable: true})
			return state, nil
		}
		return state, fmt.Errorf("hand %d: %w", state.HandNum, err)
	}

	for _, ev := range engine.TransitionEvents(state, next, view.Seat, action, amount) {
		t.announce(playing, next, ev, timedOut)
	}
	t.broadcast(playing, protocol.TableUpdate{Snapshot: next.Snapshot()})
	return next, nil
}

// announce translates one engine event into its wire broadcast and log line.
func (t *Table) announce(playing []*Seat, state engine.GameState, ev engine.GameEvent, timedOut bool) {
	switch e := ev.(type) {
	case engine.PlayerActionEvent:
		t.logger.Info("action", "hand", state.HandNum, "player", e.Name,
			"action", e.Action.String(), "amount", e.Amount, "pot", e.PotAfter)
		t.broadcast(playing, protocol.PlayerActed{
			HandNum:  state.HandNum,
			Seat:     e.Seat,
			Name:     e.Name,
			Action:   e.Action.String(),
			Amount:   e.Amount,
			Phase:    e.Phase.String(),
			PotAfter: e.PotAfter,
			Timeout:  timedOut,
		})
	case engine.StreetChangeEvent:
		t.logger.Info("street", "hand", state.HandNum, "phase", e.Phase.String(),
			"board", formatCards(e.Community))
		t.broadcast(playing, protocol.StreetDealt{
			HandNum: state.HandNum,
			Phase:   e.Phase.String(),
			Board:   e.Community,
		})
	case engine.HandEndEvent:
		// The settlement broadcast happens after stacks are written back.
	}
}

// settle writes the final stacks to the seats and broadcasts the result.
func (t *Table) settle(playing []*Seat, state engine.GameState) {
	t.mu.Lock()
	for i, s := range playing {
		s.Stack = state.Players[i].Stack
	}
	t.mu.Unlock()

	stacks := make([]protocol.SeatInfo, len(playing))
	for i, s := range playing {
		stacks[i] = protocol.SeatInfo{Seat: i, Name: s.Name, Stack: s.Stack}
	}
	t.broadcast(playing, protocol.HandResult{
		HandNum:    state.HandNum,
		Settlement: state.Settlement,
		Stacks:     stacks,
	})

	for _, line := range HandSummary(state) {
		t.logger.Info(line, "hand", state.HandNum)
	}
}

func (t *Table) send(seat *Seat, msg any) {
	if seat.client == nil {
		return
	}
	if err := seat.client.Send(msg); err != nil {
		t.logger.Warn("send failed", "player", seat.Name, "err", err)
	}
}

func (t *Table) broadcast(playing []*Seat, msg any) {
	for _, s := range playing {
		t.send(s, msg)
	}
}

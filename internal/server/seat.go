package server

import (
	"context"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/holdemcore/internal/protocol"
)

// Client receives server-to-client messages for a seat. The websocket
// connection implements it; tests substitute an in-memory recorder.
type Client interface {
	Send(msg any) error
}

// Seat is one occupied position at a table. The stack persists across hands;
// during a hand the engine owns the authoritative copy and the table writes
// the result back at settlement.
type Seat struct {
	Num    int
	Name   string
	Stack  int
	client Client
	acts   chan protocol.Act
}

func newSeat(num int, name string, stack int, c Client) *Seat {
	return &Seat{
		Num:    num,
		Name:   name,
		Stack:  stack,
		client: c,
		acts:   make(chan protocol.Act, 1),
	}
}

// submit hands a client action to whatever request is waiting on this seat.
// A stale or duplicate submission is dropped rather than queued, so it can
// never answer a later request.
func (s *Seat) submit(act protocol.Act) bool {
	select {
	case s.acts <- act:
		return true
	default:
		return false
	}
}

// awaitAct blocks until the seat's client answers, the timeout fires, or the
// context is canceled. The clock is injected so tests can drive the timeout.
func (s *Seat) awaitAct(ctx context.Context, clock quartz.Clock, timeout time.Duration) (protocol.Act, bool) {
	timer := clock.NewTimer(timeout)
	defer timer.Stop()

	select {
	case act := <-s.acts:
		return act, true
	case <-timer.C:
		return protocol.Act{}, false
	case <-ctx.Done():
		return protocol.Act{}, false
	}
}

// drain discards any submission left over from a previous request.
func (s *Seat) drain() {
	select {
	case <-s.acts:
	default:
	}
}

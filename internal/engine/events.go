package engine

import (
	"time"

	"github.com/lox/holdemcore/holdem"
)

// EventType identifies a game event.
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeStreetChange EventType = "street_change"
	EventTypePlayerAction EventType = "player_action"
	EventTypeHandEnd      EventType = "hand_end"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is something that happened during a hand, for logging and
// spectators. Events are derived from state transitions by the hosting
// layer; the engine itself only produces states.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartEvent marks a new hand being dealt.
type HandStartEvent struct {
	HandNum    int
	Seats      []string
	SmallBlind int
	BigBlind   int
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent records a validated action.
type PlayerActionEvent struct {
	Seat      int
	Name      string
	Action    Action
	Amount    int
	Phase     Phase
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent marks new community cards being revealed.
type StreetChangeEvent struct {
	Phase     Phase
	Community []holdem.Card
	timestamp time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent carries the settlement of a finished hand.
type HandEndEvent struct {
	HandNum    int
	Settlement *Settlement
	timestamp  time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

// TransitionEvents derives the events implied by applying one action: the
// action itself, any street change it triggered, and the hand ending.
func TransitionEvents(before, after GameState, seat int, action Action, amount int) []GameEvent {
	now := time.Now()
	events := []GameEvent{PlayerActionEvent{
		Seat:      seat,
		Name:      before.Players[seat].Name,
		Action:    action,
		Amount:    amount,
		Phase:     before.Phase,
		PotAfter:  after.PotTotal(),
		timestamp: now,
	}}

	if after.Phase != before.Phase && !after.Phase.Terminal() {
		events = append(events, StreetChangeEvent{
			Phase:     after.Phase,
			Community: append([]holdem.Card(nil), after.Community...),
			timestamp: now,
		})
	}

	if after.Phase.Terminal() && !before.Phase.Terminal() {
		events = append(events, HandEndEvent{
			HandNum:    after.HandNum,
			Settlement: after.Settlement,
			timestamp:  now,
		})
	}

	return events
}

// NewHandStartEvent builds the event announcing a freshly dealt hand.
func NewHandStartEvent(s GameState) HandStartEvent {
	seats := make([]string, len(s.Players))
	for i, p := range s.Players {
		seats[i] = p.Name
	}
	return HandStartEvent{
		HandNum:    s.HandNum,
		Seats:      seats,
		SmallBlind: s.SmallBlind,
		BigBlind:   s.BigBlind,
		timestamp:  time.Now(),
	}
}

// Package protocol defines the JSON wire messages exchanged between the
// server and its clients. Every frame is an Envelope carrying a type tag and
// the message payload; game data reuses the engine's serializable views so
// the wire format and the snapshot format never drift apart.
package protocol

import (
	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/internal/engine"
)

// MessageType tags an envelope's payload.
type MessageType string

const (
	// Client -> Server
	TypeJoin MessageType = "join"
	TypeAct  MessageType = "act"

	// Server -> Client
	TypeWelcome       MessageType = "welcome"
	TypeHandStart     MessageType = "hand_start"
	TypeActionRequest MessageType = "action_request"
	TypeTableUpdate   MessageType = "table_update"
	TypePlayerActed   MessageType = "player_acted"
	TypeStreetDealt   MessageType = "street_dealt"
	TypeHandResult    MessageType = "hand_result"
	TypeError         MessageType = "error"
)

// Join announces a client and the seat name it wants to play under. Table
// is optional; the server defaults to its first configured table.
type Join struct {
	Name  string `json:"name"`
	Table string `json:"table,omitempty"`
}

// Act answers an ActionRequest. Amount is the raise-to total and is ignored
// for everything but a raise.
type Act struct {
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

// Welcome confirms a join and assigns the seat.
type Welcome struct {
	Seat  int    `json:"seat"`
	Name  string `json:"name"`
	Table string `json:"table"`
}

// HandStart is sent to each player when a hand is dealt. HoleCards are the
// recipient's own; nobody else's cards travel before showdown.
type HandStart struct {
	HandNum    int           `json:"hand_num"`
	Seat       int           `json:"seat"`
	HoleCards  []holdem.Card `json:"hole_cards"`
	Dealer     int           `json:"dealer"`
	SmallBlind int           `json:"small_blind"`
	BigBlind   int           `json:"big_blind"`
	Seats      []SeatInfo    `json:"seats"`
}

// SeatInfo is the public identity and stack of one seat.
type SeatInfo struct {
	Seat  int    `json:"seat"`
	Name  string `json:"name"`
	Stack int    `json:"stack"`
}

// ActionRequest asks the recipient to act. Legal carries the engine's exact
// action set and bounds; TimeoutMs is how long the server will wait before
// folding for them.
type ActionRequest struct {
	HandNum   int                   `json:"hand_num"`
	Seat      int                   `json:"seat"`
	ToCall    int                   `json:"to_call"`
	PotTotal  int                   `json:"pot_total"`
	Legal     []engine.ActionOption `json:"legal"`
	TimeoutMs int                   `json:"timeout_ms"`
}

// TableUpdate broadcasts the public view of the table.
type TableUpdate struct {
	Snapshot engine.Snapshot `json:"snapshot"`
}

// PlayerActed broadcasts a validated action.
type PlayerActed struct {
	HandNum  int    `json:"hand_num"`
	Seat     int    `json:"seat"`
	Name     string `json:"name"`
	Action   string `json:"action"`
	Amount   int    `json:"amount,omitempty"`
	Phase    string `json:"phase"`
	PotAfter int    `json:"pot_after"`
	Timeout  bool   `json:"timeout,omitempty"` // true when the server folded for them
}

// StreetDealt broadcasts new community cards.
type StreetDealt struct {
	HandNum int           `json:"hand_num"`
	Phase   string        `json:"phase"`
	Board   []holdem.Card `json:"board"`
}

// HandResult broadcasts the settlement of a finished hand.
type HandResult struct {
	HandNum    int                `json:"hand_num"`
	Settlement *engine.Settlement `json:"settlement"`
	Stacks     []SeatInfo         `json:"stacks"`
}

// Error reports a rejected submission or a protocol fault. Recoverable is
// true when the client may simply resubmit (e.g. an illegal action).
type Error struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable,omitempty"`
}

const (
	CodeInvalidAction = "invalid_action"
	CodeNotYourTurn   = "not_your_turn"
	CodeBadMessage    = "bad_message"
	CodeTableFull     = "table_full"
	CodeInternal      = "internal"
)

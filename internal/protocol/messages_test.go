package protocol

import (
	"testing"

	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/internal/engine"
)

func roundTrip(t *testing.T, in any, out any) {
	t.Helper()
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	env, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := env.Unmarshal(out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func TestJoinRoundTrip(t *testing.T) {
	t.Parallel()

	var decoded Join
	roundTrip(t, Join{Name: "alice"}, &decoded)
	if decoded.Name != "alice" {
		t.Errorf("name: got %q, want %q", decoded.Name, "alice")
	}
}

func TestActRoundTrip(t *testing.T) {
	t.Parallel()

	var decoded Act
	roundTrip(t, Act{Action: "raise", Amount: 60}, &decoded)
	if decoded.Action != "raise" || decoded.Amount != 60 {
		t.Errorf("got %+v", decoded)
	}
}

func TestHandStartRoundTrip(t *testing.T) {
	t.Parallel()

	cards, err := holdem.ParseCards("As", "Kh")
	if err != nil {
		t.Fatal(err)
	}
	original := HandStart{
		HandNum:    12,
		Seat:       2,
		HoleCards:  cards,
		Dealer:     0,
		SmallBlind: 5,
		BigBlind:   10,
		Seats: []SeatInfo{
			{Seat: 0, Name: "alice", Stack: 1000},
			{Seat: 1, Name: "bob", Stack: 950},
			{Seat: 2, Name: "carol", Stack: 1200},
		},
	}

	var decoded HandStart
	roundTrip(t, original, &decoded)

	if decoded.HandNum != 12 || decoded.Seat != 2 {
		t.Errorf("got %+v", decoded)
	}
	if len(decoded.HoleCards) != 2 || decoded.HoleCards[0].String() != "As" {
		t.Errorf("hole cards: got %v", decoded.HoleCards)
	}
	if len(decoded.Seats) != 3 || decoded.Seats[2].Name != "carol" {
		t.Errorf("seats: got %v", decoded.Seats)
	}
}

func TestActionRequestRoundTrip(t *testing.T) {
	t.Parallel()

	original := ActionRequest{
		HandNum:  3,
		Seat:     1,
		ToCall:   20,
		PotTotal: 35,
		Legal: []engine.ActionOption{
			{Action: engine.Fold},
			{Action: engine.Call, Min: 20, Max: 20},
			{Action: engine.Raise, Min: 40, Max: 980},
		},
		TimeoutMs: 15000,
	}

	var decoded ActionRequest
	roundTrip(t, original, &decoded)

	if len(decoded.Legal) != 3 {
		t.Fatalf("legal: got %v", decoded.Legal)
	}
	if decoded.Legal[2].Action != engine.Raise || decoded.Legal[2].Min != 40 {
		t.Errorf("raise bounds: got %+v", decoded.Legal[2])
	}
	if decoded.TimeoutMs != 15000 {
		t.Errorf("timeout: got %d", decoded.TimeoutMs)
	}
}

func TestErrorRoundTrip(t *testing.T) {
	t.Parallel()

	var decoded Error
	roundTrip(t, Error{Code: CodeInvalidAction, Message: "raise below minimum", Recoverable: true}, &decoded)
	if decoded.Code != CodeInvalidAction || !decoded.Recoverable {
		t.Errorf("got %+v", decoded)
	}
}

func TestDecodeRejectsUntaggedFrame(t *testing.T) {
	t.Parallel()

	if _, err := Decode([]byte(`{"payload":{}}`)); err == nil {
		t.Error("expected error for missing type")
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed frame")
	}
}

func TestUnmarshalRejectsWrongType(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Join{Name: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	env, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	var act Act
	if err := env.Unmarshal(&act); err == nil {
		t.Error("expected type mismatch error")
	}
}

func TestMarshalRejectsUnknownMessage(t *testing.T) {
	t.Parallel()

	if _, err := Marshal(struct{ X int }{1}); err == nil {
		t.Error("expected error for unregistered message type")
	}
}

package holdem

import (
	"encoding/json"
	"testing"
)

func TestCardRankSuit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str   string
		rank  uint8
		suit  uint8
		value int
	}{
		{"2c", Two, Clubs, 2},
		{"9d", Nine, Diamonds, 9},
		{"Th", Ten, Hearts, 10},
		{"Js", Jack, Spades, 11},
		{"Qc", Queen, Clubs, 12},
		{"Kd", King, Diamonds, 13},
		{"As", Ace, Spades, 14},
	}

	for _, tc := range tests {
		t.Run(tc.str, func(t *testing.T) {
			c, err := ParseCard(tc.str)
			if err != nil {
				t.Fatalf("ParseCard(%q): %v", tc.str, err)
			}
			if c.Rank() != tc.rank {
				t.Errorf("Rank() = %d, want %d", c.Rank(), tc.rank)
			}
			if c.Suit() != tc.suit {
				t.Errorf("Suit() = %d, want %d", c.Suit(), tc.suit)
			}
			if c.RankValue() != tc.value {
				t.Errorf("RankValue() = %d, want %d", c.RankValue(), tc.value)
			}
			if c.String() != tc.str {
				t.Errorf("String() = %q, want %q", c.String(), tc.str)
			}
		})
	}
}

func TestParseCardInvalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "A", "Asd", "1s", "Ax"} {
		if _, err := ParseCard(s); err == nil {
			t.Errorf("ParseCard(%q) should fail", s)
		}
	}
}

func TestCardJSONRoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := ParseCard("Qh")
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"Qh"` {
		t.Errorf("marshal = %s, want \"Qh\"", data)
	}

	var back Card
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != c {
		t.Errorf("round trip changed card: %v != %v", back, c)
	}
}

func TestHandOperations(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("As", "Kh", "Qd", "Jc")
	if err != nil {
		t.Fatal(err)
	}

	h := NewHand(cards...)
	if h.Count() != 4 {
		t.Errorf("Count() = %d, want 4", h.Count())
	}
	for _, c := range cards {
		if !h.Has(c) {
			t.Errorf("hand should contain %v", c)
		}
	}

	// Duplicate add is a no-op
	if h.Add(cards[0]).Count() != 4 {
		t.Error("adding a duplicate card should not grow the hand")
	}

	got := h.Cards()
	if len(got) != 4 {
		t.Fatalf("Cards() returned %d cards", len(got))
	}
	back := NewHand(got...)
	if back != h {
		t.Error("Cards() lost information")
	}
}

func TestSuitMask(t *testing.T) {
	t.Parallel()

	cards, _ := ParseCards("2h", "5h", "Ah", "2c")
	h := NewHand(cards...)

	hearts := h.SuitMask(Hearts)
	want := uint16(1<<Two | 1<<Five | 1<<Ace)
	if hearts != want {
		t.Errorf("SuitMask(Hearts) = %013b, want %013b", hearts, want)
	}
	if h.SuitMask(Spades) != 0 {
		t.Error("SuitMask(Spades) should be empty")
	}
	if h.RankMask() != want|1<<Two {
		t.Errorf("RankMask() = %013b", h.RankMask())
	}
}

package holdem

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(1)))
	if d.Remaining() != 52 {
		t.Fatalf("Remaining() = %d, want 52", d.Remaining())
	}

	seen := NewHand(d.Cards()...)
	if seen.Count() != 52 {
		t.Errorf("deck contains duplicates: %d unique cards", seen.Count())
	}
}

func TestDealIsImmutable(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(7)))

	drawn, rest, err := d.Deal(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(drawn) != 2 {
		t.Fatalf("dealt %d cards, want 2", len(drawn))
	}
	if rest.Remaining() != 50 {
		t.Errorf("remaining deck has %d cards, want 50", rest.Remaining())
	}

	// Original deck unchanged; dealing again yields the same cards.
	if d.Remaining() != 52 {
		t.Errorf("original deck mutated: %d cards", d.Remaining())
	}
	again, _, err := d.Deal(2)
	if err != nil {
		t.Fatal(err)
	}
	if again[0] != drawn[0] || again[1] != drawn[1] {
		t.Error("dealing from the same deck twice gave different cards")
	}
}

func TestDealTooMany(t *testing.T) {
	t.Parallel()

	d := DeckFromCards(NewCard(Ace, Spades))
	if _, _, err := d.Deal(2); err == nil {
		t.Error("dealing past the end should fail")
	}
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	t.Parallel()

	a := NewDeck(rand.New(rand.NewSource(42)))
	b := NewDeck(rand.New(rand.NewSource(42)))

	ca, cb := a.Cards(), b.Cards()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("same seed produced different decks at index %d", i)
		}
	}
}

func TestDeckJSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(3)))
	_, d, err := d.Deal(5)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}

	var back Deck
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Remaining() != d.Remaining() {
		t.Fatalf("round trip changed size: %d != %d", back.Remaining(), d.Remaining())
	}
	orig, restored := d.Cards(), back.Cards()
	for i := range orig {
		if orig[i] != restored[i] {
			t.Fatalf("round trip changed order at %d: %v != %v", i, restored[i], orig[i])
		}
	}
}

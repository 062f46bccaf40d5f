package holdem

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// Deck is an immutable, ordered sequence of cards. Dealing returns the drawn
// cards together with the remaining deck as a new value; the original deck is
// never modified, so past game snapshots stay valid.
type Deck struct {
	cards []Card
}

// NewDeck creates a full 52-card deck shuffled with the supplied RNG.
// The RNG is explicit so shuffles are reproducible in tests.
func NewDeck(rng *rand.Rand) Deck {
	cards := make([]Card, 0, 52)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	// Fisher-Yates
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return Deck{cards: cards}
}

// DeckFromCards builds a deck with a fixed order, for deterministic tests.
func DeckFromCards(cards ...Card) Deck {
	dup := make([]Card, len(cards))
	copy(dup, cards)
	return Deck{cards: dup}
}

// Deal removes n cards from the front and returns them along with the
// remaining deck. The receiver is unchanged. Returns an error when fewer
// than n cards remain.
func (d Deck) Deal(n int) ([]Card, Deck, error) {
	if n < 0 || n > len(d.cards) {
		return nil, d, fmt.Errorf("holdem: cannot deal %d cards, %d remaining", n, len(d.cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	return drawn, Deck{cards: d.cards[n:]}, nil
}

// Remaining returns the number of cards left in the deck.
func (d Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in order.
func (d Deck) Cards() []Card {
	dup := make([]Card, len(d.cards))
	copy(dup, d.cards)
	return dup
}

// MarshalJSON encodes the deck as an array of card strings so a stored
// snapshot can be reconstructed bit for bit.
func (d Deck) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(d.cards)*5+2)
	out = append(out, '[')
	for i, c := range d.cards {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '"')
		out = append(out, c.String()...)
		out = append(out, '"')
	}
	out = append(out, ']')
	return out, nil
}

// UnmarshalJSON decodes a deck encoded by MarshalJSON.
func (d *Deck) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err != nil {
		return err
	}
	cards := make([]Card, 0, len(strs))
	for _, s := range strs {
		c, err := ParseCard(s)
		if err != nil {
			return err
		}
		cards = append(cards, c)
	}
	d.cards = cards
	return nil
}

package holdem

import (
	"fmt"
	"math/bits"
)

// Card is a single playing card, stored as one bit in a 64-bit word.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs], rank bit 0 = deuce.
// The representation makes hand evaluation a handful of mask operations.
type Card uint64

// Hand is a set of cards: multiple bits set in the same 64-bit layout.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for deuce through ace)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const (
	suitSize = 13
	rankBits = 0x1FFF // 13 rank bits per suit
)

var (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard creates a card from a rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*suitSize + rank)
}

// Rank returns the rank of the card (0-12).
func (c Card) Rank() uint8 {
	pos := c.bitPosition()
	if pos == 255 {
		return 255
	}
	return pos % suitSize
}

// Suit returns the suit of the card (0-3).
func (c Card) Suit() uint8 {
	pos := c.bitPosition()
	if pos == 255 {
		return 255
	}
	return pos / suitSize
}

// RankValue returns the conventional rank value, 2 through 14 where 14 is the ace.
func (c Card) RankValue() int {
	r := c.Rank()
	if r > 12 {
		return 0
	}
	return int(r) + 2
}

func (c Card) bitPosition() uint8 {
	if c == 0 || bits.OnesCount64(uint64(c)) != 1 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// String returns the two-character form, e.g. "As" or "Td".
func (c Card) String() string {
	rank := c.Rank()
	suit := c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(rankChars[rank]) + string(suitChars[suit])
}

// MarshalText encodes the card as its two-character form for JSON and friends.
func (c Card) MarshalText() ([]byte, error) {
	if c.Rank() > 12 {
		return nil, fmt.Errorf("holdem: cannot marshal invalid card %#x", uint64(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card from its two-character form.
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// ParseCard parses a string like "As" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("holdem: invalid card string %q", s)
	}

	var rank uint8
	switch s[0] {
	case '2':
		rank = Two
	case '3':
		rank = Three
	case '4':
		rank = Four
	case '5':
		rank = Five
	case '6':
		rank = Six
	case '7':
		rank = Seven
	case '8':
		rank = Eight
	case '9':
		rank = Nine
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return 0, fmt.Errorf("holdem: invalid rank %q", s[0])
	}

	var suit uint8
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("holdem: invalid suit %q", s[1])
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a sequence of two-character cards, e.g. "As", "Kh".
func ParseCards(strs ...string) ([]Card, error) {
	cards := make([]Card, 0, len(strs))
	for _, s := range strs {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// NewHand creates a hand from multiple cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// Add returns the hand with c added.
func (h Hand) Add(c Card) Hand {
	return h | Hand(c)
}

// Has reports whether the hand contains the card.
func (h Hand) Has(c Card) bool {
	return h&Hand(c) != 0
}

// Count returns the number of cards in the hand.
func (h Hand) Count() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns the rank bits present for a single suit.
func (h Hand) SuitMask(suit uint8) uint16 {
	return uint16((h >> (suit * suitSize)) & rankBits)
}

// RankMask returns the union of rank bits across all suits.
func (h Hand) RankMask() uint16 {
	var mask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask |= h.SuitMask(suit)
	}
	return mask
}

// Cards returns the individual cards in the hand, lowest bit first.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Count())
	rest := uint64(h)
	for rest != 0 {
		low := rest & -rest
		cards = append(cards, Card(low))
		rest &^= low
	}
	return cards
}

func (h Hand) String() string {
	s := ""
	for i, c := range h.Cards() {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}

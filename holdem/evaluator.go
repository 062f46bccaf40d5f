package holdem

import (
	"fmt"
	"math/bits"
)

// Category enumerates hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Eval is the result of evaluating a 5-7 card hand.
//
// Ranks holds the ranks of the made component, most significant first; Kickers
// holds the remaining tie-break ranks in descending order. Both have a fixed
// length for a given category:
//
//	StraightFlush, Straight  Ranks[high]            no kickers
//	FourOfAKind              Ranks[quad]            1 kicker
//	FullHouse                Ranks[trips, pair]     no kickers
//	Flush                    Ranks[5 flush ranks]   no kickers
//	ThreeOfAKind             Ranks[trips]           2 kickers
//	TwoPair                  Ranks[high, low]       1 kicker
//	Pair                     Ranks[pair]            3 kickers
//	HighCard                 Ranks[high]            4 kickers
//
// BestFive is the winning 5-card subset in order of significance.
type Eval struct {
	Category Category
	Ranks    []uint8
	Kickers  []uint8
	BestFive []Card
}

// Score packs the evaluation into a single value with a total order: a
// stronger hand always has a strictly greater score, equal hands are equal.
func (e Eval) Score() uint32 {
	score := uint32(e.Category) << 20
	shift := 16
	for _, r := range e.Ranks {
		score |= uint32(r) << shift
		shift -= 4
	}
	for _, k := range e.Kickers {
		score |= uint32(k) << shift
		shift -= 4
	}
	return score
}

// Compare returns 1 if e beats o, -1 if o beats e, 0 for a tie.
func (e Eval) Compare(o Eval) int {
	es, os := e.Score(), o.Score()
	switch {
	case es > os:
		return 1
	case es < os:
		return -1
	default:
		return 0
	}
}

var (
	rankWords  = [13]string{"Deuce", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}
	rankPlural = [13]string{"Deuces", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights", "Nines", "Tens", "Jacks", "Queens", "Kings", "Aces"}
)

// String describes the hand, e.g. "Full House, Kings full of Fours".
func (e Eval) String() string {
	switch e.Category {
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", rankWords[e.Ranks[0]])
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", rankPlural[e.Ranks[0]])
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", rankPlural[e.Ranks[0]], rankPlural[e.Ranks[1]])
	case Flush:
		return fmt.Sprintf("Flush, %s high", rankWords[e.Ranks[0]])
	case Straight:
		return fmt.Sprintf("Straight, %s high", rankWords[e.Ranks[0]])
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", rankPlural[e.Ranks[0]])
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", rankPlural[e.Ranks[0]], rankPlural[e.Ranks[1]])
	case Pair:
		return fmt.Sprintf("Pair of %s", rankPlural[e.Ranks[0]])
	default:
		return fmt.Sprintf("High Card, %s", rankWords[e.Ranks[0]])
	}
}

// Evaluate finds the best 5-card hand within 5 to 7 cards. The same input
// always yields the same result, including the exact BestFive cards.
func Evaluate(cards []Card) (Eval, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return Eval{}, fmt.Errorf("holdem: evaluate needs 5-7 cards, got %d", len(cards))
	}
	hand := NewHand(cards...)
	if hand.Count() != len(cards) {
		return Eval{}, fmt.Errorf("holdem: duplicate or invalid card in %v", cards)
	}

	var suitMasks [4]uint16
	var rankMask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask := hand.SuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
	}

	// Flush check first. With at most 7 cards only one suit can hold 5+.
	for suit := uint8(0); suit < 4; suit++ {
		mask := suitMasks[suit]
		if bits.OnesCount16(mask) < 5 {
			continue
		}
		if high := straightHigh(mask); high > 0 {
			return Eval{
				Category: StraightFlush,
				Ranks:    []uint8{high},
				BestFive: straightCards(hand, high, int8(suit)),
			}, nil
		}
		top := topRanks(mask, 5)
		best := make([]Card, 5)
		for i, r := range top {
			best[i] = NewCard(r, suit)
		}
		return Eval{Category: Flush, Ranks: top, BestFive: best}, nil
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		q := uint8(quad)
		kicker := topRanksExcluding(rankMask, 1, q)
		best := cardsOfRank(hand, q, 4)
		best = append(best, cardOfRank(hand, kicker[0]))
		return Eval{Category: FourOfAKind, Ranks: []uint8{q}, Kickers: kicker, BestFive: best}, nil
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		t := uint8(trip)
		// A second trips or any pair fills the house.
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestRank(pairCandidates); pair >= 0 {
			p := uint8(pair)
			best := cardsOfRank(hand, t, 3)
			best = append(best, cardsOfRank(hand, p, 2)...)
			return Eval{Category: FullHouse, Ranks: []uint8{t, p}, BestFive: best}, nil
		}
	}

	if high := straightHigh(rankMask); high > 0 {
		return Eval{
			Category: Straight,
			Ranks:    []uint8{high},
			BestFive: straightCards(hand, high, -1),
		}, nil
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		t := uint8(trip)
		kickers := topRanksExcluding(rankMask, 2, t)
		best := cardsOfRank(hand, t, 3)
		for _, k := range kickers {
			best = append(best, cardOfRank(hand, k))
		}
		return Eval{Category: ThreeOfAKind, Ranks: []uint8{t}, Kickers: kickers, BestFive: best}, nil
	}

	if p1 := highestRank(pairsMask); p1 >= 0 {
		hi := uint8(p1)
		if p2 := highestRank(pairsMask &^ (1 << p1)); p2 >= 0 {
			lo := uint8(p2)
			kicker := topRanksExcluding(rankMask, 1, hi, lo)
			best := cardsOfRank(hand, hi, 2)
			best = append(best, cardsOfRank(hand, lo, 2)...)
			best = append(best, cardOfRank(hand, kicker[0]))
			return Eval{Category: TwoPair, Ranks: []uint8{hi, lo}, Kickers: kicker, BestFive: best}, nil
		}
		kickers := topRanksExcluding(rankMask, 3, hi)
		best := cardsOfRank(hand, hi, 2)
		for _, k := range kickers {
			best = append(best, cardOfRank(hand, k))
		}
		return Eval{Category: Pair, Ranks: []uint8{hi}, Kickers: kickers, BestFive: best}, nil
	}

	top := topRanks(rankMask, 5)
	best := make([]Card, 5)
	for i, r := range top {
		best[i] = cardOfRank(hand, r)
	}
	return Eval{Category: HighCard, Ranks: top[:1], Kickers: top[1:], BestFive: best}, nil
}

// straightHigh returns the high rank of the best straight in the rank mask,
// or 0 if there is none. The wheel (A-2-3-4-5) reports Five as its high card.
func straightHigh(mask uint16) uint8 {
	const wheel = 0x100F // ace plus 2-3-4-5
	mask &= rankBits

	// Bitwise cascade finds five consecutive set bits in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4
	}

	if mask&wheel == wheel {
		return Five
	}
	return 0
}

func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// topRanks returns the n highest ranks in the mask, descending.
func topRanks(mask uint16, n int) []uint8 {
	ranks := make([]uint8, 0, n)
	for len(ranks) < n && mask != 0 {
		top := uint8(bits.Len16(mask) - 1)
		ranks = append(ranks, top)
		mask &^= 1 << top
	}
	return ranks
}

func topRanksExcluding(mask uint16, n int, exclude ...uint8) []uint8 {
	for _, r := range exclude {
		mask &^= 1 << r
	}
	return topRanks(mask, n)
}

// cardsOfRank picks n cards of the given rank, in a fixed suit order so that
// identical inputs produce identical best-five hands.
func cardsOfRank(hand Hand, rank uint8, n int) []Card {
	cards := make([]Card, 0, n)
	for suit := uint8(0); suit < 4 && len(cards) < n; suit++ {
		c := NewCard(rank, suit)
		if hand.Has(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

func cardOfRank(hand Hand, rank uint8) Card {
	for suit := uint8(0); suit < 4; suit++ {
		c := NewCard(rank, suit)
		if hand.Has(c) {
			return c
		}
	}
	return 0
}

// straightCards picks one card per rank of the straight ending at high,
// restricted to a single suit when suit >= 0. Cards come back high first;
// the wheel ends with the ace.
func straightCards(hand Hand, high uint8, suit int8) []Card {
	ranks := make([]uint8, 0, 5)
	if high == Five {
		ranks = append(ranks, Five, Four, Three, Two, Ace)
	} else {
		for i := uint8(0); i < 5; i++ {
			ranks = append(ranks, high-i)
		}
	}

	cards := make([]Card, 0, 5)
	for _, r := range ranks {
		if suit >= 0 {
			cards = append(cards, NewCard(r, uint8(suit)))
		} else {
			cards = append(cards, cardOfRank(hand, r))
		}
	}
	return cards
}

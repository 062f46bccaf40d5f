package engine

import (
	"fmt"
	"math/rand"

	"github.com/lox/holdemcore/holdem"
)

// HandOption configures a new hand.
type HandOption func(*handConfig)

type handConfig struct {
	stacks     []int
	startStack int
	deck       *holdem.Deck
	handNum    int
}

// WithStacks sets an individual starting stack per seat.
func WithStacks(stacks []int) HandOption {
	return func(cfg *handConfig) {
		cfg.stacks = stacks
	}
}

// WithStartingStack sets a uniform starting stack (default 1000).
func WithStartingStack(chips int) HandOption {
	return func(cfg *handConfig) {
		cfg.startStack = chips
	}
}

// WithDeck uses a fixed deck instead of shuffling with the RNG, for
// deterministic tests.
func WithDeck(deck holdem.Deck) HandOption {
	return func(cfg *handConfig) {
		cfg.deck = &deck
	}
}

// WithHandNum tags the hand with a sequence number.
func WithHandNum(n int) HandOption {
	return func(cfg *handConfig) {
		cfg.handNum = n
	}
}

// NewHand creates the initial state of a hand: fresh shuffled deck, hole
// cards dealt, blinds posted as forced contributions that bypass turn
// legality, and the first player to act selected. The RNG is explicit so
// shuffles are reproducible; it is unused when WithDeck supplies a deck.
//
// Heads-up, the dealer posts the small blind and acts first preflop.
// Otherwise the blinds sit left of the dealer and the seat after the big
// blind opens the action.
func NewHand(rng *rand.Rand, names []string, dealer, smallBlind, bigBlind int, opts ...HandOption) (GameState, error) {
	if len(names) < 2 {
		return GameState{}, fmt.Errorf("engine: a hand needs at least 2 players, got %d", len(names))
	}
	if dealer < 0 || dealer >= len(names) {
		return GameState{}, fmt.Errorf("engine: dealer seat %d out of range", dealer)
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		return GameState{}, fmt.Errorf("engine: invalid blinds %d/%d", smallBlind, bigBlind)
	}

	cfg := &handConfig{startStack: 1000}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.stacks != nil && len(cfg.stacks) != len(names) {
		return GameState{}, fmt.Errorf("engine: %d stacks for %d players", len(cfg.stacks), len(names))
	}

	players := make([]Player, len(names))
	for i, name := range names {
		chips := cfg.startStack
		if cfg.stacks != nil {
			chips = cfg.stacks[i]
		}
		if chips <= 0 {
			return GameState{}, fmt.Errorf("engine: seat %d has no chips", i)
		}
		players[i] = Player{Seat: i, Name: name, Stack: chips}
	}

	var deck holdem.Deck
	if cfg.deck != nil {
		deck = *cfg.deck
	} else {
		if rng == nil {
			return GameState{}, fmt.Errorf("engine: rng is required when no deck is supplied")
		}
		deck = holdem.NewDeck(rng)
	}

	s := GameState{
		HandNum:    cfg.handNum,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Dealer:     dealer,
		Phase:      Preflop,
		Players:    players,
		Deck:       deck,
		HighestBet: bigBlind,
		MinRaise:   bigBlind,
	}

	var sbSeat, bbSeat int
	if len(players) == 2 {
		sbSeat = dealer
		bbSeat = (dealer + 1) % 2
	} else {
		sbSeat = (dealer + 1) % len(players)
		bbSeat = (dealer + 2) % len(players)
	}
	postBlind(&s.Players[sbSeat], smallBlind)
	postBlind(&s.Players[bbSeat], bigBlind)

	for i := range s.Players {
		cards, rest, err := s.Deck.Deal(2)
		if err != nil {
			return GameState{}, fmt.Errorf("engine: dealing hole cards: %w", err)
		}
		s.Players[i].HoleCards = cards
		s.Deck = rest
	}

	s.Current = s.nextToAct((bbSeat + 1) % len(players))

	// Blinds can put everyone all-in before a single decision exists, e.g.
	// heads-up when both stacks fit inside the blinds. Run the streets out to
	// a settled showdown, the same as an all-in mid-hand.
	if s.Current == -1 {
		if err := s.advanceStreet(); err != nil {
			return GameState{}, err
		}
	}
	return s, nil
}

// postBlind commits a forced blind, capped at the player's stack. Blinds do
// not count as acting: the poster keeps the option to raise when the action
// returns to them unraised.
func postBlind(p *Player, blind int) {
	amount := min(blind, p.Stack)
	p.Stack -= amount
	p.Bet = amount
	p.Contributed = amount
	if p.Stack == 0 {
		p.Status = StatusAllIn
	}
}

package engine

// Apply validates one action and produces the successor state. The input
// state is never modified: on success a new snapshot is returned, on failure
// the typed error says why and the caller keeps using the old state.
//
// When the action closes the hand (a fold leaving one player, or the final
// call of the river) the returned state is terminal and carries a Settlement
// with the winners and updated stacks.
func Apply(s GameState, seat int, action Action, amount int) (GameState, error) {
	if s.Phase.Terminal() {
		return GameState{}, &InvalidActionError{Seat: seat, Action: action, Reason: "hand is already decided"}
	}
	if seat != s.Current {
		return GameState{}, &InvalidActionError{Seat: seat, Action: action, Reason: "not this seat's turn"}
	}

	var opt *ActionOption
	for _, o := range s.LegalActions() {
		if o.Action == action {
			opt = &o
			break
		}
	}
	if opt == nil {
		return GameState{}, &InvalidActionError{Seat: seat, Action: action, Reason: "action is not legal here"}
	}
	if action == Raise && (amount < opt.Min || amount > opt.Max) {
		return GameState{}, &InvalidActionError{Seat: seat, Action: action,
			Reason: "raise amount outside legal bounds"}
	}

	n := s.clone()
	p := &n.Players[seat]

	switch action {
	case Fold:
		p.Status = StatusFolded
		p.Acted = true

	case Check:
		p.Acted = true

	case Call:
		commit(p, s.HighestBet-p.Bet)
		p.Acted = true

	case Raise:
		commit(p, amount-p.Bet)
		delta := amount - n.HighestBet
		n.HighestBet = amount
		if delta >= n.MinRaise {
			n.MinRaise = delta
			reopenAction(&n, seat)
		}
		p.Acted = true

	case AllIn:
		total := p.Bet + p.Stack
		commit(p, p.Stack)
		if total > n.HighestBet {
			delta := total - n.HighestBet
			// Only a full-sized all-in raise re-opens the action.
			if delta >= n.MinRaise {
				n.MinRaise = delta
				reopenAction(&n, seat)
			}
			n.HighestBet = total
		}
		p.Acted = true
	}

	if err := n.progress(seat); err != nil {
		return GameState{}, err
	}

	if n.TotalChips() != s.TotalChips() {
		return GameState{}, &ChipConservationViolation{Expected: s.TotalChips(), Actual: n.TotalChips()}
	}
	return n, nil
}

// commit moves chips from the player's stack into their street bet and hand
// contribution, marking them all-in when the stack empties.
func commit(p *Player, chips int) {
	if chips > p.Stack {
		chips = p.Stack
	}
	p.Stack -= chips
	p.Bet += chips
	p.Contributed += chips
	if p.Stack == 0 && p.Status == StatusActive {
		p.Status = StatusAllIn
	}
}

// reopenAction clears the acted flag of everyone except the raiser, giving
// them the right to act (and raise) again.
func reopenAction(s *GameState, raiser int) {
	for i := range s.Players {
		if i != raiser && s.Players[i].CanAct() {
			s.Players[i].Acted = false
		}
	}
}

// progress decides what follows the applied action: hand over by fold-out,
// next street (possibly running out to showdown), or simply the next seat.
func (s *GameState) progress(lastSeat int) error {
	if s.nonFoldedCount() == 1 {
		s.collectStreet()
		s.Current = -1
		s.Phase = HandOver
		return s.settleUncontested()
	}

	if s.roundComplete() {
		return s.advanceStreet()
	}

	s.Current = s.nextToAct(lastSeat + 1)
	return nil
}

// collectStreet sweeps the street bets; contributions were already recorded
// when the chips moved.
func (s *GameState) collectStreet() {
	for i := range s.Players {
		s.Players[i].Bet = 0
		s.Players[i].Acted = false
	}
	s.HighestBet = 0
	s.MinRaise = s.BigBlind
}

// advanceStreet moves the hand to the next street, dealing community cards.
// When no further betting is possible (fewer than two players can act) the
// remaining streets run out immediately, ending in a settled showdown.
func (s *GameState) advanceStreet() error {
	for {
		s.collectStreet()

		var deal int
		switch s.Phase {
		case Preflop:
			s.Phase, deal = Flop, 3
		case Flop:
			s.Phase, deal = Turn, 1
		case Turn:
			s.Phase, deal = River, 1
		case River:
			s.Phase = Showdown
			s.Current = -1
			return s.settleShowdown()
		default:
			return &IllegalStateTransitionError{Phase: s.Phase, Reason: "no street follows"}
		}

		cards, rest, err := s.Deck.Deal(deal)
		if err != nil {
			return &IllegalStateTransitionError{Phase: s.Phase, Reason: err.Error()}
		}
		s.Community = append(s.Community, cards...)
		s.Deck = rest

		if s.canActCount() >= 2 {
			s.Current = s.nextToAct((s.Dealer + 1) % len(s.Players))
			return nil
		}
		// All-in runout: keep dealing.
	}
}

func (s *GameState) canActCount() int {
	n := 0
	for _, p := range s.Players {
		if p.CanAct() {
			n++
		}
	}
	return n
}

// Finish moves a settled showdown to its terminal resting state. It exists
// so presentation layers can distinguish "cards on their backs" from "hand
// archived"; the chips have already moved at settlement.
func Finish(s GameState) (GameState, error) {
	if s.Phase != Showdown {
		return GameState{}, &IllegalStateTransitionError{Phase: s.Phase, Reason: "only a showdown can be finished"}
	}
	if s.Settlement == nil {
		return GameState{}, &IllegalStateTransitionError{Phase: s.Phase, Reason: "showdown has no settlement"}
	}
	n := s.clone()
	n.Phase = HandOver
	return n, nil
}

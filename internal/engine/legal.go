package engine

// LegalActions computes the legal action set, with amount bounds, for the
// player currently to act. Raise bounds are raise-to totals; the minimum is
// the highest bet plus the min-raise increment (the last full raise, or the
// big blind when the street is unraised). A player facing a short all-in
// raise after already acting may call, fold or shove, but not raise: short
// all-ins do not re-open the action.
func (s GameState) LegalActions() []ActionOption {
	if s.Current < 0 || s.Current >= len(s.Players) || s.Phase.Terminal() {
		return nil
	}
	p := s.Players[s.Current]
	if !p.CanAct() {
		return nil
	}

	toCall := s.HighestBet - p.Bet
	opts := []ActionOption{{Action: Fold}}

	if toCall == 0 {
		opts = append(opts, ActionOption{Action: Check})
	} else if p.Stack > toCall {
		opts = append(opts, ActionOption{Action: Call, Min: toCall, Max: toCall})
	}

	if !p.Acted && p.Stack > toCall {
		minTo := s.HighestBet + s.MinRaise
		maxTo := p.Bet + p.Stack
		if maxTo >= minTo {
			opts = append(opts, ActionOption{Action: Raise, Min: minTo, Max: maxTo})
		}
	}

	if p.Stack > 0 {
		allIn := p.Bet + p.Stack
		opts = append(opts, ActionOption{Action: AllIn, Min: allIn, Max: allIn})
	}

	return opts
}

package engine

import "fmt"

// InvalidActionError rejects a player submission: wrong actor, an action
// outside the legal set, or an amount outside its bounds. The state it was
// applied to is untouched, so the caller can re-prompt the same actor.
type InvalidActionError struct {
	Seat   int
	Action Action
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %s by seat %d: %s", e.Action, e.Seat, e.Reason)
}

// IllegalStateTransitionError reports a transition attempted without its
// structural preconditions, e.g. settling a showdown with an incomplete
// board. It signals an integration bug, not a player mistake.
type IllegalStateTransitionError struct {
	Phase  Phase
	Reason string
}

func (e *IllegalStateTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %s: %s", e.Phase, e.Reason)
}

// ChipConservationViolation means applying a transition changed the total
// chips in play. The corrupted state is withheld and the hand must not
// progress further.
type ChipConservationViolation struct {
	Expected int
	Actual   int
}

func (e *ChipConservationViolation) Error() string {
	return fmt.Sprintf("chip conservation violated: expected %d chips in play, found %d", e.Expected, e.Actual)
}

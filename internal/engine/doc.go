// Package engine resolves a Texas Hold'em hand from deal to settlement.
//
// The main type is GameState, an immutable snapshot of a hand. A hand is
// created with NewHand and advanced one validated action at a time:
//
//	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
//	state, err := engine.NewHand(rng, []string{"alice", "bob", "carol"}, 0, 5, 10)
//	// ...
//	state, err = engine.Apply(state, state.Current, engine.Call, 0)
//	if state.IsComplete() {
//	    fmt.Println(state.Settlement.Winnings)
//	}
//
// Apply never mutates its input: invalid submissions return an
// InvalidActionError and the caller keeps the old state; valid ones return a
// brand-new snapshot. Blinds are posted as forced contributions at hand
// creation, streets advance when betting closes, and a terminal state
// carries a Settlement with per-layer winners, side pots included.
//
// The engine is a pure computation: no I/O, no clocks, no goroutines. The
// hosting layer is responsible for serializing concurrent submissions into
// ordered Apply calls; out-of-turn actions are rejected deterministically,
// which is the enforcement mechanism rather than a lock. Decision making
// (human or bot), persistence and transport all live outside, reading
// Snapshot/DecisionView and submitting through Apply.
package engine

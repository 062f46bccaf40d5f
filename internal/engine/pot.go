package engine

import "sort"

// PotLayer is one slice of the pot. Threshold is the per-player contribution
// level that closes the layer; Eligible lists the non-folded seats that
// contributed at least that much. Eligibility shrinks monotonically as
// thresholds rise, so each layer's eligible set is a subset of the one below.
type PotLayer struct {
	Amount    int   `json:"amount"`
	Threshold int   `json:"threshold"`
	Eligible  []int `json:"eligible"`
}

// potLayers partitions the players' total contributions into pot layers.
// The thresholds are the distinct contribution totals of non-folded players,
// ascending. Each layer holds every chip committed between the previous
// threshold and its own, including chips from players who later folded;
// folded players just cannot win them back. A bet nobody could match ends up
// in a top layer whose only eligible seat is the over-bettor, which returns
// the excess to them at settlement.
func potLayers(players []Player) []PotLayer {
	thresholds := make([]int, 0, len(players))
	seen := make(map[int]bool, len(players))
	for _, p := range players {
		if p.Status != StatusFolded && p.Contributed > 0 && !seen[p.Contributed] {
			seen[p.Contributed] = true
			thresholds = append(thresholds, p.Contributed)
		}
	}
	sort.Ints(thresholds)

	layers := make([]PotLayer, 0, len(thresholds))
	prev := 0
	for _, t := range thresholds {
		layer := PotLayer{Threshold: t}
		for _, p := range players {
			if over := min(p.Contributed, t) - min(p.Contributed, prev); over > 0 {
				layer.Amount += over
			}
			if p.Status != StatusFolded && p.Contributed >= t {
				layer.Eligible = append(layer.Eligible, p.Seat)
			}
		}
		if layer.Amount > 0 {
			layers = append(layers, layer)
		}
		prev = t
	}

	// A folder can never have outspent the top remaining contribution, but
	// every chip must land in a layer regardless.
	if len(layers) > 0 {
		for _, p := range players {
			if p.Contributed > prev {
				layers[len(layers)-1].Amount += p.Contributed - prev
			}
		}
	}

	return layers
}

// potTotal is the number of chips committed to the hand so far.
func potTotal(players []Player) int {
	total := 0
	for _, p := range players {
		total += p.Contributed
	}
	return total
}

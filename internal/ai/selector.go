package ai

import (
	"math/rand"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/board"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
)

// Selector picks chess-mode destinations by weighted random draw. With a
// fixed seed and fixed candidate order the choice sequence is fully
// deterministic.
type Selector struct {
	weights       WeightSet
	boardIdx      *board.Index
	allowStacking bool
	rng           *rand.Rand
}

// NewSelector creates a selector. boardIdx bounds candidate legality and
// may be nil for an unbounded board; rng must not be shared with other
// consumers if reproducibility matters.
func NewSelector(weights WeightSet, boardIdx *board.Index, allowStacking bool, rng *rand.Rand) *Selector {
	return &Selector{
		weights:       weights,
		boardIdx:      boardIdx,
		allowStacking: allowStacking,
		rng:           rng,
	}
}

type candidate struct {
	coord hex.Coord
	class Classification
}

// ChooseMove returns a weighted-random legal destination for the agent, or
// false when every candidate is reserved or off the board. Candidates are
// the agent's six neighbors plus its current tile ("stay"), classified
// relative to targetCoord.
func (s *Selector) ChooseMove(a *agent.Agent, targetCoord hex.Coord, reserved *board.Reservations) (hex.Coord, bool) {
	candidates := s.enumerate(a.Pos, targetCoord)
	if len(candidates) == 0 {
		return hex.Coord{}, false
	}

	eligible := make([]candidate, 0, len(candidates))
	total := 0
	for _, c := range candidates {
		if reserved != nil && reserved.Reserved(c.coord) && !s.allowStacking {
			continue
		}
		eligible = append(eligible, c)
		total += s.weights.Weight(a.Type, c.class)
	}

	if total == 0 {
		if s.allowStacking {
			// Degenerate weights: fall back to a uniform draw.
			return candidates[s.rng.Intn(len(candidates))].coord, true
		}
		return hex.Coord{}, false
	}

	// Cumulative weighted draw; enumeration order breaks ties.
	roll := s.rng.Intn(total)
	cumulative := 0
	for _, c := range eligible {
		cumulative += s.weights.Weight(a.Type, c.class)
		if roll < cumulative {
			return c.coord, true
		}
	}
	return eligible[len(eligible)-1].coord, true
}

// enumerate builds the candidate set: the current tile first, then the six
// neighbors in canonical direction order, with distance classification
// computed across the whole set.
func (s *Selector) enumerate(pos, target hex.Coord) []candidate {
	coords := make([]hex.Coord, 0, 7)
	dirs := make([]int, 0, 7)

	coords = append(coords, pos)
	dirs = append(dirs, -1)
	for i, n := range pos.Neighbors() {
		if s.boardIdx != nil && !s.boardIdx.InBounds(n) {
			continue
		}
		coords = append(coords, n)
		dirs = append(dirs, i)
	}

	minDist, maxDist := coords[0].Distance(target), coords[0].Distance(target)
	for _, c := range coords[1:] {
		d := c.Distance(target)
		if d < minDist {
			minDist = d
		}
		if d > maxDist {
			maxDist = d
		}
	}

	out := make([]candidate, len(coords))
	for i, c := range coords {
		d := c.Distance(target)
		out[i] = candidate{
			coord: c,
			class: Classification{
				Closest:   d == minDist,
				Farthest:  d == maxDist,
				Direction: dirs[i],
			},
		}
	}
	return out
}

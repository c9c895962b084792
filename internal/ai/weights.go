// Package ai implements opponent move selection: weighted hex choice in
// chess mode and distance-band headings in standoff mode.
package ai

import (
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
)

// Classification describes a move candidate relative to the target tile.
type Classification struct {
	Closest   bool // Minimum hex distance to the target among candidates
	Farthest  bool // Maximum hex distance to the target among candidates
	Direction int  // Direction index 0-5, or -1 for the "stay" candidate
}

// Diagonal reports whether the move goes through an upward direction.
// Only the shotgun's weight table distinguishes this.
func (c Classification) Diagonal() bool {
	return c.Direction == 1 || c.Direction == 2
}

// Side reports whether the move goes through a downward direction.
func (c Classification) Side() bool {
	return c.Direction == 4 || c.Direction == 5
}

// WeightTable maps a candidate classification to a selection weight for
// one agent type.
type WeightTable struct {
	Closest  int
	Farthest int
	Diagonal int
	Side     int
	Other    int
}

// WeightSet holds the weight tables for every agent type.
type WeightSet map[agent.Type]WeightTable

// NewWeightSet builds a WeightSet from the loaded weight registry.
// Types without a row fall back to a uniform table.
func NewWeightSet(registry *gamedata.WeightRegistry) WeightSet {
	set := make(WeightSet)
	for _, typ := range []agent.Type{agent.TypeBasic, agent.TypeHandcannon, agent.TypeShotgun, agent.TypeSniper} {
		def := registry.GetByType(typ.ID())
		if def == nil {
			set[typ] = WeightTable{Closest: 1, Farthest: 1, Other: 1}
			continue
		}
		set[typ] = WeightTable{
			Closest:  def.Closest,
			Farthest: def.Farthest,
			Diagonal: def.Diagonal,
			Side:     def.Side,
			Other:    def.Other,
		}
	}
	return set
}

// Weight returns the selection weight for a candidate. Distance
// classification takes the base weight; shotgun flanking directions
// override it when the table assigns them a weight.
func (s WeightSet) Weight(typ agent.Type, c Classification) int {
	table, ok := s[typ]
	if !ok {
		return 1
	}

	w := table.Other
	if c.Closest {
		w = table.Closest
	} else if c.Farthest {
		w = table.Farthest
	}

	if typ == agent.TypeShotgun {
		if c.Diagonal() && table.Diagonal > 0 {
			w = table.Diagonal
		} else if c.Side() && table.Side > 0 {
			w = table.Side
		}
	}

	if w < 0 {
		return 0
	}
	return w
}

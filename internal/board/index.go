// Package board maintains the hex-grid occupancy index, the agent
// registry, and the per-phase reservation set.
package board

import (
	"errors"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
)

// ErrTileOccupied is returned when an agent is placed on a claimed tile
// while stacking is disabled.
var ErrTileOccupied = errors.New("tile already occupied")

// ErrOffBoard is returned when a coordinate lies outside the board.
var ErrOffBoard = errors.New("coordinate outside the board")

// ErrNotRegistered is returned for operations on an unknown agent.
var ErrNotRegistered = errors.New("agent not registered")

// Index owns all agents on the board, keyed by coordinate. Agents register
// on spawn and deregister on death or reset; there is no scene scanning.
type Index struct {
	radius        int
	allowStacking bool
	tiles         map[hex.Coord][]*agent.Agent
	agents        []*agent.Agent // registry in spawn order
}

// New creates an empty board of the given hex radius. A radius of zero or
// less means an unbounded board. allowStacking permits more than one agent
// per tile, per level configuration.
func New(radius int, allowStacking bool) *Index {
	return &Index{
		radius:        radius,
		allowStacking: allowStacking,
		tiles:         make(map[hex.Coord][]*agent.Agent),
	}
}

// Radius returns the board radius, or zero for an unbounded board.
func (ix *Index) Radius() int {
	return ix.radius
}

// AllowStacking reports whether multiple agents may share a tile.
func (ix *Index) AllowStacking() bool {
	return ix.allowStacking
}

// InBounds reports whether a coordinate lies on the board.
func (ix *Index) InBounds(c hex.Coord) bool {
	if ix.radius <= 0 {
		return true
	}
	return c.Distance(hex.Coord{}) <= ix.radius
}

// Register adds an agent to the board at its current position.
func (ix *Index) Register(a *agent.Agent) error {
	if !ix.InBounds(a.Pos) {
		return ErrOffBoard
	}
	if !ix.allowStacking && len(ix.tiles[a.Pos]) > 0 {
		return ErrTileOccupied
	}
	ix.tiles[a.Pos] = append(ix.tiles[a.Pos], a)
	ix.agents = append(ix.agents, a)
	return nil
}

// Remove deregisters an agent and clears its tile.
func (ix *Index) Remove(a *agent.Agent) {
	ix.removeFromTile(a, a.Pos)
	for i, reg := range ix.agents {
		if reg == a {
			ix.agents = append(ix.agents[:i], ix.agents[i+1:]...)
			return
		}
	}
}

// AgentAt returns the first agent on the given tile, or nil.
func (ix *Index) AgentAt(c hex.Coord) *agent.Agent {
	if occupants := ix.tiles[c]; len(occupants) > 0 {
		return occupants[0]
	}
	return nil
}

// AgentsAt returns every agent on the given tile.
func (ix *Index) AgentsAt(c hex.Coord) []*agent.Agent {
	return ix.tiles[c]
}

// Occupied reports whether any agent stands on the given tile.
func (ix *Index) Occupied(c hex.Coord) bool {
	return len(ix.tiles[c]) > 0
}

// MoveAgent commits an agent's move to a new coordinate, updating both the
// tile index and the agent's position.
func (ix *Index) MoveAgent(a *agent.Agent, to hex.Coord) error {
	if !ix.InBounds(to) {
		return ErrOffBoard
	}
	if !ix.registered(a) {
		return ErrNotRegistered
	}
	if !ix.allowStacking && to != a.Pos {
		for _, occ := range ix.tiles[to] {
			if occ != a {
				return ErrTileOccupied
			}
		}
	}
	ix.removeFromTile(a, a.Pos)
	a.Pos = to
	ix.tiles[to] = append(ix.tiles[to], a)
	return nil
}

// All returns the registry in spawn order.
func (ix *Index) All() []*agent.Agent {
	out := make([]*agent.Agent, len(ix.agents))
	copy(out, ix.agents)
	return out
}

// Player returns the player agent, or nil if none is registered.
func (ix *Index) Player() *agent.Agent {
	for _, a := range ix.agents {
		if a.Type == agent.TypePlayer {
			return a
		}
	}
	return nil
}

// AliveOpponents returns a snapshot of living non-player agents in spawn
// order. The slice is a copy; mid-phase deaths do not disturb iteration.
func (ix *Index) AliveOpponents() []*agent.Agent {
	var out []*agent.Agent
	for _, a := range ix.agents {
		if a.Type != agent.TypePlayer && a.IsAlive() {
			out = append(out, a)
		}
	}
	return out
}

// AliveOpponentCount returns the number of living non-player agents.
func (ix *Index) AliveOpponentCount() int {
	count := 0
	for _, a := range ix.agents {
		if a.Type != agent.TypePlayer && a.IsAlive() {
			count++
		}
	}
	return count
}

// UpgradeLastBasic converts the last-registered living Basic opponent to
// the given ranged type, so a standoff never begins against an unarmed
// pawn. Returns the upgraded agent, or nil if no Basic pawn remains.
func (ix *Index) UpgradeLastBasic(to agent.Type) *agent.Agent {
	for i := len(ix.agents) - 1; i >= 0; i-- {
		a := ix.agents[i]
		if a.Type == agent.TypeBasic && a.IsAlive() {
			a.Type = to
			return a
		}
	}
	return nil
}

// Reset clears the board and registry for a level restart.
func (ix *Index) Reset() {
	ix.tiles = make(map[hex.Coord][]*agent.Agent)
	ix.agents = nil
}

func (ix *Index) registered(a *agent.Agent) bool {
	for _, reg := range ix.agents {
		if reg == a {
			return true
		}
	}
	return false
}

func (ix *Index) removeFromTile(a *agent.Agent, c hex.Coord) {
	occupants := ix.tiles[c]
	for i, occ := range occupants {
		if occ == a {
			ix.tiles[c] = append(occupants[:i], occupants[i+1:]...)
			break
		}
	}
	if len(ix.tiles[c]) == 0 {
		delete(ix.tiles, c)
	}
}

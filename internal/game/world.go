package game

import (
	"context"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/mode"
)

// SetChessActive spawns the current level when the chess board activates.
// Deactivation keeps the board around so the standoff can read the
// survivors from it.
func (g *Game) SetChessActive(active bool) {
	if !active {
		return
	}
	def, err := g.levels.ByIndex(g.machine.CurrentLevel())
	if err != nil {
		g.status = err.Error()
		return
	}
	ctx := g.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := g.spawnLevel(ctx, def); err != nil {
		g.status = err.Error()
	}
}

// GenerateArena builds the standoff duel from the chess survivors.
func (g *Game) GenerateArena() {
	if g.boardIdx == nil {
		return
	}
	player := g.boardIdx.Player()
	var opponent *agent.Agent
	if alive := g.boardIdx.AliveOpponents(); len(alive) > 0 {
		opponent = alive[0]
	}
	g.standoff = newStandoff(player, opponent, g.agents, g.combat)
}

// TeardownArena discards the standoff state.
func (g *Game) TeardownArena() {
	g.standoff = nil
}

// RepositionCombatants places the duelists at their facing-off marks.
func (g *Game) RepositionCombatants() {
	if g.standoff != nil {
		g.standoff.reposition()
	}
}

// SetTimeScale adjusts real-time simulation speed. Zero freezes it.
func (g *Game) SetTimeScale(scale float64) {
	g.timeScale = scale
}

// ResetSlowMotion restores normal simulation speed.
func (g *Game) ResetSlowMotion() {
	g.timeScale = 1
}

// NotifyStateChanged surfaces mode changes on the status line.
func (g *Game) NotifyStateChanged(next mode.Mode) {
	g.status = next.String()
}

// NotifyVictory announces the win.
func (g *Game) NotifyVictory() {
	g.status = "victory"
}

// NotifyDefeat announces the loss.
func (g *Game) NotifyDefeat() {
	g.status = "defeat"
}

// AliveOpponentCount reports the living opponents on the current board.
func (g *Game) AliveOpponentCount() int {
	if g.boardIdx == nil {
		return 0
	}
	return g.boardIdx.AliveOpponentCount()
}

// UpgradeLastBasic arms the last unarmed pawn ahead of the standoff.
func (g *Game) UpgradeLastBasic(to agent.Type) *agent.Agent {
	if g.boardIdx == nil {
		return nil
	}
	return g.boardIdx.UpgradeLastBasic(to)
}

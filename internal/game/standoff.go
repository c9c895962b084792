package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/ai"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/combat"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/mode"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/ui"
)

const (
	arenaRadius   = 8.0  // tile units
	baseMoveSpeed = 2.5  // tiles per second
	playerStep    = 0.6  // tiles per keypress
	entrySlowmo   = 1.5  // wall seconds of slow motion on entry
	slowmoScale   = 0.35 // time scale during the entry slow motion
	frameInterval = 33 * time.Millisecond
)

// duelist is one combatant in the real-time standoff.
type duelist struct {
	agent    *agent.Agent
	def      *gamedata.AgentDef
	pos      ai.Vec
	weapon   combat.Weapon
	armed    bool
	cooldown float64 // seconds until the next shot
	aim      float64 // seconds until the target is re-acquired
}

func newDuelist(a *agent.Agent, agents *gamedata.AgentRegistry, resolver *combat.Resolver) *duelist {
	if a == nil {
		return nil
	}
	d := &duelist{
		agent: a,
		def:   agents.GetByID(a.Type.ID()),
	}
	d.weapon, d.armed = resolver.WeaponFor(a.Type, a.Modifier)
	if d.armed {
		d.cooldown = d.weapon.FireInterval.Seconds()
		d.aim = d.weapon.AimDelay.Seconds()
	}
	return d
}

// standoffState is the real-time duel simulation. Positions are in tile
// units on a circular arena centered at the origin.
type standoffState struct {
	player   *duelist
	opponent *duelist
	resolver *combat.Resolver
	slowmo   float64 // wall seconds of entry slow motion remaining
}

func newStandoff(player, opponent *agent.Agent, agents *gamedata.AgentRegistry, resolver *combat.Resolver) *standoffState {
	return &standoffState{
		player:   newDuelist(player, agents, resolver),
		opponent: newDuelist(opponent, agents, resolver),
		resolver: resolver,
		slowmo:   entrySlowmo,
	}
}

// reposition puts the duelists at their facing-off marks.
func (s *standoffState) reposition() {
	if s.player != nil {
		s.player.pos = ai.Vec{X: -3}
	}
	if s.opponent != nil {
		s.opponent.pos = ai.Vec{X: 3}
	}
}

// tick advances the duel by dt simulation seconds: opponent steering per
// its range band, weapon timers, and an opponent shot when ready.
func (s *standoffState) tick(dt float64) {
	if dt <= 0 || s.player == nil || s.opponent == nil {
		return
	}
	o, p := s.opponent, s.player
	if !o.agent.IsAlive() || !p.agent.IsAlive() {
		return
	}

	heading := ai.Heading(o.pos, p.pos, o.def)
	speed := s.resolver.MoveSpeed(baseMoveSpeed, o.agent.Modifier)
	o.pos = clampToArena(ai.Vec{
		X: o.pos.X + heading.X*speed*dt,
		Y: o.pos.Y + heading.Y*speed*dt,
	})

	o.cooldown -= dt
	o.aim -= dt
	p.cooldown -= dt

	if o.armed && o.cooldown <= 0 && o.aim <= 0 {
		s.resolver.ResolveShot(o.agent, p.agent)
		o.cooldown = o.weapon.FireInterval.Seconds()
	}
}

// movePlayer steps the player and forces the opponent to re-acquire them.
func (s *standoffState) movePlayer(dx, dy float64) {
	if s.player == nil || !s.player.agent.IsAlive() {
		return
	}
	dir := ai.Vec{X: dx, Y: dy}.Normalized()
	s.player.pos = clampToArena(ai.Vec{
		X: s.player.pos.X + dir.X*playerStep,
		Y: s.player.pos.Y + dir.Y*playerStep,
	})
	if s.opponent != nil && s.opponent.armed {
		if reaim := s.opponent.weapon.AimDelay.Seconds(); reaim > s.opponent.aim {
			s.opponent.aim = reaim
		}
	}
}

// playerFire resolves a player shot if their weapon is off cooldown.
func (s *standoffState) playerFire() (combat.ShotResult, bool) {
	p := s.player
	if p == nil || s.opponent == nil || !p.armed || p.cooldown > 0 {
		return combat.ShotResult{}, false
	}
	p.cooldown = p.weapon.FireInterval.Seconds()
	return s.resolver.ResolveShot(p.agent, s.opponent.agent), true
}

func clampToArena(v ai.Vec) ai.Vec {
	if v.Length() <= arenaRadius {
		return v
	}
	n := v.Normalized()
	return ai.Vec{X: n.X * arenaRadius, Y: n.Y * arenaRadius}
}

// runStandoff drives the real-time duel at a fixed frame cadence until
// one side falls.
func (g *Game) runStandoff(ctx context.Context) {
	if g.standoff == nil || g.standoff.player == nil || g.standoff.opponent == nil {
		g.machine.SetState(ctx, mode.ModeMainMenu)
		return
	}

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()
	last := time.Now()

	for g.running && g.machine.Current() == mode.ModeStandoff {
		select {
		case ev, ok := <-g.events:
			if !ok {
				g.running = false
				return
			}
			g.handleStandoffEvent(ctx, ev)
		case now := <-frame.C:
			wall := now.Sub(last).Seconds()
			last = now

			s := g.standoff
			if s.slowmo > 0 {
				s.slowmo -= wall
				if s.slowmo <= 0 {
					g.ResetSlowMotion()
				}
			}
			s.tick(wall * g.timeScale)
			g.renderStandoff()
			g.checkStandoffOutcome(ctx)
		}
	}
}

func (g *Game) handleStandoffEvent(ctx context.Context, ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		g.handleCommonEvent(ev)
		return
	}
	switch {
	case key.Key() == tcell.KeyCtrlC, key.Rune() == 'q':
		g.running = false
	case key.Key() == tcell.KeyUp:
		g.standoff.movePlayer(0, -1)
	case key.Key() == tcell.KeyDown:
		g.standoff.movePlayer(0, 1)
	case key.Key() == tcell.KeyLeft:
		g.standoff.movePlayer(-1, 0)
	case key.Key() == tcell.KeyRight:
		g.standoff.movePlayer(1, 0)
	case key.Rune() == ' ':
		if result, fired := g.standoff.playerFire(); fired && result.Hit {
			g.status = fmt.Sprintf("hit for %d", result.Damage)
		}
	}
}

func (g *Game) checkStandoffOutcome(ctx context.Context) {
	s := g.standoff
	if !s.opponent.agent.IsAlive() {
		g.machine.SetState(ctx, mode.ModeVictory)
		return
	}
	if !s.player.agent.IsAlive() {
		g.machine.SetState(ctx, mode.ModeDefeat)
	}
}

func (g *Game) renderStandoff() {
	s := g.standoff
	g.renderer.RenderDuel(arenaRadius,
		ui.DuelSprite{X: s.player.pos.X, Y: s.player.pos.Y, Agent: s.player.agent},
		ui.DuelSprite{X: s.opponent.pos.X, Y: s.opponent.pos.Y, Agent: s.opponent.agent},
	)
	g.renderer.RenderPlayerHP(s.player.agent)
	if g.status != "" {
		g.renderer.RenderStatus(g.status)
	}
}

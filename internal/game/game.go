// Package game provides the main game loop and wires the engine packages
// to the terminal front-end.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/ai"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/board"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/combat"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/mode"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/telemetry"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/turn"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg     Config
	turnCfg turn.Config

	screen   *ui.Screen
	renderer *ui.Renderer

	agents    *gamedata.AgentRegistry
	levels    *gamedata.LevelRegistry
	weights   ai.WeightSet
	modifiers *agent.Resolver
	combat    *combat.Resolver

	machine   *mode.Machine
	boardIdx  *board.Index
	scheduler *turn.Scheduler
	standoff  *standoffState

	ctx       context.Context
	events    chan tcell.Event
	running   bool
	timeScale float64
	status    string
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	agents, err := gamedata.LoadAgentRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading agents: %w", err)
	}
	weights, err := gamedata.LoadWeightRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading weights: %w", err)
	}
	levels, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	modDef, err := gamedata.LoadModifiers()
	if err != nil {
		return nil, fmt.Errorf("loading modifiers: %w", err)
	}

	modResolver := agent.NewResolver(agent.ResolverConfig{
		ConfrontationalFireMult: modDef.ConfrontationalFireMult,
		ObservantAimMult:        modDef.ObservantAimMult,
		ReflexiveAimMult:        modDef.ReflexiveAimMult,
		FleetSpeedMult:          modDef.FleetSpeedMult,
		TenaciousHPBonus:        modDef.TenaciousHPBonus,
		TenaciousHPMult:         modDef.TenaciousHPMult,
	})

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:       cfg,
		turnCfg:   turn.DefaultConfig(),
		screen:    screen,
		renderer:  ui.NewRenderer(screen, agents),
		agents:    agents,
		levels:    levels,
		weights:   ai.NewWeightSet(weights),
		modifiers: modResolver,
		combat:    combat.NewResolver(agents, modResolver),
		timeScale: 1,
	}
	g.machine = mode.New(g, g, g, levels, mode.Config{
		StandoffTriggerCount: 1,
		StandoffDelay:        2 * time.Second,
		SpawnGrace:           time.Second,
	})
	return g, nil
}

// Run executes the main game loop until the player quits or a mode screen
// ends the session.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int64("seed", g.cfg.Seed),
		attribute.Int("levels", g.levels.Count()),
	)
	initSpan.End()

	g.ctx = ctx
	g.events = make(chan tcell.Event, 8)
	go g.pumpEvents()

	g.running = true
	for g.running {
		switch g.machine.Current() {
		case mode.ModeMainMenu:
			g.runMenu(ctx)
		case mode.ModeLevelSelect:
			g.runLevelSelect(ctx)
		case mode.ModeChess, mode.ModePaused:
			g.runChess(ctx)
		case mode.ModeStandoff:
			g.runStandoff(ctx)
		case mode.ModeVictory:
			g.runEndScreen(ctx, "VICTORY")
		case mode.ModeDefeat:
			g.runEndScreen(ctx, "DEFEAT")
		}
	}

	g.screen.Close()
	return nil
}

// pumpEvents forwards terminal events to the loop's channel. PollEvent
// returns nil once the screen is finalized.
func (g *Game) pumpEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			close(g.events)
			return
		}
		g.events <- ev
	}
}

func (g *Game) runMenu(ctx context.Context) {
	g.renderer.RenderBanner(
		"HEX CHESS",
		"",
		"enter  play",
		"l      level select",
		"q      quit",
	)
	ev, ok := <-g.events
	if !ok {
		g.running = false
		return
	}
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		g.handleCommonEvent(ev)
		return
	}
	switch {
	case key.Key() == tcell.KeyEnter:
		if !g.machine.StartLevel(ctx, g.cfg.Level) {
			g.machine.StartLevel(ctx, 0)
		}
	case key.Rune() == 'l':
		g.machine.SetState(ctx, mode.ModeLevelSelect)
	case key.Key() == tcell.KeyCtrlC, key.Rune() == 'q':
		g.running = false
	}
}

func (g *Game) runLevelSelect(ctx context.Context) {
	lines := []string{"SELECT LEVEL", ""}
	for i := 0; i < g.levels.Count(); i++ {
		def, err := g.levels.ByIndex(i)
		if err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d  %s", i+1, def.Name))
	}
	g.renderer.RenderBanner(lines...)

	ev, ok := <-g.events
	if !ok {
		g.running = false
		return
	}
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		g.handleCommonEvent(ev)
		return
	}
	switch {
	case key.Key() == tcell.KeyEscape:
		g.machine.SetState(ctx, mode.ModeMainMenu)
	case key.Key() == tcell.KeyCtrlC, key.Rune() == 'q':
		g.running = false
	case key.Rune() >= '1' && key.Rune() <= '9':
		g.machine.StartLevel(ctx, int(key.Rune()-'1'))
	}
}

func (g *Game) runChess(ctx context.Context) {
	g.renderBoard()

	select {
	case ev, ok := <-g.events:
		if !ok {
			g.running = false
			return
		}
		g.handleChessEvent(ctx, ev)
	case <-time.After(100 * time.Millisecond):
	}

	// Delayed transitions run on wall time, not on input.
	g.machine.CheckStandoffTrigger(ctx)
	g.machine.Tick(ctx)
}

func (g *Game) handleChessEvent(ctx context.Context, ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		g.handleCommonEvent(ev)
		return
	}

	if g.machine.Current() == mode.ModePaused {
		if key.Key() == tcell.KeyEscape || key.Rune() == 'p' {
			g.machine.SetState(ctx, mode.ModeChess)
		}
		return
	}

	switch {
	case key.Key() == tcell.KeyCtrlC, key.Rune() == 'q':
		g.running = false
	case key.Key() == tcell.KeyEscape, key.Rune() == 'p':
		g.machine.SetState(ctx, mode.ModePaused)

	case key.Key() == tcell.KeyRight, key.Rune() == 'd':
		g.playerMove(ctx, 0)
	case key.Rune() == 'e':
		g.playerMove(ctx, 1)
	case key.Rune() == 'w':
		g.playerMove(ctx, 2)
	case key.Key() == tcell.KeyLeft, key.Rune() == 'a':
		g.playerMove(ctx, 3)
	case key.Rune() == 'z':
		g.playerMove(ctx, 4)
	case key.Rune() == 'x':
		g.playerMove(ctx, 5)
	}
}

// playerMove attempts a single-hop player move, resolving a capture if an
// opponent holds the destination, then hands the turn to the opponents.
func (g *Game) playerMove(ctx context.Context, direction int) {
	if g.boardIdx == nil || g.scheduler == nil {
		return
	}
	if g.scheduler.Phase() != turn.PhasePlayerTurn {
		return
	}
	player := g.boardIdx.Player()
	if player == nil || !player.IsAlive() {
		return
	}

	dest := player.Pos.Neighbor(direction)
	if !g.boardIdx.InBounds(dest) {
		g.status = "edge of the board"
		return
	}
	if occupant := g.boardIdx.AgentAt(dest); occupant != nil && occupant != player {
		occupant.TakeDamage(occupant.HP)
		g.boardIdx.Remove(occupant)
		g.status = fmt.Sprintf("captured %s", occupant.Type)
	}
	if err := g.boardIdx.MoveAgent(player, dest); err != nil {
		g.status = err.Error()
		return
	}

	if g.boardIdx.AliveOpponentCount() == 0 {
		g.machine.SetState(ctx, mode.ModeVictory)
		return
	}

	g.renderBoard()
	g.scheduler.PlayerMoved(g.machine.ChessContext())

	if !player.IsAlive() {
		g.machine.SetState(ctx, mode.ModeDefeat)
	}
}

func (g *Game) renderBoard() {
	if g.boardIdx == nil {
		return
	}
	g.renderer.RenderBoard(g.boardIdx, g.boardIdx.Radius())
	g.renderer.RenderPlayerHP(g.boardIdx.Player())
	if g.machine.Current() == mode.ModePaused {
		g.renderer.RenderStatus("paused")
	} else if g.status != "" {
		g.renderer.RenderStatus(g.status)
	}
}

func (g *Game) runEndScreen(ctx context.Context, title string) {
	g.renderer.RenderBanner(
		title,
		"",
		"enter  continue",
		"q      quit",
	)
	ev, ok := <-g.events
	if !ok {
		g.running = false
		return
	}
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		g.handleCommonEvent(ev)
		return
	}
	switch {
	case key.Key() == tcell.KeyCtrlC, key.Rune() == 'q':
		g.running = false
	case key.Key() == tcell.KeyEnter:
		if g.machine.Current() == mode.ModeVictory && g.machine.NextLevel(ctx) {
			return
		}
		g.machine.SetState(ctx, mode.ModeMainMenu)
	}
}

func (g *Game) handleCommonEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

var _ turn.Actions = (*Game)(nil)
var _ mode.World = (*Game)(nil)
var _ mode.Notifier = (*Game)(nil)
var _ mode.Roster = (*Game)(nil)

// ExecuteMoveTo accepts a move for the terminal front-end, which has no
// movement animation: the agent arrives at once.
func (g *Game) ExecuteMoveTo(a *agent.Agent, to hex.Coord) bool {
	a.MarkMoved()
	return true
}

// Fire resolves an opponent shot at the player.
func (g *Game) Fire(a *agent.Agent) {
	if g.boardIdx == nil {
		return
	}
	player := g.boardIdx.Player()
	if player == nil {
		return
	}
	result := g.combat.ResolveShot(a, player)
	if result.Hit {
		g.status = fmt.Sprintf("%s hits for %d", a.Type, result.Damage)
		g.renderBoard()
	}
}

// RecalculateAim is a no-op for the terminal front-end; aim delays only
// matter once the standoff starts.
func (g *Game) RecalculateAim(a *agent.Agent) {}

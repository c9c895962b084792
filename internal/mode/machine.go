// Package mode implements the top-level game mode state machine: which
// turn model is active and the one-time side effects of switching.
package mode

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/telemetry"
)

// Mode is a top-level game state. Exactly one is active at a time.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeLevelSelect
	ModeChess
	ModeStandoff
	ModeVictory
	ModeDefeat
	ModePaused
)

// String returns a machine-friendly mode name.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModeLevelSelect:
		return "level_select"
	case ModeChess:
		return "chess"
	case ModeStandoff:
		return "standoff"
	case ModeVictory:
		return "victory"
	case ModeDefeat:
		return "defeat"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Notifier receives one-shot event broadcasts, consumed by UI and audio.
type Notifier interface {
	NotifyStateChanged(next Mode)
	NotifyVictory()
	NotifyDefeat()
}

// World is the gameplay collaborator that applies transition side effects:
// activating the chess board, building and tearing down the standoff
// arena, and controlling time flow.
type World interface {
	SetChessActive(active bool)
	GenerateArena()
	TeardownArena()
	RepositionCombatants()
	SetTimeScale(scale float64)
	ResetSlowMotion()
}

// Roster exposes the opponent counts the standoff trigger watches, plus
// the pre-standoff upgrade of the last unarmed pawn.
type Roster interface {
	AliveOpponentCount() int
	UpgradeLastBasic(to agent.Type) *agent.Agent
}

// Config tunes the standoff transition.
type Config struct {
	StandoffTriggerCount int           // remaining opponents at or below this request the duel
	StandoffDelay        time.Duration // announcement delay before the transition applies
	SpawnGrace           time.Duration // ignore the trigger until spawning has settled
}

// Transition records one applied state change.
type Transition struct {
	From, To Mode
}

// Machine is the top-level mode state machine. It is created once at
// process start in MainMenu and lives for the process lifetime; all state
// changes go through SetState.
type Machine struct {
	current  Mode
	last     Transition
	world    World
	notifier Notifier
	roster   Roster
	levels   *gamedata.LevelRegistry
	cfg      Config

	// Now is the time source, replaceable in tests.
	Now func() time.Time

	currentLevel    int
	enteredChessAt  time.Time
	pendingStandoff bool
	standoffAt      time.Time

	chessCtx    context.Context
	chessCancel context.CancelFunc
}

// New creates a machine in MainMenu.
func New(world World, notifier Notifier, roster Roster, levels *gamedata.LevelRegistry, cfg Config) *Machine {
	return &Machine{
		current:  ModeMainMenu,
		world:    world,
		notifier: notifier,
		roster:   roster,
		levels:   levels,
		cfg:      cfg,
		Now:      time.Now,
	}
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	return m.current
}

// LastTransition returns the most recent applied (previous, next) pair.
func (m *Machine) LastTransition() Transition {
	return m.last
}

// CurrentLevel returns the zero-based index of the level in play.
func (m *Machine) CurrentLevel() int {
	return m.currentLevel
}

// ChessContext returns a context canceled when the machine leaves
// ChessMode, used by the turn scheduler to abandon a mid-flight phase.
func (m *Machine) ChessContext() context.Context {
	if m.chessCtx == nil {
		return context.Background()
	}
	return m.chessCtx
}

// SetState transitions to the next mode. Setting the current mode again is
// a no-op: no notification, no side effects.
func (m *Machine) SetState(ctx context.Context, next Mode) {
	if next == m.current {
		return
	}

	tracer := telemetry.Tracer("mode")
	_, span := tracer.Start(ctx, "mode.transition")
	span.SetAttributes(
		attribute.String("from", m.current.String()),
		attribute.String("to", next.String()),
	)
	defer span.End()

	prev := m.current
	m.current = next
	m.last = Transition{From: prev, To: next}

	if m.notifier != nil {
		m.notifier.NotifyStateChanged(next)
	}

	m.runExitEffects(prev, next)
	m.runEntryEffects(prev, next)
}

func (m *Machine) runExitEffects(prev, next Mode) {
	switch prev {
	case ModePaused:
		if m.world != nil {
			m.world.SetTimeScale(1)
		}
	case ModeStandoff:
		if m.world != nil {
			m.world.ResetSlowMotion()
			if next != ModeVictory && next != ModeDefeat {
				m.world.TeardownArena()
			}
		}
	case ModeChess:
		// Pausing freezes time without discarding the phase in flight;
		// any other departure abandons it.
		if next != ModePaused {
			if m.chessCancel != nil {
				m.chessCancel()
				m.chessCtx = nil
				m.chessCancel = nil
			}
			m.pendingStandoff = false
		}
	}
}

func (m *Machine) runEntryEffects(prev, next Mode) {
	switch next {
	case ModeChess:
		if prev == ModePaused {
			return // resume, not a fresh entry
		}
		m.chessCtx, m.chessCancel = context.WithCancel(context.Background())
		m.enteredChessAt = m.Now()
		m.pendingStandoff = false
		if m.world != nil {
			m.world.SetChessActive(true)
		}
	case ModeStandoff:
		if m.world != nil {
			m.world.SetChessActive(false)
			m.world.GenerateArena()
			m.world.RepositionCombatants()
		}
	case ModeVictory:
		if m.world != nil {
			m.world.SetTimeScale(0)
		}
		if m.notifier != nil {
			m.notifier.NotifyVictory()
		}
	case ModeDefeat:
		if m.world != nil {
			m.world.SetTimeScale(0)
		}
		if m.notifier != nil {
			m.notifier.NotifyDefeat()
		}
	case ModePaused:
		if m.world != nil {
			m.world.SetTimeScale(0)
		}
	}
}

// StartLevel validates the level index at the state-machine boundary and
// enters ChessMode. Returns false without starting gameplay when the index
// has no level definition.
func (m *Machine) StartLevel(ctx context.Context, index int) bool {
	if m.levels == nil {
		return false
	}
	def, err := m.levels.ByIndex(index)
	if err != nil {
		return false
	}
	if def.StandoffTriggerCount > 0 {
		m.cfg.StandoffTriggerCount = def.StandoffTriggerCount
	}
	m.currentLevel = index
	m.SetState(ctx, ModeChess)
	return true
}

// NextLevel advances to the following level in sequence.
func (m *Machine) NextLevel(ctx context.Context) bool {
	next := m.currentLevel + 1
	// Re-entering chess from chess would be swallowed by the no-op guard.
	if m.current == ModeChess {
		m.SetState(ctx, ModeLevelSelect)
	}
	return m.StartLevel(ctx, next)
}

// CheckStandoffTrigger evaluates the remaining-opponent condition and, when
// met, schedules the ChessMode to Standoff transition after the
// announcement delay. During that window the last Basic pawn, if any, is
// upgraded so the duel never starts against an unarmed opponent. A no-op
// outside ChessMode and during the spawn grace period.
func (m *Machine) CheckStandoffTrigger(ctx context.Context) {
	if m.current != ModeChess || m.pendingStandoff {
		return
	}
	if m.Now().Sub(m.enteredChessAt) < m.cfg.SpawnGrace {
		return
	}
	if m.roster == nil || m.roster.AliveOpponentCount() > m.cfg.StandoffTriggerCount {
		return
	}

	tracer := telemetry.Tracer("mode")
	_, span := tracer.Start(ctx, "mode.standoff_scheduled")
	span.SetAttributes(attribute.Int("remaining_opponents", m.roster.AliveOpponentCount()))

	m.pendingStandoff = true
	m.standoffAt = m.Now().Add(m.cfg.StandoffDelay)
	if upgraded := m.roster.UpgradeLastBasic(agent.TypeHandcannon); upgraded != nil {
		span.SetAttributes(attribute.String("upgraded_pawn", upgraded.ID.String()))
	}
	span.End()
}

// Tick applies a pending delayed transition once its deadline passes.
// Call it from the owner's update loop.
func (m *Machine) Tick(ctx context.Context) {
	if !m.pendingStandoff || m.current != ModeChess {
		return
	}
	if m.Now().Before(m.standoffAt) {
		return
	}
	m.pendingStandoff = false
	m.SetState(ctx, ModeStandoff)
}

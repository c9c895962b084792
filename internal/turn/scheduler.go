// Package turn coordinates the chess-mode turn cycle: one player move,
// then one full opponent phase over every living pawn.
package turn

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/ai"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/board"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/telemetry"
)

// Phase is the scheduler's turn state.
type Phase int32

const (
	// PhasePlayerTurn - waiting for the player's move
	PhasePlayerTurn Phase = iota
	// PhaseOpponentPhase - opponents are acting
	PhaseOpponentPhase
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseOpponentPhase:
		return "opponent_phase"
	default:
		return "unknown"
	}
}

// Actions is implemented by the movement/weapon collaborator. ExecuteMoveTo
// requests a visual move and returns whether the request was accepted;
// completion is reported through the agent's moved flag. Fire and
// RecalculateAim are fire-and-forget.
type Actions interface {
	ExecuteMoveTo(a *agent.Agent, to hex.Coord) bool
	Fire(a *agent.Agent)
	RecalculateAim(a *agent.Agent)
}

// Config tunes phase pacing and the move-completion wait.
type Config struct {
	FireDelay    time.Duration // visual pacing after a shot
	MoveDelay    time.Duration // pacing between a Fleet pawn's two moves
	MoveTimeout  time.Duration // ceiling for awaiting move completion
	PollInterval time.Duration // moved-flag poll cadence
}

// DefaultConfig returns the pacing used by the playable build.
func DefaultConfig() Config {
	return Config{
		FireDelay:    300 * time.Millisecond,
		MoveDelay:    250 * time.Millisecond,
		MoveTimeout:  2 * time.Second,
		PollInterval: 25 * time.Millisecond,
	}
}

// Scheduler serializes the player's move with the opponent phase. It holds
// only transient references to agents during a phase; the board index owns
// them.
type Scheduler struct {
	boardIdx *board.Index
	selector *ai.Selector
	actions  Actions
	cfg      Config

	phase  atomic.Int32
	phases int // completed opponent phases
}

// New creates a scheduler in the player-turn state.
func New(boardIdx *board.Index, selector *ai.Selector, actions Actions, cfg Config) *Scheduler {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.MoveTimeout <= 0 {
		cfg.MoveTimeout = DefaultConfig().MoveTimeout
	}
	return &Scheduler{
		boardIdx: boardIdx,
		selector: selector,
		actions:  actions,
		cfg:      cfg,
	}
}

// Phase returns the current turn state.
func (s *Scheduler) Phase() Phase {
	return Phase(s.phase.Load())
}

// CompletedPhases returns how many opponent phases have run to completion.
func (s *Scheduler) CompletedPhases() int {
	return s.phases
}

// Reset returns the scheduler to the player turn, e.g. when chess mode is
// re-entered after an abandoned phase.
func (s *Scheduler) Reset() {
	s.phase.Store(int32(PhasePlayerTurn))
	s.phases = 0
}

// PlayerMoved signals that the player's move has completed and runs one
// opponent phase to completion. A second signal while a phase is in flight
// is ignored and returns false. If ctx is canceled mid-phase (the mode
// machine transitioned away), the phase is abandoned and control is NOT
// returned to the player turn; the transition supersedes it.
func (s *Scheduler) PlayerMoved(ctx context.Context) bool {
	if !s.phase.CompareAndSwap(int32(PhasePlayerTurn), int32(PhaseOpponentPhase)) {
		return false
	}

	if s.runPhase(ctx) {
		return true // abandoned; mode transition owns what happens next
	}

	s.phases++
	s.phase.Store(int32(PhasePlayerTurn))
	return true
}

// runPhase executes one opponent phase. Returns true if the phase was
// abandoned due to cancellation.
func (s *Scheduler) runPhase(ctx context.Context) (abandoned bool) {
	tracer := telemetry.Tracer("turn")
	ctx, span := tracer.Start(ctx, "turn.opponent_phase")
	defer span.End()

	if s.boardIdx == nil || s.selector == nil {
		// Nothing to orchestrate; degrade to an empty phase.
		span.SetAttributes(attribute.Bool("missing_collaborators", true))
		return false
	}

	var target hex.Coord
	if player := s.boardIdx.Player(); player != nil {
		target = player.Pos
	}

	// Fixed snapshot: mid-phase captures must not corrupt iteration, and
	// every phase acts in the same spawn order.
	snapshot := s.boardIdx.AliveOpponents()
	span.SetAttributes(
		attribute.Int("opponents", len(snapshot)),
		attribute.Int("phase_index", s.phases),
	)

	// Seed reservations from every opponent's starting tile. Each agent
	// releases its own claim immediately before choosing.
	reserved := board.NewReservations()
	for _, a := range snapshot {
		reserved.Reserve(a.Pos)
	}

	timeouts := 0
	for _, a := range snapshot {
		if ctx.Err() != nil {
			span.SetAttributes(attribute.Bool("abandoned", true))
			return true
		}
		if !a.IsAlive() {
			continue
		}
		if s.actions == nil {
			continue // missing collaborator: skip the slot, never crash
		}

		// Fire before any movement. Basic pawns are unarmed.
		if a.Type.Ranged() {
			s.actions.Fire(a)
			if !s.pause(ctx, s.cfg.FireDelay) {
				span.SetAttributes(attribute.Bool("abandoned", true))
				return true
			}
		}

		moves := 1
		if a.Modifier == agent.ModFleet {
			moves = 2
		}
		for i := 0; i < moves; i++ {
			reserved.Release(a.Pos)
			dest, ok := s.selector.ChooseMove(a, target, reserved)
			if !ok {
				// Normal decision outcome, not an error.
				reserved.Reserve(a.Pos)
				break
			}
			reserved.Reserve(dest)

			if !s.moveAgent(ctx, a, dest, &timeouts) {
				reserved.Release(dest)
				reserved.Reserve(a.Pos)
				break
			}
			if ctx.Err() != nil {
				span.SetAttributes(attribute.Bool("abandoned", true))
				return true
			}

			if i+1 < moves && !s.pause(ctx, s.cfg.MoveDelay) {
				span.SetAttributes(attribute.Bool("abandoned", true))
				return true
			}
		}
	}

	// The player's tile may have shifted under Reflexive pawns' aim.
	for _, a := range snapshot {
		if a.IsAlive() && a.Modifier == agent.ModReflexive && s.actions != nil {
			s.actions.RecalculateAim(a)
		}
	}

	span.SetAttributes(attribute.Int("move_timeouts", timeouts))
	return false
}

// moveAgent requests the visual move, waits for completion (or the
// timeout), and commits the logical move to the board. Returns false when
// the collaborator refused the request.
func (s *Scheduler) moveAgent(ctx context.Context, a *agent.Agent, dest hex.Coord, timeouts *int) bool {
	a.ClearMoved()
	if !s.actions.ExecuteMoveTo(a, dest) {
		return false
	}

	if !s.awaitMove(ctx, a) {
		// A stalled animation must never deadlock the phase; commit and
		// move on.
		*timeouts++
	}

	if err := s.boardIdx.MoveAgent(a, dest); err != nil {
		// The claim guarantees the tile; a failure here means the board
		// changed out from under us (stacking race at level teardown).
		return false
	}
	return true
}

var errMovePending = errors.New("move not yet complete")

// awaitMove polls the agent's completion flag at a constant cadence until
// it is set, the timeout ceiling elapses, or ctx is canceled.
func (s *Scheduler) awaitMove(ctx context.Context, a *agent.Agent) bool {
	_, err := backoff.Retry(ctx,
		func() (struct{}, error) {
			if a.HasMoved() {
				return struct{}{}, nil
			}
			return struct{}{}, errMovePending
		},
		backoff.WithBackOff(backoff.NewConstantBackOff(s.cfg.PollInterval)),
		backoff.WithMaxElapsedTime(s.cfg.MoveTimeout),
	)
	return err == nil
}

// pause sleeps for the pacing delay, honoring cancellation. Returns false
// when ctx was canceled.
func (s *Scheduler) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

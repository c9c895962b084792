package mode

import (
	"context"
	"testing"
	"time"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/board"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
)

// fakeWorld records side-effect calls in order.
type fakeWorld struct {
	calls []string
}

func (w *fakeWorld) SetChessActive(active bool) {
	if active {
		w.calls = append(w.calls, "chess_on")
	} else {
		w.calls = append(w.calls, "chess_off")
	}
}
func (w *fakeWorld) GenerateArena()          { w.calls = append(w.calls, "generate_arena") }
func (w *fakeWorld) TeardownArena()          { w.calls = append(w.calls, "teardown_arena") }
func (w *fakeWorld) RepositionCombatants()   { w.calls = append(w.calls, "reposition") }
func (w *fakeWorld) SetTimeScale(s float64)  { w.calls = append(w.calls, "timescale") }
func (w *fakeWorld) ResetSlowMotion()        { w.calls = append(w.calls, "reset_slowmo") }

func (w *fakeWorld) count(name string) int {
	n := 0
	for _, c := range w.calls {
		if c == name {
			n++
		}
	}
	return n
}

// fakeNotifier counts event broadcasts.
type fakeNotifier struct {
	stateChanges []Mode
	victories    int
	defeats      int
}

func (n *fakeNotifier) NotifyStateChanged(next Mode) { n.stateChanges = append(n.stateChanges, next) }
func (n *fakeNotifier) NotifyVictory()               { n.victories++ }
func (n *fakeNotifier) NotifyDefeat()                { n.defeats++ }

func testLevels() *gamedata.LevelRegistry {
	return gamedata.NewLevelRegistry([]gamedata.LevelDef{
		{Name: "one", BoardRadius: 4, StandoffTriggerCount: 1},
		{Name: "two", BoardRadius: 5, StandoffTriggerCount: 1},
	})
}

func newTestMachine(roster Roster) (*Machine, *fakeWorld, *fakeNotifier) {
	world := &fakeWorld{}
	notifier := &fakeNotifier{}
	m := New(world, notifier, roster, testLevels(), Config{
		StandoffTriggerCount: 1,
		StandoffDelay:        2 * time.Second,
		SpawnGrace:           time.Second,
	})
	return m, world, notifier
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeMainMenu, "main_menu"},
		{ModeLevelSelect, "level_select"},
		{ModeChess, "chess"},
		{ModeStandoff, "standoff"},
		{ModeVictory, "victory"},
		{ModeDefeat, "defeat"},
		{ModePaused, "paused"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestSetStateNoOpWhenUnchanged(t *testing.T) {
	ctx := context.Background()
	m, _, notifier := newTestMachine(nil)

	m.SetState(ctx, ModeChess)
	m.SetState(ctx, ModeChess)

	if got := len(notifier.stateChanges); got != 1 {
		t.Errorf("NotifyStateChanged called %d times, want exactly 1", got)
	}
	if m.Current() != ModeChess {
		t.Errorf("Current = %v, want chess", m.Current())
	}
	if m.LastTransition() != (Transition{From: ModeMainMenu, To: ModeChess}) {
		t.Errorf("LastTransition = %+v", m.LastTransition())
	}
}

func TestEnterChessActivatesBoard(t *testing.T) {
	ctx := context.Background()
	m, world, _ := newTestMachine(nil)

	m.SetState(ctx, ModeChess)
	if world.count("chess_on") != 1 {
		t.Errorf("entering chess should activate the chess board: %v", world.calls)
	}
	if m.ChessContext().Err() != nil {
		t.Error("chess context should be live while in chess mode")
	}
}

func TestLeaveChessCancelsPhaseContext(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestMachine(nil)

	m.SetState(ctx, ModeChess)
	phaseCtx := m.ChessContext()
	m.SetState(ctx, ModeMainMenu)

	if phaseCtx.Err() == nil {
		t.Error("leaving chess should cancel an in-flight phase context")
	}
}

func TestPauseDoesNotCancelPhaseContext(t *testing.T) {
	ctx := context.Background()
	m, world, _ := newTestMachine(nil)

	m.SetState(ctx, ModeChess)
	phaseCtx := m.ChessContext()

	m.SetState(ctx, ModePaused)
	if phaseCtx.Err() != nil {
		t.Error("pausing freezes time; it must not abandon the phase")
	}
	if world.count("timescale") == 0 {
		t.Error("entering paused should halt gameplay time")
	}

	// Resuming must not re-run the chess entry effects.
	chessOnBefore := world.count("chess_on")
	m.SetState(ctx, ModeChess)
	if world.count("chess_on") != chessOnBefore {
		t.Error("resuming from pause should not re-activate the board")
	}
	if phaseCtx.Err() != nil {
		t.Error("phase context should survive a pause round trip")
	}
}

func TestEnterStandoffSideEffects(t *testing.T) {
	ctx := context.Background()
	m, world, _ := newTestMachine(nil)

	m.SetState(ctx, ModeChess)
	m.SetState(ctx, ModeStandoff)

	for _, want := range []string{"chess_off", "generate_arena", "reposition"} {
		if world.count(want) != 1 {
			t.Errorf("entering standoff should call %s once: %v", want, world.calls)
		}
	}
}

func TestLeaveStandoffTearsDownArena(t *testing.T) {
	ctx := context.Background()

	// To a gameplay mode: arena goes away.
	m, world, _ := newTestMachine(nil)
	m.SetState(ctx, ModeStandoff)
	m.SetState(ctx, ModeMainMenu)
	if world.count("reset_slowmo") != 1 || world.count("teardown_arena") != 1 {
		t.Errorf("leaving standoff should reset slow motion and tear down: %v", world.calls)
	}

	// To victory: the arena stays up behind the end screen.
	m, world, notifier := newTestMachine(nil)
	m.SetState(ctx, ModeStandoff)
	m.SetState(ctx, ModeVictory)
	if world.count("teardown_arena") != 0 {
		t.Errorf("standoff to victory should keep the arena: %v", world.calls)
	}
	if notifier.victories != 1 {
		t.Errorf("victories = %d, want 1", notifier.victories)
	}
}

func TestDefeatNotifiesAndHaltsTime(t *testing.T) {
	ctx := context.Background()
	m, world, notifier := newTestMachine(nil)

	m.SetState(ctx, ModeChess)
	m.SetState(ctx, ModeDefeat)

	if notifier.defeats != 1 {
		t.Errorf("defeats = %d, want 1", notifier.defeats)
	}
	if world.count("timescale") == 0 {
		t.Error("defeat should halt gameplay time")
	}
}

func TestStartLevelValidation(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestMachine(nil)

	if m.StartLevel(ctx, 5) {
		t.Error("invalid level index should be rejected")
	}
	if m.Current() != ModeMainMenu {
		t.Errorf("rejected level start changed mode to %v", m.Current())
	}

	if !m.StartLevel(ctx, 0) {
		t.Error("valid level index should start")
	}
	if m.Current() != ModeChess || m.CurrentLevel() != 0 {
		t.Errorf("Current = %v, level = %d", m.Current(), m.CurrentLevel())
	}
}

func TestNextLevelProgression(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestMachine(nil)

	m.StartLevel(ctx, 0)
	if !m.NextLevel(ctx) {
		t.Fatal("NextLevel from 0 should reach level 1")
	}
	if m.CurrentLevel() != 1 {
		t.Errorf("CurrentLevel = %d, want 1", m.CurrentLevel())
	}
	if m.Current() != ModeChess {
		t.Errorf("Current = %v, want chess", m.Current())
	}

	// Past the end of the sequence.
	if m.NextLevel(ctx) {
		t.Error("NextLevel past the last level should fail")
	}
}

func TestStandoffTrigger(t *testing.T) {
	ctx := context.Background()

	ix := board.New(5, false)
	player := agent.New(agent.TypePlayer, hex.Coord{Q: 0, R: 4}, 5)
	basic := agent.New(agent.TypeBasic, hex.Coord{Q: 0, R: -4}, 3)
	sniper := agent.New(agent.TypeSniper, hex.Coord{Q: 1, R: -4}, 3)
	for _, a := range []*agent.Agent{player, basic, sniper} {
		if err := ix.Register(a); err != nil {
			t.Fatal(err)
		}
	}

	m, _, _ := newTestMachine(ix)
	now := time.Unix(1000, 0)
	m.Now = func() time.Time { return now }

	m.SetState(ctx, ModeChess)

	// During spawn grace: never triggers, even at the threshold.
	m.CheckStandoffTrigger(ctx)
	m.Tick(ctx)
	if m.Current() != ModeChess {
		t.Fatal("trigger must not fire during spawn grace")
	}

	// Two opponents remaining with trigger count 1: no transition.
	now = now.Add(5 * time.Second)
	m.CheckStandoffTrigger(ctx)
	now = now.Add(time.Minute)
	m.Tick(ctx)
	if m.Current() != ModeChess {
		t.Fatal("trigger must not fire while opponents exceed the threshold")
	}

	// Down to one opponent: scheduled, applying only after the delay.
	basic.TakeDamage(100)
	m.CheckStandoffTrigger(ctx)
	if m.Current() != ModeChess {
		t.Fatal("transition applies after the announcement delay, not immediately")
	}

	now = now.Add(time.Second) // delay is 2s; not yet
	m.Tick(ctx)
	if m.Current() != ModeChess {
		t.Fatal("Tick before the deadline must not transition")
	}

	now = now.Add(1500 * time.Millisecond)
	m.Tick(ctx)
	if m.Current() != ModeStandoff {
		t.Fatalf("Current = %v, want standoff after the delay", m.Current())
	}
}

func TestStandoffTriggerUpgradesLastBasic(t *testing.T) {
	ctx := context.Background()

	ix := board.New(5, false)
	player := agent.New(agent.TypePlayer, hex.Coord{Q: 0, R: 4}, 5)
	basic := agent.New(agent.TypeBasic, hex.Coord{Q: 0, R: -4}, 3)
	for _, a := range []*agent.Agent{player, basic} {
		if err := ix.Register(a); err != nil {
			t.Fatal(err)
		}
	}

	m, _, _ := newTestMachine(ix)
	now := time.Unix(2000, 0)
	m.Now = func() time.Time { return now }

	m.SetState(ctx, ModeChess)
	now = now.Add(5 * time.Second)
	m.CheckStandoffTrigger(ctx)

	if basic.Type == agent.TypeBasic {
		t.Error("last Basic pawn should be upgraded to a ranged type before the duel")
	}
	if !basic.Type.Ranged() {
		t.Errorf("upgraded type %v is not ranged", basic.Type)
	}
}

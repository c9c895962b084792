package game

import (
	"math"
	"testing"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/ai"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
)

func newTestStandoff(t *testing.T, opponentType agent.Type) (*Game, *standoffState) {
	t.Helper()
	g := testGame(t, 11)
	player := agent.New(agent.TypePlayer, hex.Coord{}, 5)
	opponent := agent.New(opponentType, hex.Coord{}, 3)
	s := newStandoff(player, opponent, g.agents, g.combat)
	s.reposition()
	return g, s
}

func TestStandoffRepositionMarks(t *testing.T) {
	_, s := newTestStandoff(t, agent.TypeSniper)

	if s.player.pos.X >= s.opponent.pos.X {
		t.Errorf("duelists should face off across the center: player %v, opponent %v",
			s.player.pos, s.opponent.pos)
	}
}

func TestStandoffAggressiveOpponentCloses(t *testing.T) {
	_, s := newTestStandoff(t, agent.TypeShotgun)

	before := s.opponent.pos.Sub(s.player.pos).Length()
	for i := 0; i < 20; i++ {
		s.tick(0.05)
	}
	after := s.opponent.pos.Sub(s.player.pos).Length()

	if after >= before {
		t.Errorf("aggressive opponent should close distance: %v -> %v", before, after)
	}
}

func TestStandoffSniperKeepsDistance(t *testing.T) {
	_, s := newTestStandoff(t, agent.TypeSniper)

	// Force the sniper well under its band floor.
	s.opponent.pos = s.player.pos
	s.opponent.pos.X += 2

	before := s.opponent.pos.Sub(s.player.pos).Length()
	for i := 0; i < 20; i++ {
		s.tick(0.05)
	}
	after := s.opponent.pos.Sub(s.player.pos).Length()

	if after <= before {
		t.Errorf("crowded sniper should retreat: %v -> %v", before, after)
	}
}

func TestStandoffOpponentFires(t *testing.T) {
	_, s := newTestStandoff(t, agent.TypeSniper)

	// The sniper opens aimed and off cooldown after its full intervals.
	startHP := s.player.agent.HP
	for i := 0; i < 200; i++ {
		s.tick(0.05) // 10 simulated seconds
	}

	if s.player.agent.HP >= startHP {
		t.Error("an undisturbed sniper should have landed at least one shot")
	}
}

func TestStandoffDeadOpponentStaysQuiet(t *testing.T) {
	_, s := newTestStandoff(t, agent.TypeSniper)

	s.opponent.agent.TakeDamage(100)
	startHP := s.player.agent.HP
	for i := 0; i < 200; i++ {
		s.tick(0.05)
	}
	if s.player.agent.HP != startHP {
		t.Error("a dead opponent must not fire")
	}
}

func TestStandoffPlayerFireCooldown(t *testing.T) {
	_, s := newTestStandoff(t, agent.TypeHandcannon)
	s.player.cooldown = 0

	result, fired := s.playerFire()
	if !fired || !result.Hit {
		t.Fatalf("ready shot should land: fired=%v result=%+v", fired, result)
	}
	if _, fired := s.playerFire(); fired {
		t.Error("second shot inside the cooldown window should be refused")
	}

	s.tick(s.player.weapon.FireInterval.Seconds() + 0.01)
	if _, fired := s.playerFire(); !fired {
		t.Error("shot after the cooldown elapses should fire")
	}
}

func TestStandoffMoveForcesReaim(t *testing.T) {
	_, s := newTestStandoff(t, agent.TypeSniper)

	// Burn the opening aim down, then dodge.
	for i := 0; i < 50; i++ {
		s.tick(0.05)
	}
	s.opponent.aim = 0
	s.movePlayer(0, 1)

	if s.opponent.aim <= 0 {
		t.Error("player movement should force the opponent to re-acquire aim")
	}
}

func TestClampToArena(t *testing.T) {
	inside := clampToArena(ai.Vec{X: 3, Y: 4})
	if inside != (ai.Vec{X: 3, Y: 4}) {
		t.Errorf("in-bounds position should pass through: %v", inside)
	}

	outside := clampToArena(ai.Vec{X: 20})
	if math.Abs(outside.Length()-arenaRadius) > 1e-9 {
		t.Errorf("clamped length = %v, want %v", outside.Length(), arenaRadius)
	}
}

package agent

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{TypeBasic, "Basic"},
		{TypeHandcannon, "Handcannon"},
		{TypeShotgun, "Shotgun"},
		{TypeSniper, "Sniper"},
		{TypePlayer, "Player"},
		{Type(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	types := []Type{TypeBasic, TypeHandcannon, TypeShotgun, TypeSniper, TypePlayer}
	for _, typ := range types {
		got, ok := ParseType(typ.ID())
		if !ok || got != typ {
			t.Errorf("ParseType(%q) = %v, %v, want %v, true", typ.ID(), got, ok, typ)
		}
	}

	if _, ok := ParseType("dragon"); ok {
		t.Error("ParseType should reject unknown identifiers")
	}
}

func TestRanged(t *testing.T) {
	if TypeBasic.Ranged() {
		t.Error("Basic should be unarmed")
	}
	if TypePlayer.Ranged() {
		t.Error("Player does not fire during the opponent phase")
	}
	for _, typ := range []Type{TypeHandcannon, TypeShotgun, TypeSniper} {
		if !typ.Ranged() {
			t.Errorf("%v should be ranged", typ)
		}
	}
}

func TestAgentDamageAndHeal(t *testing.T) {
	a := New(TypeHandcannon, hex.Coord{Q: 1, R: 0}, 10)

	if !a.IsAlive() {
		t.Fatal("new agent should be alive")
	}
	if a.ID == uuid.Nil {
		t.Error("agent should receive a non-zero identity")
	}

	if got := a.TakeDamage(4); got != 4 {
		t.Errorf("TakeDamage(4) = %d, want 4", got)
	}
	if a.HP != 6 {
		t.Errorf("HP = %d, want 6", a.HP)
	}

	// Damage past zero is clamped
	if got := a.TakeDamage(100); got != 6 {
		t.Errorf("TakeDamage(100) = %d, want 6", got)
	}
	if a.IsAlive() {
		t.Error("agent at 0 HP should be dead")
	}

	// Healing is clamped at max
	a.HP = 8
	if got := a.Heal(100); got != 2 {
		t.Errorf("Heal(100) = %d, want 2", got)
	}
	if got := a.TakeDamage(-5); got != 0 {
		t.Errorf("TakeDamage(-5) = %d, want 0", got)
	}
}

func TestMovedFlag(t *testing.T) {
	a := New(TypeBasic, hex.Coord{}, 5)

	if a.HasMoved() {
		t.Error("new agent should not report a completed move")
	}
	a.MarkMoved()
	if !a.HasMoved() {
		t.Error("MarkMoved should set the completion flag")
	}
	a.ClearMoved()
	if a.HasMoved() {
		t.Error("ClearMoved should reset the completion flag")
	}
}

// Package agent defines tactical units and their behavior modifiers.
package agent

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
)

// Type identifies an agent's tactical role and weapon loadout.
type Type int

const (
	TypeBasic Type = iota
	TypeHandcannon
	TypeShotgun
	TypeSniper
	TypePlayer
)

// String returns the display name for an agent type.
func (t Type) String() string {
	switch t {
	case TypeBasic:
		return "Basic"
	case TypeHandcannon:
		return "Handcannon"
	case TypeShotgun:
		return "Shotgun"
	case TypeSniper:
		return "Sniper"
	case TypePlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// ID returns the type identifier for data lookup.
func (t Type) ID() string {
	switch t {
	case TypeBasic:
		return "basic"
	case TypeHandcannon:
		return "handcannon"
	case TypeShotgun:
		return "shotgun"
	case TypeSniper:
		return "sniper"
	case TypePlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Ranged reports whether the type carries a weapon that fires during the
// opponent phase. Basic pawns are unarmed.
func (t Type) Ranged() bool {
	return t != TypeBasic && t != TypePlayer
}

// ParseType resolves a data identifier to a Type.
func ParseType(id string) (Type, bool) {
	switch id {
	case "basic":
		return TypeBasic, true
	case "handcannon":
		return TypeHandcannon, true
	case "shotgun":
		return TypeShotgun, true
	case "sniper":
		return TypeSniper, true
	case "player":
		return TypePlayer, true
	default:
		return TypeBasic, false
	}
}

// Agent is a tactical unit on the board: the player or one opponent pawn.
// Position is authoritative here; the movement collaborator only animates
// toward it and reports completion through the moved flag.
type Agent struct {
	ID       uuid.UUID
	Pos      hex.Coord
	Type     Type
	Modifier Modifier
	HP       int
	MaxHP    int

	moved atomic.Bool
}

// New creates an agent of the given type at the given position.
func New(t Type, pos hex.Coord, hp int) *Agent {
	return &Agent{
		ID:    uuid.New(),
		Pos:   pos,
		Type:  t,
		HP:    hp,
		MaxHP: hp,
	}
}

// IsAlive returns true while the agent has HP remaining.
func (a *Agent) IsAlive() bool {
	return a.HP > 0
}

// TakeDamage reduces HP and returns the actual damage taken.
func (a *Agent) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > a.HP {
		actual = a.HP
	}
	a.HP -= actual
	return actual
}

// Heal restores HP and returns the actual amount healed.
func (a *Agent) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if a.HP+actual > a.MaxHP {
		actual = a.MaxHP - a.HP
	}
	a.HP += actual
	return actual
}

// MarkMoved is called by the movement collaborator when a requested move
// has visually completed. Safe to call from another goroutine.
func (a *Agent) MarkMoved() {
	a.moved.Store(true)
}

// ClearMoved resets the completion flag before a new move request.
func (a *Agent) ClearMoved() {
	a.moved.Store(false)
}

// HasMoved reports whether the last requested move has completed.
func (a *Agent) HasMoved() bool {
	return a.moved.Load()
}

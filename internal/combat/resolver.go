// Package combat resolves weapon fire: effective timings from base stats
// and modifiers, and damage application on the receiving end.
package combat

import (
	"time"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
)

// Target is anything a shot can land on.
type Target interface {
	IsAlive() bool
	TakeDamage(amount int) int // Returns actual damage taken
}

// Weapon holds the effective, modifier-adjusted stats an agent fires with.
type Weapon struct {
	Damage       int
	FireInterval time.Duration // Time between shots
	AimDelay     time.Duration // Time to re-acquire the target after it moves
}

// Armed reports whether the weapon can fire at all.
func (w Weapon) Armed() bool {
	return w.Damage > 0
}

// ShotResult contains the outcome of resolving one shot.
type ShotResult struct {
	Hit    bool
	Damage int // Actual damage dealt, after clamping
	Killed bool
}

// Resolver computes effective weapon stats and applies shots. Base stats
// come from the agent registry keyed by type; modifier multipliers come
// from the modifier resolver.
type Resolver struct {
	agents    *gamedata.AgentRegistry
	modifiers *agent.Resolver
}

// NewResolver creates a resolver over the given registries.
func NewResolver(agents *gamedata.AgentRegistry, modifiers *agent.Resolver) *Resolver {
	return &Resolver{
		agents:    agents,
		modifiers: modifiers,
	}
}

// WeaponFor returns the effective weapon for an agent type and modifier.
// The second return is false for unarmed types and unknown types; unarmed
// agents never fire, so callers can skip their aim bookkeeping entirely.
func (r *Resolver) WeaponFor(t agent.Type, m agent.Modifier) (Weapon, bool) {
	def := r.agents.GetByID(t.ID())
	if def == nil || def.Damage <= 0 {
		return Weapon{}, false
	}
	eff := r.modifiers.Resolve(m)
	return Weapon{
		Damage:       def.Damage,
		FireInterval: seconds(def.FireInterval * eff.FireIntervalMult),
		AimDelay:     seconds(def.AimTime * eff.AimDelayMult),
	}, true
}

// MoveSpeed applies the modifier speed multiplier to a base speed in
// tiles per second.
func (r *Resolver) MoveSpeed(base float64, m agent.Modifier) float64 {
	return base * r.modifiers.Resolve(m).MoveSpeedMult
}

// ResolveShot applies one shot from the shooter to the target. Shots from
// dead or unarmed shooters, and shots at already-dead targets, miss
// without side effects.
func (r *Resolver) ResolveShot(shooter *agent.Agent, target Target) ShotResult {
	if shooter == nil || !shooter.IsAlive() {
		return ShotResult{}
	}
	weapon, armed := r.WeaponFor(shooter.Type, shooter.Modifier)
	if !armed {
		return ShotResult{}
	}
	if target == nil || !target.IsAlive() {
		return ShotResult{}
	}
	dealt := target.TakeDamage(weapon.Damage)
	return ShotResult{
		Hit:    true,
		Damage: dealt,
		Killed: !target.IsAlive(),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

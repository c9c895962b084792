package ai

import (
	"math"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
)

// Vec is a continuous 2D position or direction in arena space. Standoff
// movement is owned by the real-time collaborator; this package only
// computes where it should head.
type Vec struct {
	X, Y float64
}

// Length returns the vector magnitude.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit vector in the same direction, or the zero
// vector when the input has no length.
func (v Vec) Normalized() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Scale returns the vector multiplied component-wise.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Sub returns v minus o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Heading returns the unit movement direction for a standoff agent at pos
// engaging a target, driven by the type's preferred distance band:
// toward the target when beyond the band, away when inside it, zero when
// comfortable. Aggressive types ignore the band and always close in until
// the close-range threshold.
func Heading(pos, target Vec, def *gamedata.AgentDef) Vec {
	if def == nil {
		return Vec{}
	}

	toTarget := target.Sub(pos)
	dist := toTarget.Length()
	if dist == 0 {
		return Vec{}
	}

	if def.Aggressive {
		if dist > def.CloseRange {
			return toTarget.Normalized()
		}
		return Vec{}
	}

	if dist > def.Band.Max {
		return toTarget.Normalized()
	}
	if dist < def.Band.Min {
		return toTarget.Normalized().Scale(-1)
	}
	return Vec{}
}

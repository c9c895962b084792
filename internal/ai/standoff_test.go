package ai

import (
	"math"
	"testing"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
)

func TestHeadingBands(t *testing.T) {
	def := &gamedata.AgentDef{Band: gamedata.BandDef{Min: 2, Max: 5}}

	// Beyond the band: head toward the target.
	h := Heading(Vec{X: 10}, Vec{}, def)
	if h.X >= 0 {
		t.Errorf("heading beyond band = %+v, want toward target (negative X)", h)
	}
	if math.Abs(h.Length()-1) > 1e-9 {
		t.Errorf("heading length = %v, want unit", h.Length())
	}

	// Inside the minimum: back away.
	h = Heading(Vec{X: 1}, Vec{}, def)
	if h.X <= 0 {
		t.Errorf("heading inside min = %+v, want away from target", h)
	}

	// Comfortable: hold position.
	if h := Heading(Vec{X: 3}, Vec{}, def); h != (Vec{}) {
		t.Errorf("heading inside band = %+v, want zero", h)
	}
}

func TestHeadingAggressive(t *testing.T) {
	def := &gamedata.AgentDef{
		Band:       gamedata.BandDef{Min: 2, Max: 5},
		Aggressive: true,
		CloseRange: 1.5,
	}

	// Aggressive types ignore the band and keep closing.
	if h := Heading(Vec{X: 3}, Vec{}, def); h.X >= 0 {
		t.Errorf("aggressive heading at mid range = %+v, want toward target", h)
	}
	if h := Heading(Vec{X: 1}, Vec{}, def); h != (Vec{}) {
		t.Errorf("aggressive heading inside close range = %+v, want zero", h)
	}
}

func TestHeadingDegenerateInputs(t *testing.T) {
	def := &gamedata.AgentDef{Band: gamedata.BandDef{Min: 2, Max: 5}}

	if h := Heading(Vec{X: 3}, Vec{X: 3}, def); h != (Vec{}) {
		t.Error("coincident positions should give a zero heading")
	}
	if h := Heading(Vec{}, Vec{X: 9}, nil); h != (Vec{}) {
		t.Error("nil definition should give a zero heading")
	}
}

func TestVecHelpers(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length = %v, want 5", v.Length())
	}

	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Normalized length = %v, want 1", n.Length())
	}
	if (Vec{}).Normalized() != (Vec{}) {
		t.Error("normalizing the zero vector should stay zero")
	}

	if got := v.Scale(2); got != (Vec{X: 6, Y: 8}) {
		t.Errorf("Scale(2) = %+v", got)
	}
	if got := v.Sub(Vec{X: 1, Y: 1}); got != (Vec{X: 2, Y: 3}) {
		t.Errorf("Sub = %+v", got)
	}
}

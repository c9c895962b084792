package agent

import "testing"

func testResolver() *Resolver {
	return NewResolver(ResolverConfig{
		ConfrontationalFireMult: 0.5,
		ObservantAimMult:        0.6,
		ReflexiveAimMult:        0.7,
		FleetSpeedMult:          1.4,
		TenaciousHPBonus:        2,
	})
}

func TestResolveNeutralDefaults(t *testing.T) {
	r := testResolver()
	e := r.Resolve(ModNone)

	if e.FireIntervalMult != 1.0 || e.AimDelayMult != 1.0 || e.MoveSpeedMult != 1.0 {
		t.Errorf("ModNone effects not neutral: %+v", e)
	}
	if e.MaxHPBonus != 0 || e.MaxHPMult != 1.0 {
		t.Errorf("ModNone should not change max HP: %+v", e)
	}
	if e.ExtraMove || e.MidPhaseReaim {
		t.Errorf("ModNone should not grant extra behaviors: %+v", e)
	}
}

func TestResolveEachModifier(t *testing.T) {
	r := testResolver()

	if e := r.Resolve(ModConfrontational); e.FireIntervalMult != 0.5 {
		t.Errorf("Confrontational FireIntervalMult = %v, want 0.5", e.FireIntervalMult)
	}
	if e := r.Resolve(ModObservant); e.AimDelayMult != 0.6 {
		t.Errorf("Observant AimDelayMult = %v, want 0.6", e.AimDelayMult)
	}

	e := r.Resolve(ModReflexive)
	if e.AimDelayMult != 0.7 {
		t.Errorf("Reflexive AimDelayMult = %v, want 0.7", e.AimDelayMult)
	}
	if !e.MidPhaseReaim {
		t.Error("Reflexive should trigger the mid-phase aim refresh")
	}

	e = r.Resolve(ModFleet)
	if e.MoveSpeedMult != 1.4 {
		t.Errorf("Fleet MoveSpeedMult = %v, want 1.4", e.MoveSpeedMult)
	}
	if !e.ExtraMove {
		t.Error("Fleet should grant the extra move")
	}

	if e := r.Resolve(ModTenacious); e.MaxHPBonus != 2 {
		t.Errorf("Tenacious MaxHPBonus = %d, want 2", e.MaxHPBonus)
	}
}

func TestModifierEffectsAreIndependent(t *testing.T) {
	r := testResolver()

	// A modifier must never leak into unrelated effects.
	if e := r.Resolve(ModFleet); e.FireIntervalMult != 1.0 || e.MaxHPBonus != 0 {
		t.Errorf("Fleet leaked into unrelated effects: %+v", e)
	}
	if e := r.Resolve(ModTenacious); e.ExtraMove || e.MoveSpeedMult != 1.0 {
		t.Errorf("Tenacious leaked into unrelated effects: %+v", e)
	}
}

func TestApplyMaxHP(t *testing.T) {
	r := testResolver()

	if got := r.ApplyMaxHP(5, ModTenacious); got != 7 {
		t.Errorf("ApplyMaxHP(5, Tenacious) = %d, want 7", got)
	}
	if got := r.ApplyMaxHP(5, ModFleet); got != 5 {
		t.Errorf("ApplyMaxHP(5, Fleet) = %d, want 5", got)
	}

	// Multiplier-based bonus
	mr := NewResolver(ResolverConfig{TenaciousHPMult: 1.5})
	if got := mr.ApplyMaxHP(4, ModTenacious); got != 6 {
		t.Errorf("ApplyMaxHP(4, Tenacious x1.5) = %d, want 6", got)
	}
}

func TestMovesPerTurn(t *testing.T) {
	r := testResolver()

	if got := r.MovesPerTurn(ModFleet); got != 2 {
		t.Errorf("MovesPerTurn(Fleet) = %d, want 2", got)
	}
	for _, m := range []Modifier{ModNone, ModTenacious, ModConfrontational, ModObservant, ModReflexive} {
		if got := r.MovesPerTurn(m); got != 1 {
			t.Errorf("MovesPerTurn(%v) = %d, want 1", m, got)
		}
	}
}

func TestParseModifierRoundTrip(t *testing.T) {
	mods := []Modifier{ModNone, ModTenacious, ModConfrontational, ModFleet, ModObservant, ModReflexive}
	for _, m := range mods {
		got, ok := ParseModifier(m.ID())
		if !ok || got != m {
			t.Errorf("ParseModifier(%q) = %v, %v, want %v, true", m.ID(), got, ok, m)
		}
	}

	if _, ok := ParseModifier("berserk"); ok {
		t.Error("ParseModifier should reject unknown identifiers")
	}
}

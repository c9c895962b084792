package agent

// Modifier is an optional trait attached to an opponent. An agent holds at
// most one, assigned once at spawn.
type Modifier int

const (
	ModNone Modifier = iota
	ModTenacious
	ModConfrontational
	ModFleet
	ModObservant
	ModReflexive
)

// String returns the display name for a modifier.
func (m Modifier) String() string {
	switch m {
	case ModNone:
		return "None"
	case ModTenacious:
		return "Tenacious"
	case ModConfrontational:
		return "Confrontational"
	case ModFleet:
		return "Fleet"
	case ModObservant:
		return "Observant"
	case ModReflexive:
		return "Reflexive"
	default:
		return "Unknown"
	}
}

// ID returns the modifier identifier for data lookup.
func (m Modifier) ID() string {
	switch m {
	case ModTenacious:
		return "tenacious"
	case ModConfrontational:
		return "confrontational"
	case ModFleet:
		return "fleet"
	case ModObservant:
		return "observant"
	case ModReflexive:
		return "reflexive"
	default:
		return "none"
	}
}

// ParseModifier resolves a data identifier to a Modifier.
func ParseModifier(id string) (Modifier, bool) {
	switch id {
	case "none", "":
		return ModNone, true
	case "tenacious":
		return ModTenacious, true
	case "confrontational":
		return ModConfrontational, true
	case "fleet":
		return ModFleet, true
	case "observant":
		return ModObservant, true
	case "reflexive":
		return ModReflexive, true
	default:
		return ModNone, false
	}
}

// Effects is the resolved behavioral impact of a modifier. Every field
// defaults to a neutral value when the modifier does not apply.
type Effects struct {
	FireIntervalMult float64 // < 1.0 fires faster (Confrontational)
	AimDelayMult     float64 // < 1.0 re-aims faster (Observant, Reflexive)
	MoveSpeedMult    float64 // > 1.0 moves faster in standoff (Fleet)
	MaxHPBonus       int     // flat bonus applied at spawn (Tenacious)
	MaxHPMult        float64 // multiplier applied at spawn (Tenacious)
	ExtraMove        bool    // second move per chess phase (Fleet)
	MidPhaseReaim    bool    // aim refresh after the opponent phase (Reflexive)
}

// ResolverConfig carries the tuning values for modifier effects, normally
// loaded from level data.
type ResolverConfig struct {
	ConfrontationalFireMult float64
	ObservantAimMult        float64
	ReflexiveAimMult        float64
	FleetSpeedMult          float64
	TenaciousHPBonus        int
	TenaciousHPMult         float64
}

// Resolver computes effective combat parameters for a modifier. It is a
// pure lookup with no state beyond its tuning values.
type Resolver struct {
	cfg ResolverConfig
}

// NewResolver creates a resolver with the given tuning values. Zero-valued
// multipliers are normalized to the neutral 1.0.
func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.ConfrontationalFireMult == 0 {
		cfg.ConfrontationalFireMult = 1.0
	}
	if cfg.ObservantAimMult == 0 {
		cfg.ObservantAimMult = 1.0
	}
	if cfg.ReflexiveAimMult == 0 {
		cfg.ReflexiveAimMult = 1.0
	}
	if cfg.FleetSpeedMult == 0 {
		cfg.FleetSpeedMult = 1.0
	}
	if cfg.TenaciousHPMult == 0 {
		cfg.TenaciousHPMult = 1.0
	}
	return &Resolver{cfg: cfg}
}

// Resolve returns the effects of a modifier. Unrelated fields stay neutral.
func (r *Resolver) Resolve(m Modifier) Effects {
	e := Effects{
		FireIntervalMult: 1.0,
		AimDelayMult:     1.0,
		MoveSpeedMult:    1.0,
		MaxHPMult:        1.0,
	}

	switch m {
	case ModConfrontational:
		e.FireIntervalMult = r.cfg.ConfrontationalFireMult
	case ModObservant:
		e.AimDelayMult = r.cfg.ObservantAimMult
	case ModReflexive:
		e.AimDelayMult = r.cfg.ReflexiveAimMult
		e.MidPhaseReaim = true
	case ModFleet:
		e.MoveSpeedMult = r.cfg.FleetSpeedMult
		e.ExtraMove = true
	case ModTenacious:
		e.MaxHPBonus = r.cfg.TenaciousHPBonus
		e.MaxHPMult = r.cfg.TenaciousHPMult
	}

	return e
}

// ApplyMaxHP returns the effective max HP for a base value under the given
// modifier. Applied once at spawn.
func (r *Resolver) ApplyMaxHP(base int, m Modifier) int {
	e := r.Resolve(m)
	hp := int(float64(base)*e.MaxHPMult) + e.MaxHPBonus
	if hp < 1 {
		hp = 1
	}
	return hp
}

// MovesPerTurn returns how many chess-phase moves the modifier grants.
func (r *Resolver) MovesPerTurn(m Modifier) int {
	if r.Resolve(m).ExtraMove {
		return 2
	}
	return 1
}

package gamedata

// ModifierDef carries the tuning values for the modifier system. Fire and
// aim multipliers below 1.0 speed the affected behavior up; the fleet
// multiplier above 1.0 is a standoff movement boost. The Tenacious bonus
// may be flat, a multiplier, or both.
type ModifierDef struct {
	ConfrontationalFireMult float64 `json:"confrontationalFireMult"`
	ObservantAimMult        float64 `json:"observantAimMult"`
	ReflexiveAimMult        float64 `json:"reflexiveAimMult"`
	FleetSpeedMult          float64 `json:"fleetSpeedMult"`
	TenaciousHPBonus        int     `json:"tenaciousHpBonus"`
	TenaciousHPMult         float64 `json:"tenaciousHpMult"`
}

// ModifiersFile represents the structure of modifiers.json.
type ModifiersFile struct {
	Modifiers ModifierDef `json:"modifiers"`
}

// LoadModifiers loads modifier tuning from the embedded modifiers.json file.
func LoadModifiers() (ModifierDef, error) {
	file, err := Load[ModifiersFile]("modifiers.json")
	if err != nil {
		return ModifierDef{}, err
	}
	return file.Modifiers, nil
}

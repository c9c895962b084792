package gamedata

// SpawnDef is one group of opponents to place at level start.
type SpawnDef struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// CoordDef is an axial coordinate in level data.
type CoordDef struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// LevelModifiersDef configures randomized modifier assignment at spawn.
type LevelModifiersDef struct {
	Allowed         []string `json:"allowed"`         // Modifier identifiers to draw from
	Count           int      `json:"count"`           // How many opponents receive one
	AllowDuplicates bool     `json:"allowDuplicates"` // Permit the same modifier twice
}

// LevelDef defines one playable level.
type LevelDef struct {
	Name                 string            `json:"name"`
	BoardRadius          int               `json:"boardRadius"`
	Opponents            []SpawnDef        `json:"opponents"`
	PlayerStart          CoordDef          `json:"playerStart"`
	Modifiers            LevelModifiersDef `json:"modifiers"`
	AllowStacking        bool              `json:"allowStacking"`
	StandoffTriggerCount int               `json:"standoffTriggerCount"`
}

// OpponentCount returns the total number of opponents the level spawns.
func (l *LevelDef) OpponentCount() int {
	total := 0
	for _, s := range l.Opponents {
		total += s.Count
	}
	return total
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

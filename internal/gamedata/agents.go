package gamedata

// BandDef is a preferred engagement distance range for standoff movement,
// in arena units from the target.
type BandDef struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AgentDef defines an agent type loaded from JSON: base stats, weapon
// timings, and standoff movement tuning.
type AgentDef struct {
	ID           string  `json:"id"`           // Unique identifier (e.g., "sniper")
	Name         string  `json:"name"`         // Display name
	Glyph        string  `json:"glyph"`        // Single character for rendering
	Color        string  `json:"color"`        // Hex color code (e.g., "#4169E1")
	HP           int     `json:"hp"`           // Base hit points
	Damage       int     `json:"damage"`       // Damage per shot (0 = unarmed)
	FireInterval float64 `json:"fireInterval"` // Seconds between shots
	AimTime      float64 `json:"aimTime"`      // Seconds to re-acquire the target
	Band         BandDef `json:"band"`         // Standoff engagement band
	Aggressive   bool    `json:"aggressive"`   // Always close in until CloseRange
	CloseRange   float64 `json:"closeRange"`   // Stop distance for aggressive types
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *AgentDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// AgentsFile represents the structure of agents.json.
type AgentsFile struct {
	Agents []AgentDef `json:"agents"`
}

// LoadAgents loads agent definitions from the embedded agents.json file.
func LoadAgents() ([]AgentDef, error) {
	file, err := Load[AgentsFile]("agents.json")
	if err != nil {
		return nil, err
	}
	return file.Agents, nil
}

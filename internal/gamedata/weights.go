package gamedata

// WeightDef defines the chess-mode move-selection weights for one agent
// type. Each field weighs a candidate classification relative to the
// target; a zero weight removes that classification from consideration.
// Diagonal and side weights apply only to types that distinguish them
// (the shotgun's flanking behavior).
type WeightDef struct {
	Type     string `json:"type"`               // Agent type identifier
	Closest  int    `json:"closest"`            // Candidate nearest the target
	Farthest int    `json:"farthest"`           // Candidate farthest from the target
	Diagonal int    `json:"diagonal,omitempty"` // Upward moves (direction 1, 2)
	Side     int    `json:"side,omitempty"`     // Downward moves (direction 4, 5)
	Other    int    `json:"other"`              // Everything else, including "stay"
}

// WeightsFile represents the structure of weights.json.
type WeightsFile struct {
	Weights []WeightDef `json:"weights"`
}

// LoadWeights loads weight definitions from the embedded weights.json file.
func LoadWeights() ([]WeightDef, error) {
	file, err := Load[WeightsFile]("weights.json")
	if err != nil {
		return nil, err
	}
	return file.Weights, nil
}

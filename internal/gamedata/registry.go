package gamedata

import (
	"errors"
	"fmt"
)

// ErrLevelOutOfRange is returned for a level index with no definition.
var ErrLevelOutOfRange = errors.New("level index out of range")

// AgentRegistry holds loaded agent definitions and provides lookup by
// type identifier.
type AgentRegistry struct {
	byID map[string]*AgentDef
	all  []AgentDef
}

// NewAgentRegistry creates a registry from loaded agent definitions.
func NewAgentRegistry(agents []AgentDef) *AgentRegistry {
	registry := &AgentRegistry{
		byID: make(map[string]*AgentDef),
		all:  agents,
	}
	for i := range agents {
		registry.byID[agents[i].ID] = &agents[i]
	}
	return registry
}

// LoadAgentRegistry loads and creates a registry from the embedded agents.json.
func LoadAgentRegistry() (*AgentRegistry, error) {
	agents, err := LoadAgents()
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		return nil, errors.New("no agents loaded from agents.json")
	}
	return NewAgentRegistry(agents), nil
}

// MustLoadAgentRegistry loads a registry, panicking on error.
func MustLoadAgentRegistry() *AgentRegistry {
	registry, err := LoadAgentRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the agent definition with the given ID, or nil.
func (r *AgentRegistry) GetByID(id string) *AgentDef {
	return r.byID[id]
}

// All returns all agent definitions.
func (r *AgentRegistry) All() []AgentDef {
	return r.all
}

// Count returns the number of agent types in the registry.
func (r *AgentRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// WeightRegistry
// =============================================================================

// WeightRegistry holds chess-mode selection weights keyed by agent type.
type WeightRegistry struct {
	byType map[string]*WeightDef
}

// NewWeightRegistry creates a registry from loaded weight definitions.
func NewWeightRegistry(weights []WeightDef) *WeightRegistry {
	registry := &WeightRegistry{byType: make(map[string]*WeightDef)}
	for i := range weights {
		registry.byType[weights[i].Type] = &weights[i]
	}
	return registry
}

// LoadWeightRegistry loads and creates a registry from the embedded weights.json.
func LoadWeightRegistry() (*WeightRegistry, error) {
	weights, err := LoadWeights()
	if err != nil {
		return nil, err
	}
	if len(weights) == 0 {
		return nil, errors.New("no weights loaded from weights.json")
	}
	return NewWeightRegistry(weights), nil
}

// MustLoadWeightRegistry loads a registry, panicking on error.
func MustLoadWeightRegistry() *WeightRegistry {
	registry, err := LoadWeightRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByType returns the weights for an agent type identifier, or nil.
func (r *WeightRegistry) GetByType(id string) *WeightDef {
	return r.byType[id]
}

// =============================================================================
// LevelRegistry
// =============================================================================

// LevelRegistry holds the level sequence and validates indices at the
// state-machine boundary before gameplay starts.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	return &LevelRegistry{levels: levels}
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ByIndex returns the level definition at the given zero-based index.
func (r *LevelRegistry) ByIndex(index int) (*LevelDef, error) {
	if index < 0 || index >= len(r.levels) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, index, len(r.levels))
	}
	return &r.levels[index], nil
}

// Count returns the number of levels.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}

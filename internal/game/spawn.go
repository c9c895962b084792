package game

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/ai"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/board"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/telemetry"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/turn"
)

// spawnLevel builds a fresh board for the level definition: the player at
// their start tile, opponents on the tiles farthest from them, and
// randomly assigned modifiers. The scheduler and selector are rebuilt
// around the new board.
func (g *Game) spawnLevel(ctx context.Context, level *gamedata.LevelDef) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.spawn_level")
	span.SetAttributes(
		attribute.String("level", level.Name),
		attribute.Int("board_radius", level.BoardRadius),
		attribute.Int("opponents", level.OpponentCount()),
	)
	defer span.End()

	ix := board.New(level.BoardRadius, level.AllowStacking)

	playerHP := 1
	if def := g.agents.GetByID(agent.TypePlayer.ID()); def != nil {
		playerHP = def.HP
	}
	start := hex.Coord{Q: level.PlayerStart.Q, R: level.PlayerStart.R}
	player := agent.New(agent.TypePlayer, start, playerHP)
	if err := ix.Register(player); err != nil {
		return fmt.Errorf("placing player: %w", err)
	}

	positions := spawnPositions(level.BoardRadius, start, level.OpponentCount())
	if len(positions) < level.OpponentCount() {
		return fmt.Errorf("level %q: %d opponents do not fit on radius %d",
			level.Name, level.OpponentCount(), level.BoardRadius)
	}

	next := 0
	var opponents []*agent.Agent
	for _, group := range level.Opponents {
		t, ok := agent.ParseType(group.Type)
		if !ok {
			return fmt.Errorf("level %q: unknown opponent type %q", level.Name, group.Type)
		}
		hp := 1
		if def := g.agents.GetByID(group.Type); def != nil {
			hp = def.HP
		}
		for n := 0; n < group.Count; n++ {
			a := agent.New(t, positions[next], hp)
			next++
			if err := ix.Register(a); err != nil {
				return fmt.Errorf("placing %s: %w", group.Type, err)
			}
			opponents = append(opponents, a)
		}
	}

	g.assignModifiers(opponents, level.Modifiers)

	g.boardIdx = ix
	phaseRNG := rand.New(rand.NewSource(deriveSeed(g.cfg.Seed, "phase/"+level.Name)))
	selector := ai.NewSelector(g.weights, ix, level.AllowStacking, phaseRNG)
	g.scheduler = turn.New(ix, selector, g, g.turnCfg)
	return nil
}

// spawnPositions returns the n in-bounds tiles farthest from the player
// start, farthest first, with a fixed tie order so placement is stable.
func spawnPositions(radius int, playerStart hex.Coord, n int) []hex.Coord {
	var tiles []hex.Coord
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := hex.Coord{Q: q, R: r}
			if c.Distance(hex.Coord{}) > radius || c == playerStart {
				continue
			}
			tiles = append(tiles, c)
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		di, dj := tiles[i].Distance(playerStart), tiles[j].Distance(playerStart)
		if di != dj {
			return di > dj
		}
		if tiles[i].R != tiles[j].R {
			return tiles[i].R < tiles[j].R
		}
		return tiles[i].Q < tiles[j].Q
	})
	if n > len(tiles) {
		n = len(tiles)
	}
	return tiles[:n]
}

// assignModifiers hands out modifiers to a random subset of opponents per
// the level's allow-list. When duplicates are disallowed the list is a
// one-use deck. Tenacious recipients get their HP bonus immediately.
func (g *Game) assignModifiers(opponents []*agent.Agent, cfg gamedata.LevelModifiersDef) {
	if cfg.Count <= 0 || len(cfg.Allowed) == 0 || len(opponents) == 0 {
		return
	}

	pool := make([]agent.Modifier, 0, len(cfg.Allowed))
	for _, id := range cfg.Allowed {
		if m, ok := agent.ParseModifier(id); ok {
			pool = append(pool, m)
		}
	}
	if len(pool) == 0 {
		return
	}

	rng := rand.New(rand.NewSource(deriveSeed(g.cfg.Seed, "modifiers")))

	recipients := make([]*agent.Agent, len(opponents))
	copy(recipients, opponents)
	rng.Shuffle(len(recipients), func(i, j int) {
		recipients[i], recipients[j] = recipients[j], recipients[i]
	})

	count := cfg.Count
	if count > len(recipients) {
		count = len(recipients)
	}

	if cfg.AllowDuplicates {
		for i := 0; i < count; i++ {
			g.applyModifier(recipients[i], pool[rng.Intn(len(pool))])
		}
		return
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if count > len(pool) {
		count = len(pool)
	}
	for i := 0; i < count; i++ {
		g.applyModifier(recipients[i], pool[i])
	}
}

func (g *Game) applyModifier(a *agent.Agent, m agent.Modifier) {
	a.Modifier = m
	a.MaxHP = g.modifiers.ApplyMaxHP(a.MaxHP, m)
	a.HP = a.MaxHP
}

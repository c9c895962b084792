package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/agent"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/board"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/gamedata"
	"github.com/Test-Plus-XD/2D-Chess-Project-sub000/internal/hex"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	agents *gamedata.AgentRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, agents *gamedata.AgentRegistry) *Renderer {
	return &Renderer{screen: screen, agents: agents}
}

// project maps an axial coordinate to terminal cell offsets relative to
// the board center. Each row shifts right by half a tile, spread across
// two columns so the hex layout reads on a character grid.
func project(c hex.Coord) (dx, dy int) {
	return 2*c.Q + c.R, c.R
}

// RenderBoard draws the hex grid and every living agent on it.
func (r *Renderer) RenderBoard(ix *board.Index, radius int) {
	r.screen.Clear()

	width, height := r.screen.Size()
	cx, cy := width/2, height/2

	gridStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for q := -radius; q <= radius; q++ {
		for rr := -radius; rr <= radius; rr++ {
			c := hex.Coord{Q: q, R: rr}
			if c.Distance(hex.Coord{}) > radius {
				continue
			}
			dx, dy := project(c)
			r.screen.SetContent(cx+dx, cy+dy, '.', gridStyle)
		}
	}

	for _, a := range ix.All() {
		if !a.IsAlive() {
			continue
		}
		dx, dy := project(a.Pos)
		r.screen.SetContent(cx+dx, cy+dy, r.glyphFor(a), r.styleFor(a))
	}

	r.screen.Show()
}

func (r *Renderer) glyphFor(a *agent.Agent) rune {
	if def := r.agents.GetByID(a.Type.ID()); def != nil {
		return def.GlyphRune()
	}
	return '?'
}

// styleFor colors an agent by type, tinted toward red as it loses HP.
func (r *Renderer) styleFor(a *agent.Agent) tcell.Style {
	def := r.agents.GetByID(a.Type.ID())
	if def == nil {
		return tcell.StyleDefault
	}
	base, err := colorful.Hex(def.Color)
	if err != nil {
		return tcell.StyleDefault
	}
	frac := 1.0
	if a.MaxHP > 0 {
		frac = float64(a.HP) / float64(a.MaxHP)
	}
	tinted := healthTint(base, frac)
	red, green, blue := tinted.RGB255()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
	if a.Type == agent.TypePlayer {
		style = style.Bold(true)
	}
	return style
}

// healthTint blends a base color toward a wound red as frac drops from
// 1 (unhurt) to 0 (dead). HCL blending keeps intermediate hues sane.
func healthTint(base colorful.Color, frac float64) colorful.Color {
	if frac >= 1 {
		return base
	}
	if frac < 0 {
		frac = 0
	}
	wound := colorful.Color{R: 0.55, G: 0.05, B: 0.05}
	return base.BlendHcl(wound, 1-frac).Clamped()
}

// RenderStatus displays a status line at the bottom of the screen.
func (r *Renderer) RenderStatus(msg string) {
	_, height := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, height-1, ch, style)
	}
	r.screen.Show()
}

// RenderBanner centers a short message block, used for menus and the
// victory and defeat screens.
func (r *Renderer) RenderBanner(lines ...string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	top := height/2 - len(lines)/2
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for row, line := range lines {
		start := width/2 - len(line)/2
		for i, ch := range line {
			r.screen.SetContent(start+i, top+row, ch, style)
		}
	}
	r.screen.Show()
}

// RenderPlayerHP draws the player health readout in the top left corner.
func (r *Renderer) RenderPlayerHP(player *agent.Agent) {
	if player == nil {
		return
	}
	msg := fmt.Sprintf("HP %d/%d", player.HP, player.MaxHP)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, 0, ch, style)
	}
	r.screen.Show()
}

// DuelSprite is one combatant to draw in the standoff arena, positioned
// in tile units relative to the arena center.
type DuelSprite struct {
	X, Y  float64
	Agent *agent.Agent
}

// RenderDuel draws the circular standoff arena and its combatants.
func (r *Renderer) RenderDuel(radius float64, sprites ...DuelSprite) {
	r.screen.Clear()

	width, height := r.screen.Size()
	cx, cy := width/2, height/2

	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	ir := int(radius)
	for y := -ir; y <= ir; y++ {
		for x := -ir; x <= ir; x++ {
			if float64(x*x+y*y) > radius*radius {
				continue
			}
			r.screen.SetContent(cx+2*x, cy+y, '.', floorStyle)
		}
	}

	for _, s := range sprites {
		if s.Agent == nil || !s.Agent.IsAlive() {
			continue
		}
		x, y := int(s.X), int(s.Y)
		r.screen.SetContent(cx+2*x, cy+y, r.glyphFor(s.Agent), r.styleFor(s.Agent))
	}

	r.screen.Show()
}

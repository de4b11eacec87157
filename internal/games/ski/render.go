package ski

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-ski/internal/core"
	"github.com/vovakirdan/tui-ski/internal/ecs"
)

// World units covered by one screen cell.
const (
	UnitsPerColumn = 4.0
	UnitsPerRow    = 8.0
)

// Visual characters.
const (
	EdgeChar  = '│'
	TrackChar = '·'
)

// camera maps world positions to screen cells. Row 0 holds the HUD.
type camera struct {
	top     float64 // world Y of screen row 1
	originX int     // screen column of world X 0
}

func (c camera) cell(p core.Vec2) (int, int) {
	col := c.originX + int(math.Floor(p.X/UnitsPerColumn))
	row := 1 + int(math.Floor((c.top-p.Y)/UnitsPerRow))
	return col, row
}

// Render draws the slope around player 1, the HUD, and the phase overlay.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	w := s.world

	slopeCols := int(w.size.X / UnitsPerColumn)
	cam := camera{originX: core.Max(0, (dst.Width()-slopeCols)/2)}
	if p1, ok := w.Player(core.Player1); ok {
		cam.top = ecs.MustGet[*Render](p1).Pos.Y + s.cfg.Player.CameraOffset
	}

	for row := 1; row < dst.Height(); row++ {
		dst.SetColored(cam.originX-1, row, EdgeChar, core.ColorGray)
		dst.SetColored(cam.originX+slopeCols, row, EdgeChar, core.ColorGray)
	}

	var players []*ecs.Entity
	for _, e := range w.Entities() {
		r := ecs.MustGet[*Render](e)
		switch {
		case ecs.Has[*FinishLine](e):
			_, row := cam.cell(r.Pos.Add(core.V(0, 64)))
			dst.DrawHLine(cam.originX, row, slopeCols, r.Glyph, r.Color)
		case ecs.Has[*Gate](e):
			drawGate(dst, cam, r, ecs.MustGet[*Gate](e))
		case ecs.Has[*Skier](e):
			players = append(players, e)
		default:
			col, row := cam.cell(r.Pos)
			dst.SetColored(col, row, r.Glyph, r.Color)
		}
	}

	// Player 1 is drawn last so it stays on top.
	for i := len(players) - 1; i >= 0; i-- {
		e := players[i]
		r := ecs.MustGet[*Render](e)
		col, row := cam.cell(r.Pos)
		if anim, ok := ecs.Get[*Animation](e); ok {
			dst.SetColored(col, row-1, TrackChar, core.ColorGray)
			dst.SetColored(col, row, anim.Frame(), r.Color)
		}
	}

	s.drawHUD(dst)
	drawOverlay(dst, s.hud.Overlay)
}

func drawGate(dst *core.Screen, cam camera, r *Render, g *Gate) {
	for side, dx := range [2]float64{-16, 16} {
		col, row := cam.cell(r.Pos.Add(core.V(dx, 0)))
		glyph := r.Glyph
		color := r.Color
		if g.Crooked[side] {
			glyph = GlyphBent
			color = core.ColorPostBent
		}
		dst.SetColored(col, row, glyph, color)
	}
	if g.Awarded > 0 {
		col, row := cam.cell(r.Pos.Add(core.V(24, 0)))
		dst.DrawTextColored(col, row, fmt.Sprintf("+%d", g.Awarded), core.ColorBrightGreen)
	}
}

func (s *Session) drawHUD(dst *core.Screen) {
	h := s.hud
	line := fmt.Sprintf(" SCORE %s  TIME %s  %s  %s  BEST %s ", h.Score, h.Time, h.Level, h.Multiplier, h.Best)
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorHUD)
	dst.DrawTextColored(0, 0, line, core.ColorHUD)
}

func drawOverlay(dst *core.Screen, lines []string) {
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l, core.ColorBrightYellow)
	}
}

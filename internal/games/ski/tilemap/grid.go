package tilemap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-ski/internal/core"
)

// ErrOutOfRange is returned for tile lookups outside the grid.
var ErrOutOfRange = errors.New("tilemap: position out of range")

// Layout fixes the grid size and the world size of a single tile.
type Layout struct {
	Columns    int
	Rows       int
	TileWidth  float64
	TileHeight float64
}

// DefaultLayout is a 16x128 grid of 16x32 tiles.
func DefaultLayout() Layout {
	return Layout{Columns: 16, Rows: 128, TileWidth: 16, TileHeight: 32}
}

// Grid is a decoded level. It is not modified after Decode returns.
type Grid struct {
	layout Layout
	tiles  [][]TileType
}

// NewGrid creates a grid filled with fill.
func NewGrid(layout Layout, fill TileType) *Grid {
	tiles := make([][]TileType, layout.Rows)
	for row := range tiles {
		tiles[row] = make([]TileType, layout.Columns)
		for col := range tiles[row] {
			tiles[row][col] = fill
		}
	}
	return &Grid{layout: layout, tiles: tiles}
}

// Layout returns the grid layout.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Columns returns the grid width in tiles.
func (g *Grid) Columns() int {
	return g.layout.Columns
}

// Rows returns the grid height in tiles.
func (g *Grid) Rows() int {
	return g.layout.Rows
}

// Tile returns the tile at (col, row).
func (g *Grid) Tile(col, row int) (TileType, error) {
	if !g.contains(col, row) {
		return TileAir, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfRange, col, row, g.layout.Columns, g.layout.Rows)
	}
	return g.tiles[row][col], nil
}

// WorldSize returns the grid extent in world units.
func (g *Grid) WorldSize() core.Vec2 {
	return core.V(
		float64(g.layout.Columns)*g.layout.TileWidth,
		float64(g.layout.Rows)*g.layout.TileHeight,
	)
}

// Count returns how many cells hold t.
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, row := range g.tiles {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// String renders the grid back to level-file text. Air cells print as '~'.
func (g *Grid) String() string {
	var sb strings.Builder
	for row, tiles := range g.tiles {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range tiles {
			if r := t.Rune(); r != 0 {
				sb.WriteRune(r)
			} else {
				sb.WriteRune('~')
			}
		}
	}
	return sb.String()
}

func (g *Grid) contains(col, row int) bool {
	return col >= 0 && col < g.layout.Columns && row >= 0 && row < g.layout.Rows
}

func (g *Grid) set(col, row int, t TileType) {
	g.tiles[row][col] = t
}

// Skipped records a character that Decode did not place.
type Skipped struct {
	Line   int // 1-based line in the source text
	Column int // 1-based character position in the line
	Char   rune
}

// DecodeReport lists what Decode tolerated.
type DecodeReport struct {
	Lines        int       // lines in the source text
	Unrecognized []Skipped // characters that are not tile codes
	Clipped      []Skipped // tile characters outside the grid
}

// Clean reports whether every character was placed.
func (r DecodeReport) Clean() bool {
	return len(r.Unrecognized) == 0 && len(r.Clipped) == 0
}

// Decode parses level text into a grid of the given layout.
// Rows and columns missing from the text keep the Air fill. Unrecognized
// characters leave their cell untouched, and characters beyond the layout
// are dropped; both are listed in the report.
func Decode(text string, layout Layout) (*Grid, DecodeReport) {
	grid := NewGrid(layout, TileAir)
	var report DecodeReport

	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return grid, report
	}

	lines := strings.Split(text, "\n")
	report.Lines = len(lines)
	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		col := 0
		for _, ch := range line {
			tile, ok := TileFromRune(ch)
			switch {
			case !ok:
				report.Unrecognized = append(report.Unrecognized, Skipped{Line: row + 1, Column: col + 1, Char: ch})
			case !grid.contains(col, row):
				report.Clipped = append(report.Clipped, Skipped{Line: row + 1, Column: col + 1, Char: ch})
			default:
				grid.set(col, row, tile)
			}
			col++
		}
	}
	return grid, report
}

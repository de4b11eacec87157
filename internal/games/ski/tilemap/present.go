package tilemap

import "github.com/vovakirdan/tui-ski/internal/core"

// Creator builds scene content for a tile. It is called for every cell,
// Air included, and decides on its own whether a tile produces anything.
type Creator interface {
	CreateNodeOf(tile TileType, location core.Vec2)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(tile TileType, location core.Vec2)

// CreateNodeOf calls f.
func (f CreatorFunc) CreateNodeOf(tile TileType, location core.Vec2) {
	f(tile, location)
}

// Location returns the world position of a cell. Row 0 is the top of the
// slope; every following row lies one tile height further down.
func (g *Grid) Location(col, row int) core.Vec2 {
	return core.V(
		float64(col)*g.layout.TileWidth,
		-float64(row)*g.layout.TileHeight,
	)
}

// Present walks the grid row by row, left to right, and hands every cell
// to c.
func Present(g *Grid, c Creator) {
	for row := 0; row < g.layout.Rows; row++ {
		for col := 0; col < g.layout.Columns; col++ {
			c.CreateNodeOf(g.tiles[row][col], g.Location(col, row))
		}
	}
}

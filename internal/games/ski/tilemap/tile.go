// Package tilemap decodes ski level files into tile grids and walks them
// to populate a scene.
package tilemap

// TileType is the code stored in every grid cell.
type TileType int

const (
	TileAir TileType = iota
	TileSnow
	TileTree
	TileRock
	TilePostLeft
	TileGate
	TilePostRight
	TileStart
	TileFinish
	TileOpponent
)

// tileChars maps level-file characters to tile codes.
// Air has no character; it is only the default fill.
var tileChars = map[rune]TileType{
	' ': TileSnow,
	'G': TileTree,
	'm': TileRock,
	'q': TilePostLeft,
	'.': TileGate,
	'p': TilePostRight,
	'I': TileStart,
	'F': TileFinish,
	'O': TileOpponent,
}

// TileFromRune returns the tile for a level-file character.
func TileFromRune(r rune) (TileType, bool) {
	t, ok := tileChars[r]
	return t, ok
}

// Rune returns the level-file character for the tile.
// Air has no character and returns 0.
func (t TileType) Rune() rune {
	for r, tt := range tileChars {
		if tt == t {
			return r
		}
	}
	return 0
}

// String returns a human-readable name for the tile.
func (t TileType) String() string {
	switch t {
	case TileAir:
		return "Air"
	case TileSnow:
		return "Snow"
	case TileTree:
		return "Tree"
	case TileRock:
		return "Rock"
	case TilePostLeft:
		return "PostLeft"
	case TileGate:
		return "Gate"
	case TilePostRight:
		return "PostRight"
	case TileStart:
		return "Start"
	case TileFinish:
		return "Finish"
	case TileOpponent:
		return "Opponent"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is a known tile code.
func (t TileType) Valid() bool {
	return t >= TileAir && t <= TileOpponent
}

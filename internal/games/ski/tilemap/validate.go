package tilemap

import "fmt"

// Problem is a structural issue found by Validate.
type Problem struct {
	Col, Row int
	Message  string
}

func (p Problem) String() string {
	if p.Col < 0 {
		return p.Message
	}
	return fmt.Sprintf("row %d col %d: %s", p.Row+1, p.Col+1, p.Message)
}

// Validate checks that a grid is playable: one start, at least one finish,
// and every gate marked with a left post before it and a right post after it.
func Validate(g *Grid) []Problem {
	var problems []Problem

	switch starts := g.Count(TileStart); {
	case starts == 0:
		problems = append(problems, Problem{Col: -1, Message: "no start tile 'I'"})
	case starts > 1:
		problems = append(problems, Problem{Col: -1, Message: fmt.Sprintf("%d start tiles 'I', expected 1 (use 'O' for an opponent)", starts)})
	}
	if g.Count(TileFinish) == 0 {
		problems = append(problems, Problem{Col: -1, Message: "no finish tile 'F'"})
	}

	for row := 0; row < g.layout.Rows; row++ {
		for col := 0; col < g.layout.Columns; col++ {
			if g.tiles[row][col] != TileGate {
				continue
			}
			if left, err := g.Tile(col-1, row); err != nil || left != TilePostLeft {
				problems = append(problems, Problem{Col: col, Row: row, Message: "gate without left post 'q'"})
			}
			if right, err := g.Tile(col+1, row); err != nil || right != TilePostRight {
				problems = append(problems, Problem{Col: col, Row: row, Message: "gate without right post 'p'"})
			}
		}
	}
	return problems
}

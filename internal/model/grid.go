package model

// Position identifies a cell on the grid
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Add returns the position offset by the given delta
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Directions lists the 8 adjacency offsets (edge or corner neighbors),
// starting east and proceeding clockwise
var Directions = [8]Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
	{Row: -1, Col: -1},
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
}

// Grid is the rectangular grapheme matrix for one round.
// A zero rune means the cell has not been filled yet; the board generator
// never hands out a grid with unfilled cells.
type Grid struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells [][]rune `json:"cells"` // Row-major: Cells[row][col]
}

// NewGrid creates an empty grid of the given dimensions
func NewGrid(rows, cols int) *Grid {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: cells,
	}
}

// Get returns the grapheme at the given position, or 0 if out of bounds
func (g *Grid) Get(pos Position) rune {
	if !g.InBounds(pos) {
		return 0
	}
	return g.Cells[pos.Row][pos.Col]
}

// Set places a grapheme at the given position
func (g *Grid) Set(pos Position, grapheme rune) {
	if g.InBounds(pos) {
		g.Cells[pos.Row][pos.Col] = grapheme
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	cells := make([][]rune, len(g.Cells))
	for i, row := range g.Cells {
		cells[i] = append([]rune(nil), row...)
	}
	return &Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// InBounds returns true if the position is within the grid
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows && pos.Col >= 0 && pos.Col < g.Cols
}

// IsEmpty returns true if the cell at the given position is unfilled
func (g *Grid) IsEmpty(pos Position) bool {
	return g.Get(pos) == 0
}

// FullyPopulated returns true if every cell holds a grapheme
func (g *Grid) FullyPopulated() bool {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Cells[row][col] == 0 {
				return false
			}
		}
	}
	return true
}

// PlacementMode identifies how a word was embedded into a grid
type PlacementMode string

const (
	PlacementStraight PlacementMode = "straight" // one of the 8 line directions
	PlacementWinding  PlacementMode = "winding"  // snaking path found by DFS
)

// Placement records where an embedded word landed on the grid.
// Produced by the board generator for round bookkeeping and tests;
// consumers of the grid itself never need it.
type Placement struct {
	Word string        `json:"word"`
	Mode PlacementMode `json:"mode"`
	Path []Position    `json:"path"`
}

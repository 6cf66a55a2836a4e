package world

import (
	"fmt"
	"math/rand"
	"strings"
)

// Grid represents the game map with encapsulated tile storage.
// Dimensions are fixed after construction and every row has the same
// length. Coordinate access is bounds-checked: out-of-range access is
// a programming error and panics, it is never silently clamped.
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
}

// NewGrid creates a grid of the given dimensions with every tile set
// to fill.
func NewGrid(width, height int, fill Tile) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}

	return &Grid{tiles: tiles, width: width, height: height}
}

// Parse builds a grid from a block of single-character rows.
// Unrecognized characters default to floor; rows shorter than the
// widest row are right-padded with floor so the grid stays rectangular.
func Parse(text string) *Grid {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	return ParseRows(lines)
}

// ParseRows builds a grid from pre-split rows. See Parse.
func ParseRows(lines []string) *Grid {
	rows := make([][]Tile, 0, len(lines))
	width := 0
	for _, line := range lines {
		row := make([]Tile, 0, len(line))
		for _, ch := range line {
			row = append(row, TileFromSymbol(ch))
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 || width == 0 {
		return NewGrid(1, 1, FloorTile())
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, FloorTile())
		}
		rows[i] = row
	}

	return &Grid{tiles: rows, width: width, height: len(rows)}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at the given position. Panics if out of bounds.
func (g *Grid) At(x, y int) Tile {
	g.mustContain(x, y)
	return g.tiles[y][x]
}

// Set overwrites the tile at the given position. Panics if out of bounds.
func (g *Grid) Set(x, y int, t Tile) {
	g.mustContain(x, y)
	g.tiles[y][x] = t
}

// ClearToFloor resets the tile at the given position to plain floor.
func (g *Grid) ClearToFloor(x, y int) {
	g.Set(x, y, FloorTile())
}

func (g *Grid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid access out of range: (%d,%d) outside %dx%d", x, y, g.width, g.height))
	}
}

// FindSymbol returns the first position holding the given symbol in
// row-major order.
func (g *Grid) FindSymbol(sym rune) (Position, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x].Symbol == sym {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// EmptyCells returns every plain walkable floor position in row-major
// order.
func (g *Grid) EmptyCells() []Position {
	var empties []Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y][x].IsFloor() {
				empties = append(empties, Position{X: x, Y: y})
			}
		}
	}
	return empties
}

// RandomEmptyCell returns a uniformly chosen plain floor position, or
// ok=false if the grid has none.
func (g *Grid) RandomEmptyCell(rng *rand.Rand) (Position, bool) {
	empties := g.EmptyCells()
	if len(empties) == 0 {
		return Position{}, false
	}
	return empties[rng.Intn(len(empties))], true
}

// ForEachTile iterates over all tiles in the grid, calling the provided
// function for each.
func (g *Grid) ForEachTile(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y][x])
		}
	}
}

// Validate checks the grid for common issues and returns an error
// description or empty string if valid.
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	for _, row := range g.tiles {
		if len(row) != g.width {
			return "Grid has ragged rows"
		}
	}

	if len(g.EmptyCells()) == 0 {
		if _, ok := g.FindSymbol(SymbolExit); !ok {
			return "Grid has no walkable floor"
		}
	}

	return ""
}

// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileKind identifies what a tile is, for fast dispatch without
// comparing symbols.
type TileKind int

// Tile kinds
const (
	KindFloor TileKind = iota
	KindWall
	KindExit
	KindCheese
	KindHeal
	KindStart
	KindEnemy
)

// Symbols used by level files and renderers. One character per tile.
const (
	SymbolFloor  = ' '
	SymbolWall   = '#'
	SymbolExit   = 'X'
	SymbolCheese = 'C'
	SymbolHeal   = 'H'
	SymbolStart  = 'P'
	SymbolEnemy  = 'E'
)

// Tile is the value-type content descriptor of one grid position.
// Mutating the world means overwriting the tile at a coordinate:
// a consumed pickup becomes a floor tile, a bombed wall becomes a
// floor tile.
type Tile struct {
	Kind     TileKind
	Symbol   rune
	Walkable bool
}

// FloorTile returns a plain walkable floor tile.
func FloorTile() Tile {
	return Tile{Kind: KindFloor, Symbol: SymbolFloor, Walkable: true}
}

// WallTile returns an impassable wall tile.
func WallTile() Tile {
	return Tile{Kind: KindWall, Symbol: SymbolWall, Walkable: false}
}

// ExitTile returns the level exit tile.
func ExitTile() Tile {
	return Tile{Kind: KindExit, Symbol: SymbolExit, Walkable: true}
}

// TileForKind returns the canonical tile for a kind.
func TileForKind(kind TileKind) Tile {
	switch kind {
	case KindWall:
		return WallTile()
	case KindExit:
		return ExitTile()
	case KindCheese:
		return Tile{Kind: KindCheese, Symbol: SymbolCheese, Walkable: true}
	case KindHeal:
		return Tile{Kind: KindHeal, Symbol: SymbolHeal, Walkable: true}
	case KindStart:
		return Tile{Kind: KindStart, Symbol: SymbolStart, Walkable: true}
	case KindEnemy:
		return Tile{Kind: KindEnemy, Symbol: SymbolEnemy, Walkable: true}
	default:
		return FloorTile()
	}
}

// TileFromSymbol maps a level-file character to a tile.
// Unrecognized characters default to floor.
func TileFromSymbol(sym rune) Tile {
	switch sym {
	case SymbolWall:
		return WallTile()
	case SymbolExit:
		return ExitTile()
	case SymbolCheese:
		return TileForKind(KindCheese)
	case SymbolHeal:
		return TileForKind(KindHeal)
	case SymbolStart:
		return TileForKind(KindStart)
	case SymbolEnemy:
		return TileForKind(KindEnemy)
	default:
		return FloorTile()
	}
}

// IsFloor reports whether the tile is plain walkable floor with nothing
// on it.
func (t Tile) IsFloor() bool {
	return t.Kind == KindFloor
}

// Position is a grid coordinate. X grows east, Y grows south.
type Position struct {
	X int
	Y int
}

// ManhattanDistance returns the grid walking distance ignoring walls.
func (p Position) ManhattanDistance(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

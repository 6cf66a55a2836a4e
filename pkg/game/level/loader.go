// Package level loads hand-authored maps from plain text files.
// One row per line, one character per tile: '#' wall, ' ' floor,
// 'X' exit, plus placement markers ('P' start, 'E' enemy, 'C' cheese,
// 'H' heal) that are consumed at load time and cleared to floor.
package level

import (
	"fmt"
	"io"
	"os"
	"strings"

	"micemaze/pkg/engine/world"
)

// Level is the result of loading one map file. Marker positions are
// reported separately so the session can spawn entities there; the
// tiles themselves are reset to floor.
type Level struct {
	Grid  *world.Grid
	Start world.Position

	// HasStart is false when the map carried no 'P' marker and Start
	// is a fallback position.
	HasStart bool

	Enemies []world.Position
	Cheese  []world.Position
	Heals   []world.Position

	// Warnings lists recoverable content problems (no start marker,
	// no exit). A degraded map still loads.
	Warnings []string
}

// Load reads and parses a level file.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses level text from a reader.
func Read(r io.Reader) (*Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(string(data)), nil
}

// Parse builds a Level from raw level text. Parsing never fails:
// malformed content degrades to a playable map with warnings.
func Parse(text string) *Level {
	grid := world.Parse(strings.ReplaceAll(text, "\r\n", "\n"))
	lvl := &Level{Grid: grid}

	grid.ForEachTile(func(x, y int, t world.Tile) {
		pos := world.Position{X: x, Y: y}
		switch t.Kind {
		case world.KindStart:
			if !lvl.HasStart {
				lvl.Start = pos
				lvl.HasStart = true
			}
		case world.KindEnemy:
			lvl.Enemies = append(lvl.Enemies, pos)
		case world.KindCheese:
			lvl.Cheese = append(lvl.Cheese, pos)
		case world.KindHeal:
			lvl.Heals = append(lvl.Heals, pos)
		}
	})

	// Markers are consumed: clear them back to floor. Cheese and heal
	// markers stay on the map as live pickup tiles.
	for _, pos := range lvl.Enemies {
		grid.ClearToFloor(pos.X, pos.Y)
	}
	if lvl.HasStart {
		grid.ClearToFloor(lvl.Start.X, lvl.Start.Y)
	}

	if !lvl.HasStart {
		lvl.Warnings = append(lvl.Warnings, "level has no start marker, using first floor cell")
		if empties := grid.EmptyCells(); len(empties) > 0 {
			lvl.Start = empties[0]
		}
	}

	if _, ok := grid.FindSymbol(world.SymbolExit); !ok {
		lvl.Warnings = append(lvl.Warnings, "level has no exit")
	}

	return lvl
}

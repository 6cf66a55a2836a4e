package level

import (
	"strings"
	"testing"

	"micemaze/pkg/engine/world"
)

func TestParseConsumesMarkers(t *testing.T) {
	lvl := Parse(
		"#####\n" +
			"#P E#\n" +
			"#C H#\n" +
			"#  X#\n" +
			"#####")

	if !lvl.HasStart {
		t.Fatal("start marker not found")
	}
	if lvl.Start != (world.Position{X: 1, Y: 1}) {
		t.Errorf("Start = %v, want (1,1)", lvl.Start)
	}
	// Start and enemy markers are cleared to floor.
	if !lvl.Grid.At(1, 1).IsFloor() {
		t.Error("start marker tile not cleared to floor")
	}
	if len(lvl.Enemies) != 1 || lvl.Enemies[0] != (world.Position{X: 3, Y: 1}) {
		t.Errorf("Enemies = %v, want [(3,1)]", lvl.Enemies)
	}
	if !lvl.Grid.At(3, 1).IsFloor() {
		t.Error("enemy marker tile not cleared to floor")
	}

	// Pickup markers stay on the map as live tiles.
	if lvl.Grid.At(1, 2).Kind != world.KindCheese {
		t.Error("cheese marker did not survive as a pickup tile")
	}
	if lvl.Grid.At(3, 2).Kind != world.KindHeal {
		t.Error("heal marker did not survive as a pickup tile")
	}
	if len(lvl.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none for a complete map", lvl.Warnings)
	}
}

func TestParsePadsShortRows(t *testing.T) {
	lvl := Parse("#####\n#P\n#####")
	if lvl.Grid.Width() != 5 {
		t.Errorf("Width = %d, want 5", lvl.Grid.Width())
	}
	if !lvl.Grid.At(4, 1).IsFloor() {
		t.Error("padded cell is not floor")
	}
}

func TestParseMissingStartFallsBack(t *testing.T) {
	lvl := Parse("###\n# #\n###")

	if lvl.HasStart {
		t.Error("HasStart = true without a start marker")
	}
	if lvl.Start != (world.Position{X: 1, Y: 1}) {
		t.Errorf("fallback Start = %v, want first floor cell (1,1)", lvl.Start)
	}
	if len(lvl.Warnings) == 0 {
		t.Error("no warning for a map without a start marker")
	}
}

func TestParseMissingExitWarnsButLoads(t *testing.T) {
	lvl := Parse("P  ")
	found := false
	for _, w := range lvl.Warnings {
		if strings.Contains(w, "no exit") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want a no-exit warning", lvl.Warnings)
	}
	if lvl.Grid == nil {
		t.Fatal("degraded map did not load")
	}
}

func TestReadFromReader(t *testing.T) {
	lvl, err := Read(strings.NewReader("P X"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !lvl.HasStart {
		t.Error("start marker lost through Read")
	}
}

func TestParseWindowsLineEndings(t *testing.T) {
	lvl := Parse("###\r\n#P#\r\n###")
	if lvl.Grid.Width() != 3 {
		t.Errorf("Width = %d with CRLF input, want 3", lvl.Grid.Width())
	}
	if !lvl.HasStart {
		t.Error("start marker lost with CRLF input")
	}
}

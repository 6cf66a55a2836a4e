// Package tui is the terminal renderer: one character per tile,
// colored with ANSI styles.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"micemaze/pkg/engine/input"
	"micemaze/pkg/engine/terminal"
	"micemaze/pkg/engine/world"
	"micemaze/pkg/game/renderer"
	"micemaze/pkg/game/state"
)

// Icons for tile overlays
const (
	PlayerIcon = "●"
	EnemyIcon  = "ö"
)

// Countdown turns urgent in the last stretch of a level.
const urgentThreshold = 15 * time.Second

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall   color.Style
	colorExit   color.Style
	colorCheese color.Style
	colorHeal   color.Style
	colorPlayer color.Style
	colorEnemy  color.Style
	colorUrgent color.Style
	colorSubtle color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray, color.OpBold}
	t.colorExit = color.Style{color.FgWhite, color.OpBold}
	t.colorCheese = color.Style{color.FgYellow}
	t.colorHeal = color.Style{color.FgGreen}
	t.colorPlayer = color.Style{color.FgYellow, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorUrgent = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput blocks for a key press and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.MapToIntent(input.GetKey())
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleCheese:
		return t.colorCheese.Sprint(text)
	case renderer.StyleHeal:
		return t.colorHeal.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleUrgent:
		return t.colorUrgent.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// ShowMessage displays a standalone message
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// RenderFrame renders the map, HUD and message log.
func (t *TUIRenderer) RenderFrame(g *state.Game, remaining time.Duration) {
	t.Clear()

	var b strings.Builder

	b.WriteString(t.renderHUD(g, remaining))
	b.WriteString("\n\n")

	playerPos := g.PlayerPos()
	enemyAt := make(map[world.Position]bool, len(g.Enemies))
	for _, e := range g.Enemies {
		enemyAt[e.Pos()] = true
	}

	g.Grid.ForEachTile(func(x, y int, tile world.Tile) {
		pos := world.Position{X: x, Y: y}
		switch {
		case pos == playerPos:
			b.WriteString(t.StyleText(PlayerIcon, renderer.StylePlayer))
		case enemyAt[pos]:
			b.WriteString(t.StyleText(EnemyIcon, renderer.StyleEnemy))
		default:
			b.WriteString(t.renderTile(tile))
		}
		if x == g.Grid.Width()-1 {
			b.WriteString("\n")
		}
	})

	b.WriteString("\n")
	for _, msg := range g.Messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString(t.StyleText(gotext.Get("Controls: WASD/Arrows move | B bomb | P pause | Q quit"), renderer.StyleSubtle))
	b.WriteString("\n")

	fmt.Print(b.String())

	if !terminal.FitsGrid(g.Grid.Width(), g.Grid.Height(), 8) {
		fmt.Println(t.StyleText(gotext.Get("(terminal too small for a clean view)"), renderer.StyleSubtle))
	}
}

func (t *TUIRenderer) renderTile(tile world.Tile) string {
	sym := string(tile.Symbol)
	switch tile.Kind {
	case world.KindWall:
		return t.StyleText(sym, renderer.StyleWall)
	case world.KindExit:
		return t.StyleText(sym, renderer.StyleExit)
	case world.KindCheese:
		return t.StyleText(sym, renderer.StyleCheese)
	case world.KindHeal:
		return t.StyleText(sym, renderer.StyleHeal)
	default:
		return sym
	}
}

func (t *TUIRenderer) renderHUD(g *state.Game, remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining.Seconds())
	timeTxt := fmt.Sprintf("%02d:%02d", total/60, total%60)
	if remaining <= urgentThreshold {
		timeTxt = t.StyleText(timeTxt, renderer.StyleUrgent)
	}

	hearts := strings.Repeat("♥", g.Player.HP()) + strings.Repeat("·", g.Player.MaxHP()-g.Player.HP())
	bombs := g.Player.CountItem(g.Config.BombItemName)

	return fmt.Sprintf("%s | %s  %s | %s %d | %s %d",
		timeTxt,
		g.Player.Name,
		t.StyleText(hearts, renderer.StyleHeal),
		gotext.Get("Coins:"), g.Player.Coins,
		gotext.Get("Bombs:"), bombs)
}

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"micemaze/pkg/engine/input"
	"micemaze/pkg/engine/world"
	"micemaze/pkg/game/devtools"
	"micemaze/pkg/game/entities"
	"micemaze/pkg/game/gameplay"
	"micemaze/pkg/game/generator"
	"micemaze/pkg/game/level"
	"micemaze/pkg/game/renderer"
	"micemaze/pkg/game/renderer/tui"
	"micemaze/pkg/game/state"
	"micemaze/pkg/game/stats"
)

func initGotext() {
	gotext.Configure("locales", "en_GB", "default")
}

func main() {
	name := flag.String("name", "Player", "player name")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	width := flag.Int("width", 0, "maze width (0 = default)")
	height := flag.Int("height", 0, "maze height (0 = default)")
	levelPath := flag.String("level", "", "play a hand-authored level file instead of a generated maze")
	enemies := flag.Int("enemies", -1, "enemy count (-1 = default)")
	cheese := flag.Int("cheese", -1, "cheese count (-1 = default)")
	heal := flag.Int("heal", -1, "heal item count (-1 = default)")
	seconds := flag.Int("time", 0, "level countdown in seconds (0 = default)")
	bombs := flag.Int("bombs", 0, "starting bombs")
	flag.Parse()

	initGotext()

	cfg := state.DefaultConfig()
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *enemies >= 0 {
		cfg.EnemyCount = *enemies
	}
	if *cheese >= 0 {
		cfg.CheeseCount = *cheese
	}
	if *heal >= 0 {
		cfg.HealCount = *heal
	}
	if *seconds > 0 {
		cfg.LevelSeconds = *seconds
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	renderer.SetRenderer(tui.New())
	renderer.Current.Init()

	// The persistence collaborator would hand us these snapshots; a
	// fresh session starts from zero values.
	g := state.NewGame(cfg, rng)
	g.Player = state.PlayerFromSnapshot(state.PlayerSnapshot{Name: *name}, cfg.MaxHP)
	st := stats.FromSnapshot(stats.Snapshot{})

	for i := 0; i < *bombs; i++ {
		g.Player.AddItem(state.Item{Name: cfg.BombItemName, Price: 10})
	}

	for {
		if err := startLevel(g, *levelPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		quit := playLevel(g, st)
		if quit {
			break
		}

		renderer.ShowMessage(gotext.Get("Press any key to play again, Q to quit."))
		if renderer.GetInput().Action == input.ActionQuit {
			break
		}
	}

	summary(g, st)
}

// startLevel builds the next level: either loads the requested file or
// generates a fresh maze, then populates it.
func startLevel(g *state.Game, levelPath string) error {
	cfg := g.Config

	if levelPath != "" {
		lvl, err := level.Load(levelPath)
		if err != nil {
			return err
		}
		g.StartLevel(levelID(levelPath), lvl.Grid, lvl.Start)
		for _, w := range lvl.Warnings {
			g.AddMessage(w)
		}

		// Marker positions win over random placement; counts top up
		// whatever the map itself did not place.
		for _, pos := range lvl.Enemies {
			g.Enemies = append(g.Enemies, entities.NewEnemyAt(g.Rand, pos))
		}
		if len(lvl.Enemies) == 0 {
			g.Enemies = entities.SpawnEnemies(g.Rand, g.Grid, cfg.EnemyCount, g.Start)
		}
		if len(lvl.Cheese) == 0 {
			entities.SpawnPickups(g.Rand, g.Grid, cfg.CheeseCount, g.Start, world.KindCheese)
		}
		if len(lvl.Heals) == 0 {
			entities.SpawnPickups(g.Rand, g.Grid, cfg.HealCount, g.Start, world.KindHeal)
		}
		return nil
	}

	grid, start := generator.DefaultGenerator.Generate(g.Rand, cfg.Width, cfg.Height)
	g.StartLevel("generated", grid, start)
	gameplay.PopulateLevel(g)
	return nil
}

func levelID(path string) string {
	base := path
	if i := len(base) - len(".txt"); i > 0 && base[i:] == ".txt" {
		base = base[:i]
	}
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '/' || base[i] == '\\' {
			return base[i+1:]
		}
	}
	return base
}

// playLevel runs the turn loop for one level. The driver owns the
// wall clock: the core only sees the remaining time at scoring points.
// Returns true when the player asked to quit the session.
func playLevel(g *state.Game, st *stats.Stats) bool {
	deadline := time.Now().Add(time.Duration(g.Config.LevelSeconds) * time.Second)
	st.ResetRun()
	st.MarkVisited(g.Start)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			st.RecordDefeat()
			renderer.RenderFrame(g, 0)
			renderer.ShowMessage(gotext.Get("Time is up!"))
			return false
		}

		renderer.RenderFrame(g, remaining)
		intent := renderer.GetInput()

		switch intent.Action {
		case input.ActionQuit:
			return true

		case input.ActionPause:
			renderer.ShowMessage(gotext.Get("Paused. Press any key."))
			renderer.GetInput()
			continue

		case input.ActionBomb:
			if !gameplay.UseBomb(g) {
				g.AddMessage(gotext.Get("No bombs left."))
			}

		case input.ActionMapDump:
			path, err := devtools.DumpMapToFile(g)
			if err != nil {
				g.AddMessage(gotext.Get("Map dump failed: %v", err))
			} else {
				g.AddMessage(gotext.Get("Map dumped to %s", path))
			}
			continue

		default:
			dx, dy, ok := input.MoveDelta(intent.Action)
			if !ok {
				continue
			}

			outcome := gameplay.TryMove(g, dx, dy)
			if outcome == gameplay.OutcomeMoved || outcome == gameplay.OutcomeCoin ||
				outcome == gameplay.OutcomeHealed || outcome == gameplay.OutcomeExit {
				st.MarkVisited(g.PlayerPos())
			}

			if outcome == gameplay.OutcomeExit {
				earned := gameplay.WinScore(remaining)
				g.Player.Coins += earned
				st.RecordWin(g.LevelID, earned)
				renderer.RenderFrame(g, remaining)
				renderer.ShowMessage(gotext.Get("Level complete! Earned %d coins.", earned))
				return false
			}
		}

		gameplay.Tick(g)
		if g.Over {
			st.RecordDefeat()
			renderer.RenderFrame(g, time.Until(deadline))
			renderer.ShowMessage(gotext.Get("You were caught. Game over."))
			return false
		}
	}
}

// summary prints the snapshots a persistence collaborator would save.
func summary(g *state.Game, st *stats.Stats) {
	playerSnap := g.Player.Snapshot()
	statsSnap := st.Snapshot()

	renderer.ShowMessage("")
	renderer.ShowMessage(gotext.Get("%s leaves with %d coins.", playerSnap.Name, playerSnap.Coins))
	renderer.ShowMessage(gotext.Get("Wins: %d  Defeats: %d", statsSnap.TotalWins, statsSnap.TotalDefeats))
	for lvl, best := range statsSnap.BestByLevel {
		renderer.ShowMessage(gotext.Get("Best on %s: %d", lvl, best))
	}
}

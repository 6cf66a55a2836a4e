package state

// Config carries the tunable simulation parameters. It is built by the
// driver (flags or defaults) and threaded explicitly into the core;
// the simulation itself keeps no global state.
type Config struct {
	// Maze dimensions for generated levels. Even values are promoted
	// to odd by the generator.
	Width  int
	Height int

	// Entity counts at level start.
	EnemyCount  int
	CheeseCount int
	HealCount   int

	// TurnChance is the per-tick probability of an enemy switching to
	// a perpendicular heading.
	TurnChance float64

	// MigrateChance is the probability per migration pass of a cheese
	// tile wandering one step.
	MigrateChance float64

	// EnemyStepEvery and MigrateEvery are tick intervals: enemies move
	// every EnemyStepEvery ticks, cheese migrates every MigrateEvery
	// ticks. MigrateEvery of zero disables migration.
	EnemyStepEvery int
	MigrateEvery   int

	MaxHP       int
	EnemyDamage int

	// HitCooldownTicks is the invulnerability window after enemy
	// contact, measured in simulation ticks.
	HitCooldownTicks int

	// CoinValue is the coin gain per collected cheese.
	CoinValue int

	// BombItemName identifies the bomb consumable in the inventory.
	BombItemName string

	// LevelSeconds is the countdown budget per level. The wall clock
	// itself belongs to the driver; the core only consumes remaining
	// time at scoring points.
	LevelSeconds int
}

// DefaultConfig returns the standard balance values.
func DefaultConfig() Config {
	return Config{
		Width:            41,
		Height:           21,
		EnemyCount:       4,
		CheeseCount:      10,
		HealCount:        3,
		TurnChance:       0.22,
		MigrateChance:    0.60,
		EnemyStepEvery:   1,
		MigrateEvery:     8,
		MaxHP:            3,
		EnemyDamage:      1,
		HitCooldownTicks: 3,
		CoinValue:        1,
		BombItemName:     "Bomb",
		LevelSeconds:     90,
	}
}

// Package stats tracks run progress: best score per level, win and
// defeat totals, and the cells visited during the current run. It is
// recorded by simulation events but never feeds back into the rules.
package stats

import (
	"github.com/zyedidia/generic/mapset"

	"micemaze/pkg/engine/world"
)

// Stats is the progress bookkeeping that outlives individual levels.
type Stats struct {
	bestByLevel  map[string]int
	totalWins    int
	totalDefeats int

	// visited holds the unique positions entered during the current
	// level run; cleared at every level start.
	visited mapset.Set[world.Position]
}

// New creates empty stats.
func New() *Stats {
	return &Stats{
		bestByLevel: make(map[string]int),
		visited:     mapset.New[world.Position](),
	}
}

// ResetRun clears the visited set for a fresh level run.
func (s *Stats) ResetRun() {
	s.visited = mapset.New[world.Position]()
}

// MarkVisited records a position entered during the current run.
func (s *Stats) MarkVisited(pos world.Position) {
	s.visited.Put(pos)
}

// Visited reports whether pos was entered during the current run.
func (s *Stats) Visited(pos world.Position) bool {
	return s.visited.Has(pos)
}

// VisitedCount returns how many unique cells the current run explored.
func (s *Stats) VisitedCount() int {
	return s.visited.Size()
}

// RecordWin counts a win and keeps the best coins-earned for the
// level.
func (s *Stats) RecordWin(levelID string, earned int) {
	s.totalWins++
	if prev, ok := s.bestByLevel[levelID]; !ok || earned > prev {
		s.bestByLevel[levelID] = earned
	}
}

// RecordDefeat counts a defeat.
func (s *Stats) RecordDefeat() {
	s.totalDefeats++
}

// Best returns the best coins-earned for a level, ok=false when the
// level was never won.
func (s *Stats) Best(levelID string) (int, bool) {
	best, ok := s.bestByLevel[levelID]
	return best, ok
}

// TotalWins returns the session-spanning win count.
func (s *Stats) TotalWins() int {
	return s.totalWins
}

// TotalDefeats returns the session-spanning defeat count.
func (s *Stats) TotalDefeats() int {
	return s.totalDefeats
}

// Snapshot is the persistent form exchanged with the persistence
// collaborator. The visited set is run-local and not part of it.
type Snapshot struct {
	BestByLevel  map[string]int
	TotalWins    int
	TotalDefeats int
}

// Snapshot returns a copy of the persistent fields.
func (s *Stats) Snapshot() Snapshot {
	best := make(map[string]int, len(s.bestByLevel))
	for level, earned := range s.bestByLevel {
		best[level] = earned
	}
	return Snapshot{
		BestByLevel:  best,
		TotalWins:    s.totalWins,
		TotalDefeats: s.totalDefeats,
	}
}

// FromSnapshot rebuilds stats from persisted data. A zero snapshot
// (missing or corrupt save) yields fresh stats.
func FromSnapshot(snap Snapshot) *Stats {
	s := New()
	for level, earned := range snap.BestByLevel {
		s.bestByLevel[level] = earned
	}
	s.totalWins = snap.TotalWins
	s.totalDefeats = snap.TotalDefeats
	return s
}

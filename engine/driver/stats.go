package driver

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
)

// maxRowsPerClear bounds how many rows one lock can complete: a piece is at most four rows tall.
const maxRowsPerClear = 4

// Stats accumulates per-game counters. It is owned by a Controller and reset by NewGame.
type Stats struct {
	spawned *intmap.Map[engine.Kind, int]
	clears  *intmap.Map[int, int]

	locks     int
	lines     int
	softDrops int
	rejected  int
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[engine.Kind, int](engine.KindCount),
		clears:  intmap.New[int, int](maxRowsPerClear),
	}
}

func (s *Stats) reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.locks = 0
	s.lines = 0
	s.softDrops = 0
	s.rejected = 0
}

func (s *Stats) recordSpawn(kind engine.Kind) {
	n, _ := s.spawned.Get(kind)
	s.spawned.Put(kind, n+1)
}

func (s *Stats) recordClear(rows int) {
	if rows <= 0 {
		return
	}
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
	s.lines += rows
}

// Summary is a plain copy of the counters, safe to keep after the game moves on.
type Summary struct {
	Spawned   map[engine.Kind]int
	Clears    map[int]int // number of clears keyed by rows removed at once
	Pieces    int
	Locks     int
	Lines     int
	SoftDrops int
	Rejected  int // moves and rotations refused by a collision
	Score     int
	GameOver  bool
}

func (s *Stats) summary() Summary {
	sum := Summary{
		Spawned:   make(map[engine.Kind]int, engine.KindCount),
		Clears:    make(map[int]int, maxRowsPerClear),
		Locks:     s.locks,
		Lines:     s.lines,
		SoftDrops: s.softDrops,
		Rejected:  s.rejected,
	}
	for _, kind := range engine.AllKinds {
		if n, ok := s.spawned.Get(kind); ok {
			sum.Spawned[kind] = n
			sum.Pieces += n
		}
	}
	for rows := 1; rows <= maxRowsPerClear; rows++ {
		if n, ok := s.clears.Get(rows); ok {
			sum.Clears[rows] = n
		}
	}
	return sum
}

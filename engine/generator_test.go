package engine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

// scriptedSource replays a fixed list of kinds, cycling at the end.
type scriptedSource struct {
	kinds []engine.Kind
	pos   int
}

func newScripted(kinds ...engine.Kind) *scriptedSource {
	return &scriptedSource{kinds: kinds}
}

func (s *scriptedSource) Take() engine.Kind {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}

func (s *scriptedSource) Peek() engine.Kind {
	return s.kinds[s.pos%len(s.kinds)]
}

func TestGenerator(t *testing.T) {
	for _, randomizer := range []engine.Randomizer{engine.RandomizerUniform, engine.RandomizerBag} {
		t.Run(randomizer.String(), func(t *testing.T) {
			gen := engine.NewGenerator(rand.New(rand.NewPCG(7, 8)), randomizer)

			for range 500 {
				peeked := gen.Peek()
				assert.Equal(t, peeked, gen.Peek(), "peek must be idempotent")
				assert.True(t, peeked.Valid())
				assert.Equal(t, peeked, gen.Take(), "take must return the peeked kind")
			}
		})
	}

	t.Run("same seed same sequence", func(t *testing.T) {
		a := engine.NewGenerator(rand.New(rand.NewPCG(42, 0)), engine.RandomizerUniform)
		b := engine.NewGenerator(rand.New(rand.NewPCG(42, 0)), engine.RandomizerUniform)
		for range 100 {
			assert.Equal(t, a.Take(), b.Take())
		}
	})

	t.Run("uniform reaches every kind", func(t *testing.T) {
		gen := engine.NewGenerator(rand.New(rand.NewPCG(9, 10)), engine.RandomizerUniform)
		seen := map[engine.Kind]int{}
		for range 700 {
			seen[gen.Take()]++
		}
		assert.Len(t, seen, engine.KindCount)
	})

	t.Run("bag deals each kind once per seven", func(t *testing.T) {
		gen := engine.NewGenerator(rand.New(rand.NewPCG(11, 12)), engine.RandomizerBag)
		for range 20 {
			seen := map[engine.Kind]bool{}
			for range engine.KindCount {
				seen[gen.Take()] = true
			}
			assert.Len(t, seen, engine.KindCount)
		}
	})
}

func TestCatalog(t *testing.T) {
	counts := map[engine.Kind]int{
		engine.KindI: 2,
		engine.KindJ: 4,
		engine.KindL: 4,
		engine.KindO: 1,
		engine.KindS: 2,
		engine.KindT: 4,
		engine.KindZ: 2,
	}

	for _, kind := range engine.AllKinds {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, counts[kind], kind.OrientationCount())

			for i, m := range kind.Orientations() {
				filled := 0
				for _, row := range m {
					for _, v := range row {
						if v == engine.Empty {
							continue
						}
						filled++
						assert.Equal(t, kind.Code(), v, "orientation %d", i)
						owner, ok := engine.KindOf(v)
						assert.True(t, ok)
						assert.Equal(t, kind, owner)
					}
				}
				assert.Equal(t, 4, filled, "orientation %d must hold four cells", i)
			}
		})
	}

	t.Run("copies do not alias the catalog", func(t *testing.T) {
		m := engine.KindT.Orientation(0)
		m[1][0] = 0
		assert.Equal(t, engine.Cell(6), engine.KindT.Orientation(0)[1][0])
	})

	t.Run("unknown codes", func(t *testing.T) {
		_, ok := engine.KindOf(engine.Empty)
		assert.False(t, ok)
		_, ok = engine.KindOf(8)
		assert.False(t, ok)
		assert.Nil(t, engine.Kind(0).Orientation(0))
		assert.Equal(t, "?", engine.Kind(9).String())
	})
}

package engine

import "math/rand/v2"

// PieceSource yields the sequence of kinds the Board spawns.
// Peek must return exactly the kind the next Take will return.
type PieceSource interface {
	Take() Kind
	Peek() Kind
}

// Randomizer selects how a Generator draws kinds.
type Randomizer int

const (
	// RandomizerUniform picks each kind independently and uniformly.
	RandomizerUniform Randomizer = iota
	// RandomizerBag deals shuffled bags holding one of each kind.
	RandomizerBag
)

func (r Randomizer) String() string {
	switch r {
	case RandomizerUniform:
		return "uniform"
	case RandomizerBag:
		return "bag"
	default:
		return "unknown"
	}
}

// Generator is an unbounded PieceSource with a single-slot lookahead buffer.
type Generator struct {
	rng        *rand.Rand
	randomizer Randomizer
	bag        []Kind
	next       Kind
}

// NewGenerator creates a generator drawing from rng. The first kind is
// fetched eagerly so Peek is answerable immediately.
func NewGenerator(rng *rand.Rand, randomizer Randomizer) *Generator {
	g := &Generator{
		rng:        rng,
		randomizer: randomizer,
	}
	g.next = g.draw()
	return g
}

// Take returns the buffered kind and refills the buffer.
func (g *Generator) Take() Kind {
	k := g.next
	g.next = g.draw()
	return k
}

// Peek returns the kind the next Take will return without consuming it.
func (g *Generator) Peek() Kind {
	return g.next
}

func (g *Generator) draw() Kind {
	if g.randomizer != RandomizerBag {
		return AllKinds[g.rng.IntN(KindCount)]
	}

	if len(g.bag) == 0 {
		g.bag = append(g.bag[:0], AllKinds[:]...)
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// ErrInvalidConfig is returned by NewBoard when the configuration cannot describe a playable board.
var ErrInvalidConfig = errors.New("invalid board config")

// pieceSpan is the side length of every orientation matrix in the catalog.
const pieceSpan = 4

// Config describes a board at construction time. It replaces any process-wide settings.
type Config struct {
	Width  int // columns
	Height int // rows

	// SpawnX and SpawnY anchor the top-left corner of a freshly spawned piece matrix.
	SpawnX int
	SpawnY int

	// Seed feeds the piece generator. Zero picks a random seed.
	Seed       uint64
	Randomizer Randomizer

	// Source overrides the generator built from Seed and Randomizer.
	Source PieceSource

	Logger zerolog.Logger
}

// DefaultConfig returns the classic 10x20 board with the spawn anchor at (4, 2).
func DefaultConfig() Config {
	return Config{
		Width:      10,
		Height:     20,
		SpawnX:     4,
		SpawnY:     2,
		Randomizer: RandomizerUniform,
		Logger:     zerolog.Nop(),
	}
}

// Validate checks the dimensions and spawn anchor.
func (c Config) Validate() error {
	if c.Width < pieceSpan || c.Height < pieceSpan {
		return fmt.Errorf("%w: board %dx%d is smaller than a %dx%d piece", ErrInvalidConfig, c.Width, c.Height, pieceSpan, pieceSpan)
	}
	if c.SpawnX < 0 || c.SpawnX > c.Width-pieceSpan {
		return fmt.Errorf("%w: spawn x %d outside [0, %d]", ErrInvalidConfig, c.SpawnX, c.Width-pieceSpan)
	}
	if c.SpawnY < 0 || c.SpawnY > c.Height-pieceSpan {
		return fmt.Errorf("%w: spawn y %d outside [0, %d]", ErrInvalidConfig, c.SpawnY, c.Height-pieceSpan)
	}
	if c.Source == nil && c.Randomizer != RandomizerUniform && c.Randomizer != RandomizerBag {
		return fmt.Errorf("%w: unknown randomizer %d", ErrInvalidConfig, c.Randomizer)
	}
	return nil
}

func (c Config) pieceSource() PieceSource {
	if c.Source != nil {
		return c.Source
	}
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), c.Randomizer)
}

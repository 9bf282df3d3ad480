// Package engine implements the logic of a falling-block puzzle: the board,
// the active piece, collision testing, locking, row clearing and scoring.
//
// A Board is not safe for concurrent use. Hosts that drive it from more than
// one goroutine must serialise calls, see the driver package.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalidGrid is returned by SetBackground for a grid the board cannot hold.
var ErrInvalidGrid = errors.New("invalid background grid")

// State is the Board's position in its lifecycle.
type State int

const (
	// StateEmpty means no piece has been spawned yet.
	StateEmpty State = iota
	// StateActive means a piece is falling.
	StateActive
	// StateGameOver means the last spawn collided with the background.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Board owns the background grid, the active piece and the score.
type Board struct {
	width, height  int
	spawnX, spawnY int

	background Matrix
	rotator    Rotator
	source     PieceSource
	x, y       int
	state      State
	score      int

	log zerolog.Logger
}

// NewBoard validates cfg and returns an empty board. Call Spawn or Reset to start play.
func NewBoard(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Board{
		width:      cfg.Width,
		height:     cfg.Height,
		spawnX:     cfg.SpawnX,
		spawnY:     cfg.SpawnY,
		background: NewMatrix(cfg.Height, cfg.Width),
		source:     cfg.pieceSource(),
		state:      StateEmpty,
		log:        cfg.Logger,
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// State returns the lifecycle state.
func (b *Board) State() State { return b.state }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// AddScore adds points to the score. Negative amounts are ignored so the score never decreases.
func (b *Board) AddScore(points int) {
	if points <= 0 {
		return
	}
	b.score += points
}

// ActiveKind returns the kind of the active piece, or 0 before the first spawn.
func (b *Board) ActiveKind() Kind { return b.rotator.Kind() }

// Orientation returns the active piece's orientation index.
func (b *Board) Orientation() int { return b.rotator.Index() }

// Position returns the active piece's anchor.
func (b *Board) Position() (x, y int) { return b.x, b.y }

// NextKind returns the kind the next Spawn will use.
func (b *Board) NextKind() Kind { return b.source.Peek() }

// Background returns a copy of the locked cells, without the active piece.
func (b *Board) Background() Matrix { return Copy(b.background) }

// SetBackground replaces the locked cells with a copy of grid, for puzzle
// setups and replays. The grid must match the board dimensions and hold only
// catalog codes. The active piece is not rechecked, so call it before Spawn.
func (b *Board) SetBackground(grid Matrix) error {
	if grid.Rows() != b.height {
		return fmt.Errorf("%w: background has %d rows, board has %d", ErrInvalidGrid, grid.Rows(), b.height)
	}
	for r, row := range grid {
		if len(row) != b.width {
			return fmt.Errorf("%w: background row %d has %d columns, board has %d", ErrInvalidGrid, r, len(row), b.width)
		}
		for c, v := range row {
			if _, ok := KindOf(v); v != Empty && !ok {
				return fmt.Errorf("%w: unknown cell code %d at (%d, %d)", ErrInvalidGrid, v, r, c)
			}
		}
	}
	b.background = Copy(grid)
	return nil
}

// MoveDown moves the active piece one row down if nothing blocks it.
func (b *Board) MoveDown() bool {
	return b.shift(0, 1)
}

// MoveLeft moves the active piece one column left if nothing blocks it.
func (b *Board) MoveLeft() bool {
	return b.shift(-1, 0)
}

// MoveRight moves the active piece one column right if nothing blocks it.
func (b *Board) MoveRight() bool {
	return b.shift(1, 0)
}

func (b *Board) shift(dx, dy int) bool {
	if b.state != StateActive {
		return false
	}
	if Intersects(b.background, b.rotator.current(), b.x+dx, b.y+dy) {
		return false
	}
	b.x += dx
	b.y += dy
	return true
}

// Rotate advances the active piece to its next orientation in place.
// There is no wall kick: a colliding rotation is simply rejected.
func (b *Board) Rotate() bool {
	if b.state != StateActive {
		return false
	}
	shape, index := b.rotator.PeekNext()
	if Intersects(b.background, shape, b.x, b.y) {
		return false
	}
	b.rotator.Commit(index)
	return true
}

// Spawn takes the next kind from the generator and places it at the spawn
// anchor with orientation 0. It returns false when the new piece overlaps
// the background, which ends the game. The piece is attached either way.
func (b *Board) Spawn() bool {
	kind := b.source.Take()
	b.rotator.Attach(kind)
	b.x, b.y = b.spawnX, b.spawnY

	if Intersects(b.background, b.rotator.current(), b.x, b.y) {
		b.state = StateGameOver
		b.log.Debug().Stringer("kind", kind).Int("score", b.score).Msg("spawn collided, game over")
		return false
	}
	b.state = StateActive
	b.log.Debug().Stringer("kind", kind).Stringer("next", b.source.Peek()).Msg("spawned piece")
	return true
}

// Lock writes the active piece into the background. It neither clears rows
// nor spawns; the caller sequences those steps.
func (b *Board) Lock() {
	if b.state != StateActive {
		return
	}
	b.background = Merge(b.background, b.rotator.current(), b.x, b.y)
	b.log.Debug().Stringer("kind", b.rotator.Kind()).Int("x", b.x).Int("y", b.y).Msg("locked piece")
}

// ClearFullRows compacts the background and reports what was removed.
// The bonus is not applied to the score.
func (b *Board) ClearFullRows() ClearResult {
	result := CompactFullRows(b.background)
	b.background = result.Grid
	result.Grid = Copy(result.Grid)
	if result.Removed > 0 {
		b.log.Debug().Int("rows", result.Removed).Int("bonus", result.Bonus).Msg("cleared rows")
	}
	return result
}

// Snapshot returns the background with the active piece composited in.
func (b *Board) Snapshot() Matrix {
	if b.state == StateEmpty {
		return Copy(b.background)
	}
	return b.composite()
}

// View returns a deep-copied snapshot for rendering.
func (b *Board) View() View {
	v := View{
		X:    b.x,
		Y:    b.y,
		Next: b.source.Peek().Orientation(0),
	}
	if b.state == StateEmpty {
		v.Grid = Copy(b.background)
		return v
	}
	v.Piece = b.rotator.Current()
	v.Grid = b.composite()
	return v
}

func (b *Board) composite() Matrix {
	return Merge(b.background, b.rotator.current(), b.x, b.y)
}

// Reset empties the background, zeroes the score and spawns a fresh piece.
// It returns the result of that spawn.
func (b *Board) Reset() bool {
	b.background = NewMatrix(b.height, b.width)
	b.score = 0
	b.state = StateEmpty
	b.log.Debug().Int("width", b.width).Int("height", b.height).Msg("board reset")
	return b.Spawn()
}

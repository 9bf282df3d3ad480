// Package driver is a reference host for the engine. It turns discrete
// intents into board operations, applies the scoring policy that sits outside
// the board, and serialises access for hosts with more than one event source.
package driver

import (
	"github.com/plus3/blockfall/engine"
	"github.com/rs/zerolog"
)

// SoftDropPoints is awarded for each player-initiated down move that succeeds.
const SoftDropPoints = 1

// Result is what a presentation layer needs after one event.
type Result struct {
	Moved    bool                // the requested move or rotation was applied
	Clear    *engine.ClearResult // set when the piece locked, even if no rows cleared
	GameOver bool
	Score    int
	View     engine.View
}

// Controller drives one Board through the down/lock/clear/spawn cycle.
// Like the Board it is not safe for concurrent use; wrap it in a Session.
type Controller struct {
	board    *engine.Board
	stats    *Stats
	gameOver bool
	log      zerolog.Logger
}

// NewController builds a board from cfg and spawns the first piece.
func NewController(cfg engine.Config) (*Controller, error) {
	board, err := engine.NewBoard(cfg)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		board: board,
		stats: newStats(),
		log:   cfg.Logger,
	}
	c.spawn()
	return c, nil
}

// Handle dispatches ev to the matching operation.
func (c *Controller) Handle(ev MoveEvent) Result {
	switch ev.Type {
	case EventDown:
		return c.Down(ev.Source)
	case EventLeft:
		return c.Left()
	case EventRight:
		return c.Right()
	case EventRotate:
		return c.Rotate()
	default:
		c.log.Warn().Int("type", int(ev.Type)).Msg("ignoring unknown event type")
		return c.result(false)
	}
}

// Down moves the piece one row. When it cannot move, the piece is locked,
// full rows are cleared and scored, and the next piece spawns. A spawn
// collision ends the game; later events are ignored until NewGame.
func (c *Controller) Down(source EventSource) Result {
	if c.gameOver {
		return c.result(false)
	}

	if c.board.MoveDown() {
		if source == SourceUser {
			c.board.AddScore(SoftDropPoints)
			c.stats.softDrops++
		}
		return c.result(true)
	}

	c.board.Lock()
	c.stats.locks++
	cleared := c.board.ClearFullRows()
	if cleared.Removed > 0 {
		c.board.AddScore(cleared.Bonus)
		c.stats.recordClear(cleared.Removed)
	}
	c.spawn()

	res := c.result(false)
	res.Clear = &cleared
	return res
}

// Left moves the piece one column left.
func (c *Controller) Left() Result {
	return c.apply(c.board.MoveLeft)
}

// Right moves the piece one column right.
func (c *Controller) Right() Result {
	return c.apply(c.board.MoveRight)
}

// Rotate turns the piece to its next orientation.
func (c *Controller) Rotate() Result {
	return c.apply(c.board.Rotate)
}

func (c *Controller) apply(op func() bool) Result {
	if c.gameOver {
		return c.result(false)
	}
	ok := op()
	if !ok {
		c.stats.rejected++
	}
	return c.result(ok)
}

// NewGame clears the board, the score and the statistics, then spawns.
func (c *Controller) NewGame() Result {
	c.stats.reset()
	c.gameOver = false
	c.board.Reset()
	c.afterSpawn()
	return c.result(false)
}

// Score returns the current score.
func (c *Controller) Score() int { return c.board.Score() }

// GameOver reports whether the last spawn collided.
func (c *Controller) GameOver() bool { return c.gameOver }

// View returns a fresh snapshot of the board.
func (c *Controller) View() engine.View { return c.board.View() }

// Background returns the locked cells without the active piece.
func (c *Controller) Background() engine.Matrix { return c.board.Background() }

// Summary returns a copy of the statistics for the current game.
func (c *Controller) Summary() Summary {
	sum := c.stats.summary()
	sum.Score = c.board.Score()
	sum.GameOver = c.gameOver
	return sum
}

func (c *Controller) spawn() {
	c.board.Spawn()
	c.afterSpawn()
}

func (c *Controller) afterSpawn() {
	if c.board.State() == engine.StateGameOver {
		c.gameOver = true
		c.log.Info().Int("score", c.board.Score()).Int("lines", c.stats.lines).Msg("game over")
		return
	}
	c.stats.recordSpawn(c.board.ActiveKind())
}

func (c *Controller) result(moved bool) Result {
	return Result{
		Moved:    moved,
		GameOver: c.gameOver,
		Score:    c.board.Score(),
		View:     c.board.View(),
	}
}

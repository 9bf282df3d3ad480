package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestRotator(t *testing.T) {
	t.Run("attach resets orientation", func(t *testing.T) {
		var r engine.Rotator
		r.Attach(engine.KindT)
		r.Commit(3)
		assert.Equal(t, 3, r.Index())

		r.Attach(engine.KindJ)
		assert.Equal(t, engine.KindJ, r.Kind())
		assert.Equal(t, 0, r.Index())
		assert.Equal(t, engine.KindJ.Orientation(0), r.Current())
	})

	t.Run("peek does not commit", func(t *testing.T) {
		var r engine.Rotator
		r.Attach(engine.KindL)

		shape, index := r.PeekNext()
		assert.Equal(t, 1, index)
		assert.Equal(t, engine.KindL.Orientation(1), shape)
		assert.Equal(t, 0, r.Index())

		_, again := r.PeekNext()
		assert.Equal(t, 1, again)
	})

	t.Run("cycles back after orientation count", func(t *testing.T) {
		for _, kind := range engine.AllKinds {
			var r engine.Rotator
			r.Attach(kind)
			for range kind.OrientationCount() {
				_, next := r.PeekNext()
				r.Commit(next)
			}
			assert.Equal(t, 0, r.Index(), "kind %s", kind)
		}
	})

	t.Run("single orientation kind", func(t *testing.T) {
		var r engine.Rotator
		r.Attach(engine.KindO)
		_, next := r.PeekNext()
		assert.Equal(t, 0, next)
	})

	t.Run("current is a copy", func(t *testing.T) {
		var r engine.Rotator
		r.Attach(engine.KindI)
		m := r.Current()
		m[1][1] = 0
		assert.Equal(t, engine.Cell(1), r.Current()[1][1])
	})

	t.Run("detached", func(t *testing.T) {
		var r engine.Rotator
		assert.Nil(t, r.Current())
		shape, next := r.PeekNext()
		assert.Nil(t, shape)
		assert.Equal(t, 0, next)
	})
}

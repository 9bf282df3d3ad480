package main

import (
	"bytes"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/engine/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	report := &Report{
		Games:      2,
		Width:      10,
		Height:     20,
		Randomizer: engine.RandomizerBag,
		Results: []GameResult{
			{
				Index:    0,
				Finished: true,
				Summary: driver.Summary{
					Score:   250,
					Lines:   3,
					Pieces:  12,
					Spawned: map[engine.Kind]int{engine.KindI: 5, engine.KindO: 7},
					Clears:  map[int]int{1: 1, 2: 1},
				},
			},
			{
				Index: 1,
				Summary: driver.Summary{
					Score:   50,
					Lines:   1,
					Pieces:  4,
					Spawned: map[engine.Kind]int{engine.KindI: 4},
					Clears:  map[int]int{1: 1},
				},
			},
		},
	}

	report.Finalize()

	assert.Equal(t, 50, report.Score.Min)
	assert.Equal(t, 250, report.Score.Max)
	assert.InDelta(t, 150.0, report.Score.Avg, 0.001)
	assert.InDelta(t, 8.0, report.Pieces.Avg, 0.001)
	require.Len(t, report.Kinds, engine.KindCount)
	assert.Equal(t, KindCount{Kind: engine.KindI, Count: 9}, report.Kinds[0])
	assert.Equal(t, KindCount{Kind: engine.KindO, Count: 7}, report.Kinds[3])

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "- **Randomizer:** bag")
	assert.Contains(t, out, "- I: 9")
	assert.Contains(t, out, "| 0 | true | 250 | 3 | 12 | 1 | 1 | 0 | 0 |")
}

func TestStatsFinalizeEmpty(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Min)
	assert.Zero(t, s.Avg)
}

package engine_test

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
)

// ExampleBoard drops a single I piece into a 4x4 well and clears the row it completes.
// The caller sequences lock, clear and scoring itself.
func ExampleBoard() {
	cfg := engine.DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	cfg.SpawnX, cfg.SpawnY = 0, 0
	cfg.Source = newScripted(engine.KindI)

	board, err := engine.NewBoard(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println("spawned:", board.Spawn())
	for board.MoveDown() {
	}
	x, y := board.Position()
	fmt.Printf("landed at (%d, %d)\n", x, y)

	board.Lock()
	cleared := board.ClearFullRows()
	board.AddScore(cleared.Bonus)
	fmt.Printf("cleared %d row(s) for %d points, score %d\n", cleared.Removed, cleared.Bonus, board.Score())

	// Output:
	// spawned: true
	// landed at (0, 2)
	// cleared 1 row(s) for 50 points, score 50
}

// ExampleCompactFullRows shows surviving rows sliding down under fresh empty rows.
func ExampleCompactFullRows() {
	grid := engine.Matrix{
		{0, 0, 6, 0},
		{1, 1, 1, 1},
		{2, 0, 2, 2},
		{3, 3, 3, 3},
	}

	result := engine.CompactFullRows(grid)
	fmt.Println("removed:", result.Removed, "bonus:", result.Bonus)
	for _, row := range result.Grid {
		fmt.Println(row)
	}

	// Output:
	// removed: 2 bonus: 200
	// [0 0 0 0]
	// [0 0 0 0]
	// [0 0 6 0]
	// [2 0 2 2]
}

// ExampleBoard_Rotate previews and commits orientations in place.
func ExampleBoard_Rotate() {
	cfg := engine.DefaultConfig()
	cfg.Source = newScripted(engine.KindS)

	board, _ := engine.NewBoard(cfg)
	board.Spawn()

	for range 3 {
		board.Rotate()
		fmt.Println("orientation:", board.Orientation())
	}

	// Output:
	// orientation: 1
	// orientation: 0
	// orientation: 1
}

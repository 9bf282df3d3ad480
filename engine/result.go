package engine

// ClearResult is the outcome of one row-clear pass.
type ClearResult struct {
	Removed int    // rows removed
	Grid    Matrix // background after compaction
	Bonus   int    // 50 * Removed^2
}

// View is a read-only snapshot for a presentation layer. Every matrix is a
// private copy; holding a View never aliases Board state.
type View struct {
	Piece Matrix // active piece in its current orientation
	X, Y  int    // anchor of Piece on the board
	Next  Matrix // first orientation of the upcoming kind
	Grid  Matrix // background with the active piece composited in
}

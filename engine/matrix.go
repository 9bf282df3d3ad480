package engine

// Cell is a single grid or piece cell. Zero is empty, 1..7 identify a piece kind.
type Cell uint8

// Empty is the code of an unoccupied cell.
const Empty Cell = 0

// Matrix is a row-major grid of cells. Boards and piece orientations share this type.
type Matrix [][]Cell

// NewMatrix returns an all-empty matrix with the given dimensions.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]Cell, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns, or 0 for a matrix without rows.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// inBounds reports whether (row, col) addresses a cell of m.
func (m Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < len(m) && col >= 0 && col < len(m[row])
}

// placeCell maps the piece cell at (r, c) to grid coordinates for a piece
// anchored at column x, row y. Every piece-geometry operation goes through here.
func placeCell(x, y, r, c int) (row, col int) {
	return y + r, x + c
}

// Intersects reports whether piece, anchored at column x and row y, has a
// filled cell outside grid or on top of an occupied grid cell.
func Intersects(grid, piece Matrix, x, y int) bool {
	for r, line := range piece {
		for c, v := range line {
			if v == Empty {
				continue
			}
			row, col := placeCell(x, y, r, c)
			if !grid.inBounds(row, col) || grid[row][col] != Empty {
				return true
			}
		}
	}
	return false
}

// Merge returns a copy of grid with every filled cell of piece written into it.
// Callers must have checked Intersects first; an out-of-bounds cell panics.
func Merge(grid, piece Matrix, x, y int) Matrix {
	merged := Copy(grid)
	for r, line := range piece {
		for c, v := range line {
			if v == Empty {
				continue
			}
			row, col := placeCell(x, y, r, c)
			if !merged.inBounds(row, col) {
				panic("engine: merge target out of bounds")
			}
			merged[row][col] = v
		}
	}
	return merged
}

// Copy returns an independent deep copy of m.
func Copy(m Matrix) Matrix {
	if m == nil {
		return nil
	}
	dup := make(Matrix, len(m))
	for i, row := range m {
		dup[i] = make([]Cell, len(row))
		copy(dup[i], row)
	}
	return dup
}

// RowFull reports whether every cell in row is occupied.
func RowFull(row []Cell) bool {
	for _, v := range row {
		if v == Empty {
			return false
		}
	}
	return len(row) > 0
}

// ClearBonus is the score awarded for clearing n rows at once.
func ClearBonus(n int) int {
	return 50 * n * n
}

// CompactFullRows removes every full row of grid, keeps the remaining rows in
// order, and pads the top with empty rows so the dimensions are unchanged.
// The input grid is not modified.
func CompactFullRows(grid Matrix) ClearResult {
	cols := grid.Cols()
	kept := make(Matrix, 0, len(grid))
	removed := 0
	for _, row := range grid {
		if RowFull(row) {
			removed++
			continue
		}
		line := make([]Cell, len(row))
		copy(line, row)
		kept = append(kept, line)
	}

	compacted := make(Matrix, 0, len(grid))
	for range removed {
		compacted = append(compacted, make([]Cell, cols))
	}
	compacted = append(compacted, kept...)

	return ClearResult{
		Removed: removed,
		Grid:    compacted,
		Bonus:   ClearBonus(removed),
	}
}

package engine

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

// Kind values double as the cell code written into the grid when a piece locks.
const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 7

// AllKinds lists every kind in code order.
var AllKinds = [KindCount]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

var kindNames = [...]string{"?", "I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if !k.Valid() {
		return kindNames[0]
	}
	return kindNames[k]
}

// Valid reports whether k is one of the catalog kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Code returns the cell code a locked piece of this kind leaves in the grid.
func (k Kind) Code() Cell {
	return Cell(k)
}

// KindOf returns the kind that owns a cell code, or false for empty or unknown codes.
func KindOf(c Cell) (Kind, bool) {
	k := Kind(c)
	return k, k.Valid()
}

// OrientationCount returns how many rotation states the kind has.
func (k Kind) OrientationCount() int {
	if !k.Valid() {
		return 0
	}
	return len(catalog[k])
}

// Orientation returns a copy of the matrix for rotation state i.
func (k Kind) Orientation(i int) Matrix {
	if !k.Valid() || i < 0 || i >= len(catalog[k]) {
		return nil
	}
	return Copy(k.orientation(i))
}

// Orientations returns copies of every rotation state, in rotation order.
func (k Kind) Orientations() []Matrix {
	if !k.Valid() {
		return nil
	}
	out := make([]Matrix, len(catalog[k]))
	for i, m := range catalog[k] {
		out[i] = Copy(m)
	}
	return out
}

// orientation returns the canonical matrix without copying. Callers must not mutate it.
func (k Kind) orientation(i int) Matrix {
	return catalog[k][i]
}

// catalog holds the canonical orientation matrices, indexed by Kind.
var catalog = [KindCount + 1][]Matrix{
	KindI: {
		{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 0, 0},
		},
	},
	KindJ: {
		{
			{0, 0, 0, 0},
			{2, 2, 2, 0},
			{0, 0, 2, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 2, 2, 0},
			{0, 2, 0, 0},
			{0, 2, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 2, 0, 0},
			{0, 2, 2, 2},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 2, 0},
			{0, 0, 2, 0},
			{0, 2, 2, 0},
			{0, 0, 0, 0},
		},
	},
	KindL: {
		{
			{0, 0, 0, 0},
			{0, 3, 3, 3},
			{0, 3, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 3, 3, 0},
			{0, 0, 3, 0},
			{0, 0, 3, 0},
		},
		{
			{0, 0, 0, 0},
			{0, 0, 3, 0},
			{3, 3, 3, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 3, 0, 0},
			{0, 3, 0, 0},
			{0, 3, 3, 0},
			{0, 0, 0, 0},
		},
	},
	KindO: {
		{
			{0, 0, 0, 0},
			{0, 4, 4, 0},
			{0, 4, 4, 0},
			{0, 0, 0, 0},
		},
	},
	KindS: {
		{
			{0, 0, 0, 0},
			{0, 5, 5, 0},
			{5, 5, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{5, 0, 0, 0},
			{5, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindT: {
		{
			{0, 0, 0, 0},
			{6, 6, 6, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{6, 6, 0, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{6, 6, 6, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 6, 0, 0},
			{0, 6, 6, 0},
			{0, 6, 0, 0},
			{0, 0, 0, 0},
		},
	},
	KindZ: {
		{
			{0, 0, 0, 0},
			{7, 7, 0, 0},
			{0, 7, 7, 0},
			{0, 0, 0, 0},
		},
		{
			{0, 7, 0, 0},
			{7, 7, 0, 0},
			{7, 0, 0, 0},
			{0, 0, 0, 0},
		},
	},
}

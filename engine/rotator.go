package engine

// Rotator tracks the active piece's kind and orientation index.
// PeekNext never mutates; the Board commits a previewed index only after a
// successful collision check.
type Rotator struct {
	kind  Kind
	index int
}

// Attach switches to kind and resets the orientation to 0.
func (r *Rotator) Attach(kind Kind) {
	r.kind = kind
	r.index = 0
}

// Kind returns the tracked kind, or 0 before the first Attach.
func (r *Rotator) Kind() Kind {
	return r.kind
}

// Index returns the current orientation index.
func (r *Rotator) Index() int {
	return r.index
}

// Current returns a copy of the current orientation matrix.
func (r *Rotator) Current() Matrix {
	if !r.kind.Valid() {
		return nil
	}
	return r.kind.Orientation(r.index)
}

// PeekNext returns the matrix and index of the following orientation.
func (r *Rotator) PeekNext() (Matrix, int) {
	if !r.kind.Valid() {
		return nil, 0
	}
	next := (r.index + 1) % r.kind.OrientationCount()
	return r.kind.Orientation(next), next
}

// Commit sets the orientation index. Out-of-range values are wrapped.
func (r *Rotator) Commit(index int) {
	n := r.kind.OrientationCount()
	if n == 0 {
		return
	}
	r.index = ((index % n) + n) % n
}

// current returns the canonical matrix without copying.
func (r *Rotator) current() Matrix {
	if !r.kind.Valid() {
		return nil
	}
	return r.kind.orientation(r.index)
}

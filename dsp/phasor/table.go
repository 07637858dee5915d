package phasor

// Table holds the unit roots of a single transform size N.
//
// UnitRoot(k, m) for any power-of-two m that divides N is served from the
// same table as entry k*(N/m). A Table is read-only after construction and
// may be shared between goroutines.
type Table struct {
	size  int
	roots []Phasor
}

// NewTable precomputes UnitRoot(k, size) for k in [0, size/2).
// size must be a power of two; sizes below 2 produce an empty table.
func NewTable(size int) *Table {
	half := size / 2
	if half < 0 {
		half = 0
	}

	roots := make([]Phasor, half)
	for k := range roots {
		roots[k] = UnitRoot(k, size)
	}

	return &Table{size: size, roots: roots}
}

// Size returns the transform size the table was built for.
func (t *Table) Size() int { return t.size }

// At returns UnitRoot(k, m). m must be a power of two dividing Size and
// k must be in [0, m/2).
func (t *Table) At(k, m int) Phasor {
	return t.roots[k*(t.size/m)]
}

// internal/board/board.go
package board

// Cell is one grid position.
type Cell struct {
	Row, Col int
}

// Source is the random source used to fill a board.
type Source interface {
	Intn(n int) int
}

// Reader gives read-only access to board values.
type Reader interface {
	Size() int
	Contains(c Cell) bool
	ValueAt(c Cell) int
}

// Board holds a square grid of digits. Zero marks a cleared cell.
type Board struct {
	size   int
	values [][]int
}

// New fills a size×size board with independent uniform values in [min, max].
func New(size, min, max int, rng Source) *Board {
	b := &Board{size: size, values: make([][]int, size)}
	span := max - min + 1
	for r := 0; r < size; r++ {
		b.values[r] = make([]int, size)
		for c := 0; c < size; c++ {
			b.values[r][c] = min + rng.Intn(span)
		}
	}
	return b
}

// FromRows builds a board from fixed values. Rows shorter than the row count
// are padded with zeros; longer rows are truncated.
func FromRows(rows [][]int) *Board {
	size := len(rows)
	b := &Board{size: size, values: make([][]int, size)}
	for r := range rows {
		b.values[r] = make([]int, size)
		copy(b.values[r], rows[r])
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

// Contains reports whether c lies inside the grid.
func (b *Board) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// ValueAt returns the digit at c, or 0 for cells outside the grid.
func (b *Board) ValueAt(c Cell) int {
	if !b.Contains(c) {
		return 0
	}
	return b.values[c.Row][c.Col]
}

// Clear zeroes every listed cell and returns how many of them held a digit.
// Cells already cleared and cells outside the grid are skipped.
func (b *Board) Clear(cells []Cell) int {
	cleared := 0
	for _, c := range cells {
		if !b.Contains(c) || b.values[c.Row][c.Col] == 0 {
			continue
		}
		b.values[c.Row][c.Col] = 0
		cleared++
	}
	return cleared
}

// Remaining counts the cells that still hold a digit.
func (b *Board) Remaining() int {
	n := 0
	for _, row := range b.values {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a copy of the grid that the caller may keep.
func (b *Board) Snapshot() [][]int {
	out := make([][]int, b.size)
	for r, row := range b.values {
		out[r] = append([]int(nil), row...)
	}
	return out
}

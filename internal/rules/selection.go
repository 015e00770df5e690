// internal/rules/selection.go
package rules

import "apple-game/internal/board"

// Selection is the ordered set of distinct cells picked during one drag.
type Selection struct {
	active bool
	anchor board.Cell
	end    board.Cell
	cells  []board.Cell
	index  map[board.Cell]struct{}
}

// NewSelection returns an empty, inactive selection.
func NewSelection() *Selection {
	return &Selection{index: make(map[board.Cell]struct{})}
}

// Active reports whether a drag is in progress.
func (s *Selection) Active() bool {
	return s.active
}

// Anchor is the cell where the drag started.
func (s *Selection) Anchor() board.Cell {
	return s.anchor
}

func (s *Selection) Len() int {
	return len(s.cells)
}

// Cells returns the selected cells in the order they were added.
func (s *Selection) Cells() []board.Cell {
	return append([]board.Cell(nil), s.cells...)
}

// Contains reports whether c is part of the selection.
func (s *Selection) Contains(c board.Cell) bool {
	_, ok := s.index[c]
	return ok
}

// Reset discards the selection and ends the drag.
func (s *Selection) Reset() {
	s.active = false
	s.anchor = board.Cell{}
	s.end = board.Cell{}
	s.cells = s.cells[:0]
	clear(s.index)
}

func (s *Selection) start(c board.Cell) {
	s.Reset()
	s.active = true
	s.anchor = c
	s.end = c
	s.add(c)
}

// add appends c unless it is already selected.
func (s *Selection) add(c board.Cell) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.cells = append(s.cells, c)
	return true
}

// Sum adds up the board values under the selection.
func Sum(s *Selection, b board.Reader) int {
	total := 0
	for _, c := range s.cells {
		total += b.ValueAt(c)
	}
	return total
}

// internal/rules/path.go
package rules

import "apple-game/internal/board"

// Path selects the cells the pointer passes over. A path pops when it lies in
// one row or one column and every cell between its ends is either selected
// or already cleared.
type Path struct {
	Rules
}

func NewPath(r Rules) *Path {
	return &Path{Rules: r}
}

func (p *Path) Name() string {
	return PathName
}

func (p *Path) Begin(sel *Selection, b board.Reader, c board.Cell) {
	sel.start(c)
}

func (p *Path) Extend(sel *Selection, b board.Reader, c board.Cell) bool {
	if !sel.Active() {
		return false
	}
	sel.end = c
	return sel.add(c)
}

func (p *Path) Validate(sel *Selection, b board.Reader) Verdict {
	v, ok := p.checkSum(sel, b)
	if !ok {
		return v
	}
	if reason := lineReason(sel, b); reason != OK {
		v.Reason = reason
		return v
	}
	v.Accepted = true
	v.Reason = OK
	v.Cells = sel.Cells()
	return v
}

// lineReason checks the shape rule: one shared row or column with no
// uncleared, unselected cell between the ends.
func lineReason(sel *Selection, b board.Reader) Reason {
	if sel.Len() == 0 {
		return TooFew
	}
	first := sel.cells[0]
	sameRow, sameCol := true, true
	lo, hi := first.Col, first.Col
	rowLo, rowHi := first.Row, first.Row
	for _, c := range sel.cells[1:] {
		if c.Row != first.Row {
			sameRow = false
		}
		if c.Col != first.Col {
			sameCol = false
		}
		lo, hi = min(lo, c.Col), max(hi, c.Col)
		rowLo, rowHi = min(rowLo, c.Row), max(rowHi, c.Row)
	}

	var at func(i int) board.Cell
	switch {
	case sameRow:
		at = func(i int) board.Cell { return board.Cell{Row: first.Row, Col: i} }
	case sameCol:
		lo, hi = rowLo, rowHi
		at = func(i int) board.Cell { return board.Cell{Row: i, Col: first.Col} }
	default:
		return NotAligned
	}

	for i := lo; i <= hi; i++ {
		c := at(i)
		if !sel.Contains(c) && b.ValueAt(c) != 0 {
			return Gap
		}
	}
	return OK
}

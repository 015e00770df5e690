// internal/rules/rectangle.go
package rules

import "apple-game/internal/board"

// Rectangle selects every cell in the box spanned by the drag start and the
// current cell. Cleared cells inside the box count as zero.
type Rectangle struct {
	Rules
}

func NewRectangle(r Rules) *Rectangle {
	return &Rectangle{Rules: r}
}

func (p *Rectangle) Name() string {
	return RectangleName
}

func (p *Rectangle) Begin(sel *Selection, b board.Reader, c board.Cell) {
	sel.start(c)
}

func (p *Rectangle) Extend(sel *Selection, b board.Reader, c board.Cell) bool {
	if !sel.Active() || c == sel.end {
		return false
	}
	anchor := sel.anchor
	sel.start(anchor)
	sel.end = c

	rMin, rMax := min(anchor.Row, c.Row), max(anchor.Row, c.Row)
	cMin, cMax := min(anchor.Col, c.Col), max(anchor.Col, c.Col)
	for r := rMin; r <= rMax; r++ {
		for col := cMin; col <= cMax; col++ {
			sel.add(board.Cell{Row: r, Col: col})
		}
	}
	return true
}

func (p *Rectangle) Validate(sel *Selection, b board.Reader) Verdict {
	v, ok := p.checkSum(sel, b)
	if !ok {
		return v
	}
	for _, c := range sel.cells {
		if b.ValueAt(c) != 0 {
			v.Cells = append(v.Cells, c)
		}
	}
	v.Accepted = true
	v.Reason = OK
	return v
}

package utils

import (
	"testing"

	"apple-game/internal/board"
	"apple-game/internal/config"
)

func TestBoardLayoutRoundTrip(t *testing.T) {
	l := NewBoardLayout(15)
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			want := board.Cell{Row: r, Col: c}
			x, y := l.CellToScreen(want)
			got, ok := l.ScreenToCell(x+l.CellSize/2, y+l.CellSize/2)
			if !ok || got != want {
				t.Fatalf("centre of %v maps to %v (ok=%v)", want, got, ok)
			}
		}
	}
}

func TestBoardLayoutMisses(t *testing.T) {
	l := NewBoardLayout(15)
	x, y := l.CellToScreen(board.Cell{Row: 3, Col: 3})

	tests := []struct {
		name string
		x, y float64
	}{
		{"left of board", l.OriginX - 1, l.OriginY + 5},
		{"above board", l.OriginX + 5, l.OriginY - 1},
		{"right of board", l.OriginX + l.Span() + 1, l.OriginY + 5},
		{"below board", l.OriginX + 5, l.OriginY + l.Span() + 1},
		{"gap between columns", x + l.CellSize + l.Spacing/2, y + 5},
		{"gap between rows", x + 5, y + l.CellSize + l.Spacing/2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c, ok := l.ScreenToCell(tt.x, tt.y); ok {
				t.Errorf("ScreenToCell(%v, %v) = %v, want no cell", tt.x, tt.y, c)
			}
		})
	}
}

func TestBoardLayoutFitsWindow(t *testing.T) {
	for _, size := range []int{2, 15, 30} {
		l := NewBoardLayout(size)
		if l.OriginX < 0 || l.OriginX+l.Span() > config.ScreenWidth+0.001 {
			t.Errorf("size %d: board spans [%v, %v], window is %d wide", size, l.OriginX, l.OriginX+l.Span(), config.ScreenWidth)
		}
	}
	if l := NewBoardLayout(15); l.CellSize != config.CellSize {
		t.Errorf("15x15 cell size = %v, want %d", l.CellSize, config.CellSize)
	}
}

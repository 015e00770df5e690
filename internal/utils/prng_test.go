package utils

import "testing"

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(1234)
	b := NewPRNGService(1234)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(9), b.Intn(9); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestPRNGServiceZeroSeed(t *testing.T) {
	s := NewPRNGService(0)
	if s.Seed() == 0 {
		t.Fatal("zero seed was not replaced")
	}
}

func TestIntRange(t *testing.T) {
	s := NewPRNGService(99)
	for i := 0; i < 1000; i++ {
		if v := s.IntRange(1, 9); v < 1 || v > 9 {
			t.Fatalf("IntRange(1, 9) = %d", v)
		}
		if v := s.IntRange(5, 3); v < 3 || v > 5 {
			t.Fatalf("IntRange(5, 3) = %d", v)
		}
	}
	if v := s.IntRange(4, 4); v != 4 {
		t.Fatalf("IntRange(4, 4) = %d", v)
	}
}

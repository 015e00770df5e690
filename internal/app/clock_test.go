package app

import "testing"

func TestClockEndsAfterExactlyNTicks(t *testing.T) {
	for _, n := range []int{1, 2, 5, 90} {
		c := NewClock(n)
		for i := 1; i < n; i++ {
			remaining, ended := c.Tick()
			if ended {
				t.Fatalf("N=%d: ended early at tick %d", n, i)
			}
			if remaining != n-i {
				t.Fatalf("N=%d: remaining = %d after %d ticks, want %d", n, remaining, i, n-i)
			}
		}
		remaining, ended := c.Tick()
		if !ended || remaining != 0 {
			t.Fatalf("N=%d: tick %d = (%d, %v), want (0, true)", n, n, remaining, ended)
		}
		for i := 0; i < 3; i++ {
			if remaining, ended := c.Tick(); ended || remaining != 0 {
				t.Fatalf("N=%d: tick after expiry = (%d, %v), want (0, false)", n, remaining, ended)
			}
		}
		if !c.Expired() {
			t.Errorf("N=%d: Expired() = false", n)
		}
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(3)
	c.Tick()
	c.Tick()
	c.Reset()
	if c.Remaining() != 3 || c.Expired() {
		t.Fatalf("after Reset: remaining=%d expired=%v", c.Remaining(), c.Expired())
	}
	if c.Duration() != 3 {
		t.Errorf("Duration() = %d, want 3", c.Duration())
	}
}

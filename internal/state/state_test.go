package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeState struct {
	name  string
	trace *[]string
}

func (f *fakeState) Enter()                   { *f.trace = append(*f.trace, "enter "+f.name) }
func (f *fakeState) Update(deltaTime float64) { *f.trace = append(*f.trace, "update "+f.name) }
func (f *fakeState) Draw(screen *ebiten.Image) {
	*f.trace = append(*f.trace, "draw "+f.name)
}
func (f *fakeState) Exit() { *f.trace = append(*f.trace, "exit "+f.name) }

func TestStateMachineTransitions(t *testing.T) {
	var trace []string
	menu := &fakeState{name: "menu", trace: &trace}
	game := &fakeState{name: "game", trace: &trace}

	sm := NewStateMachine()
	sm.Update(0.016) // no state yet
	sm.Draw(nil)

	sm.SetState(menu)
	sm.Update(0.016)
	sm.SetState(game)
	sm.Draw(nil)

	want := []string{"enter menu", "update menu", "exit menu", "enter game", "draw game"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace[%d] = %q, want %q (full trace %v)", i, trace[i], want[i], trace)
		}
	}
	if sm.Current() != game {
		t.Error("Current() is not the last state set")
	}

	sm.SetState(nil)
	if sm.Current() != nil || trace[len(trace)-1] != "exit game" {
		t.Errorf("SetState(nil) did not exit the game state: %v", trace)
	}
}

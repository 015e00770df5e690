// internal/rules/policy.go
package rules

import (
	"errors"
	"fmt"

	"apple-game/internal/board"
)

// ErrUnknownPolicy is returned by ByName for unrecognised policy names.
var ErrUnknownPolicy = errors.New("unknown selection policy")

const (
	RectangleName = "rectangle"
	PathName      = "path"
)

// Reason explains a verdict.
type Reason int

const (
	OK Reason = iota
	TooFew
	WrongSum
	NotAligned
	Gap
)

func (r Reason) String() string {
	switch r {
	case OK:
		return "ok"
	case TooFew:
		return "too few cells"
	case WrongSum:
		return "wrong sum"
	case NotAligned:
		return "not in one row or column"
	case Gap:
		return "gap in line"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Verdict is the result of validating a selection. Cells lists what clears
// when the selection is accepted.
type Verdict struct {
	Accepted bool
	Reason   Reason
	Sum      int
	Cells    []board.Cell
}

// Policy decides how a drag builds a selection and whether it pops.
type Policy interface {
	Name() string
	// Begin starts a new selection at c.
	Begin(sel *Selection, b board.Reader, c board.Cell)
	// Extend moves the drag to c and reports whether the selection changed.
	Extend(sel *Selection, b board.Reader, c board.Cell) bool
	Validate(sel *Selection, b board.Reader) Verdict
}

// Rules are the numbers every policy checks against.
type Rules struct {
	Target   int // required sum
	MinCells int // smallest selection that may pop
}

// DefaultRules is the classic "make ten with at least two apples".
var DefaultRules = Rules{Target: 10, MinCells: 2}

// ByName returns the policy registered under name.
func ByName(name string, r Rules) (Policy, error) {
	switch name {
	case RectangleName, "":
		return NewRectangle(r), nil
	case PathName:
		return NewPath(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// checkSum applies the size and sum rules shared by all policies.
func (r Rules) checkSum(sel *Selection, b board.Reader) (Verdict, bool) {
	v := Verdict{Sum: Sum(sel, b)}
	if sel.Len() < r.MinCells {
		v.Reason = TooFew
		return v, false
	}
	if v.Sum != r.Target {
		v.Reason = WrongSum
		return v, false
	}
	return v, true
}

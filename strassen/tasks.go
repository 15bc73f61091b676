// SPDX-License-Identifier: MIT
// Package strassen - task assignment (static configuration).
//
// The seven products of one Strassen level, each defined by a linear
// combination of A-quadrants, a linear combination of B-quadrants, and the
// rank responsible for computing it:
//
//	index  left      right     rank
//	0      A0 + A3   B0 + B3   1
//	1      A2 + A3   B0        2
//	2      A0        B1 − B3   3
//	3      A3        B2 − B0   4
//	4      A0 + A1   B3        5
//	5      A2 − A0   B0 + B1   6
//	6      A1 − A3   B2 + B3   0 (coordinator)
//
// Output quadrants: C0 = M0+M3−M4+M6, C1 = M2+M4, C2 = M1+M3, C3 = M0−M1+M2+M5.

package strassen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

const (
	// Products is the number of sub-products per decomposition level.
	Products = 7

	// GroupSize is the number of cooperating processes the one-level
	// decomposition assumes: one coordinator and six workers.
	GroupSize = 7

	// CoordinatorRank is the rank of the process that splits, dispatches and combines.
	CoordinatorRank = 0
)

// ErrBadTable is returned by Table.Validate for an inconsistent assignment.
var ErrBadTable = errors.New("strassen: invalid task table")

// Term is one signed operand of a linear combination.
type Term struct {
	Index int // quadrant (0..3) or product (0..6) index
	Sign  int // +1 or -1
}

// Plus is the term +X[i].
func Plus(i int) Term { return Term{Index: i, Sign: +1} }

// Minus is the term −X[i].
func Minus(i int) Term { return Term{Index: i, Sign: -1} }

// Combination is a signed sum of parts; the first term must be positive.
type Combination []Term

// Eval computes the combination over parts, always returning a fresh matrix.
// Errors: anything matrix.Add/Sub return, ErrBadTable for bad indices or an
// empty/negative-leading combination.
func (c Combination) Eval(parts []*matrix.Dense) (*matrix.Dense, error) {
	if len(c) == 0 || c[0].Sign != +1 {
		return nil, fmt.Errorf("Combination.Eval: %w", ErrBadTable)
	}
	for _, t := range c {
		if t.Index < 0 || t.Index >= len(parts) {
			return nil, fmt.Errorf("Combination.Eval: index %d of %d: %w", t.Index, len(parts), ErrBadTable)
		}
	}

	acc := parts[c[0].Index]
	if err := matrix.ValidateNotNil(acc); err != nil {
		return nil, fmt.Errorf("Combination.Eval: %w", err)
	}
	if len(c) == 1 {
		return acc.Clone(), nil // single term: copy, never alias
	}
	for _, t := range c[1:] {
		var err error
		switch t.Sign {
		case +1:
			acc, err = matrix.Add(acc, parts[t.Index])
		case -1:
			acc, err = matrix.Sub(acc, parts[t.Index])
		default:
			err = ErrBadTable
		}
		if err != nil {
			return nil, fmt.Errorf("Combination.Eval: %w", err)
		}
	}

	return acc, nil
}

// String renders the combination as e.g. "X0+X3".
func (c Combination) String() string {
	s := ""
	for i, t := range c {
		switch {
		case t.Sign < 0:
			s += "-"
		case i > 0:
			s += "+"
		}
		s += fmt.Sprintf("X%d", t.Index)
	}

	return s
}

// Task is one sub-product role.
type Task struct {
	Index int         // product index 0..6
	Rank  int         // process computing it
	Left  Combination // over A-quadrants
	Right Combination // over B-quadrants
}

// Table maps every product index to its role descriptor.
type Table [Products]Task

// DefaultTable is the classic Strassen assignment for a 7-process star.
var DefaultTable = Table{
	{Index: 0, Rank: 1, Left: Combination{Plus(0), Plus(3)}, Right: Combination{Plus(0), Plus(3)}},
	{Index: 1, Rank: 2, Left: Combination{Plus(2), Plus(3)}, Right: Combination{Plus(0)}},
	{Index: 2, Rank: 3, Left: Combination{Plus(0)}, Right: Combination{Plus(1), Minus(3)}},
	{Index: 3, Rank: 4, Left: Combination{Plus(3)}, Right: Combination{Plus(2), Minus(0)}},
	{Index: 4, Rank: 5, Left: Combination{Plus(0), Plus(1)}, Right: Combination{Plus(3)}},
	{Index: 5, Rank: 6, Left: Combination{Plus(2), Minus(0)}, Right: Combination{Plus(0), Plus(1)}},
	{Index: 6, Rank: CoordinatorRank, Left: Combination{Plus(1), Minus(3)}, Right: Combination{Plus(2), Plus(3)}},
}

// Outputs combines the seven products into the four result quadrants.
var Outputs = [4]Combination{
	{Plus(0), Plus(3), Minus(4), Plus(6)}, // C0
	{Plus(2), Plus(4)},                    // C1
	{Plus(1), Plus(3)},                    // C2
	{Plus(0), Minus(1), Plus(2), Plus(5)}, // C3
}

// Validate checks the table is a one-to-one assignment: task i sits at
// position i, ranks are distinct and in [0,GroupSize), and exactly one task
// runs on the coordinator.
func (t Table) Validate() error {
	seen := make(map[int]bool, Products)
	onCoordinator := 0
	for i, task := range t {
		if task.Index != i {
			return fmt.Errorf("Validate: task at %d has index %d: %w", i, task.Index, ErrBadTable)
		}
		if task.Rank < 0 || task.Rank >= GroupSize || seen[task.Rank] {
			return fmt.Errorf("Validate: task %d rank %d: %w", i, task.Rank, ErrBadTable)
		}
		seen[task.Rank] = true
		if task.Rank == CoordinatorRank {
			onCoordinator++
		}
		if len(task.Left) == 0 || len(task.Right) == 0 {
			return fmt.Errorf("Validate: task %d has empty operand: %w", i, ErrBadTable)
		}
	}
	if onCoordinator != 1 {
		return fmt.Errorf("Validate: %d tasks on coordinator: %w", onCoordinator, ErrBadTable)
	}

	return nil
}

// ForRank returns the task assigned to rank.
func (t Table) ForRank(rank int) (Task, bool) {
	for _, task := range t {
		if task.Rank == rank {
			return task, true
		}
	}

	return Task{}, false
}

// Local returns the task the coordinator computes itself.
func (t Table) Local() Task {
	task, _ := t.ForRank(CoordinatorRank)
	return task
}

// Remote returns the tasks dispatched to workers, in ascending worker rank.
func (t Table) Remote() []Task {
	out := make([]Task, 0, Products-1)
	for rank := 1; rank < GroupSize; rank++ {
		if task, ok := t.ForRank(rank); ok {
			out = append(out, task)
		}
	}

	return out
}

// Operands evaluates the task's left and right combinations over the quadrants.
func (task Task) Operands(aq, bq [4]*matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	left, err := task.Left.Eval(aq[:])
	if err != nil {
		return nil, nil, fmt.Errorf("task %d left: %w", task.Index, err)
	}
	right, err := task.Right.Eval(bq[:])
	if err != nil {
		return nil, nil, fmt.Errorf("task %d right: %w", task.Index, err)
	}

	return left, right, nil
}

// Combine applies Outputs to the seven products and joins the quadrants.
// Errors: matrix.ErrNilMatrix for a missing product, plus anything Add/Sub/Join return.
func Combine(products [Products]*matrix.Dense) (*matrix.Dense, error) {
	var quads [4]*matrix.Dense
	for i, out := range Outputs {
		q, err := out.Eval(products[:])
		if err != nil {
			return nil, fmt.Errorf("Combine: C%d: %w", i, err)
		}
		quads[i] = q
	}
	c, err := matrix.Join(quads)
	if err != nil {
		return nil, fmt.Errorf("Combine: %w", err)
	}

	return c, nil
}

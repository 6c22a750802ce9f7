// Package strategies holds the two technique routines decoupled from the
// solver driver behind a narrow read-only interface: naked and hidden
// singles need nothing but each cell's remaining candidates. The other five
// technique families (locked candidates, naked/hidden subsets, basic fish,
// singles chain) need the position cache and the miniline/chute algebra
// directly, so they are implemented as methods on *engine.Solver instead.
package strategies

import "sudoku-engine/internal/core"

// Board is the minimal view a detector needs: the remaining candidates at a
// cell, and whether a cell is already solved.
type Board interface {
	CandidatesAt(cell core.Cell) core.Set[core.Digit]
	CellSolved(cell core.Cell) bool
	DigitAt(cell core.Cell) core.Digit
}

// Placement is a detector's result: a digit that may be placed at a cell.
// House is populated for a hidden single (the house the pattern was found
// in) and left zero for a naked single.
type Placement struct {
	Cell  core.Cell
	Digit core.Digit
	House core.House
}

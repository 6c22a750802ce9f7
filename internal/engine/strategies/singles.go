package strategies

import "sudoku-engine/internal/core"

// DetectNakedSingle finds the first unsolved cell whose candidate set has
// collapsed to exactly one digit.
func DetectNakedSingle(b Board) (Placement, bool) {
	for _, c := range core.AllCells() {
		if b.CellSolved(c) {
			continue
		}
		if d, ok, _ := core.DigitsUnique(b.CandidatesAt(c)); ok {
			return Placement{Cell: c, Digit: d}, true
		}
	}
	return Placement{}, false
}

// DetectHiddenSingle finds the first house and digit confined to exactly
// one remaining cell. It reports core.Unsolvable if some house's unsolved
// candidates, together with its already-placed digits, fail to cover all
// nine digits, a contradiction no naked-single check would otherwise catch.
func DetectHiddenSingle(b Board) (Placement, bool, error) {
	for _, h := range core.AllHouses() {
		cells := h.Cells()

		var unsolved, multipleUnsolved, solved core.Set[core.Digit]
		var candsPerCell [9]core.Set[core.Digit]
		for i, c := range cells {
			if b.CellSolved(c) {
				solved.Insert(b.DigitAt(c))
				continue
			}
			cd := b.CandidatesAt(c)
			candsPerCell[i] = cd
			multipleUnsolved = multipleUnsolved.Union(unsolved.Intersect(cd))
			unsolved = unsolved.Union(cd)
		}
		if !unsolved.Union(solved).Equals(core.AllDigits) {
			return Placement{}, false, core.Unsolvable
		}

		singles := unsolved.Without(multipleUnsolved)
		if singles.IsEmpty() {
			continue
		}
		for i, c := range cells {
			if b.CellSolved(c) {
				continue
			}
			if d, ok, _ := core.DigitsUnique(candsPerCell[i].Intersect(singles)); ok {
				return Placement{Cell: c, Digit: d, House: h}, true, nil
			}
		}
	}
	return Placement{}, false, nil
}

package engine

import "sudoku-engine/internal/core"

// runNakedSubsets and runHiddenSubsets are dual depth-bounded searches: one
// walks combinations of positions carrying a union of possible digits, the
// other walks combinations of digits carrying a union of possible
// positions. Each re-scans from scratch after every find (refreshing the
// caches first) so an exhaustive call keeps finding subsets until a full
// sweep of all 27 houses turns up nothing.
func (s *Solver) runNakedSubsets(size int, stopAfterFirst bool) (bool, error) {
	if err := s.refresh(false); err != nil {
		return false, err
	}
	progressed := false
	for {
		found := false
		for _, h := range core.AllHouses() {
			ok, err := s.findOneNakedSubset(h, size)
			if err != nil {
				return progressed, err
			}
			if ok {
				found, progressed = true, true
				if stopAfterFirst {
					return true, nil
				}
				if err := s.refresh(false); err != nil {
					return progressed, err
				}
				break
			}
		}
		if !found {
			return progressed, nil
		}
	}
}

func (s *Solver) findOneNakedSubset(h core.House, size int) (bool, error) {
	cells := h.Cells()
	var positions []core.Position
	for i, c := range cells {
		if s.grid.At(c) == 0 {
			positions = append(positions, core.NewPosition(i))
		}
	}
	if len(positions) <= size {
		return false, nil
	}

	var stack []core.Position
	var walk func(start int, union core.Set[core.Digit]) (bool, error)
	walk = func(start int, union core.Set[core.Digit]) (bool, error) {
		if len(stack) == size {
			if union.Len() != size {
				return false, nil
			}
			var stackSet core.Set[core.Position]
			for _, p := range stack {
				stackSet.Insert(p)
			}
			var elims []core.Candidate
			for _, p := range positions {
				if stackSet.Has(p) {
					continue
				}
				c := h.CellAt(p)
				for _, d := range core.DigitsElements(union.Intersect(s.cpd.Value.cellPossDigits[c])) {
					elims = append(elims, core.Candidate{Cell: c, Digit: d})
				}
			}
			if len(elims) == 0 {
				return false, nil
			}
			rng := s.pushElimination(elims)
			s.log.pushDeduction(Deduction{Kind: NakedSubsets, House: h, Positions: stackSet, Digits: union, Eliminations: rng})
			return true, nil
		}
		for i := start; i < len(positions); i++ {
			p := positions[i]
			c := h.CellAt(p)
			newUnion := union.Union(s.cpd.Value.cellPossDigits[c])
			if newUnion.Len() > size {
				continue
			}
			stack = append(stack, p)
			found, err := walk(i+1, newUnion)
			if err != nil || found {
				return found, err
			}
			stack = stack[:len(stack)-1]
		}
		return false, nil
	}
	return walk(0, core.Set[core.Digit]{})
}

func (s *Solver) runHiddenSubsets(size int, stopAfterFirst bool) (bool, error) {
	if err := s.refresh(false); err != nil {
		return false, err
	}
	progressed := false
	for {
		found := false
		for _, h := range core.AllHouses() {
			ok, err := s.findOneHiddenSubset(h, size)
			if err != nil {
				return progressed, err
			}
			if ok {
				found, progressed = true, true
				if stopAfterFirst {
					return true, nil
				}
				if err := s.refresh(false); err != nil {
					return progressed, err
				}
				break
			}
		}
		if !found {
			return progressed, nil
		}
	}
}

func (s *Solver) findOneHiddenSubset(h core.House, size int) (bool, error) {
	hi := h.GlobalIndex()
	var digits []core.Digit
	for _, d := range core.DigitsElements(core.AllDigits) {
		if !s.hpp.Value[hi][d.Index()].IsEmpty() {
			digits = append(digits, d)
		}
	}
	if len(digits) <= size {
		return false, nil
	}

	var stack []core.Digit
	var walk func(start int, union core.Set[core.Position]) (bool, error)
	walk = func(start int, union core.Set[core.Position]) (bool, error) {
		if len(stack) == size {
			if union.Len() != size {
				return false, nil
			}
			var stackSet core.Set[core.Digit]
			for _, d := range stack {
				stackSet.Insert(d)
			}
			var elims []core.Candidate
			for _, p := range core.PositionsElements(union) {
				c := h.CellAt(p)
				for _, d := range core.DigitsElements(s.cpd.Value.cellPossDigits[c].Without(stackSet)) {
					elims = append(elims, core.Candidate{Cell: c, Digit: d})
				}
			}
			if len(elims) == 0 {
				return false, nil
			}
			rng := s.pushElimination(elims)
			s.log.pushDeduction(Deduction{Kind: HiddenSubsets, House: h, Digits: stackSet, Positions: union, Eliminations: rng})
			return true, nil
		}
		for i := start; i < len(digits); i++ {
			d := digits[i]
			newUnion := union.Union(s.hpp.Value[hi][d.Index()])
			if newUnion.Len() > size {
				continue
			}
			stack = append(stack, d)
			found, err := walk(i+1, newUnion)
			if err != nil || found {
				return found, err
			}
			stack = stack[:len(stack)-1]
		}
		return false, nil
	}
	return walk(0, core.Set[core.Position]{})
}

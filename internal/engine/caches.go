package engine

import "sudoku-engine/internal/core"

// cpdState pairs the per-cell candidate sets with the per-house solved
// sets; they are maintained jointly because every placement mutates both
// in the same step.
type cpdState struct {
	cellPossDigits    [81]core.Set[core.Digit]
	houseSolvedDigits [27]core.Set[core.Digit]
}

// hppState is house_poss_positions: for each house and each digit, the
// positions within that house where the digit might still be placed.
type hppState [27][9]core.Set[core.Position]

// refresh brings every cache up to date with the logs, in the order that
// lets a cascading naked single discovered while consuming eliminations feed
// back into the placement queue before house_poss_positions is touched.
func (s *Solver) refresh(findSingles bool) error {
	if err := s.updateCellPossHouseSolved(findSingles); err != nil {
		return err
	}
	s.refreshHousePossPositions()
	return nil
}

// updateCellPossHouseSolved is Propagate's first half: it walks newly
// eliminated candidates, then hands off to insertEntries for newly deduced
// placements. A naked single surfaced while processing an elimination is
// appended to the deduced log and picked up by insertEntries afterward.
func (s *Solver) updateCellPossHouseSolved(findSingles bool) error {
	for s.cpd.LastEliminated < len(s.log.Eliminated) {
		i := s.cpd.LastEliminated
		e := s.log.Eliminated[i]
		s.cpd.LastEliminated = i + 1

		if s.grid.At(e.Cell) != 0 {
			continue
		}
		if !s.cpd.Value.cellPossDigits[e.Cell].Has(e.Digit) {
			continue
		}
		if err := s.removeImpossibilities(e.Cell, e.Digit.AsSet(), findSingles); err != nil {
			return err
		}
	}
	return s.insertEntries(findSingles)
}

// removeImpossibilities drops the impossible digits from cell's candidate
// set. With findSingles set, a set collapsing to a singleton records that
// placement as a NakedSingle and an empty set is a contradiction; without
// it, only emptiness is checked. Callers only invoke this on unsolved
// cells, so an empty result always denotes a genuine contradiction.
func (s *Solver) removeImpossibilities(cell core.Cell, impossible core.Set[core.Digit], findSingles bool) error {
	s.cpd.Value.cellPossDigits[cell].RemoveSet(impossible)
	if findSingles {
		d, ok, err := core.DigitsUnique(s.cpd.Value.cellPossDigits[cell])
		if err != nil {
			return core.Unsolvable
		}
		if ok {
			return s.pushNewCandidate(core.Candidate{Cell: cell, Digit: d}, NakedSingle)
		}
		return nil
	}
	if s.cpd.Value.cellPossDigits[cell].IsEmpty() {
		return core.Unsolvable
	}
	return nil
}

// insertEntries is Propagate's second half: it always opens with one batch
// pass (so every cell is visited at least once even when nothing is
// pending), then alternates singly and batch insertion by pending count
// until the deduced log has no unapplied tail, including any tail grown by
// a naked single discovered mid-pass.
func (s *Solver) insertEntries(findSingles bool) error {
	if err := s.batchInsertEntries(findSingles); err != nil {
		return err
	}
	for {
		pending := len(s.log.Deduced) - s.cpd.NextDeduced
		switch {
		case pending == 0:
			return nil
		case pending <= 4:
			if err := s.insertEntriesSingly(findSingles); err != nil {
				return err
			}
		default:
			if err := s.batchInsertEntries(findSingles); err != nil {
				return err
			}
		}
	}
}

// insertEntriesSingly follows each pending placement's neighbours eagerly,
// which is cheap while few placements are pending. It bails back to the caller (which
// will switch to batch mode) once more than four placements back up.
func (s *Solver) insertEntriesSingly(findSingles bool) error {
	for s.cpd.NextDeduced < len(s.log.Deduced) {
		i := s.cpd.NextDeduced
		cand := s.log.Deduced[i]
		s.cpd.NextDeduced = i + 1

		// cell already solved by an earlier entry, skip the duplicate
		if s.cpd.Value.cellPossDigits[cand.Cell].IsEmpty() {
			continue
		}
		if !s.cpd.Value.cellPossDigits[cand.Cell].Has(cand.Digit) {
			return core.Unsolvable
		}
		if err := s.applyPlacementToHouses(cand); err != nil {
			return err
		}

		for _, n := range cand.Cell.Neighbours().Elements() {
			if !s.cpd.Value.cellPossDigits[n].Has(cand.Digit) {
				continue
			}
			if err := s.removeImpossibilities(n, cand.Digit.AsSet(), findSingles); err != nil {
				return err
			}
		}
		if len(s.log.Deduced)-s.cpd.NextDeduced > 4 {
			return nil
		}
	}
	return nil
}

// batchInsertEntries updates house_solved_digits for every pending
// placement first, then subtracts each cell's three house masks from
// cell_poss_digits in one pass over all 81 cells, cheaper than the singly
// path once many placements pile up. The subtraction preserves eliminations
// recorded by techniques, which house_solved_digits alone doesn't reflect.
func (s *Solver) batchInsertEntries(findSingles bool) error {
	for s.cpd.NextDeduced < len(s.log.Deduced) {
		cand := s.log.Deduced[s.cpd.NextDeduced]
		s.cpd.NextDeduced++

		// cell already solved by an earlier entry, skip the duplicate
		if s.cpd.Value.cellPossDigits[cand.Cell].IsEmpty() {
			continue
		}
		if err := s.applyPlacementToHouses(cand); err != nil {
			return err
		}
	}

	for _, c := range core.AllCells() {
		if s.cpd.Value.cellPossDigits[c].IsEmpty() {
			continue
		}
		var mask core.Set[core.Digit]
		for _, h := range c.Houses() {
			mask.InsertSet(s.cpd.Value.houseSolvedDigits[h.GlobalIndex()])
		}
		if err := s.removeImpossibilities(c, mask, findSingles); err != nil {
			return err
		}
	}
	return nil
}

// applyPlacementToHouses is the cache-side half of accepting a placement
// already reflected in the grid: it checks no house the cell belongs to
// already holds the digit (a genuine contradiction between two distinct
// cells), then folds the digit into house_solved_digits and clears the
// cell's own candidate set.
func (s *Solver) applyPlacementToHouses(cand core.Candidate) error {
	cell, digit := cand.Cell, cand.Digit
	for _, h := range cell.Houses() {
		if s.cpd.Value.houseSolvedDigits[h.GlobalIndex()].Has(digit) {
			return core.Unsolvable
		}
	}
	for _, h := range cell.Houses() {
		s.cpd.Value.houseSolvedDigits[h.GlobalIndex()].Insert(digit)
	}
	s.cpd.Value.cellPossDigits[cell] = core.Set[core.Digit]{}
	s.nSolved++
	return nil
}

// refreshHousePossPositions advances house_poss_positions against the same
// two logs, independently of cell_poss_digits: new eliminations remove a
// position outright, new placements remove the placed cell's position from
// every house/digit pair it can no longer contribute to and blank the
// placed digit's positions within its own three houses entirely.
func (s *Solver) refreshHousePossPositions() {
	for s.hpp.LastEliminated < len(s.log.Eliminated) {
		e := s.log.Eliminated[s.hpp.LastEliminated]
		s.hpp.LastEliminated++
		for _, h := range e.Cell.Houses() {
			pos := e.Cell.PosInHouse(h)
			s.hpp.Value[h.GlobalIndex()][e.Digit.Index()].Remove(pos)
		}
	}
	for s.hpp.NextDeduced < len(s.log.Deduced) {
		p := s.log.Deduced[s.hpp.NextDeduced]
		s.hpp.NextDeduced++

		for _, n := range p.Cell.Neighbours().Elements() {
			for _, h := range n.Houses() {
				pos := n.PosInHouse(h)
				s.hpp.Value[h.GlobalIndex()][p.Digit.Index()].Remove(pos)
			}
		}
		for _, h := range p.Cell.Houses() {
			pos := p.Cell.PosInHouse(h)
			for d := 0; d < 9; d++ {
				s.hpp.Value[h.GlobalIndex()][d].Remove(pos)
			}
			s.hpp.Value[h.GlobalIndex()][p.Digit.Index()] = core.Set[core.Position]{}
		}
	}
}

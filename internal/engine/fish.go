package engine

import "sudoku-engine/internal/core"

// runBasicFish covers X-Wing (size 2), Swordfish (3) and Jellyfish (4): for
// one digit and one orientation, a combination of `size` lines whose only
// remaining positions for that digit span exactly `size` cross-lines locks
// the digit out of every other line of the same orientation at those
// cross-line positions.
func (s *Solver) runBasicFish(size int, stopAfterFirst bool) (bool, error) {
	if err := s.refresh(false); err != nil {
		return false, err
	}
	progressed := false
	for {
		ok, err := s.findOneFishAnywhere(size)
		if err != nil {
			return progressed, err
		}
		if !ok {
			return progressed, nil
		}
		progressed = true
		if stopAfterFirst {
			return true, nil
		}
		if err := s.refresh(false); err != nil {
			return progressed, err
		}
	}
}

func (s *Solver) findOneFishAnywhere(size int) (bool, error) {
	for _, d := range core.DigitsElements(core.AllDigits) {
		if ok, err := s.findOneFish(d, core.AllRowLines(), size); ok || err != nil {
			return ok, err
		}
		if ok, err := s.findOneFish(d, core.AllColLines(), size); ok || err != nil {
			return ok, err
		}
	}
	return false, nil
}

func (s *Solver) findOneFish(d core.Digit, lines []core.Line, size int) (bool, error) {
	var candidateLines []core.Line
	for _, l := range lines {
		hi := l.House().GlobalIndex()
		if !s.hpp.Value[hi][d.Index()].IsEmpty() {
			candidateLines = append(candidateLines, l)
		}
	}
	if len(candidateLines) <= size {
		return false, nil
	}

	var stack []core.Line
	var walk func(start int, union core.Set[core.Position]) (bool, error)
	walk = func(start int, union core.Set[core.Position]) (bool, error) {
		if len(stack) == size {
			if union.Len() != size {
				return false, nil
			}
			var stackSet core.Set[core.Line]
			for _, l := range stack {
				stackSet.Insert(l)
			}
			var elims []core.Candidate
			for _, l := range lines {
				if stackSet.Has(l) {
					continue
				}
				hi := l.House().GlobalIndex()
				for _, p := range core.PositionsElements(union.Intersect(s.hpp.Value[hi][d.Index()])) {
					elims = append(elims, core.Candidate{Cell: l.CellAt(p), Digit: d})
				}
			}
			if len(elims) == 0 {
				return false, nil
			}
			rng := s.pushElimination(elims)
			s.log.pushDeduction(Deduction{Kind: BasicFish, Lines: stackSet, Digit: d, FishPos: union, Eliminations: rng})
			return true, nil
		}
		for i := start; i < len(candidateLines); i++ {
			l := candidateLines[i]
			hi := l.House().GlobalIndex()
			newUnion := union.Union(s.hpp.Value[hi][d.Index()])
			if newUnion.Len() > size {
				continue
			}
			stack = append(stack, l)
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

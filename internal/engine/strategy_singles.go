package engine

import (
	"sudoku-engine/internal/core"
	"sudoku-engine/internal/engine/strategies"
)

// runNakedSingles refreshes with find-singles on (so a cell collapsing to a
// singleton mid-refresh is placed and recorded right away, and the same
// refresh loop picks the new placement up) and then drains whatever the
// decoupled detector still finds, in case a singleton existed from the
// start rather than from an incremental elimination. Placements made inside
// the refresh count as this routine's progress.
func (s *Solver) runNakedSingles(stopAfterFirst bool) (bool, error) {
	before := len(s.log.Deduced)
	if err := s.refresh(true); err != nil {
		return len(s.log.Deduced) > before, err
	}
	for {
		p, ok := strategies.DetectNakedSingle(s)
		if !ok {
			return len(s.log.Deduced) > before, nil
		}
		if err := s.pushNewCandidate(core.Candidate{Cell: p.Cell, Digit: p.Digit}, NakedSingle); err != nil {
			return len(s.log.Deduced) > before, err
		}
		if stopAfterFirst {
			return true, nil
		}
		if err := s.refresh(true); err != nil {
			return true, err
		}
	}
}

func (s *Solver) runHiddenSingles(stopAfterFirst bool) (bool, error) {
	if err := s.refresh(false); err != nil {
		return false, err
	}
	progressed := false
	for {
		p, ok, err := strategies.DetectHiddenSingle(s)
		if err != nil {
			return progressed, err
		}
		if !ok {
			return progressed, nil
		}
		cand := core.Candidate{Cell: p.Cell, Digit: p.Digit}
		if err := s.accept(Deduction{Kind: HiddenSingle, Candidate: cand, House: p.House}); err != nil {
			return progressed, err
		}
		progressed = true
		if stopAfterFirst {
			return progressed, nil
		}
		if err := s.refresh(false); err != nil {
			return progressed, err
		}
	}
}

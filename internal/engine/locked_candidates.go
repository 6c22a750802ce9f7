package engine

import "sudoku-engine/internal/core"

// runLockedCandidates implements pointing and claiming together via the
// chute/miniline algebra: within each chute's 3x3 arrangement of minilines,
// a digit unique to one miniline along its line is a claim on the block
// (eliminated from the block's other minilines, its field-neighbours); a
// digit unique to one miniline within its field is a point into the line
// (eliminated from the line's other minilines, its line-neighbours).
func (s *Solver) runLockedCandidates(stopAfterFirst bool) (bool, error) {
	if err := s.refresh(false); err != nil {
		return false, err
	}
	progressed := false

	for _, chute := range core.AllChutes() {
		var possDigits [3][3]core.Set[core.Digit]
		for _, m := range chute.AllMiniLines() {
			var union core.Set[core.Digit]
			for _, c := range m.Cells() {
				if s.grid.At(c) != 0 {
					continue
				}
				union = union.Union(s.cpd.Value.cellPossDigits[c])
			}
			possDigits[m.L][m.F] = union
		}

		var lineUnique, fieldUnique [3]core.Set[core.Digit]
		for i := 0; i < 3; i++ {
			lineUnique[i] = uniqueAcrossThree(possDigits[i][0], possDigits[i][1], possDigits[i][2])
			fieldUnique[i] = uniqueAcrossThree(possDigits[0][i], possDigits[1][i], possDigits[2][i])
		}

		for _, m := range chute.AllMiniLines() {
			lineUniques := possDigits[m.L][m.F].Intersect(lineUnique[m.L])
			fieldUniques := possDigits[m.L][m.F].Intersect(fieldUnique[m.F])
			if lineUniques.IsEmpty() && fieldUniques.IsEmpty() {
				continue
			}

			var elims []core.Candidate
			if !lineUniques.IsEmpty() {
				for _, fn := range m.FieldNeighbours() {
					elims = append(elims, eliminationsIn(fn.Cells(), lineUniques, s)...)
				}
			}
			if !fieldUniques.IsEmpty() {
				for _, ln := range m.LineNeighbours() {
					elims = append(elims, eliminationsIn(ln.Cells(), fieldUniques, s)...)
				}
			}
			if len(elims) == 0 {
				continue
			}

			rng := s.pushElimination(elims)
			s.log.pushDeduction(Deduction{
				Kind:         LockedCandidates,
				MiniLine:     m,
				Digits:       lineUniques.Union(fieldUniques),
				Eliminations: rng,
			})
			progressed = true
			if stopAfterFirst {
				return true, nil
			}
		}
	}
	return progressed, nil
}

// uniqueAcrossThree returns the digits present in exactly one of a, b, c.
func uniqueAcrossThree(a, b, c core.Set[core.Digit]) core.Set[core.Digit] {
	onlyA := a.Without(b).Without(c)
	onlyB := b.Without(a).Without(c)
	onlyC := c.Without(a).Without(b)
	return onlyA.Union(onlyB).Union(onlyC)
}

// eliminationsIn lists (cell, digit) candidates for every cell in cells
// whose remaining candidates overlap digits.
func eliminationsIn(cells [3]core.Cell, digits core.Set[core.Digit], s *Solver) []core.Candidate {
	var out []core.Candidate
	for _, c := range cells {
		if s.grid.At(c) != 0 {
			continue
		}
		for _, d := range core.DigitsElements(digits.Intersect(s.cpd.Value.cellPossDigits[c])) {
			out = append(out, core.Candidate{Cell: c, Digit: d})
		}
	}
	return out
}

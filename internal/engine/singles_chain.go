package engine

import "sudoku-engine/internal/core"

// runSinglesChain builds, for one digit, the graph of conjugate pairs (houses
// where the digit has exactly two remaining positions) and 2-colours each
// connected component. Rule 1 (colour trap) fires when one colour repeats
// within a single house: both cells of that colour can't hold the digit at
// once, so either that colour is entirely false, or, if the other colour
// also repeats in the same house, the chain itself is a contradiction. Rule
// 2 (colour wrap) fires on any outside cell that sees both colours: whichever
// colour is true, that cell can't hold the digit either way.
func (s *Solver) runSinglesChain(stopAfterFirst bool) (bool, error) {
	if err := s.refresh(false); err != nil {
		return false, err
	}
	progressed := false
	for {
		ok, err := s.findOneChainElimination()
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

// chainLinks returns, for one digit, the adjacency of cells joined by a
// house in which that digit has exactly two remaining candidate positions.
func (s *Solver) chainLinks(d core.Digit) map[core.Cell][]core.Cell {
	adj := make(map[core.Cell][]core.Cell)
	for _, h := range core.AllHouses() {
		pos := s.hpp.Value[h.GlobalIndex()][d.Index()]
		if pos.Len() != 2 {
			continue
		}
		var cells []core.Cell
		for _, p := range core.PositionsElements(pos) {
			cells = append(cells, h.CellAt(p))
		}
		a, b := cells[0], cells[1]
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	return adj
}

func (s *Solver) findOneChainElimination() (bool, error) {
	for _, d := range core.DigitsElements(core.AllDigits) {
		adj := s.chainLinks(d)
		if len(adj) == 0 {
			continue
		}
		visited := make(map[core.Cell]bool)
		// iterate start cells in ascending order, not map order, so the same
		// input always yields the same trace
		for _, start := range core.AllCells() {
			if _, linked := adj[start]; !linked || visited[start] {
				continue
			}
			colourA, colourB := s.colourChain(start, adj, visited)

			if ok, err := s.applyColourTrap(d, colourA, colourB); ok || err != nil {
				return ok, err
			}
			if ok := s.applyColourWrap(d, colourA, colourB); ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// colourChain 2-colours one connected component by breadth-first traversal.
func (s *Solver) colourChain(start core.Cell, adj map[core.Cell][]core.Cell, visited map[core.Cell]bool) (core.CellSet, core.CellSet) {
	var colourA, colourB core.CellSet
	isA := make(map[core.Cell]bool)
	isA[start] = true
	colourA.Insert(start)
	visited[start] = true
	queue := []core.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			isA[nb] = !isA[cur]
			if isA[nb] {
				colourA.Insert(nb)
			} else {
				colourB.Insert(nb)
			}
			queue = append(queue, nb)
		}
	}
	return colourA, colourB
}

func (s *Solver) applyColourTrap(d core.Digit, colourA, colourB core.CellSet) (bool, error) {
	for _, h := range core.AllHouses() {
		var countA, countB int
		for _, c := range h.Cells() {
			if colourA.Has(c) {
				countA++
			}
			if colourB.Has(c) {
				countB++
			}
		}
		if countA < 2 && countB < 2 {
			continue
		}
		if countA >= 2 && countB >= 2 {
			return false, core.Unsolvable
		}
		trapped := colourA
		if countB >= 2 {
			trapped = colourB
		}
		var elims []core.Candidate
		for _, c := range trapped.Elements() {
			elims = append(elims, core.Candidate{Cell: c, Digit: d})
		}
		rng := s.pushElimination(elims)
		s.log.pushDeduction(Deduction{Kind: SinglesChain, ChainDigit: d, ColourA: colourA, ColourB: colourB, Eliminations: rng})
		return true, nil
	}
	return false, nil
}

func (s *Solver) applyColourWrap(d core.Digit, colourA, colourB core.CellSet) bool {
	var elims []core.Candidate
	for _, c := range core.AllCells() {
		if colourA.Has(c) || colourB.Has(c) {
			continue
		}
		if s.grid.At(c) != 0 || !s.cpd.Value.cellPossDigits[c].Has(d) {
			continue
		}
		nb := c.Neighbours()
		if nb.Overlaps(colourA) && nb.Overlaps(colourB) {
			elims = append(elims, core.Candidate{Cell: c, Digit: d})
		}
	}
	if len(elims) == 0 {
		return false
	}
	rng := s.pushElimination(elims)
	s.log.pushDeduction(Deduction{Kind: SinglesChain, ChainDigit: d, ColourA: colourA, ColourB: colourB, Eliminations: rng})
	return true
}

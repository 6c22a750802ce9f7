package engine

import (
	"testing"

	"sudoku-engine/internal/core"
)

func emptySolver() *Solver {
	return FromSudoku(core.NewSudoku([81]int{}))
}

func TestChainLinksBuildsAdjacencyFromConjugatePair(t *testing.T) {
	s := emptySolver()
	d := core.NewDigit(3)
	box0 := core.House{Kind: core.HouseBox, Idx: 0}
	a, b := core.NewCell(0, 0), core.NewCell(1, 1)
	s.hpp.Value[box0.GlobalIndex()][d.Index()] = core.NewSet(a.PosInHouse(box0), b.PosInHouse(box0))

	adj := s.chainLinks(d)
	if len(adj[a]) != 1 || adj[a][0] != b {
		t.Errorf("expected %v to link to %v, got %v", a, b, adj[a])
	}
	if len(adj[b]) != 1 || adj[b][0] != a {
		t.Errorf("expected %v to link to %v, got %v", b, a, adj[b])
	}
}

func TestChainLinksIgnoresHousesWithMoreThanTwoPositions(t *testing.T) {
	s := emptySolver()
	d := core.NewDigit(3)
	// On an empty board every house has all nine positions open for every
	// digit, so no conjugate pair exists anywhere.
	adj := s.chainLinks(d)
	if len(adj) != 0 {
		t.Errorf("expected no chain links when no house has exactly 2 remaining positions, got %v", adj)
	}
}

func TestColourChainAlternatesAlongAPath(t *testing.T) {
	s := emptySolver()
	a := core.NewCell(0, 0)
	b := core.NewCell(0, 1)
	c := core.NewCell(0, 2)
	d := core.NewCell(0, 3)
	adj := map[core.Cell][]core.Cell{
		a: {b},
		b: {a, c},
		c: {b, d},
		d: {c},
	}
	visited := make(map[core.Cell]bool)
	colourA, colourB := s.colourChain(a, adj, visited)

	if !colourA.Has(a) || !colourA.Has(c) {
		t.Errorf("expected colourA = {a, c}, got %v", colourA.Elements())
	}
	if !colourB.Has(b) || !colourB.Has(d) {
		t.Errorf("expected colourB = {b, d}, got %v", colourB.Elements())
	}
	if colourA.Len() != 2 || colourB.Len() != 2 {
		t.Errorf("expected each colour to hold 2 cells, got %d and %d", colourA.Len(), colourB.Len())
	}
}

func TestApplyColourWrapEliminatesACellSeeingBothColours(t *testing.T) {
	s := emptySolver()
	d := core.NewDigit(7)

	// Two cells in row 0 (different colours) both neighbour R1C9 via their
	// shared row, and the outside cell does not belong to either colour.
	cellA := core.NewCell(0, 0)
	cellB := core.NewCell(0, 1)
	outside := core.NewCell(0, 8)

	colourA := core.NewCellSet(cellA)
	colourB := core.NewCellSet(cellB)

	if ok := s.applyColourWrap(d, colourA, colourB); !ok {
		t.Fatalf("expected applyColourWrap to find an elimination")
	}
	last := s.log.Deductions[len(s.log.Deductions)-1]
	if last.Kind != SinglesChain || last.ChainDigit != d {
		t.Fatalf("expected a SinglesChain deduction for digit %v, got %+v", d, last)
	}
	found := false
	for i := last.Eliminations.Start; i < last.Eliminations.End; i++ {
		if s.log.Eliminated[i].Cell == outside && s.log.Eliminated[i].Digit == d {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %v to be eliminated for digit %v", outside, d)
	}
}

func TestApplyColourWrapFindsNothingWhenNoOutsideCellSeesBothColours(t *testing.T) {
	s := emptySolver()
	d := core.NewDigit(7)
	// R1C1 and R9C9 are both seen only by R1C9 and R9C1; with the digit
	// already ruled out of those two cells, no candidate sees both colours.
	colourA := core.NewCellSet(core.NewCell(0, 0))
	colourB := core.NewCellSet(core.NewCell(8, 8))
	s.cpd.Value.cellPossDigits[core.NewCell(0, 8)].Remove(d)
	s.cpd.Value.cellPossDigits[core.NewCell(8, 0)].Remove(d)

	if ok := s.applyColourWrap(d, colourA, colourB); ok {
		t.Errorf("expected no elimination when no outside cell sees both colours")
	}
}

func TestApplyColourTrapEliminatesTheRepeatingColour(t *testing.T) {
	s := emptySolver()
	d := core.NewDigit(2)

	// colourA repeats twice within row 0; colourB is a single, unrelated cell.
	colourA := core.NewCellSet(core.NewCell(0, 0), core.NewCell(0, 1))
	colourB := core.NewCellSet(core.NewCell(8, 8))

	ok, err := s.applyColourTrap(d, colourA, colourB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected applyColourTrap to fire")
	}
	last := s.log.Deductions[len(s.log.Deductions)-1]
	if last.Kind != SinglesChain {
		t.Fatalf("expected a SinglesChain deduction, got %+v", last)
	}
	elimCount := last.Eliminations.End - last.Eliminations.Start
	if elimCount != colourA.Len() {
		t.Errorf("expected %d eliminations (one per trapped cell), got %d", colourA.Len(), elimCount)
	}
}

func TestApplyColourTrapReportsUnsolvableWhenBothColoursRepeat(t *testing.T) {
	s := emptySolver()
	d := core.NewDigit(2)

	colourA := core.NewCellSet(core.NewCell(0, 0), core.NewCell(0, 1))
	colourB := core.NewCellSet(core.NewCell(0, 2), core.NewCell(0, 3))

	_, err := s.applyColourTrap(d, colourA, colourB)
	if err != core.Unsolvable {
		t.Fatalf("expected core.Unsolvable when both colours repeat in the same house, got %v", err)
	}
}

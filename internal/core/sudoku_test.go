package core

import "testing"

func TestSudokuAtSetIsSolved(t *testing.T) {
	var values [81]int
	s := NewSudoku(values)
	if s.IsSolved() {
		t.Fatalf("an all-empty grid should not be solved")
	}

	c := NewCell(0, 0)
	s.Set(c, NewDigit(5))
	if s.At(c) != 5 {
		t.Errorf("expected At(c) = 5 after Set, got %d", s.At(c))
	}
}

func TestSudokuIsSolvedRequiresEveryCellFilled(t *testing.T) {
	var values [81]int
	for i := range values {
		values[i] = 1
	}
	full := NewSudoku(values)
	if !full.IsSolved() {
		t.Fatalf("expected a fully-filled grid to report IsSolved")
	}

	values[0] = 0
	oneEmpty := NewSudoku(values)
	if oneEmpty.IsSolved() {
		t.Fatalf("a grid with one empty cell should not be solved")
	}
}

func TestCandidateDigitSet(t *testing.T) {
	cand := Candidate{Cell: NewCell(3, 3), Digit: NewDigit(6)}
	s := cand.DigitSet()
	if s.Len() != 1 || !s.Has(NewDigit(6)) {
		t.Fatalf("expected DigitSet to be a singleton {6}, got %v", DigitsElements(s))
	}
}

func TestCellNeighboursExcludesSelfAndHasTwenty(t *testing.T) {
	c := NewCell(4, 4)
	n := c.Neighbours()
	if n.Has(c) {
		t.Fatalf("a cell should not be its own neighbour")
	}
	if n.Len() != 20 {
		t.Fatalf("expected 20 neighbours, got %d", n.Len())
	}
}

func TestCellNeighboursShareAHouse(t *testing.T) {
	c := NewCell(1, 1)
	n := c.Neighbours()
	for _, other := range n.Elements() {
		shared := false
		for _, h := range c.Houses() {
			if other.RowHouse() == h || other.ColHouse() == h || other.BoxHouse() == h {
				shared = true
				break
			}
		}
		if !shared {
			t.Errorf("neighbour %v shares no house with %v", other, c)
		}
	}
}

func TestAllCellsCountAndOrder(t *testing.T) {
	cells := AllCells()
	if len(cells) != 81 {
		t.Fatalf("expected 81 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if int(c) != i {
			t.Errorf("expected row-major order, cell %d was %v", i, c)
		}
	}
}

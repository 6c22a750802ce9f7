package core

import "testing"

func TestCellSetInsertHasRemove(t *testing.T) {
	var s CellSet
	c := NewCell(3, 4)
	if s.Has(c) {
		t.Fatalf("empty CellSet should not have any cell")
	}
	s.Insert(c)
	if !s.Has(c) {
		t.Fatalf("expected CellSet to have the inserted cell")
	}
	s.Remove(c)
	if s.Has(c) {
		t.Fatalf("expected CellSet to not have the cell after Remove")
	}
}

func TestCellSetSpansBothWords(t *testing.T) {
	low := Cell(10)
	high := Cell(70)
	s := NewCellSet(low, high)
	if !s.Has(low) || !s.Has(high) {
		t.Fatalf("expected CellSet to hold both a low-word and high-word cell")
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2, got %d", s.Len())
	}
}

func TestCellSetUnionIntersectWithout(t *testing.T) {
	a := NewCellSet(Cell(0), Cell(1), Cell(80))
	b := NewCellSet(Cell(1), Cell(80), Cell(40))

	union := a.Union(b)
	for _, c := range []Cell{0, 1, 40, 80} {
		if !union.Has(c) {
			t.Errorf("union missing cell %d", c)
		}
	}

	inter := a.Intersect(b)
	if inter.Len() != 2 || !inter.Has(1) || !inter.Has(80) {
		t.Errorf("expected intersection {1,80}, got %v", inter.Elements())
	}

	without := a.Without(b)
	if without.Len() != 1 || !without.Has(0) {
		t.Errorf("expected a.Without(b) = {0}, got %v", without.Elements())
	}
}

func TestCellSetElementsAscendingAcrossWordBoundary(t *testing.T) {
	s := NewCellSet(Cell(80), Cell(0), Cell(63), Cell(64))
	got := s.Elements()
	want := []Cell{0, 63, 64, 80}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCellSetOverlapsIsEmpty(t *testing.T) {
	var empty CellSet
	if !empty.IsEmpty() || empty.Overlaps(empty) {
		t.Fatalf("zero-value CellSet should be empty and not overlap itself")
	}
	a := NewCellSet(Cell(5))
	b := NewCellSet(Cell(5), Cell(6))
	if !a.Overlaps(b) {
		t.Errorf("expected overlap on cell 5")
	}
}

package verify

import "testing"

var validPuzzle = [81]int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

var validPuzzleSolution = [81]int{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

var rowConflictGrid = [81]int{
	5, 3, 0, 0, 5, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

func TestSolveFindsTheSolution(t *testing.T) {
	got, ok := Solve(validPuzzle)
	if !ok {
		t.Fatalf("Solve reported unsolvable for a solvable puzzle")
	}
	if got != validPuzzleSolution {
		t.Fatalf("Solve returned a different solution:\ngot  %v\nwant %v", got, validPuzzleSolution)
	}
}

func TestSolveOnAlreadySolvedGridIsANoOp(t *testing.T) {
	got, ok := Solve(validPuzzleSolution)
	if !ok || got != validPuzzleSolution {
		t.Fatalf("Solve changed an already-solved grid")
	}
}

func TestHasUniqueSolution(t *testing.T) {
	if !HasUniqueSolution(validPuzzle) {
		t.Fatalf("expected validPuzzle to have a unique solution")
	}
}

func TestValidRejectsConflicts(t *testing.T) {
	if Valid(rowConflictGrid) {
		t.Fatalf("expected a row conflict to be rejected")
	}
	if !Valid(validPuzzle) {
		t.Fatalf("expected validPuzzle to be reported valid")
	}
}

func TestSolveReportsUnsolvableOnConflict(t *testing.T) {
	if _, ok := Solve(rowConflictGrid); ok {
		t.Fatalf("expected Solve to fail on a grid with a built-in conflict")
	}
}

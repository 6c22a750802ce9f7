package textgrid

import "testing"

const easyPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestParseAcceptsDotsAndZeros(t *testing.T) {
	dotted, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse with dots: %v", err)
	}
	zeroed := make([]byte, 81)
	for i := 0; i < 81; i++ {
		if easyPuzzle[i] == '.' {
			zeroed[i] = '0'
		} else {
			zeroed[i] = easyPuzzle[i]
		}
	}
	withZeros, err := Parse(string(zeroed))
	if err != nil {
		t.Fatalf("Parse with zeros: %v", err)
	}
	if dotted != withZeros {
		t.Fatalf("'.' and '0' forms parsed to different grids")
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	if _, err := Parse("53..7"); err == nil {
		t.Fatalf("expected an error for a short puzzle string")
	}
}

func TestParseRejectsInvalidCharacters(t *testing.T) {
	bad := "5x..............................................................................."
	if _, err := Parse(bad); err == nil {
		t.Fatalf("expected an error for an invalid character")
	}
}

func TestFormatRoundTrips(t *testing.T) {
	grid, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	back := Format(grid)
	reparsed, err := Parse(back)
	if err != nil {
		t.Fatalf("re-Parse of Format output: %v", err)
	}
	if reparsed != grid {
		t.Fatalf("round trip through Format did not preserve the grid")
	}
}

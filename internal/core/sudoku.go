package core

// Sudoku is the immutable puzzle-state value type: 81 cells, each 0 (empty)
// or a digit 1..9. It carries no solving machinery of its own; that lives
// in the engine package's caches and logs.
type Sudoku [81]int

// NewSudoku builds a Sudoku from 81 values (0 for empty, 1..9 for a given).
func NewSudoku(values [81]int) Sudoku {
	return Sudoku(values)
}

func (s Sudoku) At(c Cell) int { return s[c] }

func (s *Sudoku) Set(c Cell, d Digit) { s[c] = d.Value() }

func (s Sudoku) IsSolved() bool {
	for _, v := range s {
		if v == 0 {
			return false
		}
	}
	return true
}

// Candidate is a (Cell, Digit) pair not yet ruled out.
type Candidate struct {
	Cell  Cell
	Digit Digit
}

func (c Candidate) DigitSet() Set[Digit] { return c.Digit.AsSet() }

// neighboursOf is precomputed once: the 20 cells sharing a row, column or
// block with c, excluding c itself.
var neighboursOf [81]CellSet

func init() {
	for c := Cell(0); c < 81; c++ {
		var n CellSet
		for _, h := range c.Houses() {
			for _, other := range h.Cells() {
				if other != c {
					n.Insert(other)
				}
			}
		}
		neighboursOf[c] = n
	}
}

// Neighbours returns the 20 cells that share a row, column or block with c.
func (c Cell) Neighbours() CellSet { return neighboursOf[c] }

// AllCells returns the 81 cells in row-major order.
func AllCells() []Cell {
	cells := make([]Cell, 81)
	for i := range cells {
		cells[i] = Cell(i)
	}
	return cells
}

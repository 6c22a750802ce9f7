// Package textgrid parses and formats the 81-character line form of a
// puzzle used by callers and test fixtures. It sits outside the core
// engine entirely: the engine only ever speaks in core.Sudoku.
package textgrid

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// Parse reads an 81-character line-form puzzle, accepting either '.' or '0'
// for an empty cell and '1'-'9' for a given.
func Parse(line string) (core.Sudoku, error) {
	if len(line) != 81 {
		return core.Sudoku{}, fmt.Errorf("textgrid: want 81 characters, got %d", len(line))
	}
	var values [81]int
	for i, ch := range []byte(line) {
		switch {
		case ch == '.' || ch == '0':
			values[i] = 0
		case ch >= '1' && ch <= '9':
			values[i] = int(ch - '0')
		default:
			return core.Sudoku{}, fmt.Errorf("textgrid: invalid character %q at position %d", ch, i)
		}
	}
	return core.NewSudoku(values), nil
}

// Format renders a grid back to its 81-character line form, using '.' for
// empty cells.
func Format(grid core.Sudoku) string {
	out := make([]byte, 81)
	for _, c := range core.AllCells() {
		if v := grid.At(c); v != 0 {
			out[c] = byte('0' + v)
		} else {
			out[c] = '.'
		}
	}
	return string(out)
}

package core

import "errors"

// Unsolvable signals a contradiction: an empty cell-possibility set, a
// duplicate digit in a house, or a double colour collision in singles-chain
// Rule 1. It terminates the current strategy pass as a no-op and causes
// Solve to return the partial grid as an error result.
var Unsolvable = errors.New("sudoku: unsolvable")

// InsertConflict signals that an externally-supplied placement collides
// with a different digit already in the cell. InsertCandidate rejects it
// without modifying state.
var InsertConflict = errors.New("sudoku: insert conflict")

// Command solve is a CLI harness around the engine: it reads one puzzle,
// solves it with the full strategy set, and prints the resulting grid, the
// solve status, a per-technique count of the trace and its grade.
// It is I/O and benchmarking, not part of the engine core.
package main

import (
	"bufio"
	"fmt"
	"os"

	"sudoku-engine/internal/engine"
	"sudoku-engine/internal/textgrid"
)

func main() {
	puzzleStr, err := readPuzzle()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	grid, err := textgrid.Parse(puzzleStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ids, err := engine.StrategyListForSet("full")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	solver := engine.FromSudoku(grid)
	solved, trace, solveErr := solver.Solve(ids)

	fmt.Printf("Result: %s\n", textgrid.Format(solved))
	if solveErr != nil {
		fmt.Printf("Status: %v\n", solveErr)
	} else {
		fmt.Println("Status: solved")
	}

	counts := make(map[string]int)
	for _, d := range trace {
		counts[d.Kind.String()]++
	}
	fmt.Printf("Deductions: %d\n", len(trace))
	fmt.Printf("Techniques used: %v\n", counts)
	fmt.Printf("Grade: %s\n", engine.Grade(trace))
}

func readPuzzle() (string, error) {
	if len(os.Args) >= 2 {
		return os.Args[1], nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "", fmt.Errorf("usage: solve <puzzle_string> (or pipe one line on stdin)")
	}
	return scanner.Text(), nil
}

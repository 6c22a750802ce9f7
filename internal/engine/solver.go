package engine

import (
	"errors"

	"sudoku-engine/internal/core"
	"sudoku-engine/pkg/constants"
)

// ErrUnresolved is returned by Solve when the strategy list reaches a
// fixpoint (no strategy makes progress) without every cell solved and
// without any strategy signalling core.Unsolvable. The grid and trace up to
// that point are still valid and are returned alongside the error.
var ErrUnresolved = errors.New("sudoku: strategies exhausted without a solution")

// Solver is the driver: it owns the puzzle grid, the append-only logs, and
// the three candidate caches, and runs a strategy list against them until a
// fixpoint or a contradiction. A Solver is built from one puzzle and
// consumed by Solve; it is not safe for concurrent use.
type Solver struct {
	grid core.Sudoku
	log  Log

	nSolved int

	cpd State[cpdState]
	hpp State[hppState]
}

// FromSudoku seeds the deduced log with the given digits as Deduction.Given
// placements and initialises every cache to "nothing placed, every
// candidate possible everywhere". The caches only catch up with the seeded
// givens on the first refresh, so constructing a Solver never itself
// signals Unsolvable: even a puzzle with a direct contradiction among its
// givens builds successfully; see Solve's boundary behaviour.
func FromSudoku(grid core.Sudoku) *Solver {
	s := &Solver{}
	for _, c := range core.AllCells() {
		s.cpd.Value.cellPossDigits[c] = core.AllDigits
	}
	for h := 0; h < 27; h++ {
		for d := 0; d < 9; d++ {
			s.hpp.Value[h][d] = core.AllPositions
		}
	}
	for _, c := range core.AllCells() {
		if v := grid.At(c); v != 0 {
			_ = s.pushNewCandidate(core.Candidate{Cell: c, Digit: core.NewDigit(v)}, Given)
		}
	}
	return s
}

// pushNewCandidate records a placement carrying only its candidate, through
// accept, the sole entry point that appends to the deduced log: a duplicate placement of the same digit is a silent no-op, a placement
// colliding with a different already-placed digit is Unsolvable, and a
// fresh placement is recorded into the grid, the deduced log and the trace
// in one step.
func (s *Solver) pushNewCandidate(cand core.Candidate, kind DeductionKind) error {
	return s.accept(Deduction{Kind: kind, Candidate: cand})
}

// accept is pushNewCandidate generalised to a full Deduction record, used
// directly by HiddenSingle, which attaches the house it found the placement
// in on top of the candidate itself.
func (s *Solver) accept(d Deduction) error {
	cur := s.grid.At(d.Candidate.Cell)
	if cur == d.Candidate.Digit.Value() {
		return nil
	}
	if cur != 0 {
		return core.Unsolvable
	}
	s.grid.Set(d.Candidate.Cell, d.Candidate.Digit)
	s.log.pushDeduced(d.Candidate)
	s.log.pushDeduction(d)
	return nil
}

// pushElimination appends eliminations produced by a technique and returns
// the half-open range identifying them for the Deduction record. It does not
// check whether each candidate was still possible; every caller passes a
// non-empty list, so the range is never empty.
func (s *Solver) pushElimination(cands []core.Candidate) EliminationRange {
	return s.log.pushEliminated(cands...)
}

// InsertCandidate applies an externally-supplied placement as a Given. It
// rejects a placement that collides with a different digit already in the
// cell without modifying any state; a placement repeating the cell's
// existing digit is accepted as a no-op.
func (s *Solver) InsertCandidate(cand core.Candidate) error {
	cur := s.grid.At(cand.Cell)
	if cur != 0 && cur != cand.Digit.Value() {
		return core.InsertConflict
	}
	return s.pushNewCandidate(cand, Given)
}

// ToSudoku returns the current grid. Unlike the candidate caches, the grid
// is never stale: every accepted placement is written to it immediately.
func (s *Solver) ToSudoku() core.Sudoku { return s.grid }

// IsSolved reports whether every cell holds a digit.
func (s *Solver) IsSolved() bool { return s.nSolved == 81 }

// CandidatesAt, CellSolved and DigitAt satisfy the strategies.Board interface so
// the decoupled naked/hidden single routines can read solver state without
// importing the engine package.
func (s *Solver) CandidatesAt(c core.Cell) core.Set[core.Digit] {
	return s.cpd.Value.cellPossDigits[c]
}

func (s *Solver) CellSolved(c core.Cell) bool { return s.grid.At(c) != 0 }

// DigitAt returns the digit placed at c. Only meaningful when CellSolved(c).
func (s *Solver) DigitAt(c core.Cell) core.Digit {
	return core.NewDigit(s.grid.At(c))
}

// CellValue is one cell's reported state: either a solved Digit (1..9) or,
// for an unsolved cell, its remaining Candidates.
type CellValue struct {
	Digit      int
	Candidates core.Set[core.Digit]
}

// CellState refreshes the candidate caches and reports one cell's state.
func (s *Solver) CellState(c core.Cell) (CellValue, error) {
	if err := s.refresh(false); err != nil {
		return CellValue{}, err
	}
	if v := s.grid.At(c); v != 0 {
		return CellValue{Digit: v}, nil
	}
	return CellValue{Candidates: s.cpd.Value.cellPossDigits[c]}, nil
}

// GridState refreshes the candidate caches and reports every cell's state.
func (s *Solver) GridState() ([81]CellValue, error) {
	if err := s.refresh(false); err != nil {
		return [81]CellValue{}, err
	}
	var out [81]CellValue
	for _, c := range core.AllCells() {
		if v := s.grid.At(c); v != 0 {
			out[c] = CellValue{Digit: v}
		} else {
			out[c] = CellValue{Candidates: s.cpd.Value.cellPossDigits[c]}
		}
	}
	return out, nil
}

// Deductions returns the trace accumulated so far.
func (s *Solver) Deductions() []Deduction { return s.log.Deductions }

// TrySolve runs one pass of the strategy loop: the head strategy runs
// exhaustively and, on any new placement, the whole loop restarts from the
// top; otherwise each tail strategy runs once (stop_after_first) in order,
// and any new placement or elimination also restarts the loop. The pass
// ends when a full sweep of the tail strategies makes no progress.
//
// The return value is true iff either log grew at all across the whole
// call, not just across its final iteration.
func (s *Solver) TrySolve(strategies []StrategyID) (bool, error) {
	dedBefore, elimBefore := len(s.log.Deduced), len(s.log.Eliminated)
	if len(strategies) == 0 {
		return false, nil
	}
	first, rest := strategies[0], strategies[1:]

	for {
		if s.IsSolved() {
			break
		}
		progressed, err := s.run(first, false)
		if err != nil {
			return s.grew(dedBefore, elimBefore), err
		}
		if progressed {
			continue
		}

		anyRest := false
		for _, id := range rest {
			p, err := s.run(id, true)
			if err != nil {
				return s.grew(dedBefore, elimBefore), err
			}
			if p {
				anyRest = true
				break
			}
		}
		if !anyRest {
			break
		}
	}
	return s.grew(dedBefore, elimBefore), nil
}

func (s *Solver) grew(dedBefore, elimBefore int) bool {
	return len(s.log.Deduced) != dedBefore || len(s.log.Eliminated) != elimBefore
}

// Solve repeatedly calls TrySolve until it stops making progress, then
// reports the grid and trace: Ok if every cell is solved, ErrUnresolved if
// the strategies reached a fixpoint short of a solution, or whatever
// contradiction a strategy signalled (core.Unsolvable) with the partial
// grid and the trace recorded before the contradiction was found.
func (s *Solver) Solve(strategies []StrategyID) (core.Sudoku, []Deduction, error) {
	for pass := 0; pass < constants.MaxStrategyPasses; pass++ {
		progressed, err := s.TrySolve(strategies)
		if err != nil {
			return s.grid, s.log.Deductions, err
		}
		if !progressed {
			break
		}
	}
	if s.IsSolved() {
		return s.grid, s.log.Deductions, nil
	}
	return s.grid, s.log.Deductions, ErrUnresolved
}

// run dispatches one strategy by its tagged identifier. stopAfterFirst asks
// the strategy to return after its first useful deduction rather than
// scanning exhaustively.
func (s *Solver) run(id StrategyID, stopAfterFirst bool) (bool, error) {
	switch id {
	case NakedSinglesID:
		return s.runNakedSingles(stopAfterFirst)
	case HiddenSinglesID:
		return s.runHiddenSingles(stopAfterFirst)
	case LockedCandidatesID:
		return s.runLockedCandidates(stopAfterFirst)
	case NakedPairsID:
		return s.runNakedSubsets(2, stopAfterFirst)
	case NakedTriplesID:
		return s.runNakedSubsets(3, stopAfterFirst)
	case NakedQuadsID:
		return s.runNakedSubsets(4, stopAfterFirst)
	case HiddenPairsID:
		return s.runHiddenSubsets(2, stopAfterFirst)
	case HiddenTriplesID:
		return s.runHiddenSubsets(3, stopAfterFirst)
	case HiddenQuadsID:
		return s.runHiddenSubsets(4, stopAfterFirst)
	case XWingID:
		return s.runBasicFish(2, stopAfterFirst)
	case SwordfishID:
		return s.runBasicFish(3, stopAfterFirst)
	case JellyfishID:
		return s.runBasicFish(4, stopAfterFirst)
	case SinglesChainID:
		return s.runSinglesChain(stopAfterFirst)
	default:
		return false, nil
	}
}

// StrategyID names one supported technique. The order a caller lists them
// in is the priority order TrySolve honours: index 0 is the head strategy,
// run exhaustively; the rest are tail strategies, run one at a time.
type StrategyID int

const (
	NakedSinglesID StrategyID = iota
	HiddenSinglesID
	LockedCandidatesID
	NakedPairsID
	NakedTriplesID
	NakedQuadsID
	HiddenPairsID
	HiddenTriplesID
	HiddenQuadsID
	XWingID
	SwordfishID
	JellyfishID
	SinglesChainID
)

func (id StrategyID) String() string {
	switch id {
	case NakedSinglesID:
		return "NakedSingles"
	case HiddenSinglesID:
		return "HiddenSingles"
	case LockedCandidatesID:
		return "LockedCandidates"
	case NakedPairsID:
		return "NakedPairs"
	case NakedTriplesID:
		return "NakedTriples"
	case NakedQuadsID:
		return "NakedQuads"
	case HiddenPairsID:
		return "HiddenPairs"
	case HiddenTriplesID:
		return "HiddenTriples"
	case HiddenQuadsID:
		return "HiddenQuads"
	case XWingID:
		return "XWing"
	case SwordfishID:
		return "Swordfish"
	case JellyfishID:
		return "Jellyfish"
	case SinglesChainID:
		return "SinglesChain"
	default:
		return "Unknown"
	}
}

package engine

import "sudoku-engine/internal/core"

// DeductionKind tags which of the eight payload shapes a Deduction carries.
// Downstream renderers switch on this rather than any type assertion, so the
// shape is never erased the way a single "Explanation string" would erase it.
type DeductionKind int

const (
	Given DeductionKind = iota
	NakedSingle
	HiddenSingle
	LockedCandidates
	NakedSubsets
	HiddenSubsets
	BasicFish
	SinglesChain
)

func (k DeductionKind) String() string {
	switch k {
	case Given:
		return "Given"
	case NakedSingle:
		return "NakedSingle"
	case HiddenSingle:
		return "HiddenSingle"
	case LockedCandidates:
		return "LockedCandidates"
	case NakedSubsets:
		return "NakedSubsets"
	case HiddenSubsets:
		return "HiddenSubsets"
	case BasicFish:
		return "BasicFish"
	case SinglesChain:
		return "SinglesChain"
	default:
		return "Unknown"
	}
}

// EliminationRange is a half-open index range into a Log's Eliminated slice,
// letting a Deduction point at the eliminations it produced without
// duplicating them.
type EliminationRange struct {
	Start, End int
}

func (r EliminationRange) Empty() bool { return r.Start >= r.End }

// Deduction is one step of the solver's trace. Only the fields relevant to
// Kind are populated; one flat struct carries every technique's payload
// rather than hiding the shapes behind an interface.
type Deduction struct {
	Kind DeductionKind

	// Given, NakedSingle, HiddenSingle
	Candidate core.Candidate

	// HiddenSingle, NakedSubsets, HiddenSubsets: the house the pattern was
	// found in (and, for HiddenSingle, also the placement's house category).
	House core.House

	// LockedCandidates
	MiniLine core.MiniLine

	// NakedSubsets, HiddenSubsets (Digits also for LockedCandidates)
	Positions core.Set[core.Position]
	Digits    core.Set[core.Digit]

	// BasicFish
	Lines   core.Set[core.Line]
	Digit   core.Digit
	FishPos core.Set[core.Position]

	// SinglesChain
	ChainDigit core.Digit
	ColourA    core.CellSet
	ColourB    core.CellSet

	// LockedCandidates, NakedSubsets, HiddenSubsets, BasicFish, SinglesChain
	Eliminations EliminationRange
}

// Log holds every append-only record the solver accumulates: every
// placement ever accepted (Deduced), every candidate ever ruled out
// (Eliminated), and the ordered trace of Deduction records that explain them.
type Log struct {
	Deduced    []core.Candidate
	Eliminated []core.Candidate
	Deductions []Deduction
}

func (lg *Log) pushDeduced(c core.Candidate) {
	lg.Deduced = append(lg.Deduced, c)
}

func (lg *Log) pushEliminated(cs ...core.Candidate) EliminationRange {
	start := len(lg.Eliminated)
	lg.Eliminated = append(lg.Eliminated, cs...)
	return EliminationRange{Start: start, End: len(lg.Eliminated)}
}

func (lg *Log) pushDeduction(d Deduction) {
	lg.Deductions = append(lg.Deductions, d)
}

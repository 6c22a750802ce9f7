package engine

import (
	"fmt"
	"strings"

	"sudoku-engine/internal/core"
)

// Explain renders one Deduction as a human-readable sentence, for the
// hint-style "steps" endpoint. It never needs the Log it came from: every
// Deduction already carries everything needed to describe it, except the
// specific eliminated candidates, which are summarized by count.
func Explain(d Deduction) string {
	elims := d.Eliminations.End - d.Eliminations.Start
	switch d.Kind {
	case Given:
		return fmt.Sprintf("%s is given as %s", d.Candidate.Cell, d.Candidate.Digit)
	case NakedSingle:
		return fmt.Sprintf("%s can only be %s", d.Candidate.Cell, d.Candidate.Digit)
	case HiddenSingle:
		return fmt.Sprintf("%s is the only place for %s in %s", d.Candidate.Cell, d.Candidate.Digit, d.House)
	case LockedCandidates:
		return fmt.Sprintf("locked candidates %s confine %s, eliminating %d candidate(s)", digitList(d.Digits), d.MiniLine, elims)
	case NakedSubsets:
		return fmt.Sprintf("naked subset %s in %s, eliminating %d candidate(s)", digitList(d.Digits), d.House, elims)
	case HiddenSubsets:
		return fmt.Sprintf("hidden subset %s in %s, eliminating %d candidate(s)", digitList(d.Digits), d.House, elims)
	case BasicFish:
		return fmt.Sprintf("fish on %s across %s, eliminating %d candidate(s)", d.Digit, lineList(d.Lines), elims)
	case SinglesChain:
		return fmt.Sprintf("singles chain on %s, eliminating %d candidate(s)", d.ChainDigit, elims)
	default:
		return "unknown deduction"
	}
}

func digitList(s core.Set[core.Digit]) string {
	var parts []string
	for _, d := range core.DigitsElements(s) {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ",")
}

func lineList(s core.Set[core.Line]) string {
	var parts []string
	for _, l := range core.LinesElements(s) {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ",")
}

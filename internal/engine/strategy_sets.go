package engine

import (
	"fmt"

	"sudoku-engine/pkg/constants"
)

// ParseStrategyID maps a strategy's String() name back to its StrategyID,
// the inverse of StrategyID.String used when a caller configures a strategy
// list by name (e.g. from pkg/constants.StrategySets or an HTTP request).
func ParseStrategyID(name string) (StrategyID, bool) {
	for id := NakedSinglesID; id <= SinglesChainID; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}

// StrategyListFromNames resolves a named list of strategies (in priority
// order) into the StrategyID slice TrySolve/Solve expect.
func StrategyListFromNames(names []string) ([]StrategyID, error) {
	ids := make([]StrategyID, 0, len(names))
	for _, name := range names {
		id, ok := ParseStrategyID(name)
		if !ok {
			return nil, fmt.Errorf("engine: unknown strategy %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// StrategyListForSet resolves one of pkg/constants.StrategySets's named
// sets into a StrategyID list.
func StrategyListForSet(name string) ([]StrategyID, error) {
	names, ok := constants.StrategySets[name]
	if !ok {
		return nil, fmt.Errorf("engine: unknown strategy set %q", name)
	}
	return StrategyListFromNames(names)
}

// Grade reports a coarse difficulty label for a trace, based on the
// hardest technique it contains. An empty trace (or one containing only
// Given/NakedSingle/HiddenSingle) grades simple; locked candidates and
// subsets grade medium; basic fish and singles chains grade hard.
func Grade(deductions []Deduction) string {
	hardest := constants.GradeSimple
	for _, d := range deductions {
		switch d.Kind {
		case BasicFish, SinglesChain:
			return constants.GradeHard
		case LockedCandidates, NakedSubsets, HiddenSubsets:
			hardest = constants.GradeMedium
		}
	}
	return hardest
}

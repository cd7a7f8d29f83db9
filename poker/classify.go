package poker

import (
	"fmt"
	"strings"
)

// Result is the classification of a single hand
type Result struct {
	Category Category
	TieBreak TieBreak // only meaningful against a Result of the same Category
}

// String returns the category followed by its tie-break faces (e.g., "Two Pairs [5 2 K]")
func (r Result) String() string {
	if len(r.TieBreak) == 0 {
		return r.Category.String()
	}
	faces := make([]string, len(r.TieBreak))
	for i, f := range r.TieBreak {
		faces[i] = f.String()
	}
	return fmt.Sprintf("%s [%s]", r.Category, strings.Join(faces, " "))
}

// Classify returns the category of the strongest detector matching h
func Classify(h Hand) Result {
	for _, d := range detectors {
		if tb, ok := d.Detect(h); ok {
			return Result{Category: d.Category(), TieBreak: tb}
		}
	}
	// Unreachable: the high card detector always matches.
	panic("poker: no detector matched hand " + h.String())
}

// Outcome is the result of comparing two classified hands
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// String returns a human-readable outcome
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case FirstWins:
		return "First Wins"
	case SecondWins:
		return "Second Wins"
	default:
		return "Unknown"
	}
}

// Compare orders two results by category strength, then by tie-break faces
// left to right. Two royal flushes always tie.
func Compare(a, b Result) Outcome {
	switch a.Compare(b) {
	case 1:
		return FirstWins
	case -1:
		return SecondWins
	default:
		return Tie
	}
}

// Compare returns -1 if r is weaker than other, 0 if equal, 1 if r is stronger
func (r Result) Compare(other Result) int {
	if r.Category < other.Category {
		return -1
	}
	if r.Category > other.Category {
		return 1
	}
	if r.Category == RoyalFlush {
		return 0
	}

	for i := 0; i < len(r.TieBreak) && i < len(other.TieBreak); i++ {
		if r.TieBreak[i] < other.TieBreak[i] {
			return -1
		}
		if r.TieBreak[i] > other.TieBreak[i] {
			return 1
		}
	}
	return 0
}

// CompareHands classifies both hands and compares them
func CompareHands(a, b Hand) Outcome {
	return Compare(Classify(a), Classify(b))
}

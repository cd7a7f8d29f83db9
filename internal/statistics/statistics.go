package statistics

import (
	"fmt"

	"github.com/lox/pokerhands/poker"
)

// Player identifies one side of a head-to-head line
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// HandResult represents the outcome of a single line of input
type HandResult struct {
	Line    int // 1-based input line number
	First   poker.Result
	Second  poker.Result
	Outcome poker.Outcome
}

// CategoryStats counts how often a category appeared and how often it won
type CategoryStats struct {
	Seen int // hands classified into the category, either side
	Wins int // lines won by a hand of the category
}

// Tally accumulates head-to-head results over a stream of lines
type Tally struct {
	Hands     int // compared lines
	Player1   int // lines won by the first hand
	Player2   int // lines won by the second hand
	Ties      int
	Malformed int // lines skipped because they could not be parsed

	// Indexed by poker.Category; index 0 unused
	Categories [poker.NumCategories + 1]CategoryStats
}

// Add incorporates a compared line into the tally
func (t *Tally) Add(result HandResult) {
	t.Hands++
	t.Categories[result.First.Category].Seen++
	t.Categories[result.Second.Category].Seen++

	switch result.Outcome {
	case poker.FirstWins:
		t.Player1++
		t.Categories[result.First.Category].Wins++
	case poker.SecondWins:
		t.Player2++
		t.Categories[result.Second.Category].Wins++
	default:
		t.Ties++
	}
}

// AddMalformed records a line that was skipped
func (t *Tally) AddMalformed() {
	t.Malformed++
}

// Merge folds another tally into t
func (t *Tally) Merge(other *Tally) {
	t.Hands += other.Hands
	t.Player1 += other.Player1
	t.Player2 += other.Player2
	t.Ties += other.Ties
	t.Malformed += other.Malformed
	for i := range t.Categories {
		t.Categories[i].Seen += other.Categories[i].Seen
		t.Categories[i].Wins += other.Categories[i].Wins
	}
}

// Wins returns the number of lines won by p
func (t *Tally) Wins(p Player) int {
	switch p {
	case Player1:
		return t.Player1
	case Player2:
		return t.Player2
	default:
		return 0
	}
}

// WinRate returns the fraction of compared lines won by p
func (t *Tally) WinRate(p Player) float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(t.Wins(p)) / float64(t.Hands)
}

// TieRate returns the fraction of compared lines that tied
func (t *Tally) TieRate() float64 {
	if t.Hands == 0 {
		return 0
	}
	return float64(t.Ties) / float64(t.Hands)
}

// IsLedgerBalanced checks that every compared line is a win or a tie
func (t *Tally) IsLedgerBalanced() bool {
	return t.Player1+t.Player2+t.Ties == t.Hands
}

// Validate performs consistency checks on the tally
func (t *Tally) Validate() error {
	if !t.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: hands=%d, player1=%d, player2=%d, ties=%d",
			t.Hands, t.Player1, t.Player2, t.Ties)
	}

	seen, wins := 0, 0
	for _, cs := range t.Categories {
		seen += cs.Seen
		wins += cs.Wins
	}
	if seen != 2*t.Hands {
		return fmt.Errorf("category total (%d) does not match two hands per line (%d)", seen, 2*t.Hands)
	}
	if wins != t.Player1+t.Player2 {
		return fmt.Errorf("category wins (%d) do not match decided lines (%d)", wins, t.Player1+t.Player2)
	}
	return nil
}

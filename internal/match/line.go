// Package match streams head-to-head lines of hands through the classifier
// and tallies the outcomes.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/pokerhands/internal/statistics"
	"github.com/lox/pokerhands/poker"
)

// ErrBlankLine is returned by ParseLine for lines holding only whitespace
var ErrBlankLine = errors.New("blank line")

// LineError reports a line that could not be parsed
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Pair holds the two hands dealt on one line
type Pair struct {
	First  poker.Hand
	Second poker.Hand
}

// Compare classifies both hands and reports the outcome for the given line number
func (p Pair) Compare(line int) statistics.HandResult {
	first := poker.Classify(p.First)
	second := poker.Classify(p.Second)
	return statistics.HandResult{
		Line:    line,
		First:   first,
		Second:  second,
		Outcome: poker.Compare(first, second),
	}
}

// SplitLine splits a line at its midpoint. An odd middle character goes to
// the second half. Both halves are trimmed of surrounding whitespace.
func SplitLine(line string) (first, second string) {
	line = strings.TrimRight(line, "\r\n")
	mid := len(line) / 2
	return strings.TrimSpace(line[:mid]), strings.TrimSpace(line[mid:])
}

// ParseLine splits a line into two hands and parses both
func ParseLine(line string) (Pair, error) {
	if strings.TrimSpace(line) == "" {
		return Pair{}, ErrBlankLine
	}

	firstText, secondText := SplitLine(line)
	first, err := poker.ParseHand(firstText)
	if err != nil {
		return Pair{}, fmt.Errorf("first hand: %w", err)
	}
	second, err := poker.ParseHand(secondText)
	if err != nil {
		return Pair{}, fmt.Errorf("second hand: %w", err)
	}
	return Pair{First: first, Second: second}, nil
}

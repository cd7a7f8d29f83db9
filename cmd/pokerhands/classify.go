package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lox/pokerhands/poker"
)

// ClassifyCmd prints the category and tie-break faces of each hand
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands in format 'TH JH QH KH AH' (quoted, one argument per hand)"`
}

func (cmd *ClassifyCmd) Run() error {
	return classifyHands(os.Stdout, cmd.Hands)
}

func classifyHands(w io.Writer, hands []string) error {
	parsed := make([]poker.Hand, len(hands))
	for i, text := range hands {
		h, err := poker.ParseHand(text)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		parsed[i] = h
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, h := range parsed {
		fmt.Fprintf(tw, "%s\t%s\n", h, poker.Classify(h))
	}
	return tw.Flush()
}

// CompareCmd reports which of two hands wins
type CompareCmd struct {
	First  string `arg:"" help:"First hand, e.g. '2H 2D 2S 2C 5H'"`
	Second string `arg:"" help:"Second hand, e.g. '3H 3D 3S 5C 5H'"`
}

func (cmd *CompareCmd) Run() error {
	return compareHands(os.Stdout, cmd.First, cmd.Second)
}

func compareHands(w io.Writer, firstText, secondText string) error {
	first, err := poker.ParseHand(firstText)
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}
	second, err := poker.ParseHand(secondText)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}

	a, b := poker.Classify(first), poker.Classify(second)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Player 1\t%s\t%s\n", first, a)
	fmt.Fprintf(tw, "Player 2\t%s\t%s\n", second, b)
	if err := tw.Flush(); err != nil {
		return err
	}

	var verdict string
	switch poker.Compare(a, b) {
	case poker.FirstWins:
		verdict = "Player 1 wins"
	case poker.SecondWins:
		verdict = "Player 2 wins"
	default:
		verdict = "Tie"
	}
	_, err = fmt.Fprintln(w, verdict)
	return err
}

// Package report renders a tally in plain, tabular or JSON form.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhands/internal/match"
	"github.com/lox/pokerhands/internal/statistics"
	"github.com/lox/pokerhands/poker"
)

// WriteText writes the two-line player summary
func WriteText(w io.Writer, tally *statistics.Tally) error {
	_, err := fmt.Fprintf(w, "Player 1: %d\nPlayer 2: %d\n", tally.Player1, tally.Player2)
	return err
}

// Renderer writes styled tables. Colours are dropped when disabled or when
// the writer is not a terminal.
type Renderer struct {
	w io.Writer

	headerStyle   lipgloss.Style
	playerStyle   lipgloss.Style
	winStyle      lipgloss.Style
	tieStyle      lipgloss.Style
	categoryStyle lipgloss.Style
	dimStyle      lipgloss.Style
}

// NewRenderer creates a table renderer writing to w
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:             w,
		headerStyle:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		playerStyle:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		winStyle:      lr.NewStyle().Foreground(lipgloss.Color("10")),
		tieStyle:      lr.NewStyle().Foreground(lipgloss.Color("11")),
		categoryStyle: lr.NewStyle().Foreground(lipgloss.Color("12")),
		dimStyle:      lr.NewStyle().Faint(true),
	}
}

// WriteTable writes the player summary followed by a per-category breakdown
func (r *Renderer) WriteTable(summary *match.Summary) error {
	tally := summary.Tally
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		r.headerStyle.Render("player"),
		r.headerStyle.Render("wins"),
		r.headerStyle.Render("rate"))
	for _, p := range []statistics.Player{statistics.Player1, statistics.Player2} {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			r.playerStyle.Render(fmt.Sprintf("Player %d", p)),
			r.winStyle.Render(fmt.Sprintf("%d", tally.Wins(p))),
			r.winStyle.Render(percent(tally.WinRate(p))))
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		r.playerStyle.Render("Ties"),
		r.tieStyle.Render(fmt.Sprintf("%d", tally.Ties)),
		r.tieStyle.Render(percent(tally.TieRate())))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(r.w)
	tw = tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		r.headerStyle.Render("category"),
		r.headerStyle.Render("seen"),
		r.headerStyle.Render("wins"))
	for _, c := range poker.Categories() {
		cs := tally.Categories[c]
		if cs.Seen == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", r.categoryStyle.Render(c.String()), cs.Seen, cs.Wins)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(r.w)
	footer := fmt.Sprintf("%d hands from %d lines", tally.Hands, summary.Lines)
	if tally.Malformed > 0 {
		footer += fmt.Sprintf(", %d malformed", tally.Malformed)
	}
	if summary.StoppedAt > 0 {
		footer += fmt.Sprintf(", stopped at line %d", summary.StoppedAt)
	}
	footer += fmt.Sprintf(" in %v", summary.Elapsed.Truncate(time.Millisecond))
	_, err := fmt.Fprintln(r.w, r.dimStyle.Render(footer))
	return err
}

// Document is the JSON form of a run summary
type Document struct {
	Player1    int                     `json:"player_1"`
	Player2    int                     `json:"player_2"`
	Ties       int                     `json:"ties"`
	Hands      int                     `json:"hands"`
	Lines      int                     `json:"lines"`
	Malformed  int                     `json:"malformed"`
	StoppedAt  int                     `json:"stopped_at,omitempty"`
	ElapsedMS  int64                   `json:"elapsed_ms"`
	Categories map[string]CategoryCount `json:"categories"`
}

// CategoryCount is the JSON form of statistics.CategoryStats
type CategoryCount struct {
	Seen int `json:"seen"`
	Wins int `json:"wins"`
}

// NewDocument converts a summary into its JSON document
func NewDocument(summary *match.Summary) Document {
	tally := summary.Tally
	doc := Document{
		Player1:    tally.Player1,
		Player2:    tally.Player2,
		Ties:       tally.Ties,
		Hands:      tally.Hands,
		Lines:      summary.Lines,
		Malformed:  tally.Malformed,
		StoppedAt:  summary.StoppedAt,
		ElapsedMS:  summary.Elapsed.Milliseconds(),
		Categories: make(map[string]CategoryCount),
	}
	for _, c := range poker.Categories() {
		cs := tally.Categories[c]
		if cs.Seen == 0 {
			continue
		}
		doc.Categories[c.Key()] = CategoryCount{Seen: cs.Seen, Wins: cs.Wins}
	}
	return doc
}

// MarshalJSON returns the indented JSON document for a summary
func MarshalJSON(summary *match.Summary) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(summary), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return append(data, '\n'), nil
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

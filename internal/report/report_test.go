package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhands/internal/match"
	"github.com/lox/pokerhands/internal/statistics"
	"github.com/lox/pokerhands/poker"
)

func sampleSummary(t *testing.T) *match.Summary {
	t.Helper()
	tally := &statistics.Tally{}
	for i, line := range []string{
		"2H 2D 2S 2C 5H 3H 3D 3S 5C 5H",
		"TH JH QH KH AH TS JS QS KS AS",
		"2H 5D 9S JC KH 7H 7D 7S KC 2H",
	} {
		pair, err := match.ParseLine(line)
		require.NoError(t, err)
		tally.Add(pair.Compare(i + 1))
	}
	tally.AddMalformed()
	return &match.Summary{Tally: tally, Lines: 4, StoppedAt: 0, Elapsed: 1500 * time.Millisecond}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &statistics.Tally{Player1: 376, Player2: 624}))
	assert.Equal(t, "Player 1: 376\nPlayer 2: 624\n", buf.String())
}

func TestWriteTableWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, false).WriteTable(sampleSummary(t)))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no escape sequences when colour is disabled")
	assert.Contains(t, out, "Player 1")
	assert.Contains(t, out, "33.3%")
	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "Four of a Kind")
	assert.NotContains(t, out, "Straight Flush", "unseen categories are omitted")
	assert.Contains(t, out, "3 hands from 4 lines, 1 malformed in 1.5s")
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(sampleSummary(t))
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc.Player1)
	assert.Equal(t, 1, doc.Player2)
	assert.Equal(t, 1, doc.Ties)
	assert.Equal(t, 3, doc.Hands)
	assert.Equal(t, 1, doc.Malformed)
	assert.Equal(t, int64(1500), doc.ElapsedMS)
	assert.Equal(t, CategoryCount{Seen: 2, Wins: 0}, doc.Categories[poker.RoyalFlush.Key()])
	assert.Equal(t, CategoryCount{Seen: 1, Wins: 1}, doc.Categories["four_of_a_kind"])
	assert.NotContains(t, doc.Categories, "straight_flush")
	assert.NotContains(t, string(data), "stopped_at")
}

package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhands/poker"
)

func TestSplitLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		line       string
		wantFirst  string
		wantSecond string
	}{
		{
			name:       "single space separator",
			line:       "8C TS KC 9H 4S 7D 2S 5D 3S AC",
			wantFirst:  "8C TS KC 9H 4S",
			wantSecond: "7D 2S 5D 3S AC",
		},
		{
			name:       "trailing newline",
			line:       "5C AD 5D AC 9C 7C 5H 8D TD KS\n",
			wantFirst:  "5C AD 5D AC 9C",
			wantSecond: "7C 5H 8D TD KS",
		},
		{
			name:       "windows line ending",
			line:       "5C AD 5D AC 9C 7C 5H 8D TD KS\r\n",
			wantFirst:  "5C AD 5D AC 9C",
			wantSecond: "7C 5H 8D TD KS",
		},
		{
			name:       "odd middle character goes to second half",
			line:       "abcXdef",
			wantFirst:  "abc",
			wantSecond: "Xdef",
		},
		{
			name:       "empty",
			line:       "",
			wantFirst:  "",
			wantSecond: "",
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			first, second := SplitLine(tc.line)
			assert.Equal(t, tc.wantFirst, first)
			assert.Equal(t, tc.wantSecond, second)
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	pair, err := ParseLine("TH JH QH KH AH TS JS QS KS AS")
	require.NoError(t, err)
	assert.Equal(t, poker.MustParseHand("TH JH QH KH AH"), pair.First)
	assert.Equal(t, poker.MustParseHand("TS JS QS KS AS"), pair.Second)

	_, err = ParseLine("   \t")
	assert.ErrorIs(t, err, ErrBlankLine)

	_, err = ParseLine("1H JH QH KH AH TS JS QS KS AS")
	assert.ErrorIs(t, err, poker.ErrUnknownFace)
	assert.ErrorContains(t, err, "first hand")

	_, err = ParseLine("TH JH QH KH AH TS JS QS KS AX")
	assert.ErrorIs(t, err, poker.ErrUnknownSuit)
	assert.ErrorContains(t, err, "second hand")

	_, err = ParseLine("TH JH QH KH AH TS")
	assert.ErrorIs(t, err, poker.ErrWrongCardCount)
}

func TestPairCompare(t *testing.T) {
	t.Parallel()
	pair, err := ParseLine("2H 2D 5S 5C KH 2S 2C 5D 5H QH")
	require.NoError(t, err)

	result := pair.Compare(7)
	assert.Equal(t, 7, result.Line)
	assert.Equal(t, poker.TwoPairs, result.First.Category)
	assert.Equal(t, poker.TwoPairs, result.Second.Category)
	assert.Equal(t, poker.FirstWins, result.Outcome)
}

func TestLineError(t *testing.T) {
	t.Parallel()
	err := &LineError{Line: 3, Err: poker.ErrWrongCardCount}
	assert.Equal(t, "line 3: wrong card count", err.Error())
	assert.True(t, errors.Is(err, poker.ErrWrongCardCount))
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()
	for _, p := range []Policy{PolicyStop, PolicySkip, PolicyFail} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePolicy(" SKIP ")
	require.NoError(t, err)
	assert.Equal(t, PolicySkip, got)

	_, err = ParsePolicy("ignore")
	assert.Error(t, err)
}

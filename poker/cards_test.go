package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Face)
	assert.Equal(t, Spades, aceSpades.Suit)
	assert.Equal(t, "AS", aceSpades.String())

	twoClubs := NewCard(Two, Clubs)
	assert.Equal(t, "2C", twoClubs.String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  error
	}{
		{name: "ace of spades", input: "AS", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2H", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "KD", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "TC", wantCard: NewCard(Ten, Clubs)},
		{name: "nine of spades", input: "9S", wantCard: NewCard(Nine, Spades)},
		{name: "lowercase", input: "qh", wantCard: NewCard(Queen, Hearts)},
		{name: "unknown face", input: "1H", wantErr: ErrUnknownFace},
		{name: "ten written as 10", input: "10", wantErr: ErrUnknownFace},
		{name: "unknown suit", input: "AX", wantErr: ErrUnknownSuit},
		{name: "empty string", input: "", wantErr: ErrMalformedCard},
		{name: "too short", input: "A", wantErr: ErrMalformedCard},
		{name: "too long", input: "ASD", wantErr: ErrMalformedCard},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)

				var perr *ParseError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, tc.input, perr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCard, card)
		})
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	t.Parallel()
	for f := Two; f <= Ace; f++ {
		for s := Hearts; s <= Clubs; s++ {
			card := NewCard(f, s)
			parsed, err := ParseCard(card.String())
			require.NoError(t, err)
			assert.Equal(t, card, parsed)
		}
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Hand
		wantErr error
	}{
		{
			name:  "royal flush",
			input: "TH JH QH KH AH",
			want: NewHand(
				NewCard(Ten, Hearts),
				NewCard(Jack, Hearts),
				NewCard(Queen, Hearts),
				NewCard(King, Hearts),
				NewCard(Ace, Hearts),
			),
		},
		{
			name:  "extra whitespace",
			input: "  2H\t3D  5S 9C  KD \n",
			want: NewHand(
				NewCard(Two, Hearts),
				NewCard(Three, Diamonds),
				NewCard(Five, Spades),
				NewCard(Nine, Clubs),
				NewCard(King, Diamonds),
			),
		},
		{name: "four cards", input: "2H 3D 5S 9C", wantErr: ErrWrongCardCount},
		{name: "six cards", input: "2H 3D 5S 9C KD AS", wantErr: ErrWrongCardCount},
		{name: "empty", input: "", wantErr: ErrWrongCardCount},
		{name: "bad face", input: "1H 3D 5S 9C KD", wantErr: ErrUnknownFace},
		{name: "bad suit", input: "2H 3D 5S 9C KZ", wantErr: ErrUnknownSuit},
		{name: "glued tokens", input: "2H3D 5S 9C KD AS", wantErr: ErrMalformedCard},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseHand(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMustParseHand(t *testing.T) {
	t.Parallel()
	h := MustParseHand("2H 2D 2S 2C 5H")
	assert.Equal(t, "2H 2D 2S 2C 5H", h.String())

	assert.Panics(t, func() { MustParseHand("invalid") })
}

func TestFaceAndSuitCounts(t *testing.T) {
	t.Parallel()
	h := MustParseHand("2H 2D 5S 5C KH")

	faces := FaceCounts(h)
	assert.Equal(t, 2, faces[Two])
	assert.Equal(t, 2, faces[Five])
	assert.Equal(t, 1, faces[King])
	assert.Equal(t, 0, faces[Ace])

	suits := SuitCounts(h)
	assert.Equal(t, [NumSuits]int{Hearts: 2, Diamonds: 1, Spades: 1, Clubs: 1}, suits)
}

func TestHandFacesDescending(t *testing.T) {
	t.Parallel()
	h := MustParseHand("3C KD 9H 3S AH")
	assert.Equal(t, []Face{Ace, King, Nine, Three, Three}, h.Faces())
	// The hand itself is left untouched.
	assert.Equal(t, "3C KD 9H 3S AH", h.String())
}

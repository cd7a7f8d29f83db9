package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Face is a card value ranked 0 (Two) through 12 (Ace)
type Face uint8

// Face constants (0-12 for 2-A)
const (
	Two Face = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumFaces is the number of distinct faces in a deck
const NumFaces = 13

const faceSymbols = "23456789TJQKA"

// String returns the single-character face symbol (e.g., "T", "A")
func (f Face) String() string {
	if f >= NumFaces {
		return "?"
	}
	return string(faceSymbols[f])
}

// Suit identifies a card's suit. Suits have no ranking order.
type Suit uint8

// Suit constants
const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// NumSuits is the number of distinct suits in a deck
const NumSuits = 4

const suitSymbols = "HDSC"

// String returns the single-character suit symbol
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return string(suitSymbols[s])
}

// Card is an immutable (face, suit) pair
type Card struct {
	Face Face
	Suit Suit
}

// NewCard creates a card from a face and suit
func NewCard(face Face, suit Suit) Card {
	return Card{Face: face, Suit: suit}
}

// String returns the two-character notation (e.g., "AS", "TD")
func (c Card) String() string {
	return c.Face.String() + c.Suit.String()
}

// HandSize is the number of cards in a hand
const HandSize = 5

// Hand is an unordered collection of exactly five cards
type Hand [HandSize]Card

// NewHand creates a hand from five cards
func NewHand(c1, c2, c3, c4, c5 Card) Hand {
	return Hand{c1, c2, c3, c4, c5}
}

// String returns the cards in notation order, space separated
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Faces returns the faces of the hand sorted from highest to lowest
func (h Hand) Faces() []Face {
	faces := make([]Face, 0, HandSize)
	for _, c := range h {
		faces = append(faces, c.Face)
	}
	sortFacesDesc(faces)
	return faces
}

// Parse errors. ParseError values match these with errors.Is.
var (
	ErrUnknownFace    = errors.New("unknown face")
	ErrUnknownSuit    = errors.New("unknown suit")
	ErrMalformedCard  = errors.New("malformed card")
	ErrWrongCardCount = errors.New("wrong card count")
)

// ParseError reports input that cannot be turned into a card or hand
type ParseError struct {
	Reason error  // one of the Err* sentinels above
	Input  string // offending token or hand text
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// ParseCard parses a two-character token like "AS" into a Card.
// Face and suit letters are accepted in either case.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, &ParseError{Reason: ErrMalformedCard, Input: token}
	}

	face, ok := parseFace(token[0])
	if !ok {
		return Card{}, &ParseError{Reason: ErrUnknownFace, Input: token}
	}

	suit, ok := parseSuit(token[1])
	if !ok {
		return Card{}, &ParseError{Reason: ErrUnknownSuit, Input: token}
	}

	return NewCard(face, suit), nil
}

// ParseHand parses whitespace-separated card tokens into a Hand
func ParseHand(text string) (Hand, error) {
	tokens := strings.Fields(text)
	if len(tokens) != HandSize {
		return Hand{}, &ParseError{Reason: ErrWrongCardCount, Input: text}
	}

	var h Hand
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return Hand{}, err
		}
		h[i] = card
	}
	return h, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(text string) Hand {
	h, err := ParseHand(text)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", text, err))
	}
	return h
}

func parseFace(c byte) (Face, bool) {
	switch c {
	case '2':
		return Two, true
	case '3':
		return Three, true
	case '4':
		return Four, true
	case '5':
		return Five, true
	case '6':
		return Six, true
	case '7':
		return Seven, true
	case '8':
		return Eight, true
	case '9':
		return Nine, true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'H', 'h':
		return Hearts, true
	case 'D', 'd':
		return Diamonds, true
	case 'S', 's':
		return Spades, true
	case 'C', 'c':
		return Clubs, true
	default:
		return 0, false
	}
}

// FaceCounts returns how many cards of each face the hand holds, indexed by Face
func FaceCounts(h Hand) [NumFaces]int {
	var counts [NumFaces]int
	for _, c := range h {
		counts[c.Face]++
	}
	return counts
}

// SuitCounts returns how many cards of each suit the hand holds, indexed by Suit
func SuitCounts(h Hand) [NumSuits]int {
	var counts [NumSuits]int
	for _, c := range h {
		counts[c.Suit]++
	}
	return counts
}

// sortFacesDesc is an insertion sort; inputs never exceed five elements
func sortFacesDesc(faces []Face) {
	for i := 1; i < len(faces); i++ {
		for j := i; j > 0 && faces[j] > faces[j-1]; j-- {
			faces[j], faces[j-1] = faces[j-1], faces[j]
		}
	}
}

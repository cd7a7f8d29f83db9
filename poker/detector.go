package poker

// TieBreak is an ordered sequence of faces compared left to right between
// two hands of the same category.
type TieBreak []Face

// Detector tests whether a hand belongs to one category and, if it does,
// builds the hand's tie-break sequence.
type Detector interface {
	Category() Category
	Detect(h Hand) (TieBreak, bool)
}

type detectorFunc struct {
	category Category
	detect   func(h Hand) (TieBreak, bool)
}

func (d detectorFunc) Category() Category { return d.category }

func (d detectorFunc) Detect(h Hand) (TieBreak, bool) { return d.detect(h) }

// detectors is evaluated strongest first. A royal flush also satisfies the
// straight and flush matchers, so order decides the category. highCard
// always matches, which makes the list total.
var detectors = [...]Detector{
	detectorFunc{RoyalFlush, royalFlush},
	detectorFunc{StraightFlush, straightFlush},
	detectorFunc{FourOfAKind, fourOfAKind},
	detectorFunc{FullHouse, fullHouse},
	detectorFunc{Flush, flush},
	detectorFunc{Straight, straight},
	detectorFunc{ThreeOfAKind, threeOfAKind},
	detectorFunc{TwoPairs, twoPairs},
	detectorFunc{OnePair, onePair},
	detectorFunc{HighCard, highCard},
}

// Detectors returns the detector list in evaluation order
func Detectors() []Detector {
	out := make([]Detector, len(detectors))
	copy(out, detectors[:])
	return out
}

func royalFlush(h Hand) (TieBreak, bool) {
	if !isSuited(h) {
		return nil, false
	}
	counts := FaceCounts(h)
	for f := Ten; f <= Ace; f++ {
		if counts[f] != 1 {
			return nil, false
		}
	}
	// All royal flushes are equal in value.
	return TieBreak{}, true
}

func straightFlush(h Hand) (TieBreak, bool) {
	if !isSuited(h) {
		return nil, false
	}
	return straight(h)
}

func fourOfAKind(h Hand) (TieBreak, bool) {
	quads := facesWithCount(h, 4)
	if len(quads) != 1 {
		return nil, false
	}
	kickers := facesWithCount(h, 1)
	return TieBreak{quads[0], kickers[0]}, true
}

func fullHouse(h Hand) (TieBreak, bool) {
	trips := facesWithCount(h, 3)
	pairs := facesWithCount(h, 2)
	if len(trips) != 1 || len(pairs) != 1 {
		return nil, false
	}
	return TieBreak{trips[0], pairs[0]}, true
}

func flush(h Hand) (TieBreak, bool) {
	if !isSuited(h) {
		return nil, false
	}
	return TieBreak(h.Faces()), true
}

// straight requires five contiguous ranks. Ace is high only, so A-2-3-4-5
// does not match.
func straight(h Hand) (TieBreak, bool) {
	faces := h.Faces()
	for i := 1; i < len(faces); i++ {
		if faces[i-1] != faces[i]+1 {
			return nil, false
		}
	}
	return TieBreak{faces[0]}, true
}

func threeOfAKind(h Hand) (TieBreak, bool) {
	trips := facesWithCount(h, 3)
	singles := facesWithCount(h, 1)
	if len(trips) != 1 || len(singles) != 2 {
		return nil, false
	}
	return append(TieBreak{trips[0]}, singles...), true
}

func twoPairs(h Hand) (TieBreak, bool) {
	pairs := facesWithCount(h, 2)
	if len(pairs) != 2 {
		return nil, false
	}
	kickers := facesWithCount(h, 1)
	return TieBreak{pairs[0], pairs[1], kickers[0]}, true
}

func onePair(h Hand) (TieBreak, bool) {
	pairs := facesWithCount(h, 2)
	singles := facesWithCount(h, 1)
	if len(pairs) != 1 || len(singles) != 3 {
		return nil, false
	}
	return append(TieBreak{pairs[0]}, singles...), true
}

func highCard(h Hand) (TieBreak, bool) {
	return TieBreak(h.Faces()), true
}

func isSuited(h Hand) bool {
	for _, n := range SuitCounts(h) {
		if n == HandSize {
			return true
		}
	}
	return false
}

// facesWithCount returns, highest first, every face held exactly n times
func facesWithCount(h Hand, n int) []Face {
	counts := FaceCounts(h)
	var out []Face
	for f := Ace; ; f-- {
		if counts[f] == n {
			out = append(out, f)
		}
		if f == Two {
			break
		}
	}
	return out
}

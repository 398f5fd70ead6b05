package game

import "math/rand"

const (
	// maxDeckAttempts bounds deck regeneration during level setup.
	maxDeckAttempts = 20

	// maxAcceptableMin is the largest optimal solve the setup accepts before
	// giving the deck another try.
	maxAcceptableMin = 6
)

// Puzzle is one balancing problem. The hidden reactor charge E satisfies
// E + LeftConstant = RightValue; the player wins by driving LeftConstant to
// zero. A tap adds the card's delta to both sides, so the equation stays true
// for the same E throughout.
type Puzzle struct {
	LeftConstant int  `json:"left_constant"`
	RightValue   int  `json:"right_value"`
	Deck         Deck `json:"deck"`

	// MinMoves is the optimal number of taps; only valid when MinKnown.
	MinMoves int  `json:"min_moves"`
	MinKnown bool `json:"min_known"`

	// Moves is the number of taps committed so far.
	Moves int `json:"moves"`

	lastDelta int
	canUndo   bool
}

// NewPuzzle builds a playable puzzle for the given level. The starting offset
// is a nonzero draw from [-2*maxVal, 2*maxVal], twice the card magnitude cap,
// and the hidden charge comes from the same range. Decks are regenerated
// until the optimal solve is at most maxAcceptableMin taps; an unreachable
// target also counts as a retry. After maxDeckAttempts the last deck is kept
// as-is, so setup never fails outright.
func NewPuzzle(rng *rand.Rand, level int) *Puzzle {
	span := 2 * MaxMagnitude(level)

	offset := 0
	for offset == 0 {
		offset = rng.Intn(2*span+1) - span
	}
	charge := rng.Intn(2*span+1) - span

	p := &Puzzle{
		LeftConstant: offset,
		RightValue:   charge + offset,
	}
	for attempt := 0; attempt < maxDeckAttempts; attempt++ {
		p.Deck = GenerateDeck(rng, level)
		p.MinMoves, p.MinKnown = Solve(-offset, p.Deck)
		if p.MinKnown && p.MinMoves <= maxAcceptableMin {
			break
		}
	}
	return p
}

// Apply commits one card tap, adding its delta to both sides.
func (p *Puzzle) Apply(c Card) {
	d := c.Delta()
	p.LeftConstant += d
	p.RightValue += d
	p.Moves++
	p.lastDelta = d
	p.canUndo = true
}

// Undo reverses the most recent tap and reports whether it did. Only one
// level of history is kept: a second Undo in a row does nothing.
func (p *Puzzle) Undo() bool {
	if !p.canUndo {
		return false
	}
	p.LeftConstant -= p.lastDelta
	p.RightValue -= p.lastDelta
	p.Moves--
	p.canUndo = false
	return true
}

// CanUndo reports whether a tap is available to reverse.
func (p *Puzzle) CanUndo() bool { return p.canUndo }

// Solved reports whether the constant side has been fully annihilated.
func (p *Puzzle) Solved() bool { return p.LeftConstant == 0 }

// Stars scores a finished puzzle: 3 for an optimal solve, 2 for one tap over,
// 1 otherwise. When no optimum is known there is nothing to compare against,
// so the score is 1.
func (p *Puzzle) Stars() int {
	if !p.MinKnown {
		return 1
	}
	switch {
	case p.Moves <= p.MinMoves:
		return 3
	case p.Moves == p.MinMoves+1:
		return 2
	default:
		return 1
	}
}

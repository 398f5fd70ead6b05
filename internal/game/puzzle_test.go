package game

import (
	"math/rand"
	"testing"
)

func TestNewPuzzleStartsUnsolved(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		p := NewPuzzle(rng, 1+i%10)
		if p.LeftConstant == 0 {
			t.Fatalf("Puzzle started already solved: %+v", p)
		}
		if p.Moves != 0 {
			t.Fatalf("Fresh puzzle has %d moves", p.Moves)
		}
	}
}

// The hidden reactor charge E = RightValue - LeftConstant must survive any
// sequence of taps and undos, since every tap shifts both sides equally.
func TestPuzzleEquationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		p := NewPuzzle(rng, 1+i%6)
		charge := p.RightValue - p.LeftConstant
		for j := 0; j < 20; j++ {
			p.Apply(p.Deck[rng.Intn(DeckSize)])
			if rng.Intn(3) == 0 {
				p.Undo()
			}
			if got := p.RightValue - p.LeftConstant; got != charge {
				t.Fatalf("Equation broke after %d taps: charge %d became %d", j+1, charge, got)
			}
		}
	}
}

func TestPuzzleUndoSingleLevel(t *testing.T) {
	p := &Puzzle{LeftConstant: 4, RightValue: 7}
	card := Card{Kind: Antimatter, Magnitude: 3}

	p.Apply(card)
	if p.LeftConstant != 1 || p.RightValue != 4 || p.Moves != 1 {
		t.Fatalf("After apply: %+v", p)
	}
	if !p.CanUndo() {
		t.Fatal("Expected undo to be available after a tap")
	}
	if !p.Undo() {
		t.Fatal("Undo failed")
	}
	if p.LeftConstant != 4 || p.RightValue != 7 || p.Moves != 0 {
		t.Fatalf("After undo: %+v", p)
	}
	if p.Undo() {
		t.Fatal("Second undo in a row should do nothing")
	}
}

func TestPuzzleStars(t *testing.T) {
	cases := []struct {
		moves, min int
		minKnown   bool
		want       int
	}{
		{3, 3, true, 3},
		{4, 3, true, 2},
		{5, 3, true, 1},
		{9, 3, true, 1},
		{2, 0, false, 1},
	}
	for _, c := range cases {
		p := &Puzzle{Moves: c.moves, MinMoves: c.min, MinKnown: c.minKnown}
		if got := p.Stars(); got != c.want {
			t.Errorf("Stars with moves=%d min=%d known=%t: got %d, want %d",
				c.moves, c.min, c.minKnown, got, c.want)
		}
	}
}

// The retry loop regenerates decks until the optimal solve fits in 6 taps.
// With 20 attempts that should almost always succeed; the spec asks for at
// least 95 of 100 initializations across increasing levels.
func TestNewPuzzleUsuallySolvableWithinSixTaps(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	good := 0
	for i := 0; i < 100; i++ {
		p := NewPuzzle(rng, 1+i/10)
		if p.MinKnown && p.MinMoves <= 6 {
			good++
		}
	}
	if good < 95 {
		t.Errorf("Only %d/100 puzzles solvable within 6 taps, want >= 95", good)
	}
}

// A solvable puzzle's optimum must be achievable: greedily replaying card
// applications found by the solver itself, one step at a time, reaches zero
// in exactly MinMoves taps.
func TestNewPuzzleOptimumIsAchievable(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		p := NewPuzzle(rng, 1+i%8)
		if !p.MinKnown {
			continue
		}
		remaining := p.MinMoves
		for !p.Solved() {
			if remaining == 0 {
				t.Fatalf("Ran out of optimal taps: %+v", p)
			}
			tapped := false
			for _, c := range p.Deck {
				// A tap is optimal iff the rest of the puzzle is solvable in
				// one fewer move.
				if after, ok := Solve(-(p.LeftConstant + c.Delta()), p.Deck); ok && after == remaining-1 {
					p.Apply(c)
					remaining--
					tapped = true
					break
				}
			}
			if !tapped {
				t.Fatalf("No optimal tap from %+v with %d moves left", p, remaining)
			}
		}
		if remaining != 0 {
			t.Fatalf("Solved early: %d optimal taps unused", remaining)
		}
	}
}

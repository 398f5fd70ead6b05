package game

import "math/rand"

// Screen identifies which view of the single-page game is active. The flow is
// linear: menu -> playing -> victory -> back to playing (next level) or menu.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenVictory
)

// Phase is one step of the tap choreography: the tapped card vanishes, its
// units stream into the equation, the impact flashes, and the values settle.
// The core only defines the legal order; the presentation layer owns all
// timing and may collapse phases entirely.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRevealing
	PhaseStreaming
	PhaseImpact
	PhaseSettling
)

// Next returns the phase that follows, ending back at PhaseIdle.
func (p Phase) Next() Phase {
	if p >= PhaseSettling || p < PhaseIdle {
		return PhaseIdle
	}
	return p + 1
}

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRevealing:
		return "revealing"
	case PhaseStreaming:
		return "streaming"
	case PhaseImpact:
		return "impact"
	case PhaseSettling:
		return "settling"
	}
	return "unknown"
}

// Session owns one player's run: its own random source, progression counters,
// and the active puzzle. Nothing here is process-global; two sessions built
// from the same seed replay the exact same sequence of puzzles.
type Session struct {
	rng *rand.Rand

	Level  int
	Solved int // lifetime puzzles solved
	Screen Screen
	Puzzle *Puzzle
}

// NewSession creates a session at level 1, on the menu screen, with a random
// source derived from seed.
func NewSession(seed int64) *Session {
	return &Session{
		rng:    rand.New(rand.NewSource(seed)),
		Level:  1,
		Screen: ScreenMenu,
	}
}

// Resume restores previously persisted progression counters. Out-of-range
// values are ignored.
func (s *Session) Resume(level, solved int) {
	if level >= 1 {
		s.Level = level
	}
	if solved >= 0 {
		s.Solved = solved
	}
}

// StartLevel creates a fresh puzzle for the current level and moves to the
// playing screen.
func (s *Session) StartLevel() *Puzzle {
	s.Puzzle = NewPuzzle(s.rng, s.Level)
	s.Screen = ScreenPlaying
	return s.Puzzle
}

// Tap applies the deck card at index i and reports whether it solved the
// puzzle. Taps outside the playing screen or the deck bounds are ignored.
func (s *Session) Tap(i int) bool {
	if s.Screen != ScreenPlaying || s.Puzzle == nil {
		return false
	}
	if i < 0 || i >= DeckSize {
		return false
	}
	s.Puzzle.Apply(s.Puzzle.Deck[i])
	if s.Puzzle.Solved() {
		s.Screen = ScreenVictory
		s.Solved++
		return true
	}
	return false
}

// Undo reverses the most recent tap, if any.
func (s *Session) Undo() bool {
	if s.Screen != ScreenPlaying || s.Puzzle == nil {
		return false
	}
	return s.Puzzle.Undo()
}

// NextLevel advances past a victory and starts the next puzzle.
func (s *Session) NextLevel() *Puzzle {
	s.Level++
	return s.StartLevel()
}

// Abort discards the active puzzle and returns to the menu.
func (s *Session) Abort() {
	s.Puzzle = nil
	s.Screen = ScreenMenu
}

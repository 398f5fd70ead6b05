package game

import "testing"

func TestPhaseOrder(t *testing.T) {
	want := []Phase{PhaseRevealing, PhaseStreaming, PhaseImpact, PhaseSettling, PhaseIdle}
	p := PhaseIdle.Next()
	for i, w := range want {
		if p != w {
			t.Fatalf("Phase step %d: got %s, want %s", i, p, w)
		}
		p = p.Next()
	}
	if PhaseIdle.Next() != PhaseRevealing {
		t.Error("Idle should restart the sequence")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(1)
	if s.Screen != ScreenMenu || s.Level != 1 || s.Solved != 0 {
		t.Fatalf("Fresh session: %+v", s)
	}

	p := s.StartLevel()
	if s.Screen != ScreenPlaying || p == nil || s.Puzzle != p {
		t.Fatalf("After StartLevel: screen=%v puzzle=%v", s.Screen, s.Puzzle)
	}

	// Rig a one-tap puzzle so the win path is deterministic.
	s.Puzzle = &Puzzle{
		LeftConstant: -2,
		RightValue:   3,
		Deck:         Deck{{Matter, 2}, {Antimatter, 1}, {Matter, 4}},
		MinMoves:     1,
		MinKnown:     true,
	}
	if won := s.Tap(0); !won {
		t.Fatalf("Tap(0) should have solved the puzzle: %+v", s.Puzzle)
	}
	if s.Screen != ScreenVictory || s.Solved != 1 {
		t.Fatalf("After win: screen=%v solved=%d", s.Screen, s.Solved)
	}
	if s.Puzzle.Stars() != 3 {
		t.Errorf("Optimal solve should score 3 stars, got %d", s.Puzzle.Stars())
	}

	// Taps after victory are ignored.
	if s.Tap(1) {
		t.Error("Tap on the victory screen should be ignored")
	}

	s.NextLevel()
	if s.Level != 2 || s.Screen != ScreenPlaying || s.Puzzle == nil {
		t.Fatalf("After NextLevel: %+v", s)
	}

	s.Abort()
	if s.Screen != ScreenMenu || s.Puzzle != nil {
		t.Fatalf("After Abort: %+v", s)
	}
}

func TestSessionTapBounds(t *testing.T) {
	s := NewSession(2)
	if s.Tap(0) {
		t.Error("Tap before StartLevel should be ignored")
	}
	s.StartLevel()
	if s.Tap(-1) || s.Tap(DeckSize) {
		t.Error("Out-of-range taps should be ignored")
	}
	if s.Puzzle.Moves != 0 {
		t.Errorf("Ignored taps still counted: %d moves", s.Puzzle.Moves)
	}
}

func TestSessionResume(t *testing.T) {
	s := NewSession(3)
	s.Resume(7, 42)
	if s.Level != 7 || s.Solved != 42 {
		t.Fatalf("Resume(7, 42): level=%d solved=%d", s.Level, s.Solved)
	}
	s.Resume(0, -1) // out of range, ignored
	if s.Level != 7 || s.Solved != 42 {
		t.Fatalf("Out-of-range resume changed counters: level=%d solved=%d", s.Level, s.Solved)
	}
}

// Two sessions with the same seed replay the same run.
func TestSessionReproducible(t *testing.T) {
	a, b := NewSession(99), NewSession(99)
	a.StartLevel()
	b.StartLevel()
	for i := 0; i < 5; i++ {
		pa, pb := a.Puzzle, b.Puzzle
		if pa.LeftConstant != pb.LeftConstant || pa.RightValue != pb.RightValue || pa.Deck != pb.Deck {
			t.Fatalf("Level %d diverged: %+v vs %+v", a.Level, pa, pb)
		}
		a.NextLevel()
		b.NextLevel()
	}
}

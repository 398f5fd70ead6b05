package progress

import "testing"

func TestLoadDefaults(t *testing.T) {
	p := Load(NewMemory())
	if p.Level != 1 || p.Solved != 0 {
		t.Errorf("Load from empty store: %+v, want level 1 / 0 solved", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewMemory()
	Save(s, Progress{Level: 12, Solved: 34})
	p := Load(s)
	if p.Level != 12 || p.Solved != 34 {
		t.Errorf("Round trip: %+v, want level 12 / 34 solved", p)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	s := NewMemory()
	s.Set(KeyLevel, "banana")
	s.Set(KeySolved, "-3")
	p := Load(s)
	if p.Level != 1 || p.Solved != 0 {
		t.Errorf("Malformed values should fall back to defaults, got %+v", p)
	}
}

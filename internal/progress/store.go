// Package progress persists the two progression counters the game keeps
// between visits: current level and lifetime puzzles solved.
package progress

import (
	"strconv"
	"sync"
)

// Storage keys. Fixed names, shared by every Store implementation.
const (
	KeyLevel  = "reactor.level"
	KeySolved = "reactor.solved"
)

// Store is the external key-value collaborator: the browser's localStorage
// in the WASM client, a plain map elsewhere.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
}

// Progress holds the persisted counters.
type Progress struct {
	Level  int
	Solved int
}

// Load reads the counters from s, falling back to a fresh run (level 1, zero
// solves) for any key that is missing or unparsable.
func Load(s Store) Progress {
	p := Progress{Level: 1}
	if raw, ok := s.Get(KeyLevel); ok {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			p.Level = v
		}
	}
	if raw, ok := s.Get(KeySolved); ok {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			p.Solved = v
		}
	}
	return p
}

// Save writes both counters to s.
func Save(s Store, p Progress) {
	s.Set(KeyLevel, strconv.Itoa(p.Level))
	s.Set(KeySolved, strconv.Itoa(p.Solved))
}

// Memory is a Store backed by a map, used in tests and for server-side
// prerendering where no browser storage exists.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

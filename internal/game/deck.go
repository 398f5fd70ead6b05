package game

import "math/rand"

// MaxMagnitude returns the largest card magnitude for the given level.
// It grows every other level and caps at 5.
func MaxMagnitude(level int) int {
	m := level/2 + 3
	if m > 5 {
		m = 5
	}
	return m
}

// GenerateDeck draws three cards for the given level, magnitudes uniform in
// [1, MaxMagnitude(level)]. One card is forced antimatter and one matter, so
// the deck can always push the equation in both directions; the third is a
// coin flip. The result is shuffled.
func GenerateDeck(rng *rand.Rand, level int) Deck {
	maxVal := MaxMagnitude(level)

	var deck Deck
	for i := range deck {
		deck[i] = Card{Kind: Matter, Magnitude: 1 + rng.Intn(maxVal)}
	}
	deck[0].Kind = Antimatter
	if rng.Intn(2) == 0 {
		deck[2].Kind = Antimatter
	}

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

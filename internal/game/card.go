package game

import "fmt"

// Kind tells whether a card injects matter or antimatter into the reactor.
type Kind int

const (
	Matter Kind = iota
	Antimatter
)

func (k Kind) String() string {
	switch k {
	case Matter:
		return "matter"
	case Antimatter:
		return "antimatter"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Card is a single tappable quantity. Cards are immutable once generated.
type Card struct {
	Kind      Kind `json:"kind"`
	Magnitude int  `json:"magnitude"` // 1..5
}

// Delta is the signed amount a tap adds to both sides of the equation:
// positive for matter, negative for antimatter.
func (c Card) Delta() int {
	if c.Kind == Antimatter {
		return -c.Magnitude
	}
	return c.Magnitude
}

func (c Card) String() string {
	return fmt.Sprintf("%+d %s", c.Delta(), c.Kind)
}

// DeckSize is the number of cards offered per puzzle.
const DeckSize = 3

// Deck is the hand of cards offered for the current puzzle. Cards are
// reusable: tapping one does not consume it.
type Deck [DeckSize]Card

package game

const (
	// searchDepth bounds how many card applications the solver explores.
	searchDepth = 8

	// searchSlack widens the window of running sums the solver may visit
	// beyond the target's own magnitude. Any multiset of card deltas that
	// sums to the target can be ordered so its partial sums stay within
	// |target| plus one card magnitude, well inside this slack.
	searchSlack = 15
)

// Solve returns the fewest card applications (repetition allowed) whose
// deltas sum to target, starting from zero. It is a breadth-first search over
// running sums, bounded to |sum| <= |target|+searchSlack and at most
// searchDepth applications. ok is false when the target is unreachable within
// those bounds; callers must not read moves in that case.
//
// The search is deterministic for a fixed target and deck.
func Solve(target int, deck Deck) (moves int, ok bool) {
	type node struct {
		sum   int
		moves int
	}

	limit := abs(target) + searchSlack
	queue := []node{{sum: 0, moves: 0}}
	visited := map[int]bool{0: true}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if n.sum == target {
			return n.moves, true
		}
		if n.moves >= searchDepth {
			continue
		}
		for _, c := range deck {
			next := n.sum + c.Delta()
			if visited[next] || abs(next) > limit {
				continue
			}
			visited[next] = true
			queue = append(queue, node{sum: next, moves: n.moves + 1})
		}
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

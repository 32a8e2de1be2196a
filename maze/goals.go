package maze

// Manhattan returns |Δcol| + |Δrow| between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// DistanceToNearest returns the smallest Manhattan distance from from to any
// coordinate in set, or 0 when set is empty.
// It is admissible and consistent for 4-connected movement with arrival
// costs of at least 1.
func DistanceToNearest(from Coord, set []Coord) int {
	_, d, ok := nearest(from, set)
	if !ok {
		return 0
	}

	return d
}

// ClosestGoal returns the goal with the smallest Manhattan distance from from.
// Ties go to the goal that comes first in row-major order. ok is false when
// the maze has no goals.
// Complexity: O(G).
func (m *Maze) ClosestGoal(from Coord) (c Coord, ok bool) {
	c, _, ok = nearest(from, m.goals)
	return c, ok
}

// ClosestKey applies the ClosestGoal rule to the key set.
func (m *Maze) ClosestKey(from Coord) (c Coord, ok bool) {
	c, _, ok = nearest(from, m.keys)
	return c, ok
}

// nearest scans set in order and keeps the first strict minimum.
func nearest(from Coord, set []Coord) (best Coord, dist int, ok bool) {
	for i, c := range set {
		d := Manhattan(from, c)
		if i == 0 || d < dist {
			best, dist = c, d
		}
	}

	return best, dist, len(set) > 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

package maze

// Verify replays moves from the entry cell and reports whether they form a
// solution and what they cost.
//
// Behavior:
//  1. Each move lands on a new cell. A landing out of bounds or on a Wall, or
//     an undefined Move value, stops the replay with (false, -1).
//  2. Landing on any key cell records that the key was collected.
//  3. Every landing adds CostOf(cell) to the cost.
//  4. The sequence is valid iff it ends on a goal and a key was collected.
//
// The cost of a legal walk is returned even when it is not a solution, so
// cost is -1 exactly when the walk was illegal. Safe on arbitrary input.
// Complexity: O(len(moves)).
func (m *Maze) Verify(moves []Move) (valid bool, cost int) {
	at := m.entry
	hasKey := false
	for _, mv := range moves {
		if !mv.Valid() {
			return false, -1
		}
		at = at.Add(moveDeltas[mv])
		k, ok := m.At(at)
		if !ok || k == Wall {
			return false, -1
		}
		if m.IsKey(at) {
			hasKey = true
		}
		cost += k.Cost()
	}

	return hasKey && m.IsGoal(at), cost
}

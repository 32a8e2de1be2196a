// Package maze treats a rectangular text maze as an implicit 4-connected
// grid graph, the Grid Model used by the key-then-goal route search.
//
// What:
//
//   - Maze wraps rows such as "XI...KX" into an immutable table of Kind.
//   - Classifies cells: Wall 'X', Open '.', Entry 'I', Goal 'G', Key 'K', Mud 'M'.
//   - Answers legal-move, arrival-cost, goal/key membership and closest-goal queries.
//   - Replays an action sequence (Verify) and re-derives legality and cost.
//
// Costs:
//
//   - Arriving on Entry, Goal, Key or Open costs 1; arriving on Mud costs 3.
//   - Walls are never entered; LegalMoves excludes them.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - LegalMoves: O(1).
//   - IsGoal/IsKey: O(1) expected (set lookup).
//   - ClosestGoal: O(G) where G = number of goals.
//   - Verify:     O(len(moves)).
//
// Options:
//
//   - Options.MultiKey: accept more than one 'K' cell (any key satisfies the
//     key condition). Off by default; a second key is then ErrMultipleKeys.
//
// Errors (all wrap ErrMalformed):
//
//   - ErrEmptyMaze: no rows or zero-width rows.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: a character outside the recognized set.
//   - ErrNoEntry / ErrMultipleEntries: the maze needs exactly one 'I'.
//     A second 'I' is rejected rather than silently replacing the first;
//     this is stricter than the minimal malformed set (unknown character,
//     missing entry).
//   - ErrMultipleKeys: more than one 'K' without Options.MultiKey.
//
// A Maze is read-only after New and may be shared by any number of
// concurrent searches without synchronization.
package maze

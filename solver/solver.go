// Package solver finds the cheapest route from a maze's entry, through its
// key, to whichever goal is cheapest to reach from that key.
//
// Solve runs astar.Search twice:
//
//  1. entry → key set (heuristic: distance to the nearest key);
//  2. reached key → goal set (heuristic: distance to the nearest goal, which
//     at the root equals the distance to ClosestGoal(key)).
//
// The route is phase-1 moves followed by phase-2 moves. Collecting the key has
// no effect besides satisfying the precondition and costs are static, so the
// cheapest continuation after the key is an independent shortest path and the
// concatenation is optimal for a single key. With maze.Options.MultiKey the
// search commits to the cheapest-reached key; the total is then not
// guaranteed minimal over every key.
//
// "No solution" (no key, no goal, key unreachable, no goal reachable from the
// key) is an ordinary result: Route.Found is false and the error is nil.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/keymaze/astar"
	"github.com/katalvlaran/keymaze/maze"
)

// ErrNilMaze indicates that a nil *maze.Maze was passed to Solve.
var ErrNilMaze = errors.New("solver: maze is nil")

// Route is the outcome of Solve.
type Route struct {
	// Found is false when no key-then-goal route exists. Moves is nil then.
	Found bool
	// Moves leads from the entry through Key to Goal.
	Moves []maze.Move
	// Cost is the sum of arrival costs along Moves.
	Cost int
	// Key is the key cell the route collects.
	Key maze.Coord
	// Goal is the goal cell the route ends on.
	Goal maze.Coord
	// Aim is ClosestGoal(Key): the goal the second phase's root heuristic
	// points at. Goal may differ when Aim is walled off or dearer.
	Aim maze.Coord
	// Expanded counts nodes closed over both phases.
	Expanded int
}

// String renders the route as "U R R D" or "no solution".
func (r *Route) String() string {
	if r == nil || !r.Found {
		return "no solution"
	}

	return strings.Join(maze.FormatMoves(r.Moves), " ")
}

// Solve computes the optimal entry → key → goal route of m.
// opts are applied to both search phases (hooks, expansion cap).
//
// Returns a Route with Found=false and a nil error when the maze has no
// solution; errors are reserved for a nil maze, invalid options and
// astar.ErrExpansionLimit.
func Solve(m *maze.Maze, opts ...astar.Option) (*Route, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	route := &Route{}
	if !m.HasKey() || !m.HasGoal() {
		return route, nil
	}

	// Phase 1: entry → key.
	toKey, err := astar.Search(m, m.Entry(), m.Keys(), opts...)
	if err != nil {
		return notFound(route, err, "entry to key")
	}
	route.Expanded += toKey.Expanded
	route.Key = toKey.Target
	route.Aim, _ = m.ClosestGoal(route.Key)

	// Phase 2: key → nearest goal.
	toGoal, err := astar.Search(m, route.Key, m.Goals(), opts...)
	if err != nil {
		return notFound(route, err, "key to goal")
	}
	route.Expanded += toGoal.Expanded
	route.Goal = toGoal.Target

	route.Found = true
	route.Moves = make([]maze.Move, 0, len(toKey.Moves)+len(toGoal.Moves))
	route.Moves = append(route.Moves, toKey.Moves...)
	route.Moves = append(route.Moves, toGoal.Moves...)
	route.Cost = toKey.Cost + toGoal.Cost

	return route, nil
}

// notFound turns astar.ErrNoPath into an unsolved route and wraps anything
// else with the failing phase.
func notFound(route *Route, err error, phase string) (*Route, error) {
	if errors.Is(err, astar.ErrNoPath) {
		route.Found = false
		return route, nil
	}

	return nil, fmt.Errorf("solver: %s: %w", phase, err)
}

// Check re-derives legality and cost of route against m with m.Verify.
// An unsolved route is never valid and reports cost -1.
func Check(m *maze.Maze, route *Route) (valid bool, cost int) {
	if m == nil || route == nil || !route.Found {
		return false, -1
	}

	return m.Verify(route.Moves)
}

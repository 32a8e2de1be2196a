// Package astar implements A* search on a maze.Maze toward a set of target
// cells, using Manhattan distance to the nearest target as the heuristic.
//
// The heuristic never overestimates (every move costs at least 1 and covers
// one unit of Manhattan distance) and is consistent, so the first target
// taken off the frontier has minimal history among all paths to any target.
//
// Complexity:
//
//   - Time:  O(N log N) where N = W×H (each cell is closed at most once,
//     each closing pushes at most four children).
//   - Space: O(N) for the node arena, closed set and frontier.
//
// Notes on implementation choices:
//
//   - Nodes live in a per-call arena and point at their parent by index, so the
//     search tree has a single owner and is dropped when Search returns.
//   - Lazy duplicates: a cell may sit on the frontier several times; stale
//     entries are skipped when popped because the cell is already closed.
//   - The frontier ordering reads only history + heuristic.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/keymaze/maze"
)

// Search runs A* on m from start until a cell in targets is closed.
//
// Returns:
//
//   - *Result with the move sequence, its cost and search counters.
//   - ErrNilMaze, ErrNoTargets, ErrStartInvalid for invalid input.
//   - ErrOptionViolation for invalid options.
//   - ErrNoPath if no target is reachable.
//   - ErrExpansionLimit if WithMaxExpansions stops the search first.
//
// Search never mutates m; concurrent calls on the same maze are safe.
func Search(m *maze.Maze, start maze.Coord, targets []maze.Coord, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs
	if m == nil {
		return nil, ErrNilMaze
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	if k, ok := m.At(start); !ok || k == maze.Wall {
		return nil, ErrStartInvalid
	}

	// 3) Prepare runner state
	targetSet := make(map[maze.Coord]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}
	n := m.Width() * m.Height()
	r := &runner{
		m:         m,
		options:   cfg,
		targets:   targets,
		targetSet: targetSet,
		closed:    make(map[maze.Coord]struct{}, n),
		frontier:  frontier{arena: make([]node, 0, n)},
	}

	r.init(start)
	return r.process()
}

// node is one partial path. parent is an index into the arena, -1 for the root.
type node struct {
	coord     maze.Coord
	move      maze.Move
	parent    int
	history   int
	heuristic int
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	m         *maze.Maze              // read-only
	options   Options                 // hooks and limits
	targets   []maze.Coord            // heuristic reference points
	targetSet map[maze.Coord]struct{} // target predicate
	closed    map[maze.Coord]struct{} // expanded cells
	frontier  frontier                // arena + min-heap of arena indices

	expanded  int
	generated int
}

// init pushes the root: history 0, heuristic to the nearest target.
func (r *runner) init(start maze.Coord) {
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, node{
		coord:     start,
		parent:    -1,
		history:   0,
		heuristic: maze.DistanceToNearest(start, r.targets),
	})
}

// process is the main loop: pop the minimum-evaluation node, close it, test
// the target predicate, expand.
func (r *runner) process() (*Result, error) {
	for r.frontier.Len() > 0 {
		idx := heap.Pop(&r.frontier).(int)
		cur := r.frontier.arena[idx]

		// Skip stale entries for cells closed earlier.
		if _, done := r.closed[cur.coord]; done {
			continue
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, ErrExpansionLimit
		}
		r.closed[cur.coord] = struct{}{}
		r.expanded++
		r.options.OnExpand(r.describe(cur))

		if _, hit := r.targetSet[cur.coord]; hit {
			return &Result{
				Moves:     r.path(idx),
				Cost:      cur.history,
				Target:    cur.coord,
				Expanded:  r.expanded,
				Generated: r.generated,
			}, nil
		}

		r.expand(idx)
	}

	return nil, ErrNoPath
}

// expand generates a child for every legal move out of the node at idx,
// skipping cells that are already closed.
func (r *runner) expand(idx int) {
	parent := r.frontier.arena[idx]
	for _, tr := range r.m.LegalMoves(parent.coord) {
		if _, done := r.closed[tr.To]; done {
			continue
		}
		child := node{
			coord:     tr.To,
			move:      tr.Move,
			parent:    idx,
			history:   parent.history + r.m.CostOf(tr.To),
			heuristic: maze.DistanceToNearest(tr.To, r.targets),
		}
		heap.Push(&r.frontier, child)
		r.generated++
		r.options.OnGenerate(r.describe(child))
	}
}

// path walks parent indices back to the root and reverses the moves.
func (r *runner) path(idx int) []maze.Move {
	moves := make([]maze.Move, 0)
	for at := idx; r.frontier.arena[at].parent >= 0; at = r.frontier.arena[at].parent {
		moves = append(moves, r.frontier.arena[at].move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}

func (r *runner) describe(n node) Expansion {
	return Expansion{
		Coord:     n.coord,
		Move:      n.move,
		Root:      n.parent < 0,
		History:   n.history,
		Heuristic: n.heuristic,
		Step:      r.expanded,
	}
}

// frontier is a min-heap of arena indices ordered by history + heuristic.
// Push appends the node to the arena and its index to the heap; Pop returns
// the index. Equal evaluations come out in heap order.
type frontier struct {
	arena []node
	heap  []int
}

// Len returns the number of queued indices.
func (f frontier) Len() int { return len(f.heap) }

// Less compares evaluation scores only.
func (f frontier) Less(i, j int) bool {
	a, b := f.arena[f.heap[i]], f.arena[f.heap[j]]
	return a.history+a.heuristic < b.history+b.heuristic
}

// Swap swaps two queued indices.
func (f frontier) Swap(i, j int) { f.heap[i], f.heap[j] = f.heap[j], f.heap[i] }

// Push stores x (a node) in the arena and queues its index.
// Called by heap.Push.
func (f *frontier) Push(x interface{}) {
	f.arena = append(f.arena, x.(node))
	f.heap = append(f.heap, len(f.arena)-1)
}

// Pop removes and returns the last queued index.
// Called by heap.Pop; returns interface{} that must be cast to int.
func (f *frontier) Pop() interface{} {
	old := f.heap
	n := len(old)
	idx := old[n-1]
	f.heap = old[:n-1]

	return idx
}

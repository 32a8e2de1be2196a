// Package astar defines options, hooks, results and sentinel errors for the
// A* search over a maze.Maze.
//
// Options:
//
//	– OnExpand:      called once per node taken off the frontier and expanded.
//	– OnGenerate:    called once per child node pushed onto the frontier.
//	– MaxExpansions: optional cap on expansions (0 = no cap).
//
// Errors (sentinel):
//
//	– ErrNilMaze         if the maze pointer is nil.
//	– ErrStartInvalid    if the start cell is out of bounds or a wall.
//	– ErrNoTargets       if the target set is empty.
//	– ErrNoPath          if the frontier is exhausted without reaching a target.
//	– ErrExpansionLimit  if MaxExpansions is reached first.
//	– ErrOptionViolation if an option was given an invalid value.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keymaze/maze"
)

// Sentinel errors returned by Search.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed to Search.
	ErrNilMaze = errors.New("astar: maze is nil")

	// ErrStartInvalid indicates the start cell is out of bounds or a wall.
	ErrStartInvalid = errors.New("astar: start cell is not enterable")

	// ErrNoTargets indicates an empty target set.
	ErrNoTargets = errors.New("astar: target set is empty")

	// ErrNoPath indicates the frontier was exhausted without reaching a target.
	ErrNoPath = errors.New("astar: no path to any target")

	// ErrExpansionLimit indicates MaxExpansions was reached before a target.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Expansion describes one node as seen by a hook.
type Expansion struct {
	Coord     maze.Coord // cell the node stands for
	Move      maze.Move  // move that produced it; meaningless when Root
	Root      bool       // true for the search root
	History   int        // accumulated arrival cost from the root
	Heuristic int        // Manhattan distance to the nearest target
	Step      int        // 1-based expansion counter at the time of the call
}

// Eval returns History + Heuristic, the frontier ordering key.
func (e Expansion) Eval() int { return e.History + e.Heuristic }

// Options configures the behavior of Search.
type Options struct {
	// OnExpand is called when a node is closed and about to be expanded.
	// It is also called for the node that reaches the target.
	OnExpand func(Expansion)

	// OnGenerate is called for each child pushed onto the frontier.
	OnGenerate func(Expansion)

	// MaxExpansions, if > 0, fails the search with ErrExpansionLimit once
	// that many nodes have been expanded without reaching a target.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks and no expansion cap.
func DefaultOptions() Options {
	return Options{
		OnExpand:      func(Expansion) {},
		OnGenerate:    func(Expansion) {},
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithOnExpand registers a callback run at each node expansion.
func WithOnExpand(fn func(Expansion)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback run for each generated child.
func WithOnGenerate(fn func(Expansion)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: fail with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result is the outcome of a successful Search.
type Result struct {
	// Moves leads from the start to Target; empty when the start is a target.
	Moves []maze.Move
	// Cost is the sum of arrival costs along Moves.
	Cost int
	// Target is the target cell that was reached.
	Target maze.Coord
	// Expanded counts closed nodes, including the target.
	Expanded int
	// Generated counts children pushed onto the frontier.
	Generated int
}

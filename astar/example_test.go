// Package astar_test provides examples demonstrating how to use Search.
// Each example is runnable via “go test -run Example”.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/keymaze/astar"
	"github.com/katalvlaran/keymaze/maze"
)

// ExampleSearch finds the cheapest way from the entry to the key when the
// direct route crosses mud.
func ExampleSearch() {
	m, _ := maze.New([]string{
		"IMMK",
		"....",
	}, maze.DefaultOptions())

	res, err := astar.Search(m, m.Entry(), m.Keys())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(maze.FormatMoves(res.Moves), res.Cost)
	// Output: [D R R R U] 5
}

// ExampleWithOnExpand prints every expansion instead of logging from inside
// the algorithm.
func ExampleWithOnExpand() {
	m, _ := maze.New([]string{"I.K"}, maze.DefaultOptions())

	_, _ = astar.Search(m, m.Entry(), m.Keys(),
		astar.WithOnExpand(func(e astar.Expansion) {
			fmt.Printf("#%d %v g=%d h=%d\n", e.Step, e.Coord, e.History, e.Heuristic)
		}),
	)
	// Output:
	// #1 (0,0) g=0 h=2
	// #2 (1,0) g=1 h=1
	// #3 (2,0) g=2 h=0
}
